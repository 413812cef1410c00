package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/flexbind"
)

// Config implements the 'flexbind config' command
func Config(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: flexbind config <init|show> [options]")
	}

	switch args[0] {
	case "init":
		return configInit(args[1:], os.Stdout)
	case "show":
		return configShow(args[1:], os.Stdout)
	default:
		return fmt.Errorf("unknown config subcommand: %s", args[0])
	}
}

func configInit(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	path := fs.String("path", flexbind.DefaultConfigFile, "Config file to write")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *path)
	}

	if err := flexbind.SaveConfig(*path, flexbind.DefaultEngineConfig()); err != nil {
		return err
	}
	fmt.Fprintf(out, "  ✓ Created %s\n", *path)
	return nil
}

func configShow(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("config show", flag.ContinueOnError)
	path := fs.String("path", flexbind.DefaultConfigFile, "Config file to read")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config, err := flexbind.LoadConfig(*path)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
