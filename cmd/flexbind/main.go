package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/flexbind/cmd/flexbind/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "render":
		err = commands.Render(args)
	case "config":
		err = commands.Config(args)
	case "version", "-v", "--version":
		fmt.Printf("flexbind version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`flexbind - flexbox layout for widget trees

Usage: flexbind <command> [options]

Commands:
  render          Lay out a scene file and print the computed frames
  config          Create or show the engine configuration
  version         Print version information
  help            Show this help message

Examples:
  flexbind render scene.toml                   Print frames for a scene
  flexbind render --width 1024 scene.yaml      Override the viewport width
  flexbind render --png out.png scene.toml     Also draw the frames to a PNG
  flexbind render --watch scene.toml           Re-render whenever the file changes
  flexbind config init                         Write flexbind.toml with defaults

Configuration:
  The engine is configured via flexbind.toml in the working directory.
  Run 'flexbind config init' to create one with default values.`)
}
