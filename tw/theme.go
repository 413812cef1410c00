package tw

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the layout part of a theme.toml file:
//
//	[theme.breakpoints]
//	sm = 600
//	md = 900
type ThemeConfig struct {
	Theme struct {
		Breakpoints map[string]float64 `toml:"breakpoints"`
	} `toml:"theme"`
}

// LoadTheme reads breakpoints from a theme file. Breakpoints the file does
// not name keep their default values.
func LoadTheme(path string) (BreakpointConfig, error) {
	config := DefaultBreakpoints()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var theme ThemeConfig
	if err := toml.Unmarshal(data, &theme); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for name, width := range theme.Theme.Breakpoints {
		switch name {
		case "sm":
			config.SM = width
		case "md":
			config.MD = width
		case "lg":
			config.LG = width
		case "xl":
			config.XL = width
		case "2xl":
			config.XXL = width
		default:
			return config, fmt.Errorf("%s: unknown breakpoint %q", path, name)
		}
	}
	return config, nil
}
