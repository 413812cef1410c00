package flexbind

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/flexbind/layout"
)

// DefaultConfigFile is the file name the CLI looks for.
const DefaultConfigFile = "flexbind.toml"

// EngineConfig contains configuration for the engine
type EngineConfig struct {
	// Frame budget for one render pass. Slower passes log a warning.
	FrameBudgetMS float64 `toml:"frame_budget_ms"`
	// Measurements at or below this are treated as "no size".
	Epsilon float64 `toml:"epsilon"`
	// Applied frames are snapped to 1/PointScale. Zero disables rounding.
	PointScale float64 `toml:"point_scale"`
	// Layout direction passed to the solver: "ltr", "rtl" or "inherit".
	Direction string `toml:"direction"`
	// slog level name: "debug", "info", "warn" or "error".
	LogLevel string `toml:"log_level"`
	// Used by the CLI to decide whether to expose metrics and traces.
	Metrics bool `toml:"metrics"`
	Trace   bool `toml:"trace"`
}

// DefaultEngineConfig returns the default engine configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		FrameBudgetMS: 16,
		Epsilon:       0.0001,
		PointScale:    1,
		Direction:     "inherit",
		LogLevel:      "info",
	}
}

// FrameBudget returns the frame budget as a duration.
func (c EngineConfig) FrameBudget() time.Duration {
	return time.Duration(c.FrameBudgetMS * float64(time.Millisecond))
}

// LayoutDirection returns the parsed solver direction.
func (c EngineConfig) LayoutDirection() layout.Direction {
	return layout.ParseDirection(c.Direction)
}

// Level returns the configured slog level, defaulting to info.
func (c EngineConfig) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// withDefaults fills zero values that would make the engine misbehave.
func (c EngineConfig) withDefaults() EngineConfig {
	def := DefaultEngineConfig()
	if c.FrameBudgetMS <= 0 {
		c.FrameBudgetMS = def.FrameBudgetMS
	}
	if c.Epsilon <= 0 {
		c.Epsilon = def.Epsilon
	}
	if c.PointScale < 0 {
		c.PointScale = 0
	}
	return c
}

// LoadConfig loads an engine configuration from a TOML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (EngineConfig, error) {
	config := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config.withDefaults(), nil
}

// SaveConfig writes the configuration to path as TOML.
func SaveConfig(path string, config EngineConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
