// Package config handles configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/dscptos/internal/core"
)

// Config is the top-level configuration. Every field has a default, so the
// tool runs without a config file.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls where the table is written.
type OutputConfig struct {
	Path string `mapstructure:"path"` // relative to the working directory
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string           `mapstructure:"level"`  // debug / info / warn / error
	Format string           `mapstructure:"format"` // json / text
	File   FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// ─── Loading ───

// DefaultOutputPath is the table file written when nothing else is configured.
const DefaultOutputPath = "dscp_tos_conv_table.csv"

// configRoot is the top-level wrapper matching the YAML structure `dscptos: ...`.
type configRoot struct {
	DSCPToS Config `mapstructure:"dscptos"`
}

// Load loads configuration from path. An empty path yields the defaults, still
// subject to environment overrides (e.g., DSCPTOS_OUTPUT_PATH, DSCPTOS_LOG_LEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// key "dscptos.log.level" → env "DSCPTOS_LOG_LEVEL"
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.DSCPToS

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration.
// All keys use the "dscptos." prefix to match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("dscptos.output.path", DefaultOutputPath)

	v.SetDefault("dscptos.log.level", "info")
	v.SetDefault("dscptos.log.format", "text")
	v.SetDefault("dscptos.log.file.enabled", false)
	v.SetDefault("dscptos.log.file.path", "dscptos.log")
	v.SetDefault("dscptos.log.file.rotation.max_size_mb", 10)
	v.SetDefault("dscptos.log.file.rotation.max_age_days", 7)
	v.SetDefault("dscptos.log.file.rotation.max_backups", 3)
	v.SetDefault("dscptos.log.file.rotation.compress", false)
}

// Validate checks option values.
func (cfg *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("%w: log level %q (must be debug/info/warn/error)", core.ErrConfigInvalid, cfg.Log.Level)
	}
	if f := strings.ToLower(cfg.Log.Format); f != "json" && f != "text" {
		return fmt.Errorf("%w: log format %q (must be json/text)", core.ErrConfigInvalid, cfg.Log.Format)
	}
	if cfg.Log.File.Enabled && cfg.Log.File.Path == "" {
		return fmt.Errorf("%w: log.file.path is required when log.file.enabled=true", core.ErrConfigInvalid)
	}
	if cfg.Output.Path == "" {
		return fmt.Errorf("%w: output.path must not be empty", core.ErrConfigInvalid)
	}
	return nil
}
