package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration with the following priority (highest to lowest):
//  1. Environment variables (PYLAYOUT_*)
//  2. Config file (.pylayout.yml in rootDir)
//  3. Default values
//
// A missing config file is not an error; defaults and environment apply.
func Load(rootDir string) (*Config, error) {
	return LoadWithFile(rootDir, "")
}

// LoadWithFile is Load with an explicit config file path overriding the
// search in rootDir.
func LoadWithFile(rootDir, cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".pylayout")
		v.SetConfigType("yaml")
		v.AddConfigPath(rootDir)
	}

	v.SetEnvPrefix("PYLAYOUT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.color")
	v.BindEnv("run.workers")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Only a failed search is acceptable; an explicitly named file that
		// cannot be read surfaces as a different error type and still fails.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Run.Workers < 0 {
		return nil, fmt.Errorf("run.workers must be >= 0, got %d", cfg.Run.Workers)
	}
	if len(cfg.Paths.Include) == 0 {
		return nil, fmt.Errorf("paths.include must not be empty")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("run.workers", defaults.Run.Workers)
}
