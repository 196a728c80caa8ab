package config

// Config is the complete pylayout configuration. It can be loaded from a
// .pylayout.yml file with environment variable overrides.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Run    RunConfig    `yaml:"run" mapstructure:"run"`
}

// PathsConfig defines which files to lint and which to skip.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for files to lint
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// OutputConfig controls presentation.
type OutputConfig struct {
	Color bool `yaml:"color" mapstructure:"color"`
}

// RunConfig controls batch execution.
type RunConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // 0 = one per CPU
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Include: []string{
				"**/*.py",
			},
			Ignore: []string{
				"__pycache__/**",
				".git/**",
				".venv/**",
				"venv/**",
				".tox/**",
				"build/**",
				"dist/**",
				"*.pyc",
			},
		},
		Output: OutputConfig{
			Color: true,
		},
		Run: RunConfig{
			Workers: 0,
		},
	}
}
