package config

import "time"

// Config is the root application configuration.
type Config struct {
	Lookup LookupConfig `yaml:"lookup"`
	Files  FilesConfig  `yaml:"files"`
	Log    LogConfig    `yaml:"log"`
}

// LookupConfig holds example-sentence site settings.
type LookupConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"LOOKUP_BASE_URL"   env-default:"https://yourei.jp/"`
	Timeout   time.Duration `yaml:"timeout"    env:"LOOKUP_TIMEOUT"    env-default:"15s"`
	UserAgent string        `yaml:"user_agent" env:"LOOKUP_USER_AGENT" env-default:"jisho-examples"`
}

// FilesConfig holds the CSV paths. Empty paths are asked for interactively.
type FilesConfig struct {
	InputPath  string `yaml:"input_path"  env:"JISHO_INPUT_PATH"`
	OutputPath string `yaml:"output_path" env:"JISHO_OUTPUT_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
