package config

// Config holds the application configuration.
type Config struct {
	Furtrack FurtrackConfig `mapstructure:"furtrack"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// FurtrackConfig holds FurTrack client settings. Everything is optional:
// the public API works without a key, and headers merge over the client's
// built-in browser-like defaults.
type FurtrackConfig struct {
	APIKey  string            `mapstructure:"api_key"`
	BaseURL string            `mapstructure:"base_url"`
	Headers map[string]string `mapstructure:"headers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
