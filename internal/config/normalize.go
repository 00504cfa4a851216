package config

import "strings"

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.DataFile = strings.TrimSpace(cfg.DataFile)
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
	cfg.UI.Title = strings.TrimSpace(cfg.UI.Title)
}
