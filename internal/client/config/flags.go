package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig         = "config"
	FlagAPIBaseURL     = "api-url"
	FlagStoragePath    = "db"
	FlagRequestTimeout = "timeout"
	FlagLogLevel       = "log-level"
	FlagLogMode        = "log-mode"
)

// RegisterFlags declares the configuration flags on fs. Defaults shown in
// help are the built-in ones; the values are only applied when set.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.String(FlagConfig, "", "path to a YAML or JSON config file")
	fs.String(FlagAPIBaseURL, d.APIBaseURL, "base URL of the notes API")
	fs.String(FlagStoragePath, d.StoragePath, "path of the local database")
	fs.Duration(FlagRequestTimeout, d.RequestTimeout, "per-request timeout (0 disables)")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(FlagLogMode, d.LogMode, "log format: development or production")
}

// ApplyFlags overlays the flags that were explicitly set on fs.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	setString := func(name string, dst *string) {
		if err != nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetString(name)
	}
	setString(FlagAPIBaseURL, &c.APIBaseURL)
	setString(FlagStoragePath, &c.StoragePath)
	setString(FlagLogLevel, &c.LogLevel)
	setString(FlagLogMode, &c.LogMode)
	if err != nil {
		return err
	}

	if fs.Changed(FlagRequestTimeout) {
		var d time.Duration
		if d, err = fs.GetDuration(FlagRequestTimeout); err != nil {
			return err
		}
		c.RequestTimeout = d
	}
	return nil
}

// Load reads the config file named by the --config flag (if any), the
// environment and then the explicitly set flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	path, _ := fs.GetString(FlagConfig)
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(fs); err != nil {
		return nil, err
	}
	return cfg, nil
}
