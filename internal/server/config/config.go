// Package config handles configuration for the dev server: defaults,
// environment variables and command-line flags, in that order.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for the dev server.
//
// SecretKey signs access tokens (HS256). The default is for local use only.
type Config struct {
	Addr                        string        `env:"NOTESD_ADDR" env-default:"127.0.0.1:8080" env-description:"listen address"`
	SecretKey                   string        `env:"NOTESD_SECRET_KEY" env-default:"secretKey" env-description:"HMAC secret for access tokens"`
	AccessTokenValidityDuration time.Duration `env:"NOTESD_TOKEN_TTL" env-default:"24h" env-description:"access token lifetime"`
	LogLevel                    string        `env:"NOTESD_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogMode                     string        `env:"NOTESD_LOG_MODE" env-default:"development" env-description:"development or production"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8080"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.LogLevel = "info"
	c.LogMode = "development"
}

// LoadConfig builds a Config from defaults, the environment and finally
// the flags in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	fs := pflag.NewFlagSet("notesd", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Addr, "addr", "a", cfg.Addr, "address and port to run server")
	fs.StringVarP(&cfg.SecretKey, "secret", "s", cfg.SecretKey, "secret key")
	fs.DurationVarP(&cfg.AccessTokenValidityDuration, "token-ttl", "t", cfg.AccessTokenValidityDuration, "access token validity")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("secret key must not be empty")
	}
	return cfg, nil
}
