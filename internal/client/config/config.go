package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath names the variable holding the config file path.
const EnvConfigPath = "NOTES_CONFIG"

// Config holds runtime settings for the notes CLI.
//
// RequestTimeout bounds a single HTTP request; zero means no timeout.
type Config struct {
	APIBaseURL     string        `yaml:"api_base_url" json:"api_base_url" env:"NOTES_API_BASE_URL" env-description:"base URL of the notes API"`
	StoragePath    string        `yaml:"storage_path" json:"storage_path" env:"NOTES_STORAGE_PATH" env-description:"path of the local SQLite database"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout" env:"NOTES_REQUEST_TIMEOUT" env-description:"per-request timeout, 0 disables"`
	LogLevel       string        `yaml:"log_level" json:"log_level" env:"NOTES_LOG_LEVEL" env-description:"debug, info, warn or error"`
	LogMode        string        `yaml:"log_mode" json:"log_mode" env:"NOTES_LOG_MODE" env-description:"development or production"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://notes-api.dicoding.dev/v1"
	c.StoragePath = "notes.db"
	c.RequestTimeout = 0
	c.LogLevel = "warn"
	c.LogMode = "development"
}

// LoadConfig applies defaults, then the file at path (when path is empty the
// NOTES_CONFIG variable is consulted; no file is fine), then the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return cfg, nil
}

// Usage describes the supported environment variables.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
