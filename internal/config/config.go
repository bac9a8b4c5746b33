package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	RatesAPI struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"rates_api"`
	Preferences struct {
		DBPath       string `yaml:"db_path"`
		DefaultTheme string `yaml:"default_theme"`
	} `yaml:"preferences"`
	Widget struct {
		DefaultFrom    string `yaml:"default_from"`
		DefaultTo      string `yaml:"default_to"`
		HistoryWindows []int  `yaml:"history_windows"`
		DefaultWindow  int    `yaml:"default_window"`
	} `yaml:"widget"`

	// Timeouts are environment-only; yaml carries the flat settings above.
	ServerReadTimeout  time.Duration `yaml:"-"`
	ServerWriteTimeout time.Duration `yaml:"-"`
	ServerIdleTimeout  time.Duration `yaml:"-"`
	RatesAPITimeout    time.Duration `yaml:"-"`
}

// Load reads config from a YAML file (missing file is fine), then applies
// environment variable overrides, then fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	cfg.Server.Port = getEnvInt("SERVER_PORT", cfg.Server.Port)
	if v := os.Getenv("RATES_API_BASE_URL"); v != "" {
		cfg.RatesAPI.BaseURL = v
	}
	if v := os.Getenv("PREFERENCES_DB_PATH"); v != "" {
		cfg.Preferences.DBPath = v
	}
	if v := os.Getenv("DEFAULT_THEME"); v != "" {
		cfg.Preferences.DefaultTheme = v
	}

	cfg.ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 5*time.Second)
	cfg.ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	cfg.ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second)
	cfg.RatesAPITimeout = getEnvDuration("RATES_API_TIMEOUT", 10*time.Second)

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.RatesAPI.BaseURL == "" {
		cfg.RatesAPI.BaseURL = "https://economia.awesomeapi.com.br/json"
	}
	if cfg.Preferences.DBPath == "" {
		cfg.Preferences.DBPath = "coinflow.db"
	}
	if cfg.Preferences.DefaultTheme == "" {
		cfg.Preferences.DefaultTheme = "light"
	}
	if cfg.Widget.DefaultFrom == "" {
		cfg.Widget.DefaultFrom = "USD"
	}
	if cfg.Widget.DefaultTo == "" {
		cfg.Widget.DefaultTo = "BRL"
	}
	if len(cfg.Widget.HistoryWindows) == 0 {
		cfg.Widget.HistoryWindows = []int{7, 15, 30}
	}
	if cfg.Widget.DefaultWindow == 0 {
		cfg.Widget.DefaultWindow = cfg.Widget.HistoryWindows[0]
	}

	return cfg, nil
}

// AllowsWindow reports whether days is one of the configured history windows.
func (c *Config) AllowsWindow(days int) bool {
	for _, w := range c.Widget.HistoryWindows {
		if w == days {
			return true
		}
	}
	return false
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid duration for %s, using default: %s\n", key, defaultValue)
		return defaultValue
	}

	return value
}
