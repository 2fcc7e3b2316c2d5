package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HttpPort          int      `json:"http_port"`
	DbConnString      string   `json:"db_conn_string"`
	DbConnectAttempts int      `json:"db_connect_attempts"`
	AllowedOrigins    []string `json:"allowed_origins"`
	LogLevel          string   `json:"log_level"`
	Seed              bool     `json:"seed"`
}

func defaultConfig() *Config {
	return &Config{
		HttpPort:          8080,
		DbConnectAttempts: 5,
		LogLevel:          "info",
	}
}

// ReadConfigJson reads json formatted configuration from the given file.
// A missing file leaves the defaults in place so the service can be
// configured from the environment alone.
func ReadConfigJson(configFile string) (*Config, error) {
	cfg := defaultConfig()

	content, err := os.ReadFile(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err = json.Unmarshal(content, cfg); err != nil {
			return nil, err
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err = cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.DbConnString == "" {
		return nil, errors.New("database connection string is not configured")
	}

	return cfg, nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT value %q: %w", v, err)
		}
		c.HttpPort = port
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		c.DbConnString = v
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, origin)
			}
		}
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
