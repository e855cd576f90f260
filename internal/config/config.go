package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	DB       DBConfig       `yaml:"db"`
	Log      LogConfig      `yaml:"log"`
	Feed     FeedConfig     `yaml:"feed"`
	Calendar CalendarConfig `yaml:"calendar"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type FeedConfig struct {
	Capacity int `yaml:"capacity"`
}

type CalendarConfig struct {
	// Permission is the simulated device permission outcome: granted or denied.
	Permission string `yaml:"permission"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "planup.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Feed: FeedConfig{
			Capacity: 10,
		},
		Calendar: CalendarConfig{
			Permission: "granted",
		},
	}

	if path := os.Getenv("PLANUP_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PLANUP_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PLANUP_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PLANUP_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("PLANUP_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("PLANUP_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if perm := os.Getenv("PLANUP_CALENDAR_PERMISSION"); perm != "" {
		cfg.Calendar.Permission = perm
	}

	if cfg.Feed.Capacity <= 0 {
		return Config{}, fmt.Errorf("feed capacity must be positive, got %d", cfg.Feed.Capacity)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
