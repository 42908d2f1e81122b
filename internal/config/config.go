package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/studydeskhq/studydesk-backend/internal/logger"
	"github.com/studydeskhq/studydesk-backend/internal/utils"
)

type Server struct {
	Port string `yaml:"port"`
}

type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type CORS struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type Timer struct {
	PomodoroSeconds   int `yaml:"pomodoro_seconds"`
	ShortBreakSeconds int `yaml:"short_break_seconds"`
	LongBreakSeconds  int `yaml:"long_break_seconds"`
}

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	CORS     CORS     `yaml:"cors"`
	Timer    Timer    `yaml:"timer"`
}

// Load reads the optional YAML config file, then applies environment
// overrides and defaults. A missing file is not an error.
func Load(path string, log *logger.Logger) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			log.Warn("Config file not found, using defaults", "path", path)
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	cfg.Server.Port = utils.GetEnv("PORT", cfg.Server.Port, log)

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	cfg.Database.Driver = utils.GetEnv("DB_DRIVER", cfg.Database.Driver, log)
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "studydesk.db"
	}
	cfg.Database.DSN = utils.GetEnv("DB_DSN", cfg.Database.DSN, log)

	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}

	if cfg.Timer.PomodoroSeconds <= 0 {
		cfg.Timer.PomodoroSeconds = 1500
	}
	if cfg.Timer.ShortBreakSeconds <= 0 {
		cfg.Timer.ShortBreakSeconds = 300
	}
	if cfg.Timer.LongBreakSeconds <= 0 {
		cfg.Timer.LongBreakSeconds = 900
	}

	return cfg, nil
}
