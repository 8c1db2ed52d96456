package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime configuration. Values come from the environment
// with sane defaults so the server starts with no configuration at all.
type Config struct {
	HTTP    HTTP    `yaml:"http"`
	Log     Log     `yaml:"log"`
	Sweeper Sweeper `yaml:"sweeper"`
	Reports Reports `yaml:"reports"`
}

type HTTP struct {
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type Sweeper struct {
	Interval    time.Duration `yaml:"interval" env:"SWEEP_INTERVAL" env-default:"10s"`
	MetricsPort string        `yaml:"metrics_port" env:"SWEEP_METRICS_PORT" env-default:"9093"`
}

type Reports struct {
	Dir string `yaml:"dir" env:"REPORTS_DIR" env-default:"./audit"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return cfg, nil
}
