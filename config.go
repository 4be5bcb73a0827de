package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	File           string  `env:"TIMELOG_FILE" envDefault:"time_log.csv"`
	DailyGoalHours float64 `env:"TIMELOG_DAILY_GOAL_HOURS" envDefault:"8"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
