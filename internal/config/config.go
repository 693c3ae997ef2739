package config

import (
	"math"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/peterhellberg/duration"
	"github.com/pkg/errors"
)

type Config struct {
	SeedBank bool `env:"EXAM_SEED_BANK" envDefault:"true"`

	// Defaults offered when configuring a new exam.
	DefaultTitle        string  `env:"EXAM_DEFAULT_TITLE" envDefault:"Practice Exam"`
	DefaultDescription  string  `env:"EXAM_DEFAULT_DESCRIPTION" envDefault:"A comprehensive practice examination"`
	DefaultDuration     string  `env:"EXAM_DEFAULT_DURATION" envDefault:"PT30M"` // ISO 8601, e.g. PT45M, PT1H30M, P1D
	DefaultQuestions    int     `env:"EXAM_DEFAULT_QUESTIONS" envDefault:"5"`
	DefaultCategory     string  `env:"EXAM_DEFAULT_CATEGORY" envDefault:"All"`
	DefaultPassingScore float64 `env:"EXAM_DEFAULT_PASSING_SCORE" envDefault:"70"`
	DefaultShuffle      bool    `env:"EXAM_DEFAULT_SHUFFLE" envDefault:"true"`
	DefaultShowResults  bool    `env:"EXAM_DEFAULT_SHOW_RESULTS" envDefault:"true"`

	AutoFinish   bool `env:"EXAM_AUTO_FINISH" envDefault:"true"`
	EventBacklog int  `env:"EXAM_EVENT_BACKLOG" envDefault:"256"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.DurationMinutes(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DurationMinutes converts the ISO 8601 DefaultDuration to whole minutes,
// rounding up. Go-style values such as "30m" are rejected.
func (c Config) DurationMinutes() (int, error) {
	d, err := duration.Parse(c.DefaultDuration)
	if err != nil {
		return 0, errors.Wrapf(err, "parse EXAM_DEFAULT_DURATION %q", c.DefaultDuration)
	}
	if d <= 0 {
		return 0, errors.Errorf("EXAM_DEFAULT_DURATION must be positive, got %q", c.DefaultDuration)
	}
	return int(math.Ceil(float64(d) / float64(time.Minute))), nil
}
