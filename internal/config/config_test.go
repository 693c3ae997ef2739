package config

import (
	"strings"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if !cfg.SeedBank || !cfg.AutoFinish || !cfg.DefaultShuffle || !cfg.DefaultShowResults {
		t.Fatalf("bool defaults = %+v", cfg)
	}
	if cfg.DefaultTitle != "Practice Exam" || cfg.DefaultCategory != "All" {
		t.Fatalf("string defaults = %+v", cfg)
	}
	if cfg.DefaultQuestions != 5 || cfg.DefaultPassingScore != 70 || cfg.EventBacklog != 256 {
		t.Fatalf("numeric defaults = %+v", cfg)
	}
	if m, _ := cfg.DurationMinutes(); m != 30 {
		t.Fatalf("duration minutes = %d, want 30", m)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("EXAM_SEED_BANK", "false")
	t.Setenv("EXAM_DEFAULT_QUESTIONS", "12")
	t.Setenv("EXAM_DEFAULT_PASSING_SCORE", "55.5")
	t.Setenv("EXAM_DEFAULT_DURATION", "PT2H")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.SeedBank || cfg.DefaultQuestions != 12 || cfg.DefaultPassingScore != 55.5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if m, _ := cfg.DurationMinutes(); m != 120 {
		t.Fatalf("duration minutes = %d, want 120", m)
	}
}

func TestDurationMinutes(t *testing.T) {
	cases := map[string]int{
		"PT90M":   90,
		"PT1H30M": 90,
		"P1D":     24 * 60,
		"PT45S":   1, // rounds up
	}
	for in, want := range cases {
		got, err := Config{DefaultDuration: in}.DurationMinutes()
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Errorf("%s = %d minutes, want %d", in, got, want)
		}
	}
	for _, in := range []string{"", "soon", "PT0M", "-PT5M", "30m", "1h"} {
		if _, err := (Config{DefaultDuration: in}).DurationMinutes(); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestFromEnvErrors(t *testing.T) {
	t.Setenv("EXAM_DEFAULT_QUESTIONS", "not-an-int")
	_, err := FromEnv()
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("EXAM_DEFAULT_QUESTIONS", "5")
	t.Setenv("EXAM_DEFAULT_DURATION", "whenever")
	if _, err := FromEnv(); err == nil || !strings.Contains(err.Error(), "EXAM_DEFAULT_DURATION") {
		t.Fatalf("expected duration error, got %v", err)
	}
}
