// Package app wires the exam store with its collaborators from config.
package app

import (
	"context"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/mind-engage/mindengage-exams/internal/config"
	"github.com/mind-engage/mindengage-exams/internal/events"
	"github.com/mind-engage/mindengage-exams/internal/exam"
	"github.com/mind-engage/mindengage-exams/internal/grading"
	"github.com/mind-engage/mindengage-exams/internal/proctor"
)

type App struct {
	Store   *exam.Store
	Events  *events.Log
	Proctor *proctor.Proctor

	cfg      config.Config
	defaults exam.ExamConfig
}

// New builds an App. Extra store options are applied after the ones derived
// from cfg, so tests can pin the clock, ids and shuffle.
func New(cfg config.Config, opts ...exam.Option) (*App, error) {
	minutes, err := cfg.DurationMinutes()
	if err != nil {
		return nil, errors.Wrap(err, "exam defaults")
	}

	log := events.NewLog(events.WithBacklog(cfg.EventBacklog))
	storeOpts := []exam.Option{
		exam.WithEvents(log),
		exam.WithGrader(grading.NewDefaultGrader()),
	}
	if cfg.SeedBank {
		storeOpts = append(storeOpts, exam.WithQuestions(exam.SampleQuestions()))
	}
	store := exam.NewStore(append(storeOpts, opts...)...)

	a := &App{
		Store:  store,
		Events: log,
		cfg:    cfg,
		defaults: exam.ExamConfig{
			Title:             cfg.DefaultTitle,
			Description:       cfg.DefaultDescription,
			DurationMinutes:   minutes,
			NumberOfQuestions: cfg.DefaultQuestions,
			Category:          cfg.DefaultCategory,
			PassingScore:      cfg.DefaultPassingScore,
			ShuffleQuestions:  cfg.DefaultShuffle,
			ShowResults:       cfg.DefaultShowResults,
		},
	}
	if cfg.AutoFinish {
		a.Proctor = proctor.New(store)
	}

	glog.V(1).Infof("exam app ready: %d questions, auto-finish=%t", len(store.Questions()), cfg.AutoFinish)
	return a, nil
}

// DefaultExamConfig is the configuration offered for a new exam.
func (a *App) DefaultExamConfig() exam.ExamConfig { return a.defaults }

// StartExam starts an exam and, with auto-finish on, arms the proctor for
// its deadline. The timer is disarmed when ctx ends.
func (a *App) StartExam(ctx context.Context, cfg exam.ExamConfig) exam.Attempt {
	at := a.Store.StartExam(cfg)
	if a.Proctor != nil {
		a.Proctor.Watch(ctx, at)
	}
	return at
}

// FinishExam finishes the active exam by hand.
func (a *App) FinishExam() (*exam.Result, bool) {
	return a.Store.FinishExam()
}

// Close stops any pending auto-finish.
func (a *App) Close() {
	if a.Proctor != nil {
		a.Proctor.Stop()
	}
}
