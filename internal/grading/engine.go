package grading

import (
	"strconv"
)

// Question types understood by the default grader.
const (
	TypeMultipleChoice = "multiple-choice"
	TypeTrueFalse      = "true-false"
	TypeShortAnswer    = "short-answer"
)

// Q is a minimal view of a question needed for grading.
// Keep this in sync with exam.Question.
type Q struct {
	Type          string
	Points        int
	Options       []string
	CorrectAnswer string
}

// Result is the outcome of grading a single question response.
type Result struct {
	AutoPoints   int    // points awarded
	MaxPoints    int    // the question's max points
	Correct      bool   // response string-equals the answer key
	CorrectLabel string // human-readable correct answer
}

// Strategy grades a single question.
type Strategy interface {
	Grade(q Q, response string, answered bool) Result
}

// Grader routes by question type to the correct Strategy.
type Grader interface {
	Grade(q Q, response string, answered bool) Result
}

type defaultGrader struct {
	strategies map[string]Strategy
	fallback   Strategy
}

func (g *defaultGrader) Grade(q Q, response string, answered bool) Result {
	s, ok := g.strategies[q.Type]
	if !ok {
		s = g.fallback
	}
	return s.Grade(q, response, answered)
}

// Engine options

type Option func(*config)

type config struct {
	strategies map[string]Strategy
}

// WithStrategy overrides (or adds) the strategy used for a question type.
func WithStrategy(typ string, s Strategy) Option {
	return func(c *config) {
		if typ == "" || s == nil {
			return
		}
		c.strategies[typ] = s
	}
}

// NewDefaultGrader installs built-in strategies. Unknown types are graded
// by exact string match.
func NewDefaultGrader(opts ...Option) Grader {
	cfg := &config{
		strategies: map[string]Strategy{
			TypeMultipleChoice: choiceStrategy{},
			TypeTrueFalse:      exactStrategy{},
			TypeShortAnswer:    exactStrategy{},
		},
	}
	for _, o := range opts {
		o(cfg)
	}
	return &defaultGrader{strategies: cfg.strategies, fallback: exactStrategy{}}
}

// --- Strategies ---

// exactStrategy compares the response to the key verbatim.
type exactStrategy struct{}

func (exactStrategy) Grade(q Q, response string, answered bool) Result {
	res := Result{MaxPoints: q.Points, CorrectLabel: q.CorrectAnswer}
	if answered && response == q.CorrectAnswer {
		res.Correct = true
		res.AutoPoints = q.Points
	}
	return res
}

// choiceStrategy keys on the option index but labels with the option text.
type choiceStrategy struct{}

func (choiceStrategy) Grade(q Q, response string, answered bool) Result {
	res := exactStrategy{}.Grade(q, response, answered)
	res.CorrectLabel = OptionLabel(q.Options, q.CorrectAnswer)
	return res
}

// OptionLabel resolves an index key to its option text. Keys must be
// canonical integers as written by ChoiceAnswer. Out-of-range, non-integer
// and empty-text options fall back to the raw key.
func OptionLabel(options []string, key string) string {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || idx >= len(options) {
		return key
	}
	if options[idx] == "" {
		return key
	}
	return options[idx]
}
