package exam

import (
	"strings"

	"golang.org/x/text/cases"
)

// QuestionFilter narrows a bank listing. Empty or CategoryAll fields match
// everything.
type QuestionFilter struct {
	Search     string     // case-insensitive substring of prompt or category
	Category   string
	Difficulty Difficulty // "", "All" or a Difficulty
}

// FilterQuestions returns copies of the bank entries matching f, in bank order.
func FilterQuestions(bank []Question, f QuestionFilter) []Question {
	fold := cases.Fold()
	needle := fold.String(f.Search)

	out := make([]Question, 0, len(bank))
	for _, q := range bank {
		if needle != "" &&
			!strings.Contains(fold.String(q.Prompt), needle) &&
			!strings.Contains(fold.String(q.Category), needle) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && q.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && f.Difficulty != CategoryAll && q.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, q.clone())
	}
	return out
}

// FilterQuestions applies f to the store's bank.
func (s *Store) FilterQuestions(f QuestionFilter) []Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterQuestions(s.questions, f)
}
