package exam

import "math"

// Count is a label with the number of bank questions carrying it.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats is the dashboard summary over the bank and finished attempts.
type Stats struct {
	TotalQuestions int     `json:"total_questions"`
	TotalExams     int     `json:"total_exams"`
	AverageScore   int     `json:"average_score"` // rounded mean points
	PassRate       int     `json:"pass_rate"`     // rounded percent
	PassedExams    int     `json:"passed_exams"`
	BestScore      int     `json:"best_score"`
	ByCategory     []Count `json:"by_category"`
	ByDifficulty   []Count `json:"by_difficulty"`
}

// Summarize computes Stats. Averages over an empty history are 0.
func Summarize(bank []Question, history []Attempt) Stats {
	st := Stats{
		TotalQuestions: len(bank),
		TotalExams:     len(history),
		ByCategory:     countBy(bank, func(q Question) string { return q.Category }),
		ByDifficulty:   countBy(bank, func(q Question) string { return string(q.Difficulty) }),
	}
	if len(history) == 0 {
		return st
	}

	sum := 0
	for i, a := range history {
		score := 0
		if a.Score != nil {
			score = *a.Score
		}
		sum += score
		if i == 0 || score > st.BestScore {
			st.BestScore = score
		}
		if a.Passed != nil && *a.Passed {
			st.PassedExams++
		}
	}
	n := float64(len(history))
	st.AverageScore = int(math.Round(float64(sum) / n))
	st.PassRate = int(math.Round(float64(st.PassedExams) / n * 100))
	return st
}

// Recent returns up to n of the latest attempts, newest first.
func Recent(history []Attempt, n int) []Attempt {
	if n <= 0 {
		return []Attempt{}
	}
	start := max(len(history)-n, 0)
	out := make([]Attempt, 0, len(history)-start)
	for i := len(history) - 1; i >= start; i-- {
		out = append(out, history[i].clone())
	}
	return out
}

// Stats summarizes the store's bank and history.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.questions, s.history)
}

func countBy(bank []Question, label func(Question) string) []Count {
	out := []Count{}
	idx := map[string]int{}
	for _, q := range bank {
		l := label(q)
		i, ok := idx[l]
		if !ok {
			i = len(out)
			idx[l] = i
			out = append(out, Count{Label: l})
		}
		out[i].Count++
	}
	return out
}
