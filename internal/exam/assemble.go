package exam

import "math/rand"

// Shuffler permutes qs in place.
type Shuffler func(qs []Question)

// RandShuffler returns a Fisher-Yates shuffler drawing from r.
func RandShuffler(r *rand.Rand) Shuffler {
	return func(qs []Question) {
		r.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	}
}

// Assemble selects an attempt's questions from bank: an optional shuffle of
// the whole bank, then the category filter, then truncation to the requested
// count. The result never aliases bank. A non-positive count yields no
// questions; a short eligible set yields fewer than requested.
func Assemble(bank []Question, cfg ExamConfig, shuffle Shuffler) []Question {
	pool := cloneQuestions(bank)
	if cfg.ShuffleQuestions && shuffle != nil {
		shuffle(pool)
	}

	out := make([]Question, 0, min(len(pool), max(cfg.NumberOfQuestions, 0)))
	for _, q := range pool {
		if len(out) >= cfg.NumberOfQuestions {
			break
		}
		if cfg.Category != CategoryAll && q.Category != cfg.Category {
			continue
		}
		out = append(out, q)
	}
	return out
}

// CategoriesOf lists CategoryAll followed by the bank's distinct categories
// in first-seen order.
func CategoriesOf(bank []Question) []string {
	out := []string{CategoryAll}
	seen := map[string]struct{}{}
	for _, q := range bank {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	return out
}
