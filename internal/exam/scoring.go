package exam

import (
	"math"
	"time"

	"github.com/mind-engage/mindengage-exams/internal/grading"
)

// Score grades a copy of a against its own question snapshot and returns the
// finalized attempt alongside the result. a itself is not modified.
func Score(a Attempt, g grading.Grader, now time.Time) (Attempt, Result) {
	res := Result{
		TotalQuestions:  len(a.Questions),
		QuestionResults: make([]QuestionResult, 0, len(a.Questions)),
	}

	maxScore := 0
	for _, q := range a.Questions {
		resp, answered := a.Answers[q.ID]
		gr := g.Grade(q.gradingView(), resp, answered)
		maxScore += q.Points
		if gr.Correct {
			res.CorrectAnswers++
			res.Score += gr.AutoPoints
		}

		user := resp
		if !answered || resp == "" {
			user = NoAnswer
		}
		res.QuestionResults = append(res.QuestionResults, QuestionResult{
			QuestionID:    q.ID,
			Correct:       gr.Correct,
			UserAnswer:    user,
			CorrectAnswer: gr.CorrectLabel,
		})
	}

	if maxScore > 0 {
		res.Percentage = float64(res.Score) / float64(maxScore) * 100
	}
	res.Passed = res.Percentage >= a.Config.PassingScore
	res.TimeTakenSec = int64(math.Round(now.Sub(a.StartedAt).Seconds()))

	done := a.clone()
	end := now
	score := res.Score
	passed := res.Passed
	done.EndedAt = &end
	done.Score = &score
	done.Passed = &passed
	return done, res
}
