package exam_test

import (
	"testing"
	"time"

	"github.com/mind-engage/mindengage-exams/internal/exam"
	"github.com/mind-engage/mindengage-exams/internal/grading"
)

func TestScoreIsPure(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := exam.Attempt{
		ID:        "a1",
		Config:    exam.ExamConfig{PassingScore: 50},
		Questions: exam.SampleQuestions(),
		Answers:   map[string]string{"1": "2", "2": ""},
		StartedAt: start,
	}
	done, res := exam.Score(a, grading.NewDefaultGrader(), start.Add(1499*time.Millisecond))
	if a.EndedAt != nil || a.Score != nil {
		t.Fatal("input attempt was modified")
	}
	if !done.Finished() || *done.Score != 10 || *done.Passed {
		t.Fatalf("done = %+v", done)
	}
	if res.TimeTakenSec != 1 {
		t.Fatalf("time taken = %d, want 1", res.TimeTakenSec)
	}
	// an empty answer is a wrong answer and displays like a missing one
	if qr := res.QuestionResults[1]; qr.Correct || qr.UserAnswer != exam.NoAnswer {
		t.Fatalf("empty answer result = %+v", qr)
	}
	if done.Percentage() != 33 {
		t.Fatalf("rounded percentage = %d, want 33", done.Percentage())
	}
}

func TestScoreZeroPointAttempt(t *testing.T) {
	a := exam.Attempt{
		Questions: []exam.Question{{ID: "z", Type: exam.ShortAnswer, CorrectAnswer: "x", Points: 0}},
		Answers:   map[string]string{"z": "x"},
		Config:    exam.ExamConfig{PassingScore: 10},
	}
	done, res := exam.Score(a, grading.NewDefaultGrader(), time.Time{})
	if res.CorrectAnswers != 1 || res.Percentage != 0 || res.Passed {
		t.Fatalf("result = %+v", res)
	}
	if done.Percentage() != 0 {
		t.Fatal("zero-point attempt percentage should be 0")
	}
}
