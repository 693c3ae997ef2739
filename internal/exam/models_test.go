package exam_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mind-engage/mindengage-exams/internal/exam"
)

func TestAttemptCountdown(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	a := exam.Attempt{Config: exam.ExamConfig{DurationMinutes: 30}, StartedAt: start}
	if !a.Deadline().Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("deadline = %v", a.Deadline())
	}
	if got := a.Remaining(start.Add(10 * time.Minute)); got != 20*time.Minute {
		t.Fatalf("remaining = %v", got)
	}
	if got := a.Remaining(start.Add(time.Hour)); got != 0 {
		t.Fatalf("remaining after deadline = %v", got)
	}
}

func TestAnswerDecodesStringOrNumber(t *testing.T) {
	var in exam.QuestionInput
	if err := json.Unmarshal([]byte(`{"type":"multiple-choice","correct_answer":2}`), &in); err != nil {
		t.Fatalf("decode number: %v", err)
	}
	if in.CorrectAnswer != "2" {
		t.Fatalf("numeric answer = %q", in.CorrectAnswer)
	}
	if err := json.Unmarshal([]byte(`{"type":"true-false","correct_answer":"false"}`), &in); err != nil {
		t.Fatalf("decode string: %v", err)
	}
	if in.CorrectAnswer != "false" {
		t.Fatalf("string answer = %q", in.CorrectAnswer)
	}
	if err := json.Unmarshal([]byte(`{"correct_answer":[1]}`), &in); err == nil {
		t.Fatal("expected error for array answer")
	}
}
