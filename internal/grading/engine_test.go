package grading

import "testing"

func TestDefaultGraderRoutesByType(t *testing.T) {
	g := NewDefaultGrader()
	mc := Q{Type: TypeMultipleChoice, Points: 10, Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "2"}

	tests := []struct {
		name     string
		q        Q
		resp     string
		answered bool
		want     Result
	}{
		{"mc correct", mc, "2", true, Result{AutoPoints: 10, MaxPoints: 10, Correct: true, CorrectLabel: "C"}},
		{"mc wrong", mc, "0", true, Result{MaxPoints: 10, CorrectLabel: "C"}},
		{"mc option text is not the key", mc, "C", true, Result{MaxPoints: 10, CorrectLabel: "C"}},
		{"mc unanswered", mc, "", false, Result{MaxPoints: 10, CorrectLabel: "C"}},
		{"true-false", Q{Type: TypeTrueFalse, Points: 5, CorrectAnswer: "false"}, "false", true,
			Result{AutoPoints: 5, MaxPoints: 5, Correct: true, CorrectLabel: "false"}},
		{"short answer is case sensitive", Q{Type: TypeShortAnswer, Points: 3, CorrectAnswer: "Paris"}, "paris", true,
			Result{MaxPoints: 3, CorrectLabel: "Paris"}},
		{"empty key never matches unanswered", Q{Type: TypeShortAnswer, Points: 3, CorrectAnswer: ""}, "", false,
			Result{MaxPoints: 3, CorrectLabel: ""}},
		{"unknown type falls back to exact", Q{Type: "essay", Points: 1, CorrectAnswer: "x"}, "x", true,
			Result{AutoPoints: 1, MaxPoints: 1, Correct: true, CorrectLabel: "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Grade(tc.q, tc.resp, tc.answered)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestOptionLabelFallsBackToKey(t *testing.T) {
	opts := []string{"London", "Berlin", "", "Madrid"}
	cases := map[string]string{
		"1":   "Berlin",
		"2":   "2", // empty option text
		"4":   "4",
		"-1":  "-1",
		"abc": "abc",
		"1.0": "1.0", // keys are canonical integers only
		" 1":  " 1",
	}
	for key, want := range cases {
		if got := OptionLabel(opts, key); got != want {
			t.Errorf("OptionLabel(%q) = %q, want %q", key, got, want)
		}
	}
	if got := OptionLabel(nil, "0"); got != "0" {
		t.Errorf("OptionLabel(nil) = %q, want %q", got, "0")
	}
}

type alwaysRight struct{}

func (alwaysRight) Grade(q Q, _ string, _ bool) Result {
	return Result{AutoPoints: q.Points, MaxPoints: q.Points, Correct: true, CorrectLabel: "any"}
}

func TestWithStrategyOverrides(t *testing.T) {
	g := NewDefaultGrader(WithStrategy(TypeShortAnswer, alwaysRight{}), WithStrategy("", alwaysRight{}))
	res := g.Grade(Q{Type: TypeShortAnswer, Points: 4, CorrectAnswer: "x"}, "y", true)
	if !res.Correct || res.AutoPoints != 4 {
		t.Fatalf("override not applied: %+v", res)
	}
	res = g.Grade(Q{Type: TypeTrueFalse, Points: 4, CorrectAnswer: "true"}, "false", true)
	if res.Correct {
		t.Fatalf("true-false should still use exact match: %+v", res)
	}
}
