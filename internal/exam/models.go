package exam

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/mind-engage/mindengage-exams/internal/grading"
)

type QuestionType string

const (
	MultipleChoice QuestionType = grading.TypeMultipleChoice
	TrueFalse      QuestionType = grading.TypeTrueFalse
	ShortAnswer    QuestionType = grading.TypeShortAnswer
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// CategoryAll disables the category filter when starting an exam.
const CategoryAll = "All"

// NoAnswer is reported as the user answer for unanswered questions.
const NoAnswer = "No answer"

// Answer is a correct-answer value. Multiple-choice keys hold the decimal
// option index; other types hold the literal answer.
type Answer string

// ChoiceAnswer returns the key for option index i.
func ChoiceAnswer(i int) Answer { return Answer(strconv.Itoa(i)) }

func (a Answer) String() string { return string(a) }

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (a *Answer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Answer(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Answer(n.String())
	return nil
}

type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options,omitempty"` // multiple-choice only
	CorrectAnswer Answer       `json:"correct_answer"`
	Category      string       `json:"category"`
	Difficulty    Difficulty   `json:"difficulty"`
	Points        int          `json:"points"`
}

// QuestionInput is a question payload before the store assigns an id.
type QuestionInput struct {
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer Answer       `json:"correct_answer"`
	Category      string       `json:"category"`
	Difficulty    Difficulty   `json:"difficulty"`
	Points        int          `json:"points"`
}

// QuestionPatch carries a partial update; nil fields are left untouched.
type QuestionPatch struct {
	Type          *QuestionType `json:"type,omitempty"`
	Prompt        *string       `json:"prompt,omitempty"`
	Options       *[]string     `json:"options,omitempty"`
	CorrectAnswer *Answer       `json:"correct_answer,omitempty"`
	Category      *string       `json:"category,omitempty"`
	Difficulty    *Difficulty   `json:"difficulty,omitempty"`
	Points        *int          `json:"points,omitempty"`
}

type ExamConfig struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	DurationMinutes   int     `json:"duration_minutes"`
	NumberOfQuestions int     `json:"number_of_questions"`
	Category          string  `json:"category"`      // CategoryAll or a bank category
	PassingScore      float64 `json:"passing_score"` // percent, 0..100
	ShuffleQuestions  bool    `json:"shuffle_questions"`
	ShowResults       bool    `json:"show_results"`
}

type Attempt struct {
	ID        string            `json:"id"`
	Config    ExamConfig        `json:"config"`
	Questions []Question        `json:"questions"` // snapshot taken at start
	Answers   map[string]string `json:"answers"`   // questionID -> answer
	StartedAt time.Time         `json:"started_at"`
	EndedAt   *time.Time        `json:"ended_at,omitempty"`
	Score     *int              `json:"score,omitempty"`
	Passed    *bool             `json:"passed,omitempty"`
}

type QuestionResult struct {
	QuestionID    string `json:"question_id"`
	Correct       bool   `json:"correct"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

type Result struct {
	TotalQuestions  int              `json:"total_questions"`
	CorrectAnswers  int              `json:"correct_answers"`
	Score           int              `json:"score"`
	Percentage      float64          `json:"percentage"`
	Passed          bool             `json:"passed"`
	TimeTakenSec    int64            `json:"time_taken_sec"`
	QuestionResults []QuestionResult `json:"question_results"`
}

func (in QuestionInput) withID(id string) Question {
	return Question{
		ID:            id,
		Type:          in.Type,
		Prompt:        in.Prompt,
		Options:       cloneStrings(in.Options),
		CorrectAnswer: in.CorrectAnswer,
		Category:      in.Category,
		Difficulty:    in.Difficulty,
		Points:        in.Points,
	}
}

// apply returns q with the patch's non-nil fields replaced.
func (p QuestionPatch) apply(q Question) Question {
	if p.Type != nil {
		q.Type = *p.Type
	}
	if p.Prompt != nil {
		q.Prompt = *p.Prompt
	}
	if p.Options != nil {
		q.Options = cloneStrings(*p.Options)
	}
	if p.CorrectAnswer != nil {
		q.CorrectAnswer = *p.CorrectAnswer
	}
	if p.Category != nil {
		q.Category = *p.Category
	}
	if p.Difficulty != nil {
		q.Difficulty = *p.Difficulty
	}
	if p.Points != nil {
		q.Points = *p.Points
	}
	return q
}

func (q Question) clone() Question {
	q.Options = cloneStrings(q.Options)
	return q
}

func (q Question) gradingView() grading.Q {
	return grading.Q{
		Type:          string(q.Type),
		Points:        q.Points,
		Options:       q.Options,
		CorrectAnswer: string(q.CorrectAnswer),
	}
}

// Finished reports whether the attempt has been scored.
func (a Attempt) Finished() bool { return a.EndedAt != nil }

// MaxScore sums the points of every question in the attempt.
func (a Attempt) MaxScore() int {
	total := 0
	for _, q := range a.Questions {
		total += q.Points
	}
	return total
}

// Percentage is the rounded score percentage of a finished attempt, 0 when
// unfinished or when the attempt carries no points.
func (a Attempt) Percentage() int {
	maxScore := a.MaxScore()
	if a.Score == nil || maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(*a.Score) / float64(maxScore) * 100))
}

// Deadline is when the configured duration runs out.
func (a Attempt) Deadline() time.Time {
	return a.StartedAt.Add(time.Duration(a.Config.DurationMinutes) * time.Minute)
}

// Remaining is the time left before the deadline, never negative.
func (a Attempt) Remaining(now time.Time) time.Duration {
	if d := a.Deadline().Sub(now); d > 0 {
		return d
	}
	return 0
}

// Elapsed is the wall time between start and end (or now, if unfinished).
func (a Attempt) Elapsed(now time.Time) time.Duration {
	if a.EndedAt != nil {
		return a.EndedAt.Sub(a.StartedAt)
	}
	return now.Sub(a.StartedAt)
}

func (a Attempt) clone() Attempt {
	out := a
	out.Questions = cloneQuestions(a.Questions)
	out.Answers = make(map[string]string, len(a.Answers))
	for k, v := range a.Answers {
		out.Answers[k] = v
	}
	if a.EndedAt != nil {
		t := *a.EndedAt
		out.EndedAt = &t
	}
	if a.Score != nil {
		s := *a.Score
		out.Score = &s
	}
	if a.Passed != nil {
		p := *a.Passed
		out.Passed = &p
	}
	return out
}

func cloneQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
