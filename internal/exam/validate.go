package exam

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every problem found in a payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid: " + strings.Join(e.Problems, "; ")
}

const questionSchema = `{
  "type": "object",
  "required": ["type", "prompt", "correct_answer", "category", "difficulty", "points"],
  "properties": {
    "type":           {"enum": ["multiple-choice", "true-false", "short-answer"]},
    "prompt":         {"type": "string", "minLength": 1},
    "options":        {"type": "array", "items": {"type": "string", "minLength": 1}},
    "correct_answer": {"type": "string", "minLength": 1},
    "category":       {"type": "string", "minLength": 1},
    "difficulty":     {"enum": ["easy", "medium", "hard"]},
    "points":         {"type": "integer", "minimum": 1}
  }
}`

const configSchema = `{
  "type": "object",
  "properties": {
    "duration_minutes":    {"type": "integer", "minimum": 1},
    "number_of_questions": {"type": "integer", "minimum": 1},
    "category":            {"type": "string", "minLength": 1},
    "passing_score":       {"type": "number", "minimum": 0, "maximum": 100}
  }
}`

var (
	questionSchemaLoader = gojsonschema.NewStringLoader(questionSchema)
	configSchemaLoader   = gojsonschema.NewStringLoader(configSchema)
)

// ValidateQuestion checks a question payload before it is handed to the
// store. The store itself accepts anything.
func ValidateQuestion(in QuestionInput) error {
	problems, err := schemaProblems(questionSchemaLoader, in)
	if err != nil {
		return errors.Wrap(err, "validate question")
	}

	switch in.Type {
	case MultipleChoice:
		if len(in.Options) < 2 {
			problems = append(problems, "options: multiple-choice needs at least 2 options")
		}
		idx, err := strconv.Atoi(string(in.CorrectAnswer))
		if err != nil || idx < 0 || idx >= len(in.Options) {
			problems = append(problems, fmt.Sprintf("correct_answer: %q is not an option index", in.CorrectAnswer))
		}
	case TrueFalse:
		if in.CorrectAnswer != "true" && in.CorrectAnswer != "false" {
			problems = append(problems, fmt.Sprintf("correct_answer: %q must be true or false", in.CorrectAnswer))
		}
		if len(in.Options) > 0 {
			problems = append(problems, "options: only multiple-choice questions carry options")
		}
	case ShortAnswer:
		if len(in.Options) > 0 {
			problems = append(problems, "options: only multiple-choice questions carry options")
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ValidateConfig checks an exam configuration. categories, when non-empty,
// is the set the category must come from (as returned by Categories).
func ValidateConfig(cfg ExamConfig, categories []string) error {
	problems, err := schemaProblems(configSchemaLoader, cfg)
	if err != nil {
		return errors.Wrap(err, "validate exam config")
	}
	if len(categories) > 0 && !contains(categories, cfg.Category) {
		problems = append(problems, fmt.Sprintf("category: %q is not in the bank", cfg.Category))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Input strips the id, e.g. to re-validate a stored question.
func (q Question) Input() QuestionInput {
	return QuestionInput{
		Type:          q.Type,
		Prompt:        q.Prompt,
		Options:       cloneStrings(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		Points:        q.Points,
	}
}

func schemaProblems(schema gojsonschema.JSONLoader, doc any) ([]string, error) {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range res.Errors() {
		out = append(out, e.String())
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
