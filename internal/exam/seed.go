package exam

// SampleQuestions is the starter bank loaded when seeding is enabled.
func SampleQuestions() []Question {
	return []Question{
		{
			ID:            "1",
			Type:          MultipleChoice,
			Prompt:        "What is the capital of France?",
			Options:       []string{"London", "Berlin", "Paris", "Madrid"},
			CorrectAnswer: ChoiceAnswer(2),
			Category:      "Geography",
			Difficulty:    Easy,
			Points:        10,
		},
		{
			ID:            "2",
			Type:          TrueFalse,
			Prompt:        "The Earth is flat.",
			CorrectAnswer: "false",
			Category:      "Science",
			Difficulty:    Easy,
			Points:        5,
		},
		{
			ID:            "3",
			Type:          MultipleChoice,
			Prompt:        "Which programming language is used for web development?",
			Options:       []string{"Python", "JavaScript", "C++", "Java"},
			CorrectAnswer: ChoiceAnswer(1),
			Category:      "Technology",
			Difficulty:    Medium,
			Points:        15,
		},
	}
}
