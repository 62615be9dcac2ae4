package quiz

// OptionCount is the number of answer options every question must carry.
const OptionCount = 4

// DefaultQuestionCount is how many questions the model is asked for.
const DefaultQuestionCount = 5

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionSet is the validated result of one extraction. It is never empty.
type QuestionSet []Question
