package quiz

import (
	"fmt"

	"github.com/M07maaad/Study-Smart-Project/internal/text"
)

const systemPrompt = `You write multiple-choice quizzes for university students. Output ONLY a JSON array, no prose and no Markdown. Each element is an object with exactly these fields: "question" (string), "options" (array of exactly 4 distinct strings), "correctAnswer" (string, copied verbatim from options).`

type Prompt struct {
	System string
	User   string
}

// BuildPrompt asks for count questions about topic. A non-positive count falls
// back to DefaultQuestionCount.
func BuildPrompt(topic string, count int) Prompt {
	if count <= 0 {
		count = DefaultQuestionCount
	}
	user := fmt.Sprintf(`Generate exactly %d multiple-choice questions about "%s". Return them as a JSON array in the format [{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": "..."}].`,
		count, text.NormalizeTopic(topic))
	return Prompt{System: systemPrompt, User: user}
}
