package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/M07maaad/Study-Smart-Project/internal/logger"
	"github.com/M07maaad/Study-Smart-Project/internal/quiz"
	"github.com/M07maaad/Study-Smart-Project/internal/text"
)

const maxTopicLength = 200

var (
	ErrInvalidTopic = errors.New("topic is required and must be at most 200 characters")
	ErrUpstream     = errors.New("text generation failed")
)

// Completer is the text-generation service.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type QuizService struct {
	llm           Completer
	questionCount int
	maxAttempts   int
	log           *logger.Logger
}

func NewQuizService(llm Completer, questionCount, maxAttempts int, log *logger.Logger) *QuizService {
	if questionCount < 1 {
		questionCount = quiz.DefaultQuestionCount
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &QuizService{llm: llm, questionCount: questionCount, maxAttempts: maxAttempts, log: log.With("service", "quiz")}
}

// Generate asks the model for a quiz about topic. Extraction failures come
// back as *quiz.ExtractionError (wrapped); transport failures wrap ErrUpstream.
// Only extraction failures are retried, and only when maxAttempts > 1.
func (s *QuizService) Generate(ctx context.Context, topic string) (quiz.QuestionSet, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" || utf8.RuneCountInString(topic) > maxTopicLength {
		return nil, ErrInvalidTopic
	}
	prompt := quiz.BuildPrompt(topic, s.questionCount)
	log := s.log.With("topic_key", text.TopicKey(topic))

	var lastErr error
	for i := 0; i < s.maxAttempts; i++ {
		log.Debug("requesting quiz", "attempt", i+1, "max_attempts", s.maxAttempts)
		raw, err := s.llm.Complete(ctx, prompt.System, prompt.User)
		if err != nil {
			log.Error("llm call failed", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		set, err := quiz.Extract(raw)
		if err != nil {
			var ee *quiz.ExtractionError
			if errors.As(err, &ee) {
				log.Warn("unusable quiz response", "kind", ee.Kind, "error", err, "response_len", len(raw))
			}
			lastErr = err
			continue
		}
		if len(set) != s.questionCount {
			log.Warn("quiz question count differs from request", "got", len(set), "want", s.questionCount)
		}
		log.Info("quiz generated", "questions", len(set), "attempt", i+1)
		return set, nil
	}
	return nil, fmt.Errorf("generate quiz: %w", lastErr)
}
