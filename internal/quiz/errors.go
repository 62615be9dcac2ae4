package quiz

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNoArrayFound    ErrorKind = "no_array_found"
	KindMalformedJSON   ErrorKind = "malformed_json"
	KindSchemaViolation ErrorKind = "schema_violation"
	KindEmptyResult     ErrorKind = "empty_result"
)

var (
	ErrNoArrayFound    = errors.New("no json array found")
	ErrMalformedJSON   = errors.New("malformed json")
	ErrSchemaViolation = errors.New("schema violation")
	ErrEmptyResult     = errors.New("empty result")
)

var kindSentinels = map[ErrorKind]error{
	KindNoArrayFound:    ErrNoArrayFound,
	KindMalformedJSON:   ErrMalformedJSON,
	KindSchemaViolation: ErrSchemaViolation,
	KindEmptyResult:     ErrEmptyResult,
}

// ExtractionError describes why a model response could not be turned into a
// QuestionSet. Index, Field and Rule are only set for KindSchemaViolation; Err
// holds the parser error for KindMalformedJSON.
type ExtractionError struct {
	Kind  ErrorKind
	Index int
	Field string
	Rule  string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindMalformedJSON:
		if e.Err != nil {
			return fmt.Sprintf("quiz: malformed json: %v", e.Err)
		}
		return "quiz: malformed json"
	case KindSchemaViolation:
		if e.Field == "" {
			return fmt.Sprintf("quiz: schema violation at record %d: %s", e.Index, e.Rule)
		}
		return fmt.Sprintf("quiz: schema violation at record %d: %s %s", e.Index, e.Field, e.Rule)
	case KindEmptyResult:
		return "quiz: response contained an empty array"
	default:
		return "quiz: no json array found in response"
	}
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Is lets errors.Is match an ExtractionError against the sentinel of its kind.
func (e *ExtractionError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func violation(index int, field, rule string) *ExtractionError {
	return &ExtractionError{Kind: KindSchemaViolation, Index: index, Field: field, Rule: rule}
}
