package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Extract recovers a QuestionSet from free-form model output. The payload is
// taken to be everything between the first '[' and the last ']' inclusive, so
// prose or code fences around the array are ignored. Any invalid record
// rejects the whole set.
func Extract(raw string) (QuestionSet, error) {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start < 0 || end < 0 || end < start {
		return nil, &ExtractionError{Kind: KindNoArrayFound}
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &records); err != nil {
		return nil, &ExtractionError{Kind: KindMalformedJSON, Err: err}
	}

	set := make(QuestionSet, 0, len(records))
	for i, rec := range records {
		q, err := parseRecord(i, rec)
		if err != nil {
			return nil, err
		}
		set = append(set, q)
	}
	if len(set) == 0 {
		return nil, &ExtractionError{Kind: KindEmptyResult}
	}
	return set, nil
}

func parseRecord(index int, rec json.RawMessage) (Question, error) {
	var fields map[string]json.RawMessage
	if !isObject(rec) || json.Unmarshal(rec, &fields) != nil {
		return Question{}, violation(index, "", "record must be an object")
	}

	var q Question
	var err *ExtractionError
	if q.Question, err = stringField(index, fields, "question"); err != nil {
		return Question{}, err
	}
	if q.Options, err = optionsField(index, fields); err != nil {
		return Question{}, err
	}
	if q.CorrectAnswer, err = stringField(index, fields, "correctAnswer"); err != nil {
		return Question{}, err
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return q, nil
		}
	}
	return Question{}, violation(index, "correctAnswer", "must equal one of options")
}

func stringField(index int, fields map[string]json.RawMessage, name string) (string, *ExtractionError) {
	raw, ok := fields[name]
	if !ok {
		return "", violation(index, name, "is missing")
	}
	s, ok := decodeString(raw)
	if !ok {
		return "", violation(index, name, "must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return "", violation(index, name, "must not be empty")
	}
	return s, nil
}

func optionsField(index int, fields map[string]json.RawMessage) ([]string, *ExtractionError) {
	raw, ok := fields["options"]
	if !ok {
		return nil, violation(index, "options", "is missing")
	}
	var items []json.RawMessage
	if !isArray(raw) || json.Unmarshal(raw, &items) != nil {
		return nil, violation(index, "options", "must be an array")
	}
	if len(items) != OptionCount {
		return nil, violation(index, "options", fmt.Sprintf("must contain exactly %d entries, got %d", OptionCount, len(items)))
	}

	options := make([]string, 0, OptionCount)
	seen := make(map[string]struct{}, OptionCount)
	for i, item := range items {
		field := fmt.Sprintf("options[%d]", i)
		s, ok := decodeString(item)
		if !ok {
			return nil, violation(index, field, "must be a string")
		}
		if strings.TrimSpace(s) == "" {
			return nil, violation(index, field, "must not be empty")
		}
		if _, dup := seen[s]; dup {
			return nil, violation(index, field, "duplicates another option")
		}
		seen[s] = struct{}{}
		options = append(options, s)
	}
	return options, nil
}

// decodeString rejects null as well as non-string values; json.Unmarshal
// would otherwise leave the target untouched for null.
func decodeString(raw json.RawMessage) (string, bool) {
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}

func isArray(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("["))
}
