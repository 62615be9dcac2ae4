package quiz

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func sampleSet() QuestionSet {
	return QuestionSet{
		{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
		{Question: "Capital of France?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, CorrectAnswer: "Paris"},
		{Question: "Which is a [bracketed] word?", Options: []string{"[a]", "b", "c", "d"}, CorrectAnswer: "[a]"},
	}
}

func TestExtractRecoversArrayFromSurroundingText(t *testing.T) {
	want := sampleSet()
	payload, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	wrappers := []struct {
		prefix string
		suffix string
	}{
		{"", ""},
		{"Sure! Here is your quiz:\n", "\nGood luck!"},
		{"```json\n", "\n```"},
		{"   \n\t", "  \n"},
		{"Note: answers {are} final. ", " (5 questions total)"},
	}
	for i, w := range wrappers {
		got, err := Extract(w.prefix + string(payload) + w.suffix)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("case %d: got %+v want %+v", i, got, want)
		}
	}
}

func TestExtractCodeFenceExample(t *testing.T) {
	raw := "Sure! Here you go:\n```json\n[{\"question\":\"2+2?\",\"options\":[\"3\",\"4\",\"5\",\"6\"],\"correctAnswer\":\"4\"}]\n```"
	got, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got[0].CorrectAnswer != "4" {
		t.Fatalf("correctAnswer = %q, want %q", got[0].CorrectAnswer, "4")
	}
}

func TestExtractNoArrayFound(t *testing.T) {
	cases := []string{
		"",
		"I cannot help with that.",
		`{"question": "no array here"}`,
		"only an opening [ bracket",
		"only a closing ] bracket",
		"reversed ] brackets [",
	}
	for _, raw := range cases {
		_, err := Extract(raw)
		assertKind(t, raw, err, KindNoArrayFound, ErrNoArrayFound)
	}
}

func TestExtractMalformedJSON(t *testing.T) {
	cases := []string{
		`[{"question":"Q","options":["a","b","c","d"],"correctAnswer":"a"},]`,
		`[{question:"Q",options:["a","b","c","d"],correctAnswer:"a"}]`,
		`Here: [{"question":"Q"} and then some prose ]`,
		`[[{"question":"Q"}]`,
	}
	for _, raw := range cases {
		_, err := Extract(raw)
		assertKind(t, raw, err, KindMalformedJSON, ErrMalformedJSON)

		var ee *ExtractionError
		if !errors.As(err, &ee) || ee.Err == nil {
			t.Fatalf("%q: expected parser error to be carried, got %v", raw, err)
		}
		var syntaxErr *json.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("%q: expected wrapped *json.SyntaxError, got %T", raw, ee.Err)
		}
	}
}

func TestExtractSchemaViolations(t *testing.T) {
	const valid = `{"question":"Q","options":["a","b","c","d"],"correctAnswer":"a"}`
	cases := []struct {
		name  string
		raw   string
		index int
		field string
	}{
		{"only two options", `[{"question":"Q","options":["A","B"],"correctAnswer":"A"}]`, 0, "options"},
		{"three options", `[{"question":"Q","options":["a","b","c"],"correctAnswer":"a"}]`, 0, "options"},
		{"five options", `[{"question":"Q","options":["a","b","c","d","e"],"correctAnswer":"a"}]`, 0, "options"},
		{"missing correctAnswer", `[` + valid + `,{"question":"Q","options":["a","b","c","d"]}]`, 1, "correctAnswer"},
		{"answer not in options", `[` + valid + `,` + valid + `,{"question":"Q","options":["a","b","c","d"],"correctAnswer":"e"}]`, 2, "correctAnswer"},
		{"answer case mismatch", `[{"question":"Q","options":["Paris","b","c","d"],"correctAnswer":"paris"}]`, 0, "correctAnswer"},
		{"empty correctAnswer", `[{"question":"Q","options":["a","b","c","d"],"correctAnswer":""}]`, 0, "correctAnswer"},
		{"missing question", `[{"options":["a","b","c","d"],"correctAnswer":"a"}]`, 0, "question"},
		{"blank question", `[{"question":"   ","options":["a","b","c","d"],"correctAnswer":"a"}]`, 0, "question"},
		{"null question", `[{"question":null,"options":["a","b","c","d"],"correctAnswer":"a"}]`, 0, "question"},
		{"numeric question", `[{"question":7,"options":["a","b","c","d"],"correctAnswer":"a"}]`, 0, "question"},
		{"question key wrong case", `[{"Question":"Q","options":["a","b","c","d"],"correctAnswer":"a"}]`, 0, "question"},
		{"missing options", `[{"question":"Q","correctAnswer":"a"}]`, 0, "options"},
		{"options not array", `[{"question":"Q","options":"a,b,c,d","correctAnswer":"a"}]`, 0, "options"},
		{"empty option", `[{"question":"Q","options":["a","","c","d"],"correctAnswer":"a"}]`, 0, "options[1]"},
		{"non-string option", `[{"question":"Q","options":["a","b",3,"d"],"correctAnswer":"a"}]`, 0, "options[2]"},
		{"duplicate option", `[{"question":"Q","options":["a","b","a","d"],"correctAnswer":"a"}]`, 0, "options[2]"},
		{"record not object", `[` + valid + `,"just a string"]`, 1, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Extract(c.raw)
			assertKind(t, c.raw, err, KindSchemaViolation, ErrSchemaViolation)
			var ee *ExtractionError
			if !errors.As(err, &ee) {
				t.Fatalf("expected *ExtractionError, got %T", err)
			}
			if ee.Index != c.index {
				t.Fatalf("index = %d, want %d", ee.Index, c.index)
			}
			if ee.Field != c.field {
				t.Fatalf("field = %q, want %q", ee.Field, c.field)
			}
			if ee.Rule == "" {
				t.Fatalf("expected a rule description")
			}
		})
	}
}

func TestExtractTwoOptionExampleNamesIndexZero(t *testing.T) {
	_, err := Extract(`[{"question":"Q","options":["A","B"],"correctAnswer":"A"}]`)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected schema violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "record 0") {
		t.Fatalf("expected message to name record 0, got %q", err.Error())
	}
}

func TestExtractEmptyResult(t *testing.T) {
	for _, raw := range []string{"[]", "Here are your questions: [ ] enjoy", "```json\n[\n]\n```"} {
		_, err := Extract(raw)
		assertKind(t, raw, err, KindEmptyResult, ErrEmptyResult)
	}
}

func TestExtractUsesOuterBracketSpan(t *testing.T) {
	// The leading "[draft]" widens the slice so it no longer parses.
	_, err := Extract(`[draft] [{"question":"Q","options":["a","b","c","d"],"correctAnswer":"a"}]`)
	assertKind(t, "outer span", err, KindMalformedJSON, ErrMalformedJSON)
}

func TestExtractIgnoresExtraFields(t *testing.T) {
	got, err := Extract(`[{"question":"Q","options":["a","b","c","d"],"correctAnswer":"b","explanation":"because"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := QuestionSet{{Question: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func assertKind(t *testing.T, raw string, err error, kind ErrorKind, sentinel error) {
	t.Helper()
	if err == nil {
		t.Fatalf("%q: expected %s error, got nil", raw, kind)
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("%q: expected *ExtractionError, got %T", raw, err)
	}
	if ee.Kind != kind {
		t.Fatalf("%q: kind = %s, want %s (%v)", raw, ee.Kind, kind, err)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("%q: errors.Is(%v, %v) = false", raw, err, sentinel)
	}
}
