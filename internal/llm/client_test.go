package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient(Options{
		APIKey:      "sk-test",
		BaseURL:     "https://llm.example/v1/",
		Model:       "test-model",
		Temperature: 0.5,
		HTTPClient:  &http.Client{Transport: rt},
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var seen chatRequest
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.String() != "https://llm.example/v1/chat/completions" {
			t.Errorf("unexpected url %s", r.URL)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Errorf("decode request: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"Sure! [1]"}}]}`), nil
	}))

	got, err := client.Complete(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "Sure! [1]" {
		t.Fatalf("content = %q", got)
	}
	if seen.Model != "test-model" || seen.Temperature != 0.5 {
		t.Fatalf("unexpected request %+v", seen)
	}
	if len(seen.Messages) != 2 || seen.Messages[0].Role != "system" || seen.Messages[1].Content != "usr" {
		t.Fatalf("unexpected messages %+v", seen.Messages)
	}
}

func TestCompletePropagatesNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`), nil
	}))

	_, err := client.Complete(context.Background(), "sys", "usr")
	if err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("error should carry status and body, got %v", err)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"choices":[]}`), nil
	}))
	if _, err := client.Complete(context.Background(), "sys", "usr"); err == nil {
		t.Fatalf("expected error when no choices are returned")
	}
}
