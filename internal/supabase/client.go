package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("supabase url or key is missing")

// APIError is a non-2xx answer from Supabase. Message is taken from whichever
// of the known error fields the endpoint filled in.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase status %d: %s", e.Status, e.Message)
}

// Client holds what every Supabase endpoint needs: the project URL and the
// anon key sent both as apikey and as the bearer token.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration, hc *http.Client) *Client {
	if hc == nil {
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, client: hc}
}

func (c *Client) configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data, resp.Status)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode supabase response: %w", err)
	}
	return nil
}

// errorMessage covers the GoTrue ({error_description}, {msg}) and PostgREST
// ({message}) error shapes.
func errorMessage(data []byte, fallback string) string {
	var body struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            any    `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil {
		for _, s := range []string{body.ErrorDescription, body.Msg, body.Message} {
			if s != "" {
				return s
			}
		}
		if s, ok := body.Error.(string); ok && s != "" {
			return s
		}
	}
	if s := strings.TrimSpace(string(data)); s != "" && len(s) < 300 {
		return s
	}
	return fallback
}
