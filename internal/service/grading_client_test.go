package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/careermind/interviewprep/config"
)

var sampleGradingRequest = GradingRequest{
	Question:         "What is REST API? Explain its principles and HTTP methods.",
	Category:         "Technical",
	Type:             "Explanation",
	ExpectedKeywords: []string{"stateless", "HTTP", "JWT"},
	Answer:           "REST uses stateless HTTP calls...",
}

func newTestGradingClient(url string, timeout time.Duration) *ChatCompletionGradingClient {
	return NewChatCompletionGradingClientWithBaseURL(url, "test-key", "kimi-k2-0905", 0.7, timeout)
}

func TestChatCompletionGradingClientSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("authorization=%q", got)
		}
		var in chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode req: %v", err)
		}
		if in.Model != "kimi-k2-0905" || in.Temperature != 0.7 {
			t.Fatalf("model=%q temperature=%v", in.Model, in.Temperature)
		}
		if len(in.Messages) != 1 || in.Messages[0].Role != "user" {
			t.Fatalf("messages=%+v", in.Messages)
		}
		prompt := in.Messages[0].Content
		for _, want := range []string{
			"Question: What is REST API?",
			"Question Category: Technical",
			"Question Type: Explanation",
			"Candidate's Answer: REST uses stateless HTTP calls...",
			"Expected Keywords (hint, not required): stateless, HTTP, JWT",
			`"keywordsCovered"`,
		} {
			if !strings.Contains(prompt, want) {
				t.Fatalf("prompt missing %q:\n%s", want, prompt)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"score\":82}"}}]}`))
	}))
	defer srv.Close()

	out, err := newTestGradingClient(srv.URL, time.Second).Grade(context.Background(), sampleGradingRequest)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if out != `{"score":82}` {
		t.Fatalf("content=%q", out)
	}
}

func TestChatCompletionGradingClientFailures(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		want   GradingFailureKind
	}{
		"quota":          {http.StatusTooManyRequests, `{"error":{"message":"Your account is suspended","type":"exceeded_current_quota_error"}}`, FailureQuotaExhausted},
		"openai quota":   {http.StatusTooManyRequests, `{"error":{"message":"quota","type":"requests","code":"insufficient_quota"}}`, FailureQuotaExhausted},
		"rate limited":   {http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"rate_limit_reached_error"}}`, FailureTransient},
		"server error":   {http.StatusInternalServerError, `oops`, FailureTransient},
		"unauthorized":   {http.StatusUnauthorized, `{"error":{"type":"invalid_authentication_error"}}`, FailureUnknown},
		"malformed body": {http.StatusOK, `not json`, FailureUnknown},
		"no choices":     {http.StatusOK, `{"choices":[]}`, FailureUnknown},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestGradingClient(srv.URL, time.Second).Grade(context.Background(), sampleGradingRequest)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := ClassifyGradingError(err); got != tc.want {
				t.Fatalf("kind=%s want=%s (err=%v)", got, tc.want, err)
			}
		})
	}
}

func TestChatCompletionGradingClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := newTestGradingClient(srv.URL, 50*time.Millisecond).Grade(context.Background(), sampleGradingRequest)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if got := ClassifyGradingError(err); got != FailureTransient {
		t.Fatalf("kind=%s want=%s", got, FailureTransient)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %s", elapsed)
	}
	var gErr *GradingError
	if !errors.As(err, &gErr) || gErr.StatusCode != 0 {
		t.Fatalf("expected GradingError without status, got %v", err)
	}
}

func TestBuildEvaluationPromptWithoutKeywords(t *testing.T) {
	req := sampleGradingRequest
	req.ExpectedKeywords = nil
	prompt := buildEvaluationPrompt(req)
	if !strings.Contains(prompt, "Expected Keywords (hint, not required): N/A") {
		t.Fatalf("prompt should render N/A keywords:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Return ONLY the JSON") {
		t.Fatalf("prompt missing output instruction")
	}
}

func TestNewGradingClientSelectsProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.Provider = "openai"
	cfg.LLM.BaseURL = "http://localhost:1/v1/"
	client, err := NewGradingClient(cfg)
	if err != nil {
		t.Fatalf("NewGradingClient: %v", err)
	}
	cc, ok := client.(*ChatCompletionGradingClient)
	if !ok {
		t.Fatalf("client=%T want *ChatCompletionGradingClient", client)
	}
	if cc.baseURL != "http://localhost:1/v1" || cc.timeout != defaultGradingTimeout {
		t.Fatalf("baseURL=%q timeout=%s", cc.baseURL, cc.timeout)
	}

	cfg.LLM.Provider = "gemini"
	client, err = NewGradingClient(cfg)
	if err != nil {
		t.Fatalf("NewGradingClient(gemini): %v", err)
	}
	gc, ok := client.(*GeminiGradingClient)
	if !ok {
		t.Fatalf("client=%T want *GeminiGradingClient", client)
	}
	// Without an API key every call fails fast and is treated as unknown.
	if _, err := gc.Grade(context.Background(), sampleGradingRequest); ClassifyGradingError(err) != FailureUnknown {
		t.Fatalf("unconfigured gemini err=%v", err)
	}
	if err := gc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	cfg.LLM.Provider = "carrier-pigeon"
	if _, err := NewGradingClient(cfg); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
