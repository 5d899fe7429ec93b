package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/careermind/interviewprep/config"
	"github.com/google/generative-ai-go/genai"
)

func TestResponseTextJoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Role: "model", Parts: []genai.Part{
			genai.Text(`{"score": `),
			genai.Blob{MIMEType: "image/png", Data: []byte{0x89}},
			genai.Text(`80}`),
		}},
	}}}
	out, err := responseText(resp)
	if err != nil {
		t.Fatalf("responseText: %v", err)
	}
	if out != `{"score": 80}` {
		t.Fatalf("text=%q", out)
	}

	empty := []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{}}},
		{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
	}
	for i, resp := range empty {
		if _, err := responseText(resp); ClassifyGradingError(err) != FailureUnknown {
			t.Fatalf("case %d: err=%v want unknown grading error", i, err)
		}
	}
}

func newTestGeminiClient(t *testing.T, handler http.HandlerFunc) *GeminiGradingClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LLM.GeminiApiKey = "test-key"
	cfg.LLM.GeminiModel = "gemini-1.5-flash"
	cfg.LLM.GeminiBaseURL = srv.URL
	cfg.LLM.Temperature = 0.7
	cfg.LLM.Timeout = 5 * time.Second

	client, err := NewGeminiGradingClient(cfg)
	if err != nil {
		t.Fatalf("NewGeminiGradingClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGeminiGradingClientGrade(t *testing.T) {
	client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "models/gemini-1.5-flash:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"score\": "},{"text":"80}"}]}}]}`))
	})

	out, err := client.Grade(context.Background(), sampleGradingRequest)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if out != `{"score": 80}` {
		t.Fatalf("text=%q", out)
	}
}

func TestGeminiGradingClientClassifiesThrottling(t *testing.T) {
	cases := map[string]struct {
		body string
		want GradingFailureKind
	}{
		"per minute limit": {
			`{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`,
			FailureTransient,
		},
		"daily quota": {
			`{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED",` +
				`"details":[{"@type":"type.googleapis.com/google.rpc.QuotaFailure","violations":[{"quotaId":"GenerateRequestsPerDayPerProjectPerModel-FreeTier"}]}]}}`,
			FailureQuotaExhausted,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := client.Grade(context.Background(), sampleGradingRequest)
			if got := ClassifyGradingError(err); got != tc.want {
				t.Fatalf("kind=%s want=%s (err=%v)", got, tc.want, err)
			}
		})
	}
}
