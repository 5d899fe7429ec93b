package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/careermind/interviewprep/config"
	"github.com/rs/zerolog/log"
)

// GradingClient sends one evaluation prompt to a model and returns its raw text.
type GradingClient interface {
	Grade(ctx context.Context, req GradingRequest) (string, error)
}

const defaultGradingTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed provider response is kept for logs.
const maxErrorBody = 4096

// ChatCompletionGradingClient talks to any OpenAI-compatible
// /chat/completions endpoint (Moonshot Kimi by default).
type ChatCompletionGradingClient struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	timeout     time.Duration
	httpClient  *http.Client
}

var _ GradingClient = (*ChatCompletionGradingClient)(nil)

// NewChatCompletionGradingClient builds a client from the LLM section of cfg.
func NewChatCompletionGradingClient(cfg *config.Config) *ChatCompletionGradingClient {
	return NewChatCompletionGradingClientWithBaseURL(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.Timeout)
}

func NewChatCompletionGradingClientWithBaseURL(baseURL, apiKey, model string, temperature float64, timeout time.Duration) *ChatCompletionGradingClient {
	if timeout <= 0 {
		timeout = defaultGradingTimeout
	}
	return &ChatCompletionGradingClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		timeout:     timeout,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type providerErrorBody struct {
	Error struct {
		Message string          `json:"message"`
		Type    string          `json:"type"`
		Code    json.RawMessage `json:"code"`
	} `json:"error"`
}

// Grade makes exactly one chat completion call. Failures are returned as
// *GradingError so ClassifyGradingError can sort them.
func (c *ChatCompletionGradingClient) Grade(ctx context.Context, req GradingRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: buildEvaluationPrompt(req)}},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", &GradingError{Kind: FailureUnknown, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &GradingError{Kind: FailureUnknown, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Timeouts, resets and DNS failures all happen before a status line.
		return "", &GradingError{Kind: FailureTransient, Err: fmt.Errorf("chat completion request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GradingError{Kind: FailureTransient, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	log.Debug().
		Str("model", c.model).
		Int("status_code", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Chat completion call finished")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var perr providerErrorBody
		_ = json.Unmarshal(raw, &perr)
		code := strings.Trim(string(perr.Error.Code), `"`)
		if code == "null" {
			code = ""
		}
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return "", &GradingError{
			Kind:       classifyHTTPStatus(resp.StatusCode, perr.Error.Type, code),
			StatusCode: resp.StatusCode,
			ErrorType:  firstNonEmpty(perr.Error.Type, code),
			Err:        fmt.Errorf("provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &GradingError{Kind: FailureUnknown, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(out.Choices) == 0 {
		return "", &GradingError{Kind: FailureUnknown, StatusCode: resp.StatusCode, Err: errors.New("provider returned no choices")}
	}
	return out.Choices[0].Message.Content, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// NewGradingClient picks the provider named by LLM_PROVIDER.
func NewGradingClient(cfg *config.Config) (GradingClient, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "", "openai", "moonshot", "kimi":
		if cfg.LLM.APIKey == "" {
			log.Warn().Msg("LLM_API_KEY is not set. Grading calls will fail and fall back.")
		}
		return NewChatCompletionGradingClient(cfg), nil
	case "gemini":
		return NewGeminiGradingClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLM.Provider)
	}
}
