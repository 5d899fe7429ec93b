package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careermind/interviewprep/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiGradingClient grades answers with Google's Gemini models.
type GeminiGradingClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

var _ GradingClient = (*GeminiGradingClient)(nil)

var errGeminiNotConfigured = errors.New("GEMINI_API_KEY is not set")

func NewGeminiGradingClient(cfg *config.Config) (*GeminiGradingClient, error) {
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = defaultGradingTimeout
	}
	if cfg.LLM.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Gemini grading will always fall back.")
		return &GeminiGradingClient{timeout: timeout}, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.LLM.GeminiApiKey)}
	if cfg.LLM.GeminiBaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.LLM.GeminiBaseURL))
	}
	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.LLM.GeminiModel)
	model.SetTemperature(float32(cfg.LLM.Temperature))
	model.ResponseMIMEType = "application/json"

	return &GeminiGradingClient{client: client, model: model, timeout: timeout}, nil
}

func (g *GeminiGradingClient) Grade(ctx context.Context, req GradingRequest) (string, error) {
	if g.model == nil {
		return "", &GradingError{Kind: FailureUnknown, Err: errGeminiNotConfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildEvaluationPrompt(req)))
	if err != nil {
		kind := classifyGeminiError(err)
		if ctx.Err() != nil {
			kind = FailureTransient
		}
		return "", &GradingError{Kind: kind, Err: fmt.Errorf("gemini generate content: %w", err)}
	}

	return responseText(resp)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &GradingError{Kind: FailureUnknown, Err: errors.New("gemini returned no content")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying gRPC connection.
func (g *GeminiGradingClient) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
