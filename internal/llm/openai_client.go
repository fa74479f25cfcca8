package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrLLMUnavailable indicates the text generator is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
	// ErrLLMRequest indicates an error during the chat completions request.
	ErrLLMRequest = errors.New("LLM request failed")
	// ErrLLMResponse indicates the model returned no usable text.
	ErrLLMResponse = errors.New("empty LLM response")
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements TextGenerator against any OpenAI-compatible chat
// completions endpoint.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// OpenAIConfig configures NewOpenAIClient. BaseURL may point at a compatible
// provider such as Gemini's OpenAI endpoint.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewOpenAIClient creates a client for generating recommendations.
// Returns nil if the API key is empty.
func NewOpenAIClient(cfg OpenAIConfig, opts ...option.RequestOption) *OpenAIClient {
	if cfg.APIKey == "" {
		return nil
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	// network failures surface to the caller, nothing is retried
	options := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}
	options = append(options, opts...)

	return &OpenAIClient{
		client: openai.NewClient(options...),
		model:  model,
	}
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// GenerateText sends prompt as a single user message and returns the trimmed answer.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrLLMUnavailable
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLLMRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrLLMResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: blank content", ErrLLMResponse)
	}

	return text, nil
}
