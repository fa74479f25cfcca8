package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PromptLoaderConfig describes how to load a prompt from Langfuse or fallback storage.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	SavePath    string

	// Fallback is returned when neither Langfuse nor the local file yields a prompt.
	Fallback string
	Logger   *zap.Logger
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// LoadPrompt retrieves a prompt from Langfuse, caching it to SavePath. When
// Langfuse is unavailable the cached file is used, then Fallback.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("langfuse").With(zap.String("prompt", cfg.PromptName))

	if cfg.PromptName != "" {
		prompt, err := fetchPromptFromLangfuse(ctx, cfg)
		switch {
		case err == nil:
			if err := savePromptToFile(cfg.SavePath, prompt); err != nil {
				logger.Warn("failed to cache prompt locally", zap.Error(err))
			}
			logger.Info("prompt loaded from Langfuse")
			return prompt, nil
		case !errors.Is(err, errLangfuseDisabled):
			logger.Warn("prompt fetch failed", zap.Error(err))
		}
	}

	prompt, err := readPromptFromFile(cfg.SavePath)
	if err == nil {
		logger.Info("prompt loaded from local cache", zap.String("path", cfg.SavePath))
		return prompt, nil
	}
	if cfg.Fallback != "" {
		logger.Debug("using built-in prompt", zap.NamedError("cache_error", err))
		return cfg.Fallback, nil
	}
	return "", err
}

func fetchPromptFromLangfuse(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", errLangfuseDisabled
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}

	path := strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	parsed.Path = path
	query := parsed.Query()
	if cfg.PromptLabel != "" {
		query.Set("label", cfg.PromptLabel)
	}
	parsed.RawQuery = query.Encode()

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var textPrompt string
		if err := json.Unmarshal(promptResp.Prompt, &textPrompt); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return textPrompt, nil
	case "chat":
		var chatMessages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &chatMessages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(chatMessages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func flattenChatMessages(messages []chatPromptMessage) string {
	var builder strings.Builder
	for _, msg := range messages {
		content := chatMessageContent(msg)
		if content == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		builder.WriteString(strings.ToUpper(role))
		builder.WriteString(": ")
		builder.WriteString(content)
	}
	return builder.String()
}

func chatMessageContent(msg chatPromptMessage) string {
	switch msg.Type {
	case "placeholder":
		if msg.Name != "" {
			return "{{" + msg.Name + "}}"
		}
		return ""
	case "chatmessage", "":
		return msg.Content
	default:
		return msg.Content
	}
}

func readPromptFromFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no local prompt file configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("local prompt file %s is empty", path)
	}
	return string(data), nil
}

func savePromptToFile(path, prompt string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
