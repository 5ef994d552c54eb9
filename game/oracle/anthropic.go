package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion   = "2023-06-01"
	defaultTimeout     = 60 * time.Second
)

// ErrMissingAPIKey indicates no Anthropic API key was configured. This is a
// configuration error: it surfaces at construction, before any game loop
// starts.
var ErrMissingAPIKey = errors.New("oracle: ANTHROPIC_API_KEY must be set or passed in config")

// AnthropicConfig configures the Anthropic messages endpoint and HTTP
// behavior.
type AnthropicConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	MessagesURL string
	HTTPClient  *http.Client
}

// AnthropicOracle asks an Anthropic model to pick the next move.
type AnthropicOracle struct {
	cfg AnthropicConfig
}

// NewAnthropicOracle builds an Anthropic-backed oracle. The API key falls
// back to the ANTHROPIC_API_KEY environment variable.
func NewAnthropicOracle(cfg AnthropicConfig) (*AnthropicOracle, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if strings.TrimSpace(cfg.MessagesURL) == "" {
		cfg.MessagesURL = defaultMessagesURL
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 16000
	}
	return &AnthropicOracle{cfg: cfg}, nil
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Choose sends the board prompt to the model and parses its answer into a
// legal move. Transport errors, API errors, and unparseable responses all
// surface as errors for the caller's fallback path.
func (o *AnthropicOracle) Choose(ctx context.Context, req Request) (Choice, error) {
	if err := ValidateRequest(req); err != nil {
		return Choice{}, err
	}

	payload := anthropicRequest{
		Model:       o.cfg.Model,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: BuildPrompt(req)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Choice{}, fmt.Errorf("oracle: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.MessagesURL, bytes.NewReader(body))
	if err != nil {
		return Choice{}, fmt.Errorf("oracle: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", o.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := o.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return Choice{}, fmt.Errorf("oracle: call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Choice{}, fmt.Errorf("oracle: read response: %w", err)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Choice{}, fmt.Errorf("oracle: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return Choice{}, fmt.Errorf("oracle: api error %s: %s", parsed.Error.Type, parsed.Error.Message)
		}
		return Choice{}, fmt.Errorf("oracle: unexpected status %d", resp.StatusCode)
	}

	var text strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return Choice{}, fmt.Errorf("oracle: empty response body")
	}

	return ParseChoice(text.String(), req.Legal)
}
