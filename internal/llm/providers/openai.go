package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/pkg/models"
)

// OpenAIProvider implements the completion provider interface against any
// OpenAI-compatible chat completions endpoint. The base URL is configurable
// so self-hosted and proxy deployments work unchanged.
type OpenAIProvider struct {
	config *config.Config
	client *http.Client
	logger logging.Logger
}

// chatCompletionRequest is the wire format of the chat completions endpoint.
type chatCompletionRequest struct {
	Model       string                     `json:"model"`
	Temperature float32                    `json:"temperature"`
	MaxTokens   int                        `json:"max_tokens"`
	Messages    []models.CompletionMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Model string                 `json:"model"`
	Usage map[string]interface{} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAIProvider creates a new OpenAI-compatible provider instance
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	return &OpenAIProvider{
		config: cfg,
		client: &http.Client{Timeout: cfg.LLM.Timeout},
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends a chat completion request and returns the first choice
func (p *OpenAIProvider) Complete(ctx context.Context, req models.CompletionRequest) (*models.CompletionResponse, error) {
	if req.Model == "" {
		req.Model = p.config.LLM.Model
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    req.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	url := strings.TrimRight(p.config.LLM.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.config.LLM.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	var decoded chatCompletionResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode completion response (status %d): %w", resp.StatusCode, err)
	}

	if decoded.Error != nil {
		return nil, fmt.Errorf("completion API error (%s): %s", decoded.Error.Type, decoded.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("completion response contained no choices")
	}

	model := decoded.Model
	if model == "" {
		model = req.Model
	}

	p.logger.Debug("Completion request succeeded", map[string]interface{}{
		"model":    model,
		"provider": "openai",
	})

	return &models.CompletionResponse{
		Content: decoded.Choices[0].Message.Content,
		Model:   model,
		Usage:   decoded.Usage,
	}, nil
}

// IsHealthy checks if the provider is configured and reachable
func (p *OpenAIProvider) IsHealthy(ctx context.Context) error {
	if p.config.LLM.APIKey == "" {
		return fmt.Errorf("API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := p.Complete(ctx, models.CompletionRequest{
		MaxTokens: 10,
		Messages: []models.CompletionMessage{
			{Role: "user", Content: "Hello"},
		},
	})
	if err != nil {
		return fmt.Errorf("completion API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (p *OpenAIProvider) GetProviderName() string {
	return "openai"
}
