package llm

import (
	"context"

	"jobdesk-utils/pkg/models"
)

// Provider defines the interface for chat completion providers
type Provider interface {
	// Complete sends a chat completion request and returns the first choice
	Complete(ctx context.Context, req models.CompletionRequest) (*models.CompletionResponse, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
