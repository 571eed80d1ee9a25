package models

// CompletionMessage is a single chat message sent to a completion provider.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the provider-agnostic completion request. Providers
// translate it to their own wire format.
type CompletionRequest struct {
	Model       string              `json:"model"`
	Temperature float32             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
	Messages    []CompletionMessage `json:"messages"`
}

// CompletionResponse carries the first choice's text plus the audit metadata
// the pipeline stores alongside every extraction.
type CompletionResponse struct {
	Content string                 `json:"content"`
	Model   string                 `json:"model"`
	Usage   map[string]interface{} `json:"usage,omitempty"`
}
