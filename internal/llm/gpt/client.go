package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const appTitle = "ChefMate"

type Client struct {
	Client  openai.Client
	ModelID string
	BaseURL string
}

// NewClient builds a chat-completion client for any OpenAI compatible endpoint.
// Retries are disabled, every call is a single attempt.
func NewClient(apiKey string, baseURL string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model ID is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHeader("X-Title", appTitle),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		Client:  openai.NewClient(opts...),
		ModelID: model,
		BaseURL: baseURL,
	}, nil
}
