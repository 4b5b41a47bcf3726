// Package civitaiclient provides the main entry point for creating Civitai
// API clients.
package civitaiclient

import (
	"fmt"
	"strings"

	"github.com/civitai-community/civitai-client/internal/client"
	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// DefaultBaseURL is the public platform endpoint.
const DefaultBaseURL = "https://civitai.com"

// New creates a new Civitai API client. A nil BaseURL-less config targets the
// public platform endpoint; an API key is only required for authenticated
// rate limits and restricted content.
func New(config *civitai.Config) (civitai.Client, error) {
	if config == nil {
		return nil, civitai.ErrConfigRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	cfg := *config
	cfg.BaseURL = baseURL

	apiClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client for the public platform endpoint
// authenticated with an API key.
func NewWithAPIKey(apiKey string) (civitai.Client, error) {
	return New(&civitai.Config{APIKey: apiKey})
}

// NewWithBaseURL creates an unauthenticated client for a specific endpoint.
func NewWithBaseURL(baseURL string) (civitai.Client, error) {
	return New(&civitai.Config{BaseURL: baseURL})
}
