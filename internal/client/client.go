// Package client implements the civitai.Client facade on top of the
// internal transport.
package client

import (
	"time"

	"github.com/civitai-community/civitai-client/internal/http"
	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// Client implements the civitai.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	models   civitai.ModelsClient
	creators civitai.CreatorsClient
	tags     civitai.TagsClient
	images   civitai.ImagesClient
}

// New creates a new API client from config.
func New(config *civitai.Config) (*Client, error) {
	if config == nil {
		return nil, civitai.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, civitai.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, buildHTTPClientOptions(config)...)

	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client, nil
}

// buildHTTPClientOptions builds transport options from config.
func buildHTTPClientOptions(config *civitai.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := 30 * time.Second

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.models = NewModelsClient(c.httpClient)
	c.creators = NewCreatorsClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
}

// Models implements civitai.Client.Models.
func (c *Client) Models() civitai.ModelsClient {
	return c.models
}

// Creators implements civitai.Client.Creators.
func (c *Client) Creators() civitai.CreatorsClient {
	return c.creators
}

// Tags implements civitai.Client.Tags.
func (c *Client) Tags() civitai.TagsClient {
	return c.tags
}

// Images implements civitai.Client.Images.
func (c *Client) Images() civitai.ImagesClient {
	return c.images
}
