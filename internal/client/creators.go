package client

import (
	"github.com/civitai-community/civitai-client/internal/http"
	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// CreatorsClient implements civitai.CreatorsClient.
type CreatorsClient struct {
	httpClient *http.Client
}

// NewCreatorsClient creates a new creators client.
func NewCreatorsClient(httpClient *http.Client) *CreatorsClient {
	return &CreatorsClient{httpClient: httpClient}
}

// Query implements civitai.CreatorsClient.Query.
func (c *CreatorsClient) Query() civitai.CreatorsQuery {
	return civitai.NewCreatorsQuery(c.httpClient)
}
