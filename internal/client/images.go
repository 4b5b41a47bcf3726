package client

import (
	"github.com/civitai-community/civitai-client/internal/http"
	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// ImagesClient implements civitai.ImagesClient.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{httpClient: httpClient}
}

// Query implements civitai.ImagesClient.Query.
func (c *ImagesClient) Query() civitai.ImagesQuery {
	return civitai.NewImagesQuery(c.httpClient)
}
