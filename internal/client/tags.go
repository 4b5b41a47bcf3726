package client

import (
	"github.com/civitai-community/civitai-client/internal/http"
	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// TagsClient implements civitai.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{httpClient: httpClient}
}

// Query implements civitai.TagsClient.Query.
func (c *TagsClient) Query() civitai.TagsQuery {
	return civitai.NewTagsQuery(c.httpClient)
}
