package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/civitai-community/civitai-client/internal/http"
	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// ModelsClient implements civitai.ModelsClient.
type ModelsClient struct {
	httpClient *http.Client
}

// NewModelsClient creates a new models client.
func NewModelsClient(httpClient *http.Client) *ModelsClient {
	return &ModelsClient{httpClient: httpClient}
}

// Query implements civitai.ModelsClient.Query.
func (c *ModelsClient) Query() civitai.ModelsQuery {
	return civitai.NewModelsQuery(c.httpClient)
}

// Get implements civitai.ModelsClient.Get.
func (c *ModelsClient) Get(ctx context.Context, id int) civitai.Result[civitai.Model] {
	if id <= 0 {
		return civitai.Failf[civitai.Model](civitai.FailureInvalidQuery, "model id must be positive, got %d", id)
	}

	return getResource[civitai.Model](ctx, c.httpClient, "/api/v1/models/"+strconv.Itoa(id), nil)
}

// GetVersion implements civitai.ModelsClient.GetVersion.
func (c *ModelsClient) GetVersion(ctx context.Context, id int) civitai.Result[civitai.ModelVersion] {
	if id <= 0 {
		return civitai.Failf[civitai.ModelVersion](civitai.FailureInvalidQuery, "model version id must be positive, got %d", id)
	}

	return getResource[civitai.ModelVersion](ctx, c.httpClient, "/api/v1/model-versions/"+strconv.Itoa(id), nil)
}

// GetVersionByHash implements civitai.ModelsClient.GetVersionByHash.
func (c *ModelsClient) GetVersionByHash(ctx context.Context, hash string) civitai.Result[civitai.ModelVersion] {
	if hash == "" {
		return civitai.Failf[civitai.ModelVersion](civitai.FailureInvalidQuery, "hash must not be empty")
	}

	return getResource[civitai.ModelVersion](ctx, c.httpClient, "/api/v1/model-versions/by-hash/"+url.PathEscape(hash), nil)
}
