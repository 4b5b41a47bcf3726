package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/civitai-community/civitai-client/pkg/civitai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/models/42", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		model := civitai.Model{
			ID:   42,
			Name: "test-model",
			Type: civitai.ModelTypeCheckpoint,
		}

		json.NewEncoder(w).Encode(model)
	}))
	defer server.Close()

	client, err := New(&civitai.Config{BaseURL: server.URL})
	require.NoError(t, err)

	result := client.Models().Get(context.Background(), 42)
	model, ok := result.Value()
	require.True(t, ok, "failure: %v", result.Failure())
	assert.Equal(t, 42, model.ID)
	assert.Equal(t, "test-model", model.Name)
	assert.Equal(t, civitai.ModelTypeCheckpoint, model.Type)
}

func TestModelsClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Model not found"})
	}))
	defer server.Close()

	client, err := New(&civitai.Config{BaseURL: server.URL})
	require.NoError(t, err)

	result := client.Models().Get(context.Background(), 999999)
	require.True(t, result.IsFailure())
	assert.Equal(t, civitai.FailureRemote, result.Failure().Code)
	assert.Equal(t, "Model not found", result.Failure().Message)
	assert.Equal(t, "status 404", result.Failure().Detail)
}

func TestModelsClient_Get_InvalidID(t *testing.T) {
	client, err := New(&civitai.Config{BaseURL: "https://example.test"})
	require.NoError(t, err)

	result := client.Models().Get(context.Background(), 0)
	require.True(t, result.IsFailure())
	assert.Equal(t, civitai.FailureInvalidQuery, result.Failure().Code)
}

func TestModelsClient_GetVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/model-versions/7", r.URL.Path)

		version := civitai.ModelVersion{
			ID:   7,
			Name: "v1.0",
		}

		json.NewEncoder(w).Encode(version)
	}))
	defer server.Close()

	client, err := New(&civitai.Config{BaseURL: server.URL})
	require.NoError(t, err)

	result := client.Models().GetVersion(context.Background(), 7)
	version, ok := result.Value()
	require.True(t, ok, "failure: %v", result.Failure())
	assert.Equal(t, 7, version.ID)
	assert.Equal(t, "v1.0", version.Name)
}

func TestModelsClient_GetVersionByHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/model-versions/by-hash/abc123", r.URL.Path)

		version := civitai.ModelVersion{
			ID:   7,
			Name: "v1.0",
		}

		json.NewEncoder(w).Encode(version)
	}))
	defer server.Close()

	client, err := New(&civitai.Config{BaseURL: server.URL})
	require.NoError(t, err)

	result := client.Models().GetVersionByHash(context.Background(), "abc123")
	version, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, 7, version.ID)
}

func TestModelsClient_GetVersionByHash_EscapesHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A hash with reserved characters must stay a single path segment.
		assert.Equal(t, "/api/v1/model-versions/by-hash/ab%2Fcd%3Fx", r.URL.EscapedPath())

		json.NewEncoder(w).Encode(civitai.ModelVersion{ID: 9})
	}))
	defer server.Close()

	client, err := New(&civitai.Config{BaseURL: server.URL})
	require.NoError(t, err)

	result := client.Models().GetVersionByHash(context.Background(), "ab/cd?x")
	version, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, 9, version.ID)
}

func TestModelsClient_GetVersionByHash_EmptyHash(t *testing.T) {
	client, err := New(&civitai.Config{BaseURL: "https://example.test"})
	require.NoError(t, err)

	result := client.Models().GetVersionByHash(context.Background(), "")
	require.True(t, result.IsFailure())
	assert.Equal(t, civitai.FailureInvalidQuery, result.Failure().Code)
}

func TestModelsClient_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/models", r.URL.Path)
		assert.Equal(t, "LORA", r.URL.Query().Get("types"))
		assert.Equal(t, "Most Downloaded", r.URL.Query().Get("sort"))

		page := civitai.ModelsPage{
			Items: []civitai.Model{
				{ID: 1, Name: "first", Type: civitai.ModelTypeLora},
				{ID: 2, Name: "second", Type: civitai.ModelTypeLora},
			},
			Metadata: &civitai.PageMetadata{NextCursor: "next"},
		}

		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client, err := New(&civitai.Config{BaseURL: server.URL})
	require.NoError(t, err)

	result := client.Models().Query().
		WhereType(civitai.ModelTypeLora).
		WhereSort(civitai.ModelSortMostDownloaded).
		Execute(context.Background())

	page, ok := result.Value()
	require.True(t, ok, "failure: %v", result.Failure())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "first", page.Items[0].Name)
	assert.Equal(t, "next", page.NextCursor())
}
