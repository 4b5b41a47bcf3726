package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// getResource performs one GET round trip for a single-resource endpoint and
// normalizes every outcome into a Result, mirroring the classification the
// query builders apply: transport faults, remote errors, cancellation, and
// decode failures (including unknown enum wire values) all come back as the
// failure variant.
func getResource[T any](ctx context.Context, requester civitai.Requester, path string, query url.Values) civitai.Result[T] {
	resp, err := requester.Get(ctx, path, query)
	if err != nil {
		return civitai.Fail[T](civitai.ClassifyTransportError(err))
	}

	var payload T

	err = json.Unmarshal(resp.Body, &payload)
	if err != nil {
		return civitai.Fail[T](civitai.ClassifyDecodeError(err))
	}

	return civitai.Ok(payload)
}
