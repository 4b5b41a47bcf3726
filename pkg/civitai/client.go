package civitai

import (
	"context"
	"net/url"
	"time"
)

// Client provides access to the resource families of the Civitai API. It is
// purely compositional: each accessor returns a client for one resource
// family, and query construction happens on the builders those clients hand
// out.
type Client interface {
	Models() ModelsClient
	Creators() CreatorsClient
	Tags() TagsClient
	Images() ImagesClient
}

// ModelsClient provides access to the models resource family.
type ModelsClient interface {
	// Query returns a fresh search builder for models.
	Query() ModelsQuery
	// Get fetches a single model by ID.
	Get(ctx context.Context, id int) Result[Model]
	// GetVersion fetches a single model version by ID.
	GetVersion(ctx context.Context, id int) Result[ModelVersion]
	// GetVersionByHash fetches a model version by a file hash (AutoV2,
	// SHA256, CRC32, or Blake3).
	GetVersionByHash(ctx context.Context, hash string) Result[ModelVersion]
}

// CreatorsClient provides access to the creators resource family.
type CreatorsClient interface {
	Query() CreatorsQuery
}

// TagsClient provides access to the tags resource family.
type TagsClient interface {
	Query() TagsQuery
}

// ImagesClient provides access to the images resource family.
type ImagesClient interface {
	Query() ImagesQuery
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Requester is the transport collaborator the query builders execute
// against. It performs one HTTP round trip per call; retry policy,
// authentication headers, and timeouts belong to the implementation, not to
// the builders. A nil-error return means the round trip succeeded with a
// 2xx status; remote-reported errors come back as *APIError.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
}

// Response is a raw response body with its status classification.
type Response struct {
	StatusCode int
	Headers    map[string][]string
	Body       []byte
}

// Config represents client configuration for building a Client.
//
// BaseURL defaults to the public platform endpoint when empty. APIKey is
// optional for read access; when set it is sent as a Bearer token on every
// request. Retry behavior applies to transient failures (>=500, 429, and
// connection errors) and is tuned via RetryMax/RetryWaitMin/RetryWaitMax.
// Per-request timeouts should generally be controlled via the context passed
// to builder execution; HTTPTimeout is a transport-level ceiling.
type Config struct {
	// BaseURL: base URL for the API (e.g. "https://civitai.com").
	BaseURL string
	// APIKey: optional API token, sent as a Bearer authorization header.
	APIKey string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout: optional transport-level request timeout.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. If 0, the
	// transport's default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger: optional structured logger used by the transport.
	Logger Logger
}
