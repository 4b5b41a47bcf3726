package civitai_test

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/civitai-community/civitai-client/pkg/civitai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRequester is a transport double recording the assembled request and
// returning a canned response.
type stubRequester struct {
	mu        sync.Mutex
	calls     int
	lastPath  string
	lastQuery url.Values
	body      []byte
	err       error
}

func (s *stubRequester) Get(_ context.Context, path string, query url.Values) (*civitai.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.lastPath = path
	s.lastQuery = query

	if s.err != nil {
		return nil, s.err
	}

	return &civitai.Response{StatusCode: 200, Body: s.body}, nil
}

func (s *stubRequester) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

const emptyModelsPage = `{"items": [], "metadata": {"totalItems": 0}}`

//nolint:funlen // Test functions can be longer for detailed testing
func TestModelsQuery_Serialization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func(q civitai.ModelsQuery) civitai.ModelsQuery
		cursor   []string
		expected url.Values
	}{
		{
			name:     "empty query",
			build:    func(q civitai.ModelsQuery) civitai.ModelsQuery { return q },
			expected: url.Values{},
		},
		{
			name: "type filter uses wire string",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereType(civitai.ModelTypeLora)
			},
			expected: url.Values{"types": []string{"LORA"}},
		},
		{
			name: "sort and period use wire strings",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereSort(civitai.ModelSortMostDownloaded).WherePeriod(civitai.PeriodWeek)
			},
			expected: url.Values{"sort": []string{"Most Downloaded"}, "period": []string{"Week"}},
		},
		{
			name: "text filters",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereQuery("landscape").WhereUsername("artist")
			},
			expected: url.Values{"query": []string{"landscape"}, "username": []string{"artist"}},
		},
		{
			name: "tags accumulate deduplicated and sorted",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereTag("portrait").WhereTag("anime", "portrait")
			},
			expected: url.Values{"tag": []string{"anime", "portrait"}},
		},
		{
			name: "pagination parameters",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WithResultsLimit(50).WithPageIndex(2)
			},
			expected: url.Values{"limit": []string{"50"}, "page": []string{"2"}},
		},
		{
			name: "nsfw flag",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WithNSFW(false)
			},
			expected: url.Values{"nsfw": []string{"false"}},
		},
		{
			name: "cursor takes precedence over page index",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WithPageIndex(3)
			},
			cursor:   []string{"abc"},
			expected: url.Values{"cursor": []string{"abc"}},
		},
		{
			name: "commercial use filter",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereCommercialUse(civitai.CommercialUseSell)
			},
			expected: url.Values{"allowCommercialUse": []string{"Sell"}},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			requester := &stubRequester{body: []byte(emptyModelsPage)}
			query := tt.build(civitai.NewModelsQuery(requester))

			result := query.Execute(context.Background(), tt.cursor...)
			require.True(t, result.IsSuccess(), "failure: %v", result.Failure())

			assert.Equal(t, "/api/v1/models", requester.lastPath)
			assert.Equal(t, tt.expected, requester.lastQuery)
		})
	}
}

func TestModelsQuery_ReplacementSemantics(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(emptyModelsPage)}

	// whereX(a).whereX(b) must equal a fresh whereX(b) for non-cumulative fields.
	chained := civitai.NewModelsQuery(requester).
		WhereQuery("first").
		WhereQuery("second").
		WhereType(civitai.ModelTypeCheckpoint).
		WhereType(civitai.ModelTypeLora)

	result := chained.Execute(context.Background())
	require.True(t, result.IsSuccess())
	assert.Equal(t, "second", requester.lastQuery.Get("query"))
	assert.Equal(t, "LORA", requester.lastQuery.Get("types"))
}

func TestModelsQuery_SnapshotsAreImmutable(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(emptyModelsPage)}

	base := civitai.NewModelsQuery(requester).WithResultsLimit(10).WhereTag("base")

	// Branching from a shared ancestor must not leak state across branches.
	left := base.WithResultsLimit(20).WhereTag("left")
	right := base.WhereQuery("right")

	require.True(t, base.Execute(context.Background()).IsSuccess())
	assert.Equal(t, "10", requester.lastQuery.Get("limit"))
	assert.Equal(t, []string{"base"}, requester.lastQuery["tag"])
	assert.Empty(t, requester.lastQuery.Get("query"))

	require.True(t, left.Execute(context.Background()).IsSuccess())
	assert.Equal(t, "20", requester.lastQuery.Get("limit"))
	assert.Equal(t, []string{"base", "left"}, requester.lastQuery["tag"])

	require.True(t, right.Execute(context.Background()).IsSuccess())
	assert.Equal(t, "10", requester.lastQuery.Get("limit"))
	assert.Equal(t, "right", requester.lastQuery.Get("query"))
	assert.Equal(t, []string{"base"}, requester.lastQuery["tag"])
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestModelsQuery_ValidationFailsBeforeTransport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		build        func(q civitai.ModelsQuery) civitai.ModelsQuery
		cursor       []string
		expectedCode civitai.FailureCode
	}{
		{
			name: "zero limit",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WithResultsLimit(0)
			},
			expectedCode: civitai.FailureInvalidQuery,
		},
		{
			name: "limit above maximum",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WithResultsLimit(101)
			},
			expectedCode: civitai.FailureInvalidQuery,
		},
		{
			name: "non-positive page index",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WithPageIndex(0)
			},
			expectedCode: civitai.FailureInvalidQuery,
		},
		{
			name: "empty string filter",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereQuery("")
			},
			expectedCode: civitai.FailureInvalidQuery,
		},
		{
			name: "empty tag",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereTag("")
			},
			expectedCode: civitai.FailureInvalidQuery,
		},
		{
			name: "unmapped enum variant",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q.WhereType(civitai.ModelType("Bogus"))
			},
			expectedCode: civitai.FailureUnmappedVariant,
		},
		{
			name: "multiple cursors",
			build: func(q civitai.ModelsQuery) civitai.ModelsQuery {
				return q
			},
			cursor:       []string{"a", "b"},
			expectedCode: civitai.FailureInvalidQuery,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			requester := &stubRequester{body: []byte(emptyModelsPage)}
			query := tt.build(civitai.NewModelsQuery(requester))

			result := query.Execute(context.Background(), tt.cursor...)
			require.True(t, result.IsFailure())
			assert.Equal(t, tt.expectedCode, result.Failure().Code)
			assert.Equal(t, 0, requester.callCount(), "no transport call may occur")
		})
	}
}

func TestModelsQuery_DecodesPagePreservingOrder(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(`{
		"items": [
			{"id": 3, "name": "third", "type": "LORA", "nsfw": false},
			{"id": 1, "name": "first", "type": "Checkpoint", "nsfw": false},
			{"id": 2, "name": "second", "type": "LORA", "nsfw": true}
		],
		"metadata": {"nextCursor": "abc", "pageSize": 3}
	}`)}

	query := civitai.NewModelsQuery(requester).WhereType(civitai.ModelTypeLora)

	result := query.Execute(context.Background())
	page, ok := result.Value()
	require.True(t, ok, "failure: %v", result.Failure())

	require.Len(t, page.Items, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})
	assert.Equal(t, civitai.ModelTypeLora, page.Items[0].Type)
	assert.Equal(t, "abc", page.NextCursor())

	// Continuing with the returned cursor must appear as the cursor parameter.
	next := query.Execute(context.Background(), page.NextCursor())
	require.True(t, next.IsSuccess())
	assert.Equal(t, "abc", requester.lastQuery.Get("cursor"))
}

func TestModelsQuery_UnknownWireValueInResponse(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(`{
		"items": [{"id": 1, "name": "m", "type": "UNKNOWN_STATUS", "nsfw": false}]
	}`)}

	result := civitai.NewModelsQuery(requester).Execute(context.Background())
	require.True(t, result.IsFailure())
	assert.Equal(t, civitai.FailureUnknownWireValue, result.Failure().Code)
	assert.Contains(t, result.Failure().Detail, "UNKNOWN_STATUS")
}

func TestModelsQuery_FailureClassification(t *testing.T) {
	t.Parallel()
	t.Run("transport fault", func(t *testing.T) {
		t.Parallel()

		requester := &stubRequester{err: errors.New("connection refused")}

		result := civitai.NewModelsQuery(requester).Execute(context.Background())
		require.True(t, result.IsFailure())
		assert.Equal(t, civitai.FailureTransport, result.Failure().Code)
	})

	t.Run("remote error", func(t *testing.T) {
		t.Parallel()

		requester := &stubRequester{err: &civitai.APIError{Status: 404, Message: "model not found"}}

		result := civitai.NewModelsQuery(requester).Execute(context.Background())
		require.True(t, result.IsFailure())
		assert.Equal(t, civitai.FailureRemote, result.Failure().Code)
		assert.Equal(t, "model not found", result.Failure().Message)
	})

	t.Run("cancellation", func(t *testing.T) {
		t.Parallel()

		requester := &stubRequester{err: context.Canceled}

		result := civitai.NewModelsQuery(requester).Execute(context.Background())
		require.True(t, result.IsFailure())
		assert.Equal(t, civitai.FailureCancelled, result.Failure().Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		requester := &stubRequester{body: []byte(`{"items": "not-a-list"}`)}

		result := civitai.NewModelsQuery(requester).Execute(context.Background())
		require.True(t, result.IsFailure())
		assert.Equal(t, civitai.FailureDecode, result.Failure().Code)
	})
}

func TestModelsQuery_ConcurrentExecution(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(emptyModelsPage)}
	base := civitai.NewModelsQuery(requester).WhereSort(civitai.ModelSortNewest)

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			query := base.WithPageIndex(i + 1)
			result := query.Execute(context.Background())
			assert.NotEqual(t, result.IsSuccess(), result.IsFailure())
			assert.True(t, result.IsSuccess())
		}()
	}

	wg.Wait()
	assert.Equal(t, 16, requester.callCount())
}

func TestCreatorsQuery(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(`{
		"items": [{"username": "alice", "modelCount": 12}],
		"metadata": {"totalItems": 1}
	}`)}

	result := civitai.NewCreatorsQuery(requester).
		WhereQuery("ali").
		WithResultsLimit(200).
		Execute(context.Background())

	page, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "/api/v1/creators", requester.lastPath)
	assert.Equal(t, "ali", requester.lastQuery.Get("query"))
	assert.Equal(t, "200", requester.lastQuery.Get("limit"))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
}

func TestTagsQuery(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(`{
		"items": [{"name": "anime", "modelCount": 4000}]
	}`)}

	result := civitai.NewTagsQuery(requester).WhereQuery("ani").Execute(context.Background())

	page, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "/api/v1/tags", requester.lastPath)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "anime", page.Items[0].Name)
	assert.Empty(t, page.NextCursor())
}

func TestImagesQuery(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{body: []byte(`{
		"items": [{"id": 7, "url": "https://img", "width": 512, "height": 512, "nsfw": false, "nsfwLevel": "None"}]
	}`)}

	result := civitai.NewImagesQuery(requester).
		WhereModelID(42).
		WhereNSFW(civitai.NSFWLevelNone).
		WhereSort(civitai.ImageSortMostReactions).
		Execute(context.Background())

	page, ok := result.Value()
	require.True(t, ok, "failure: %v", result.Failure())
	assert.Equal(t, "/api/v1/images", requester.lastPath)
	assert.Equal(t, "42", requester.lastQuery.Get("modelId"))
	assert.Equal(t, "None", requester.lastQuery.Get("nsfw"))
	assert.Equal(t, "Most Reactions", requester.lastQuery.Get("sort"))
	require.Len(t, page.Items, 1)
	assert.Equal(t, civitai.NSFWLevelNone, page.Items[0].NSFWLevel)
}

func TestImagesQuery_NonPositiveNumericFilter(t *testing.T) {
	t.Parallel()

	requester := &stubRequester{}

	result := civitai.NewImagesQuery(requester).WhereModelID(0).Execute(context.Background())
	require.True(t, result.IsFailure())
	assert.Equal(t, civitai.FailureInvalidQuery, result.Failure().Code)
	assert.Equal(t, 0, requester.callCount())
}
