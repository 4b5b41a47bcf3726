package civitai

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
)

// Result-limit bounds documented by the platform per endpoint.
const (
	minResultsLimit  = 1
	maxModelsLimit   = 100
	maxCreatorsLimit = 200
	maxTagsLimit     = 200
	maxImagesLimit   = 200
)

// enumFilter is an enum-typed filter value, translated through the registry
// only at execution time so an unmapped variant is reported as a failure
// rather than a panic.
type enumFilter struct {
	enumType string
	variant  string
}

// queryState is the accumulated filter/pagination state shared by all
// builders. Builders have value semantics: every mutation copies the state
// (maps cloned), so a previously returned snapshot is never altered and
// divergent queries can branch from a shared ancestor safely.
type queryState struct {
	exact   map[string]string
	enums   map[string]enumFilter
	numeric map[string]int
	flags   map[string]bool
	tags    map[string]struct{}

	limit    int
	limitSet bool
	page     int
	pageSet  bool
}

func (s queryState) withExact(key, value string) queryState {
	next := make(map[string]string, len(s.exact)+1)
	for k, v := range s.exact {
		next[k] = v
	}

	next[key] = value
	s.exact = next

	return s
}

func (s queryState) withEnum(key, enumType, variant string) queryState {
	next := make(map[string]enumFilter, len(s.enums)+1)
	for k, v := range s.enums {
		next[k] = v
	}

	next[key] = enumFilter{enumType: enumType, variant: variant}
	s.enums = next

	return s
}

func (s queryState) withNumeric(key string, value int) queryState {
	next := make(map[string]int, len(s.numeric)+1)
	for k, v := range s.numeric {
		next[k] = v
	}

	next[key] = value
	s.numeric = next

	return s
}

func (s queryState) withFlag(key string, value bool) queryState {
	next := make(map[string]bool, len(s.flags)+1)
	for k, v := range s.flags {
		next[k] = v
	}

	next[key] = value
	s.flags = next

	return s
}

// withTags accumulates: tag filters are cumulative across calls, with
// duplicates removed. Every other filter replaces its previous value.
func (s queryState) withTags(values ...string) queryState {
	next := make(map[string]struct{}, len(s.tags)+len(values))
	for tag := range s.tags {
		next[tag] = struct{}{}
	}

	for _, tag := range values {
		next[tag] = struct{}{}
	}

	s.tags = next

	return s
}

func (s queryState) withLimit(limit int) queryState {
	s.limit = limit
	s.limitSet = true

	return s
}

func (s queryState) withPage(page int) queryState {
	s.page = page
	s.pageSet = true

	return s
}

// buildValues validates the accumulated state and serializes it into wire
// parameters. Validation failures are reported before any transport call; a
// cursor, when present, takes precedence over the page index and switches
// the request to cursor-based pagination.
func (s queryState) buildValues(registry *Registry, maxLimit int, cursor []string) (url.Values, *Failure) {
	if len(cursor) > 1 {
		return nil, &Failure{
			Code:    FailureInvalidQuery,
			Message: "at most one cursor may be passed to Execute",
		}
	}

	if s.limitSet && (s.limit < minResultsLimit || s.limit > maxLimit) {
		return nil, &Failure{
			Code:    FailureInvalidQuery,
			Message: "results limit out of range",
			Detail:  "limit " + strconv.Itoa(s.limit) + " not in [" + strconv.Itoa(minResultsLimit) + "," + strconv.Itoa(maxLimit) + "]",
		}
	}

	if s.pageSet && s.page < 1 {
		return nil, &Failure{
			Code:    FailureInvalidQuery,
			Message: "page index must be positive",
			Detail:  "page " + strconv.Itoa(s.page),
		}
	}

	values := url.Values{}

	for key, value := range s.exact {
		if value == "" {
			return nil, &Failure{
				Code:    FailureInvalidQuery,
				Message: "filter must not be empty",
				Detail:  "field " + key,
			}
		}

		values.Set(key, value)
	}

	for key, filter := range s.enums {
		wire, err := registry.ToWire(filter.enumType, filter.variant)
		if err != nil {
			return nil, &Failure{
				Code:    FailureUnmappedVariant,
				Message: "enum filter has no wire mapping",
				Detail:  "field " + key + ": " + err.Error(),
			}
		}

		values.Set(key, wire)
	}

	for key, value := range s.numeric {
		if value <= 0 {
			return nil, &Failure{
				Code:    FailureInvalidQuery,
				Message: "filter must be positive",
				Detail:  "field " + key,
			}
		}

		values.Set(key, strconv.Itoa(value))
	}

	for key, value := range s.flags {
		values.Set(key, strconv.FormatBool(value))
	}

	if len(s.tags) > 0 {
		tags := make([]string, 0, len(s.tags))

		for tag := range s.tags {
			if tag == "" {
				return nil, &Failure{
					Code:    FailureInvalidQuery,
					Message: "filter must not be empty",
					Detail:  "field tag",
				}
			}

			tags = append(tags, tag)
		}

		sort.Strings(tags)
		values["tag"] = tags
	}

	if s.limitSet {
		values.Set("limit", strconv.Itoa(s.limit))
	}

	switch {
	case len(cursor) == 1 && cursor[0] != "":
		values.Set("cursor", cursor[0])
	case s.pageSet:
		values.Set("page", strconv.Itoa(s.page))
	}

	return values, nil
}

// executeQuery runs one round trip for a list endpoint: serialize, send,
// classify, decode. Every outcome is a Result; nothing reachable from here
// escapes as a fault.
func executeQuery[T any](ctx context.Context, requester Requester, registry *Registry, path string, state queryState, maxLimit int, cursor []string) Result[Page[T]] {
	values, failure := state.buildValues(registry, maxLimit, cursor)
	if failure != nil {
		return Fail[Page[T]](failure)
	}

	resp, err := requester.Get(ctx, path, values)
	if err != nil {
		return Fail[Page[T]](ClassifyTransportError(err))
	}

	var page Page[T]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return Fail[Page[T]](ClassifyDecodeError(err))
	}

	return Ok(page)
}

// ModelsQuery is an immutable builder for GET /api/v1/models. Each Where/With
// method returns a new snapshot; the receiver is never modified, so snapshots
// derived from a shared ancestor can be executed concurrently.
type ModelsQuery struct {
	requester Requester
	registry  *Registry
	state     queryState
}

// NewModelsQuery creates a models search builder on the given transport.
func NewModelsQuery(requester Requester) ModelsQuery {
	return ModelsQuery{requester: requester, registry: DefaultRegistry()}
}

// WhereQuery filters by free-text search query. Replaces any prior value.
func (q ModelsQuery) WhereQuery(text string) ModelsQuery {
	q.state = q.state.withExact("query", text)
	return q
}

// WhereUsername filters by the publishing creator. Replaces any prior value.
func (q ModelsQuery) WhereUsername(username string) ModelsQuery {
	q.state = q.state.withExact("username", username)
	return q
}

// WhereTag filters by tag. Tags are cumulative across calls and deduplicated;
// they serialize as repeated tag parameters.
func (q ModelsQuery) WhereTag(tags ...string) ModelsQuery {
	q.state = q.state.withTags(tags...)
	return q
}

// WhereType filters by model type. Replaces any prior value.
func (q ModelsQuery) WhereType(modelType ModelType) ModelsQuery {
	q.state = q.state.withEnum("types", enumModelType, string(modelType))
	return q
}

// WhereSort sets the result ordering. Replaces any prior value.
func (q ModelsQuery) WhereSort(sortOrder ModelSort) ModelsQuery {
	q.state = q.state.withEnum("sort", enumModelSort, string(sortOrder))
	return q
}

// WherePeriod scopes rankings to a time window. Replaces any prior value.
func (q ModelsQuery) WherePeriod(period Period) ModelsQuery {
	q.state = q.state.withEnum("period", enumPeriod, string(period))
	return q
}

// WhereCommercialUse filters by the commercial permission a model grants.
// Replaces any prior value.
func (q ModelsQuery) WhereCommercialUse(use CommercialUse) ModelsQuery {
	q.state = q.state.withEnum("allowCommercialUse", enumCommercialUse, string(use))
	return q
}

// WithNSFW includes or excludes mature content.
func (q ModelsQuery) WithNSFW(include bool) ModelsQuery {
	q.state = q.state.withFlag("nsfw", include)
	return q
}

// WithResultsLimit sets the page size (1-100). Out-of-range values are
// rejected at execution time, before any transport call.
func (q ModelsQuery) WithResultsLimit(limit int) ModelsQuery {
	q.state = q.state.withLimit(limit)
	return q
}

// WithPageIndex sets page-based navigation. A cursor passed to Execute takes
// precedence and the page index is omitted from that request.
func (q ModelsQuery) WithPageIndex(page int) ModelsQuery {
	q.state = q.state.withPage(page)
	return q
}

// Execute runs the query. An optional cursor continues a previous page
// sequence. Transport faults, remote errors, and decode failures all come
// back as the failure variant; cancellation via ctx resolves as a failure
// with the cancelled code.
func (q ModelsQuery) Execute(ctx context.Context, cursor ...string) Result[Page[Model]] {
	return executeQuery[Model](ctx, q.requester, q.registry, "/api/v1/models", q.state, maxModelsLimit, cursor)
}

// Fetcher adapts the query for cursor iteration helpers.
func (q ModelsQuery) Fetcher() PageFetcher[Model] {
	return func(ctx context.Context, cursor string) Result[Page[Model]] {
		if cursor == "" {
			return q.Execute(ctx)
		}

		return q.Execute(ctx, cursor)
	}
}

// CreatorsQuery is an immutable builder for GET /api/v1/creators.
type CreatorsQuery struct {
	requester Requester
	registry  *Registry
	state     queryState
}

// NewCreatorsQuery creates a creators search builder on the given transport.
func NewCreatorsQuery(requester Requester) CreatorsQuery {
	return CreatorsQuery{requester: requester, registry: DefaultRegistry()}
}

// WhereQuery filters by creator name. Replaces any prior value.
func (q CreatorsQuery) WhereQuery(text string) CreatorsQuery {
	q.state = q.state.withExact("query", text)
	return q
}

// WithResultsLimit sets the page size (1-200).
func (q CreatorsQuery) WithResultsLimit(limit int) CreatorsQuery {
	q.state = q.state.withLimit(limit)
	return q
}

// WithPageIndex sets page-based navigation.
func (q CreatorsQuery) WithPageIndex(page int) CreatorsQuery {
	q.state = q.state.withPage(page)
	return q
}

// Execute runs the query. An optional cursor continues a previous sequence.
func (q CreatorsQuery) Execute(ctx context.Context, cursor ...string) Result[Page[Creator]] {
	return executeQuery[Creator](ctx, q.requester, q.registry, "/api/v1/creators", q.state, maxCreatorsLimit, cursor)
}

// Fetcher adapts the query for cursor iteration helpers.
func (q CreatorsQuery) Fetcher() PageFetcher[Creator] {
	return func(ctx context.Context, cursor string) Result[Page[Creator]] {
		if cursor == "" {
			return q.Execute(ctx)
		}

		return q.Execute(ctx, cursor)
	}
}

// TagsQuery is an immutable builder for GET /api/v1/tags.
type TagsQuery struct {
	requester Requester
	registry  *Registry
	state     queryState
}

// NewTagsQuery creates a tags search builder on the given transport.
func NewTagsQuery(requester Requester) TagsQuery {
	return TagsQuery{requester: requester, registry: DefaultRegistry()}
}

// WhereQuery filters by tag name. Replaces any prior value.
func (q TagsQuery) WhereQuery(text string) TagsQuery {
	q.state = q.state.withExact("query", text)
	return q
}

// WithResultsLimit sets the page size (1-200).
func (q TagsQuery) WithResultsLimit(limit int) TagsQuery {
	q.state = q.state.withLimit(limit)
	return q
}

// WithPageIndex sets page-based navigation.
func (q TagsQuery) WithPageIndex(page int) TagsQuery {
	q.state = q.state.withPage(page)
	return q
}

// Execute runs the query. An optional cursor continues a previous sequence.
func (q TagsQuery) Execute(ctx context.Context, cursor ...string) Result[Page[Tag]] {
	return executeQuery[Tag](ctx, q.requester, q.registry, "/api/v1/tags", q.state, maxTagsLimit, cursor)
}

// Fetcher adapts the query for cursor iteration helpers.
func (q TagsQuery) Fetcher() PageFetcher[Tag] {
	return func(ctx context.Context, cursor string) Result[Page[Tag]] {
		if cursor == "" {
			return q.Execute(ctx)
		}

		return q.Execute(ctx, cursor)
	}
}

// ImagesQuery is an immutable builder for GET /api/v1/images.
type ImagesQuery struct {
	requester Requester
	registry  *Registry
	state     queryState
}

// NewImagesQuery creates an images search builder on the given transport.
func NewImagesQuery(requester Requester) ImagesQuery {
	return ImagesQuery{requester: requester, registry: DefaultRegistry()}
}

// WhereModelID filters to images generated with a model. Replaces any prior
// value.
func (q ImagesQuery) WhereModelID(id int) ImagesQuery {
	q.state = q.state.withNumeric("modelId", id)
	return q
}

// WhereModelVersionID filters to images generated with a model version.
// Replaces any prior value.
func (q ImagesQuery) WhereModelVersionID(id int) ImagesQuery {
	q.state = q.state.withNumeric("modelVersionId", id)
	return q
}

// WherePostID filters to images belonging to a post. Replaces any prior value.
func (q ImagesQuery) WherePostID(id int) ImagesQuery {
	q.state = q.state.withNumeric("postId", id)
	return q
}

// WhereUsername filters by the posting user. Replaces any prior value.
func (q ImagesQuery) WhereUsername(username string) ImagesQuery {
	q.state = q.state.withExact("username", username)
	return q
}

// WhereNSFW filters by content rating level. Replaces any prior value.
func (q ImagesQuery) WhereNSFW(level NSFWLevel) ImagesQuery {
	q.state = q.state.withEnum("nsfw", enumNSFWLevel, string(level))
	return q
}

// WhereSort sets the result ordering. Replaces any prior value.
func (q ImagesQuery) WhereSort(sortOrder ImageSort) ImagesQuery {
	q.state = q.state.withEnum("sort", enumImageSort, string(sortOrder))
	return q
}

// WherePeriod scopes rankings to a time window. Replaces any prior value.
func (q ImagesQuery) WherePeriod(period Period) ImagesQuery {
	q.state = q.state.withEnum("period", enumPeriod, string(period))
	return q
}

// WithResultsLimit sets the page size (1-200).
func (q ImagesQuery) WithResultsLimit(limit int) ImagesQuery {
	q.state = q.state.withLimit(limit)
	return q
}

// WithPageIndex sets page-based navigation.
func (q ImagesQuery) WithPageIndex(page int) ImagesQuery {
	q.state = q.state.withPage(page)
	return q
}

// Execute runs the query. An optional cursor continues a previous sequence.
func (q ImagesQuery) Execute(ctx context.Context, cursor ...string) Result[Page[Image]] {
	return executeQuery[Image](ctx, q.requester, q.registry, "/api/v1/images", q.state, maxImagesLimit, cursor)
}

// Fetcher adapts the query for cursor iteration helpers.
func (q ImagesQuery) Fetcher() PageFetcher[Image] {
	return func(ctx context.Context, cursor string) Result[Page[Image]] {
		if cursor == "" {
			return q.Execute(ctx)
		}

		return q.Execute(ctx, cursor)
	}
}
