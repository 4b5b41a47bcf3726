package civitai

// PageMetadata describes the pagination state of a page of results. The API
// uses two addressing schemes: page-index fields (CurrentPage/PageSize/
// TotalPages plus NextPage/PrevPage locators) and an opaque NextCursor token.
// A response may populate either scheme, both, or neither; consumers must not
// assume both are present.
type PageMetadata struct {
	TotalItems  int    `json:"totalItems,omitempty"  yaml:"totalItems,omitempty"`
	CurrentPage int    `json:"currentPage,omitempty" yaml:"currentPage,omitempty"`
	PageSize    int    `json:"pageSize,omitempty"    yaml:"pageSize,omitempty"`
	TotalPages  int    `json:"totalPages,omitempty"  yaml:"totalPages,omitempty"`
	NextPage    string `json:"nextPage,omitempty"    yaml:"nextPage,omitempty"`
	PrevPage    string `json:"prevPage,omitempty"    yaml:"prevPage,omitempty"`
	NextCursor  string `json:"nextCursor,omitempty"  yaml:"nextCursor,omitempty"`
}

// HasNextCursor reports whether a continuation cursor is present. An absent
// cursor means the sequence has terminated.
func (m *PageMetadata) HasNextCursor() bool {
	return m != nil && m.NextCursor != ""
}

// Page is one page of results: the items in server order plus optional
// pagination metadata. Item order is significant and preserved as returned.
type Page[T any] struct {
	Items    []T           `json:"items"              yaml:"items"`
	Metadata *PageMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NextCursor returns the continuation cursor, or "" when the sequence has
// terminated.
func (p Page[T]) NextCursor() string {
	if p.Metadata == nil {
		return ""
	}

	return p.Metadata.NextCursor
}

// ModelsPage is a page of Model results.
type ModelsPage = Page[Model]

// CreatorsPage is a page of Creator results.
type CreatorsPage = Page[Creator]

// TagsPage is a page of Tag results.
type TagsPage = Page[Tag]

// ImagesPage is a page of Image results.
type ImagesPage = Page[Image]
