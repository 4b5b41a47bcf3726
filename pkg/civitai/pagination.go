package civitai

import (
	"context"
)

// PageFetcher fetches one page of a cursor sequence. An empty cursor means
// the first page; the next cursor comes from the returned page's metadata.
type PageFetcher[T any] func(ctx context.Context, cursor string) Result[Page[T]]

// PaginationOptions configures bulk pagination helpers.
type PaginationOptions struct {
	// MaxPages limits how many pages are fetched (0 = unlimited).
	MaxPages int
}

// DefaultPaginationOptions returns sensible defaults for bulk fetching.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{MaxPages: 0}
}

// PageIterator iterates over items across a cursor-paginated sequence. The
// caller sequences pages; the iterator fetches the next one lazily when the
// current page's items are exhausted and the metadata still carries a cursor.
type PageIterator[T any] struct {
	ctx     context.Context
	fetch   PageFetcher[T]
	items   []T
	index   int
	cursor  string
	started bool
	done    bool
	failure *Failure
}

// NewPageIterator creates an iterator over a cursor sequence.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PageIterator[T] {
	return &PageIterator[T]{ctx: ctx, fetch: fetch}
}

// HasNext returns true if there are more items to fetch. It may trigger page
// fetches; a fetch failure is reported by the subsequent Next call.
func (it *PageIterator[T]) HasNext() bool {
	if it.failure != nil {
		return true // surface the failure through Next
	}

	// An empty page that still carries a cursor is not the end of the
	// sequence; only an absent cursor terminates it. Keep following the
	// chain until items arrive or the cursor runs out.
	for it.index >= len(it.items) && !it.done {
		it.fetchNextPage()

		if it.failure != nil {
			return true
		}
	}

	return it.index < len(it.items)
}

// Next returns the next item in server order. It returns a Failure wrapping
// ErrNoMoreItems semantics when the sequence is exhausted; callers should
// guard with HasNext.
func (it *PageIterator[T]) Next() (T, *Failure) {
	var zero T

	if it.failure != nil {
		failure := it.failure
		it.failure = nil

		return zero, failure
	}

	for it.index >= len(it.items) && !it.done {
		it.fetchNextPage()

		if it.failure != nil {
			failure := it.failure
			it.failure = nil

			return zero, failure
		}
	}

	if it.index >= len(it.items) {
		return zero, &Failure{Code: FailureInvalidQuery, Message: ErrNoMoreItems.Error()}
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

// All fetches every remaining item into a single slice, preserving server
// order across pages.
func (it *PageIterator[T]) All() ([]T, *Failure) {
	var all []T

	for it.HasNext() {
		item, failure := it.Next()
		if failure != nil {
			return all, failure
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping on the first failure
// or fn error.
func (it *PageIterator[T]) ForEach(fn func(item T) error) *Failure {
	for it.HasNext() {
		item, failure := it.Next()
		if failure != nil {
			return failure
		}

		err := fn(item)
		if err != nil {
			return &Failure{Code: FailureCancelled, Message: "iteration stopped", Detail: err.Error()}
		}
	}

	return nil
}

func (it *PageIterator[T]) fetchNextPage() {
	if it.started && it.cursor == "" {
		it.done = true
		return
	}

	result := it.fetch(it.ctx, it.cursor)
	it.started = true

	page, ok := result.Value()
	if !ok {
		it.failure = result.Failure()
		it.done = true

		return
	}

	it.items = page.Items
	it.index = 0
	it.cursor = page.NextCursor()

	if it.cursor == "" {
		it.done = true
	}
}

// CollectAllPages follows the cursor chain and returns all items in server
// order. Options may cap the number of pages fetched.
func CollectAllPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) ([]T, *Failure) {
	if fetch == nil {
		return nil, &Failure{Code: FailureInvalidQuery, Message: ErrNilFetcher.Error()}
	}

	var (
		all    []T
		cursor string
	)

	for pageNum := 1; ; pageNum++ {
		result := fetch(ctx, cursor)

		page, ok := result.Value()
		if !ok {
			return all, result.Failure()
		}

		all = append(all, page.Items...)

		cursor = page.NextCursor()
		if cursor == "" {
			return all, nil
		}

		if options != nil && options.MaxPages > 0 && pageNum >= options.MaxPages {
			return all, nil
		}
	}
}

// StreamPages follows the cursor chain and delivers one PageResult per page
// on the returned channel. The channel is closed when the sequence ends, a
// failure occurs, or ctx is cancelled.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		var cursor string

		for pageNum := 1; ; pageNum++ {
			result := fetch(ctx, cursor)

			page, ok := result.Value()
			if !ok {
				select {
				case results <- PageResult[T]{Failure: result.Failure()}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Items, Metadata: page.Metadata}:
			case <-ctx.Done():
				return
			}

			cursor = page.NextCursor()
			if cursor == "" {
				return
			}

			if options != nil && options.MaxPages > 0 && pageNum >= options.MaxPages {
				return
			}
		}
	}()

	return results
}

// PageResult is one delivered page from StreamPages.
type PageResult[T any] struct {
	Items    []T
	Metadata *PageMetadata
	Failure  *Failure
}
