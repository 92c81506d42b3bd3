package bankapi

import (
	"context"
	"fmt"
	"iter"
)

// Page is one list response.
type Page[T any] struct {
	Data       []T     `json:"data"        yaml:"data"`
	NextCursor *string `json:"next_cursor" yaml:"next_cursor"`
}

// HasNextPage reports whether the server returned a cursor.
func (p *Page[T]) HasNextPage() bool {
	return p != nil && p.NextCursor != nil && *p.NextCursor != ""
}

// PageFetcher re-issues the original list call with cursor substituted.
// An empty cursor requests the first page.
type PageFetcher[T any] func(ctx context.Context, cursor string) (*Page[T], error)

// Pager walks cursor-paginated results forward. Each advance overwrites the
// previous page. A Pager is not safe for concurrent use; callers must not
// advance the same Pager from more than one goroutine.
type Pager[T any] struct {
	ctx   context.Context
	fetch PageFetcher[T]
	page  *Page[T]
	pos   int
}

// NewPager creates a Pager positioned on first.
func NewPager[T any](ctx context.Context, first *Page[T], fetch PageFetcher[T]) *Pager[T] {
	if first == nil {
		first = &Page[T]{}
	}

	return &Pager[T]{
		ctx:   ctx,
		fetch: fetch,
		page:  first,
	}
}

// Records returns the current page's records in server order.
func (p *Pager[T]) Records() []T {
	return p.page.Data
}

// Page returns the current page.
func (p *Pager[T]) Page() *Page[T] {
	return p.page
}

// HasNextPage reports whether another page can be fetched.
func (p *Pager[T]) HasNextPage() bool {
	return p.page.HasNextPage()
}

// NextPage fetches the page after the current one. It returns
// ErrEndOfResults once the last page has been reached.
func (p *Pager[T]) NextPage() error {
	if !p.page.HasNextPage() {
		return ErrEndOfResults
	}

	next, err := p.fetch(p.ctx, *p.page.NextCursor)
	if err != nil {
		return fmt.Errorf("fetching next page: %w", err)
	}

	if next == nil {
		next = &Page[T]{}
	}

	p.page = next
	p.pos = 0

	return nil
}

// All yields every remaining record across pages. The walk is forward-only:
// records already yielded are not yielded again by a later call.
func (p *Pager[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			for p.pos < len(p.page.Data) {
				item := p.page.Data[p.pos]
				p.pos++

				if !yield(item, nil) {
					return
				}
			}

			if !p.page.HasNextPage() {
				return
			}

			err := p.NextPage()
			if err != nil {
				var zero T

				yield(zero, err)

				return
			}
		}
	}
}

// PaginationIterator yields records one at a time, fetching pages lazily.
type PaginationIterator[T any] struct {
	ctx   context.Context
	fetch PageFetcher[T]
	pager *Pager[T]
	err   error
	done  bool
}

// NewPaginationIterator creates an iterator; no request is made until the
// first call to HasNext or Next.
func NewPaginationIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether Next will return an item or a pending error.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.done {
		return false
	}

	if it.err != nil {
		return true
	}

	if it.pager == nil {
		first, err := it.fetch(it.ctx, "")
		if err != nil {
			it.err = fmt.Errorf("fetching first page: %w", err)

			return true
		}

		it.pager = NewPager(it.ctx, first, it.fetch)
	}

	for it.pager.pos >= len(it.pager.page.Data) {
		if !it.pager.HasNextPage() {
			it.done = true

			return false
		}

		err := it.pager.NextPage()
		if err != nil {
			it.err = err

			return true
		}
	}

	return true
}

// Next returns the next record.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrEndOfResults
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}

	item := it.pager.page.Data[it.pager.pos]
	it.pager.pos++

	return item, nil
}

// All collects every remaining record.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return all, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach calls fn for every remaining record, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// PaginationOptions bounds FetchAllPages.
type PaginationOptions struct {
	// MaxPages stops the walk after this many pages. Zero means no limit.
	MaxPages int
}

// DefaultPaginationOptions returns options without a page limit.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// FetchAllPages walks every page starting from the first and returns all records.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) ([]T, error) {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	first, err := fetch(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetching first page: %w", err)
	}

	pager := NewPager(ctx, first, fetch)
	all := append([]T(nil), pager.Records()...)

	for pages := 1; pager.HasNextPage(); pages++ {
		if options.MaxPages > 0 && pages >= options.MaxPages {
			break
		}

		err = pager.NextPage()
		if err != nil {
			return all, err
		}

		all = append(all, pager.Records()...)
	}

	return all, nil
}
