// Package fanout runs a function over a slice of items with bounded
// concurrency, keeping results in input order. Boards use it to fetch the six
// stage columns in parallel.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines at once.
// Results are returned in the same order as items. A maxWorkers below one is
// treated as one.
//
// Once ctx is canceled, items that have not started get ctx.Err() as their
// result and fn is not called for them. Calls already running are left to notice
// the cancellation themselves.
//
// Run blocks until every item has a result. Empty input yields an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}
			// A slot freed after cancellation races ctx.Done in the select.
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Collect splits results into the successful values, in order, and the
// joined errors of the failures.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values = append(values, r.Value)
	}
	return values, errors.Join(errs...)
}
