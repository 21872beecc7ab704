// Package feed implements the relation and feed assembly layer: it turns
// id-list responses into ordered, per-item-resilient view model
// collections and keeps them consistent under optimistic mutations.
//
// The per-id fan-out is an interim integration strategy against a backend
// without batch endpoints. It is isolated here so a future batch endpoint
// replaces one function, not every page.
package feed

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// JoinFunc fetches the full record for a single id.
type JoinFunc[T any] func(ctx context.Context, id int64) (T, error)

// FallbackFunc synthesizes a placeholder for an id whose join failed.
type FallbackFunc[T any] func(id int64) T

// Assemble issues one join per id concurrently and assembles the results
// positionally: the output order is the input id order, never completion
// order, and len(result) == len(ids) always. A failed join degrades that
// position to fallback(id) without affecting siblings; nothing is
// cancelled and nothing fails fast. Duplicate ids are preserved as-is —
// the backend owns ordering and repetition.
//
// Concurrency is uncapped: id lists are bounded by a single feed page.
func Assemble[T any](ctx context.Context, ids []int64, join JoinFunc[T], fallback FallbackFunc[T]) []T {
	out := make([]T, len(ids))
	if len(ids) == 0 {
		return out
	}

	g := new(errgroup.Group)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			v, err := join(ctx, id)
			if err != nil {
				out[i] = fallback(id)
				return nil
			}
			out[i] = v
			return nil
		})
	}
	_ = g.Wait()
	return out
}
