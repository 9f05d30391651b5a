package markov

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BuildSharded splits tokens into at most shards overlapping pieces, indexes
// them concurrently and merges the results in shard order. Each piece carries
// the first order tokens of the next one so no window is lost at a boundary.
// The result is Equal to Build(tokens, order).
func BuildSharded(ctx context.Context, tokens []string, order, shards int) (*Index, error) {
	if order < 1 {
		return nil, configError("build sharded", ErrInvalidOrder)
	}

	if shards < 1 {
		return nil, configError("build sharded", ErrNoShards)
	}

	windows := len(tokens) - order
	if windows <= 0 {
		return newIndex(order), nil
	}

	if shards > windows {
		shards = windows
	}

	chunk := (windows + shards - 1) / shards
	pieces := make([]*Index, (windows+chunk-1)/chunk)

	group, ctx := errgroup.WithContext(ctx)
	for i := range pieces {
		start := i * chunk
		end := min(start+chunk, windows)

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			idx, err := Build(tokens[start:end+order], order)
			if err != nil {
				return err
			}

			pieces[i] = idx
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return Merge(pieces...)
}
