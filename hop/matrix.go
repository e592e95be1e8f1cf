package hop

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treevec/treevec"
)

// Matrix returns the symmetric k×k matrix of pairwise similarities of vs.
// The diagonal holds each vector's self-similarity, n + internal count.
//
// Pairs are evaluated concurrently, at most Workers at a time (one pair at
// a time when Workers < 2); segments inside a pair are then evaluated
// sequentially. Cancelling ctx stops scheduling new pairs.
func Matrix(ctx context.Context, vs []treevec.Vector, opts ...Option) ([][]int, error) {
	o := buildOptions(opts)
	inner := o
	inner.Workers = 1

	m := make([][]int, len(vs))
	for i := range m {
		m[i] = make([]int, len(vs))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.Workers, 1))
	for i := range vs {
		for j := i; j < len(vs); j++ {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				sim, err := Similarity(vs[i], vs[j], func(x *Options) { *x = inner })
				if err != nil {
					return fmt.Errorf("pair (%d,%d): %w", i, j, err)
				}
				m[i][j], m[j][i] = sim, sim

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return m, nil
}
