package spirv

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DecodeAll decodes independent streams concurrently, at most
// Options.Concurrency at a time. Modules are returned in input order. The
// first failure cancels streams that have not started.
func (d *Decoder) DecodeAll(ctx context.Context, streams [][]byte) ([]*Module, error) {
	out := make([]*Module, len(streams))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.options.Concurrency)

	for i, data := range streams {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := d.Decode(data)
			if err != nil {
				return fmt.Errorf("stream %d: %w", i, err)
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
