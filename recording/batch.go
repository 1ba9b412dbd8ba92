package recording

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of loading one session of a batch
type Result struct {
	Paths      Paths
	Descriptor *Descriptor
	Err        error
}

// LoadBatch loads independent sessions on up to limit parallel workers (unlimited when limit <= 0).
// A failed session does not stop the others; results keep input order.
func LoadBatch(ctx context.Context, sessions []Paths, limit int, options ...Option) []Result {
	results := make([]Result, len(sessions))
	opts := append(append([]Option{}, options...), WithEagerLoad(true))
	var group errgroup.Group
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i, paths := range sessions {
		i, paths := i, paths
		group.Go(func() error {
			results[i] = Result{Paths: paths}
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Descriptor, results[i].Err = New(ctx, paths, opts...)
			return nil
		})
	}
	_ = group.Wait()
	return results
}
