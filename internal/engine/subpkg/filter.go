package subpkg

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Filter returns the files that match, keeping their input order.
// Classification runs on up to workers goroutines. A precondition panic in any
// worker is re-raised on the calling goroutine once all workers have stopped.
func (m *Matcher) Filter(ctx context.Context, files []string, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}

	matched := make([]bool, len(files))
	var (
		once      sync.Once
		recovered any
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { recovered = r })
					err = context.Canceled
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			matched[i] = m.Match(file)
			return nil
		})
	}

	err := g.Wait()
	if recovered != nil {
		panic(recovered)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(files))
	for i, file := range files {
		if matched[i] {
			out = append(out, file)
		}
	}
	return out, nil
}
