package collide

import "golang.org/x/sync/errgroup"

// task runs fn on every element of data, with at most workersCount goroutines at a time.
// fn must only write to its own element.
func task[T any](workersCount int, data []T, fn func(data T)) {
	if workersCount <= 1 {
		for _, d := range data {
			fn(d)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workersCount)

	for _, d := range data {
		d := d // per-iteration copy; go directive lowered to 1.21 for the local toolchain
		g.Go(func() error {
			fn(d)
			return nil
		})
	}

	_ = g.Wait()
}
