// Package workerpool runs the ensemble driver's per-member work across a
// fixed-size pool of goroutines, capped at the ensemble size, with
// atomic work-stealing for load balancing and cooperative cancellation:
// once any member reports a failure, other members skip remaining work
// without starting new iterations.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Run executes fn(i) for every i in [0, n), distributing indices across
// workers workers via atomic work-stealing. If workers <= 0, it defaults
// to runtime.GOMAXPROCS(0); it is always capped at n. fn returns an error
// to report a failed member; Run records the first error seen, flips a
// shared cancellation flag so other workers stop starting new indices,
// and returns that first error once all in-flight members finish their
// current index.
func Run(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	if workers <= 1 {
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		nextIdx   atomic.Int64
		cancelled atomic.Bool
		firstErr  error
		errOnce   sync.Once
		wg        sync.WaitGroup
	)

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				if cancelled.Load() {
					return
				}
				idx := int(nextIdx.Add(1)) - 1
				if idx >= n {
					return
				}
				if err := fn(idx); err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancelled.Store(true)
					})
					return
				}
			}
		}()
	}
	wg.Wait()

	return firstErr
}
