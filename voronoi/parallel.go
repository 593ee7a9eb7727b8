package voronoi

import (
	"runtime"
	"sync"
)

// Below this many indices the goroutine overhead outweighs the work.
const minParallelItems = 64

// parallelFor calls fn(i) for every i in [0, n), spread over at most workers
// goroutines in contiguous chunks. workers <= 0 means GOMAXPROCS. fn must only
// write to state owned by index i; the call returns once every index is done.
// A panic in any worker is re-raised on the calling goroutine so the public
// API can still recover it.
func parallelFor(n, workers int, fn func(i int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 || n < minParallelItems {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		panicked  interface{}
	)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { panicked = r })
				}
			}()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
	if panicked != nil {
		panic(panicked)
	}
}
