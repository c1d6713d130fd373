package dvid

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NumCPU is the number of workers used by parallel voxel passes unless overridden.
var NumCPU = runtime.NumCPU()

// ParallelFor calls fn over contiguous, disjoint sub-ranges [begin, end) that together
// cover [0, n).  At most workers calls run at once; if workers <= 0, NumCPU is used.
// It returns only after every sub-range has been processed.
func ParallelFor(n, workers int, fn func(begin, end int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = NumCPU
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for begin := 0; begin < n; begin += chunk {
		begin, end := begin, begin+chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			fn(begin, end)
			return nil
		})
	}
	g.Wait()
}
