package workpool

import (
	"runtime"
	"sync"
)

// Pool sizes the fork-join worker count used for every phase of the
// parallel Borůvka driver and for the data-parallel primitives in this
// package. A Pool carries no other state; it is cheap to copy and safe to
// reuse across rounds.
type Pool struct {
	// Size is the number of goroutines RunRange/RunIndexed fan out to. Values
	// less than 1 are treated as 1.
	Size int
}

// New returns a Pool with the given worker count. A non-positive size
// falls back to runtime.NumCPU(), matching the driver's default.
func New(size int) Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return Pool{Size: size}
}

// workers clamps the configured size to at least 1 and at most n, since a
// chunk can never be smaller than one element.
func (p Pool) workers(n int) int {
	w := p.Size
	if w < 1 {
		w = 1
	}
	if n > 0 && w > n {
		w = n
	}
	return w
}

// chunk is a half-open index range [Lo, Hi) owned by one worker.
type chunk struct {
	Lo, Hi int
}

// partition splits [0, n) into up to `workers` contiguous, near-equal
// chunks. The first n%workers chunks each take one extra element, so
// chunk sizes differ by at most one, mirroring the static
// scheduling the reference OpenMP "#pragma omp for" used.
func partition(n, workers int) []chunk {
	if n == 0 {
		return nil
	}
	chunks := make([]chunk, 0, workers)
	base := n / workers
	rem := n % workers
	lo := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		if size == 0 {
			continue
		}
		hi := lo + size
		chunks = append(chunks, chunk{Lo: lo, Hi: hi})
		lo = hi
	}
	return chunks
}

// RunRange partitions [0, n) into contiguous chunks, one per worker, and
// runs fn(lo, hi) for each chunk concurrently. It blocks until every
// worker has returned (the phase barrier). fn must treat [lo, hi) as its
// exclusive slice of work; indices outside that range belong to other
// workers and must not be touched.
func (p Pool) RunRange(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	chunks := partition(n, p.workers(n))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		go func(c chunk) {
			defer wg.Done()
			fn(c.Lo, c.Hi)
		}(c)
	}
	wg.Wait()
}

// RunIndexed is RunRange for callers that want one callback per index
// rather than a range. It is a thin convenience wrapper; phases that can
// exploit contiguity (Phase 2's sorted-run collapse) call RunRange
// directly instead.
func (p Pool) RunIndexed(n int, fn func(i int)) {
	p.RunRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}
