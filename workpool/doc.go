// Package workpool provides the fork-join scheduling primitive every phase
// of the parallel Borůvka driver is built on, plus the two data-parallel
// building blocks that need more than a plain parallel-for: a lexicographic
// sort and an inclusive prefix sum.
//
// A Pool has no state beyond a worker count; RunRange and RunIndexed
// partition an index range into contiguous chunks, hand one chunk to each
// goroutine, and
// rejoin at a sync.WaitGroup barrier before returning — this is the "single
// barrier separates phases" scheduling model described for the driver.
// Nothing in this package retries, cancels, or reports partial progress: a
// phase either completes for every index or the caller's work function
// panics; the panic is not recovered inside the worker goroutine, so it
// terminates the program rather than returning to the caller.
package workpool
