package workpool

import "sync"

// PrefixSum computes the parallel inclusive prefix sum of in: the result's
// element i holds the sum of in[0..i]. It is deterministic regardless of
// worker count, which is what lets Phase 4/5 of the driver size compacted
// arrays identically whether num_workers is 1 or many.
//
// The algorithm is the classic three-pass block scan: each worker computes
// an independent inclusive scan over its contiguous chunk (pass 1, fully
// parallel), the per-chunk totals are carried forward with a short
// sequential pass over just the chunk boundaries (pass 2, O(workers)), and
// each chunk's elements are bumped by its carry in parallel (pass 3).
func PrefixSum(p Pool, in []uint32) []uint32 {
	n := len(in)
	out := make([]uint32, n)
	if n == 0 {
		return out
	}

	chunks := partition(n, p.workers(n))

	// Pass 1: independent local inclusive scan within each chunk.
	var wg0 sync.WaitGroup
	wg0.Add(len(chunks))
	for _, c := range chunks {
		go func(c chunk) {
			defer wg0.Done()
			out[c.Lo] = in[c.Lo]
			for i := c.Lo + 1; i < c.Hi; i++ {
				out[i] = out[i-1] + in[i]
			}
		}(c)
	}
	wg0.Wait()

	// Pass 2: sequential carry over chunk totals (O(workers), negligible
	// next to the O(n) work in passes 1 and 3).
	carries := make([]uint32, len(chunks))
	for i := 1; i < len(chunks); i++ {
		carries[i] = carries[i-1] + out[chunks[i-1].Hi-1]
	}

	// Pass 3: add each chunk's carry to every element of that chunk,
	// skipping chunk 0 whose carry is always zero.
	var wg1 sync.WaitGroup
	wg1.Add(len(chunks) - 1)
	for i := 1; i < len(chunks); i++ {
		go func(c chunk, carry uint32) {
			defer wg1.Done()
			for j := c.Lo; j < c.Hi; j++ {
				out[j] += carry
			}
		}(chunks[i], carries[i])
	}
	wg1.Wait()

	return out
}
