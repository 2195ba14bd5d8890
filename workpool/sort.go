package workpool

import "github.com/jfcg/sorty"

// Sort runs a parallel, unstable sort over the index range [0, n) using
// the caller-supplied less/swap pair, delegating to sorty — the same
// parallel sort a sibling CSR graph-converter pipeline in this engine's
// lineage already reaches for when reordering a large flat array across
// goroutines. less(i, j) reports whether element i must sort before
// element j; swap(i, j) exchanges the underlying elements at i and j.
//
// Sort does not allocate an index array: sorty drives the comparison and
// swap callbacks directly against the caller's storage, which is why the
// edge array can be sorted in place round after round without extra
// copies.
func (p Pool) Sort(n int, less func(i, j int) bool, swap func(i, j int)) {
	if n < 2 {
		return
	}

	sorty.Mxg = uint32(p.workers(n)) * 2
	sorty.Sort(n, func(i, k, r, s int) bool {
		if less(i, k) {
			if r != s {
				swap(r, s)
			}
			return true
		}
		return false
	})
}
