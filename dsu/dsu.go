package dsu

import (
	"fmt"
	"sync/atomic"

	"github.com/abarankab/parallel-boruvka/core"
	"github.com/abarankab/parallel-boruvka/parray"
)

// DSU is a lock-free union-find over [0, n). The zero value is not
// usable; construct one with New.
type DSU struct {
	words parray.Array[atomic.Uint64]
}

// New returns a DSU over n singleton sets, one per id in [0, n), each
// initially its own root with rank 0.
func New(n uint32) *DSU {
	words := parray.New[atomic.Uint64](int(n))
	slice := words.Slice()
	for i := uint32(0); i < n; i++ {
		slice[i].Store(core.Pack(0, i))
	}
	return &DSU{words: words}
}

func (d *DSU) check(x uint32) {
	if int(x) >= d.words.Len() {
		panic(fmt.Sprintf("dsu: id %d out of range [0, %d)", x, d.words.Len()))
	}
}

func (d *DSU) load(x uint32) uint64 {
	return d.words.Slice()[x].Load()
}

// FindRoot walks parent links starting at x, path-halving on every step,
// and returns the id whose parent equals itself. It panics if x is out
// of range.
func (d *DSU) FindRoot(x uint32) uint32 {
	d.check(x)
	for {
		w := d.load(x)
		parent := core.Lo(w)
		if parent == x {
			return x
		}

		pw := d.load(parent)
		grandparent := core.Lo(pw)

		// Path halving: attempt to skip x directly to its grandparent. A
		// failed CAS means some other goroutine already advanced x's
		// parent; the walk simply continues from the observed parent.
		d.words.Slice()[x].CompareAndSwap(w, core.Pack(core.Hi(w), grandparent))
		x = parent
	}
}

// SameSet reports whether x and y currently belong to the same set. It
// recomputes both roots until either they agree, or the root found for
// x is confirmed still a root — guarding against a race where x and y
// compare unequal only because x's root was just re-parented by a
// concurrent Unite. It panics if x or y is out of range.
func (d *DSU) SameSet(x, y uint32) bool {
	d.check(x)
	d.check(y)
	for {
		rx := d.FindRoot(x)
		ry := d.FindRoot(y)
		if rx == ry {
			return true
		}
		if core.Lo(d.load(rx)) == rx {
			return false
		}
	}
}

// Unite merges the sets containing x and y. It is idempotent: uniting
// two ids already in the same set is a no-op. The winning root is the
// one with the higher rank; on a rank tie the smaller id wins and the
// winner's rank is bumped by one with a single, unretried CAS — losing
// that CAS only leaves the tree a little shallower than its rank
// claims, which costs balance, not correctness. It panics if x or y is
// out of range.
func (d *DSU) Unite(x, y uint32) {
	d.check(x)
	d.check(y)
	for {
		rx := d.FindRoot(x)
		ry := d.FindRoot(y)
		if rx == ry {
			return
		}

		wx := d.load(rx)
		wy := d.load(ry)
		rankX, rankY := core.Hi(wx), core.Hi(wy)

		winner, loser := rx, ry
		winnerWord, loserWord := wx, wy
		switch {
		case rankY > rankX:
			winner, loser = ry, rx
			winnerWord, loserWord = wy, wx
		case rankX > rankY:
			// winner already rx.
		default:
			if ry < rx {
				winner, loser = ry, rx
				winnerWord, loserWord = wy, wx
			}
		}

		if !d.words.Slice()[loser].CompareAndSwap(loserWord, core.Pack(core.Hi(loserWord), winner)) {
			continue
		}

		if rankX == rankY {
			d.words.Slice()[winner].CompareAndSwap(winnerWord, core.Pack(core.Hi(winnerWord)+1, core.Lo(winnerWord)))
		}
		return
	}
}

// Len returns the number of ids this DSU was constructed over.
func (d *DSU) Len() int {
	return d.words.Len()
}
