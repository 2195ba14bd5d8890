// Package core defines the Edge and Graph types the parallel Borůvka
// driver operates on, the packed 64-bit word codec both the driver and
// the dsu package build their atomic cells from, and the sentinel errors
// raised while a Graph is being assembled.
//
// A Graph is built once over the node-id range fixed by NewGraph,
// edge-by-edge through AddEdge, then sealed with Finalize, which sorts the edge list
// lexicographically by (From, To, Weight) and marks the Graph read-only.
// Every later mutation attempt returns ErrAlreadyFinalized. This mirrors
// the reference graph library's pattern of a guarded building phase
// followed by read-only consumption, narrowed to the one shape the
// driver needs: a flat node-id range plus a symmetric edge multiset.
package core
