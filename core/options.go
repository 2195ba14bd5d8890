package core

// GraphOption configures a Graph at construction, following the
// functional-options pattern used throughout this module.
type GraphOption func(g *Graph)

// WithBuildWorkers sets the worker count Finalize uses for its sort of
// the edge list. A non-positive value (the default) falls back to
// runtime.NumCPU() inside workpool.New.
func WithBuildWorkers(n int) GraphOption {
	return func(g *Graph) { g.buildWorker = n }
}
