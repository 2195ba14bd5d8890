package boruvka

import "math/bits"

// config holds CalculateMST's tunables. Use defaultConfig to get the
// defaults (all CPUs, the standard round cap), then apply Option values
// to override individual fields.
type config struct {
	workers  int
	roundCap int
}

// Option configures a CalculateMST call. All Option functions modify
// the pointed-to config.
type Option func(*config)

// WithWorkers sets the number of goroutines the fork-join pool fans out
// to for every phase of every round. n <= 0 falls back to
// runtime.NumCPU() (applied by workpool.New, not here).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithRoundCap overrides the defensive round-cap safety valve that
// detects a disconnected input graph. The default is
// 2*bits.Len32(n0)+4 for an n0-node graph.
func WithRoundCap(n int) Option {
	return func(c *config) { c.roundCap = n }
}

// defaultConfig returns the config CalculateMST starts from before
// applying the caller's options, sized for a graph with n0 nodes.
func defaultConfig(n0 uint32) config {
	return config{
		workers:  0,
		roundCap: 2*bits.Len32(n0) + 4,
	}
}
