// Package idgen issues unique, monotonically increasing integer identifiers.
package idgen

import "sync/atomic"

// Generator produces a contiguous increasing id sequence starting at seed+1.
// Safe for concurrent use; two concurrent Next calls never return the same
// value and the generator itself never skips a value.
type Generator struct {
	last atomic.Int64
}

// New returns a generator whose first emitted id is seed+1. Seed with the
// highest id already present in the dataset.
func New(seed int) *Generator {
	g := &Generator{}
	g.last.Store(int64(seed))
	return g
}

// Next returns the next id. Every returned value is strictly greater than
// all previously returned values and than the seed.
func (g *Generator) Next() int {
	return int(g.last.Add(1))
}
