// Package shared holds the state the input and output tasks exchange.
// Each value sits in its own Cell; the two cells are never locked together.
package shared

import (
	"sync"

	"rgbknob/types"
)

// Cell guards one value with its own mutex. The lock is held only for a
// copy in or out, never across a sleep or a hardware sample.
type Cell[T any] struct {
	mu sync.Mutex
	v  T
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{v: initial}
}

// Load returns a copy of the current value.
func (c *Cell[T]) Load() T {
	c.mu.Lock()
	v := c.v
	c.mu.Unlock()
	return v
}

// Store replaces the value.
func (c *Cell[T]) Store(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Update runs fn on the value under the lock. fn must not block.
func (c *Cell[T]) Update(fn func(v *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.v)
}

// Levels is the shared brightness vector.
type Levels = Cell[types.RGBLevels]

// FrameRate is the shared refresh rate in full R-G-B cycles per second.
type FrameRate = Cell[uint32]

func NewLevels(initial types.RGBLevels) *Levels { return NewCell(initial) }
func NewFrameRate(initial uint32) *FrameRate    { return NewCell(initial) }
