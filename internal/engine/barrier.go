package engine

import (
	"fmt"
	"sync"
)

// Barrier blocks callers until a fixed number of parties have arrived, then
// releases them all together and resets for the next cycle.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
}

// NewBarrier creates a reusable barrier for the given number of parties.
func NewBarrier(parties int) (*Barrier, error) {
	if parties <= 0 {
		return nil, fmt.Errorf("engine: barrier party count must be positive, got %d", parties)
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b, nil
}

// Await blocks until all parties have called it for the current cycle. The
// last arrival wakes the rest and opens the next cycle. Writes made before
// Await are visible to every party after it returns.
func (b *Barrier) Await() {
	b.mu.Lock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
