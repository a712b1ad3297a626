package model

import "sync"

// countPool recycles the neighbor-count buffers used by Board.Update
type countPool struct {
	pool sync.Pool
}

func newCountPool() *countPool {
	return &countPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]uint8)
			},
		},
	}
}

// Get returns a zeroed buffer of length n
func (p *countPool) Get(n int) []uint8 {
	buf := p.pool.Get().(*[]uint8)
	if cap(*buf) < n {
		*buf = make([]uint8, n)
	}
	counts := (*buf)[:n]
	clear(counts)
	return counts
}

// Put returns a buffer to the pool
func (p *countPool) Put(counts []uint8) {
	p.pool.Put(&counts)
}
