package rules

import (
	"fmt"

	"github.com/battlesnakeio/arena/geom"
)

const minPathCapacity = 8

// PathHistory records past head positions, newest first. It is a ring
// buffer that only grows when a push would overflow it.
type PathHistory struct {
	buf   []geom.Vec3
	first int
	n     int
}

// Len is the number of recorded positions.
func (p *PathHistory) Len() int { return p.n }

// PushFront records pos as the newest position.
func (p *PathHistory) PushFront(pos geom.Vec3) {
	if p.n == len(p.buf) {
		p.grow()
	}
	p.first = (p.first - 1 + len(p.buf)) % len(p.buf)
	p.buf[p.first] = pos
	p.n++
}

// Get returns the i-th newest position, 0 being the newest. Asking past the
// end is a programming error and panics.
func (p *PathHistory) Get(i int) geom.Vec3 {
	if i < 0 || i >= p.n {
		panic(fmt.Sprintf("rules: path index %d out of range [0,%d)", i, p.n))
	}
	return p.buf[(p.first+i)%len(p.buf)]
}

// Truncate drops the oldest positions so at most maxLen remain.
func (p *PathHistory) Truncate(maxLen int) {
	if maxLen < 0 {
		maxLen = 0
	}
	if p.n > maxLen {
		p.n = maxLen
	}
}

func (p *PathHistory) grow() {
	size := 2 * len(p.buf)
	if size < minPathCapacity {
		size = minPathCapacity
	}
	buf := make([]geom.Vec3, size)
	for i := 0; i < p.n; i++ {
		buf[i] = p.buf[(p.first+i)%len(p.buf)]
	}
	p.buf = buf
	p.first = 0
}
