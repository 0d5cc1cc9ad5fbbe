// Package world provides an in-memory World that keeps track of the
// segments currently in play.
package world

import (
	"github.com/battlesnakeio/arena/rules"
	log "github.com/sirupsen/logrus"
)

// Registry is a rules.World that remembers every live segment. Segments are
// mutated by the round as it steps, so every method must be called from the
// goroutine stepping that round.
type Registry struct {
	live      map[*rules.Segment]struct{}
	spawned   int
	despawned int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{live: map[*rules.Segment]struct{}{}}
}

// Spawn adds seg to the world.
func (r *Registry) Spawn(seg *rules.Segment) {
	r.live[seg] = struct{}{}
	r.spawned++
}

// Despawn removes seg from the world. Removing a segment that is not in
// play is logged and otherwise ignored.
func (r *Registry) Despawn(seg *rules.Segment) {
	if _, ok := r.live[seg]; !ok {
		log.WithField("pos", seg.Pos).Warn("despawn of unknown segment")
		return
	}
	delete(r.live, seg)
	r.despawned++
}

// Len is the number of segments in play.
func (r *Registry) Len() int {
	return len(r.live)
}

// Stats returns how many segments have been spawned and despawned.
func (r *Registry) Stats() (spawned, despawned int) {
	return r.spawned, r.despawned
}

// Snapshot copies the live segments as they are between steps. Order is
// unspecified.
func (r *Registry) Snapshot() []rules.Segment {
	out := make([]rules.Segment, 0, len(r.live))
	for seg := range r.live {
		out = append(out, *seg)
	}
	return out
}
