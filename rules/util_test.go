package rules

import "github.com/battlesnakeio/arena/geom"

// recordingWorld tracks which segments are in play.
type recordingWorld struct {
	live      map[*Segment]bool
	spawned   int
	despawned int
}

func newRecordingWorld() *recordingWorld {
	return &recordingWorld{live: map[*Segment]bool{}}
}

func (w *recordingWorld) Spawn(s *Segment) {
	w.live[s] = true
	w.spawned++
}

func (w *recordingWorld) Despawn(s *Segment) {
	delete(w.live, s)
	w.despawned++
}

// eliminations collects EliminateFunc calls.
type eliminations struct {
	calls [][2]Owner
}

func (e *eliminations) record(victim, eliminator Owner) {
	e.calls = append(e.calls, [2]Owner{victim, eliminator})
}

var wideArena = geom.NewBox(geom.Cell{X: -2000, Z: -2000}, geom.Cell{X: 2000, Z: 2000})

// bodyAt builds a body with segments at the given points, head first.
func bodyAt(points ...geom.Vec3) *Body {
	b := &Body{length: len(points)}
	for _, p := range points {
		b.segments = append(b.segments, newSegment(p, "test"))
	}
	return b
}

// tickN advances s n move ticks.
func tickN(s *Snake, n int) {
	for i := 0; i < n; i++ {
		s.Tick(true)
	}
}

// fillTicks is the number of move ticks a body of length needs to spawn
// every segment.
func fillTicks(length int) int {
	return (length-1)*Separation + 1
}
