package rules

import (
	"math/rand"

	"github.com/battlesnakeio/arena/geom"
)

// Straight keeps whatever heading the head already has.
var Straight = SteeringFunc(func(head Segment) float64 {
	return head.Yaw
})

// Fixed always steers toward yaw.
func Fixed(yaw float64) Steering {
	return SteeringFunc(func(Segment) float64 { return yaw })
}

// Wander drifts the heading by a random amount each tick.
type Wander struct {
	rng     *rand.Rand
	MaxTurn float64
}

// NewWander returns a Wander seeded with seed.
func NewWander(seed int64, maxTurn float64) *Wander {
	return &Wander{
		rng:     rand.New(rand.NewSource(seed)),
		MaxTurn: maxTurn,
	}
}

// Yaw picks a heading within MaxTurn of the current one.
func (w *Wander) Yaw(head Segment) float64 {
	return head.Yaw + (w.rng.Float64()*2-1)*w.MaxTurn
}

// Homing steers back toward the middle of Box whenever the head comes
// within Margin of a side wall and defers to Next the rest of the time.
type Homing struct {
	Box    geom.Box
	Margin float64
	Next   Steering
}

// Yaw implements Steering.
func (h *Homing) Yaw(head Segment) float64 {
	if h.nearWall(head.Pos) {
		return geom.VectorToAngle(h.Box.Center().Sub(head.Pos))
	}
	if h.Next == nil {
		return head.Yaw
	}
	return h.Next.Yaw(head)
}

func (h *Homing) nearWall(p geom.Vec3) bool {
	minX, maxX := float64(h.Box.Min.X), float64(h.Box.Max.X+1)
	minZ, maxZ := float64(h.Box.Min.Z), float64(h.Box.Max.Z+1)
	return p.X-minX < h.Margin || maxX-p.X < h.Margin ||
		p.Z-minZ < h.Margin || maxZ-p.Z < h.Margin
}
