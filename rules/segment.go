package rules

import "github.com/battlesnakeio/arena/geom"

// Segment is one body piece of a snake. Pos is the segment centre.
type Segment struct {
	Pos      geom.Vec3
	Velocity geom.Vec3
	Yaw      float64
	HeadYaw  float64
	BodyYaw  float64
	Color    Color
}

func newSegment(pos geom.Vec3, color Color) *Segment {
	return &Segment{Pos: pos, Color: color}
}

// SetYaw points the segment, its head and its body the same way.
func (s *Segment) SetYaw(yaw float64) {
	yaw = geom.WrapDegrees(yaw)
	s.Yaw = yaw
	s.HeadYaw = yaw
	s.BodyYaw = yaw
}

// move integrates one tick of velocity.
func (s *Segment) move() {
	s.Pos = s.Pos.Add(s.Velocity)
}
