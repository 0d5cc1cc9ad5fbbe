package rules

import "github.com/battlesnakeio/arena/geom"

const (
	// Separation is the number of path entries between consecutive segments.
	Separation = 3
	// Speed is how far the head advances on a move tick.
	Speed = 5.0 / 9.0
	// Turning is the most the head can turn in one tick, in degrees.
	Turning = 15.0
	// SegmentRadius is the collision radius of every segment.
	SegmentRadius = 0.5
	// DefaultLength is the target length of a freshly spawned snake.
	DefaultLength = 5
)

// Body is the segment chain of one snake. Trailing segments never look at
// the segment ahead of them, they are placed on the head's recorded path.
type Body struct {
	length   int
	segments []*Segment
	path     PathHistory
	color    Color
}

// NewBody spawns a single head segment at pos facing yaw.
func NewBody(w World, color Color, pos geom.Vec3, yaw float64) *Body {
	b := &Body{
		length: DefaultLength,
		color:  color,
	}
	head := newSegment(pos, color)
	head.SetYaw(yaw)
	b.segments = append(b.segments, head)
	w.Spawn(head)
	return b
}

// Tick advances the body by one step, steering the head toward
// steeringYaw. The head only advances and records its path when move is
// set; otherwise trailing segments just settle onto their targets.
func (b *Body) Tick(move bool, steeringYaw float64, w World) {
	// Growth waits until the path reaches back far enough to place the new
	// tail.
	var spawned []*Segment
	for len(b.segments) < b.length && b.path.Len() >= len(b.segments)*Separation {
		seg := newSegment(b.path.Get(len(b.segments)*Separation-1), b.color)
		b.segments = append(b.segments, seg)
		spawned = append(spawned, seg)
	}
	for len(b.segments) > b.length {
		last := len(b.segments) - 1
		w.Despawn(b.segments[last])
		b.segments[last] = nil
		b.segments = b.segments[:last]
	}

	for i, seg := range b.segments {
		if i == 0 {
			yaw := seg.Yaw + geom.ClampAngleDelta(seg.Yaw, steeringYaw, Turning)
			seg.SetYaw(yaw)
			if move {
				dir := geom.AngleToVector(yaw).Scale(Speed)
				seg.Velocity = geom.Vec3{X: dir.X, Y: seg.Velocity.Y, Z: dir.Z}
				b.path.PushFront(seg.Pos)
			} else {
				seg.Velocity = geom.Vec3{Y: seg.Velocity.Y}
			}
			continue
		}

		target := b.path.Get(i*Separation - 1)
		seg.Velocity = geom.Vec3{
			X: target.X - seg.Pos.X,
			Y: seg.Velocity.Y,
			Z: target.Z - seg.Pos.Z,
		}
		seg.SetYaw(geom.VectorToAngle(seg.Velocity))
	}

	b.path.Truncate(len(b.segments) * Separation)

	for _, seg := range spawned {
		w.Spawn(seg)
	}
	// Velocities above were all computed from last tick's positions.
	for _, seg := range b.segments {
		seg.move()
	}
}

// Grow raises the target length by one. The new segment appears once the
// path is long enough to place it.
func (b *Body) Grow() {
	b.length++
}

// Length is the target length.
func (b *Body) Length() int { return b.length }

// Len is the number of live segments.
func (b *Body) Len() int { return len(b.segments) }

// Head returns the head segment, or nil once the body has been released.
func (b *Body) Head() *Segment {
	if len(b.segments) == 0 {
		return nil
	}
	return b.segments[0]
}

// HeadPosition returns the centre of the head. It panics if the body has no
// segments.
func (b *Body) HeadPosition() geom.Vec3 {
	if len(b.segments) == 0 {
		panic("rules: head position of a body with no segments")
	}
	return b.segments[0].Pos
}

// Segments returns the live segments, head first. The slice must not be
// modified.
func (b *Body) Segments() []*Segment {
	return b.segments
}

// PathLen is the number of recorded head positions.
func (b *Body) PathLen() int { return b.path.Len() }

// release despawns every segment in one batch.
func (b *Body) release(w World) {
	for _, seg := range b.segments {
		w.Despawn(seg)
	}
	b.segments = nil
}
