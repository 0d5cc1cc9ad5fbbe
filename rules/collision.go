package rules

import "github.com/battlesnakeio/arena/geom"

// Bounds is the playable arena volume.
type Bounds interface {
	Contains(p geom.Vec3) bool
}

// minSquaredDistance is the squared centre distance at which two segments
// touch.
const minSquaredDistance = 4 * SegmentRadius * SegmentRadius

// CheckBounds reports whether head has left the arena.
func CheckBounds(head geom.Vec3, bounds Bounds) bool {
	return !bounds.Contains(head)
}

// CheckCollision reports whether head touches any segment of other. When
// other is the head's own body the first segment compared, the head itself,
// is skipped.
func CheckCollision(head geom.Vec3, other *Body, self bool) bool {
	skip := self
	for _, seg := range other.segments {
		if skip {
			skip = false
			continue
		}
		if head.SquaredDistanceTo(seg.Pos) < minSquaredDistance {
			return true
		}
	}
	return false
}
