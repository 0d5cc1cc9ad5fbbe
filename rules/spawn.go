package rules

import (
	"math"

	"github.com/battlesnakeio/arena/geom"
)

// Spawn is a starting position and heading.
type Spawn struct {
	Pos geom.Vec3
	Yaw float64
}

// RingSpawns spaces n starts evenly on a circle around the middle of box.
// fill is the circle's diameter as a fraction of the box's smaller side.
// Every start heads along the circle so snakes do not meet head on.
func RingSpawns(box geom.Box, n int, fill float64) []Spawn {
	if n <= 0 {
		return nil
	}
	center := box.Center()
	size := box.Size()
	radius := fill * math.Min(float64(size.X), float64(size.Z)) / 2

	spawns := make([]Spawn, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos := center.Add(geom.Vec3{
			X: radius * math.Cos(theta),
			Z: radius * math.Sin(theta),
		})
		yaw := geom.VectorToAngle(center.Sub(pos)) + 90
		if radius == 0 {
			yaw = 0
		}
		spawns = append(spawns, Spawn{Pos: pos, Yaw: geom.WrapDegrees(yaw)})
	}
	return spawns
}
