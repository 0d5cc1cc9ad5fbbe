package geom

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in arena space. Y is vertical.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// LengthSquared is the squared magnitude of v.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length is the magnitude of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// SquaredDistanceTo avoids the square root for proximity tests.
func (v Vec3) SquaredDistanceTo(o Vec3) float64 {
	return v.Sub(o).LengthSquared()
}

// Floor returns the integer cell containing v.
func (v Vec3) Floor() Cell {
	return Cell{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y)),
		Z: int(math.Floor(v.Z)),
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
