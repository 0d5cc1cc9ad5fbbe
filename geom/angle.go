// Package geom holds the small amount of vector and angle math the arena
// needs. Angles are in degrees, yaw 0 faces +Z and decreasing yaw turns
// toward +X.
package geom

import "math"

const (
	// RadiansPerDegree converts degrees to radians.
	RadiansPerDegree = math.Pi / 180
	// DegreesPerRadian converts radians to degrees.
	DegreesPerRadian = 180 / math.Pi
)

// WrapDegrees normalizes an angle to [-180, 180).
func WrapDegrees(a float64) float64 {
	f := math.Mod(a, 360)
	if f >= 180 {
		f -= 360
	}
	if f < -180 {
		f += 360
	}
	return f
}

// SubtractAngles returns the shortest signed rotation taking from to to.
func SubtractAngles(from, to float64) float64 {
	return WrapDegrees(to - from)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAngleDelta returns the signed rotation from from to to, limited to
// maxDelta in either direction.
func ClampAngleDelta(from, to, maxDelta float64) float64 {
	return Clamp(SubtractAngles(from, to), -maxDelta, maxDelta)
}

// AngleToVector returns the horizontal heading for a yaw.
func AngleToVector(yaw float64) Vec3 {
	r := yaw * RadiansPerDegree
	return Vec3{X: -math.Sin(r), Z: math.Cos(r)}
}

// VectorToAngle is the inverse of AngleToVector for the horizontal plane.
func VectorToAngle(v Vec3) float64 {
	return WrapDegrees(math.Atan2(v.Z, v.X)*DegreesPerRadian - 90)
}
