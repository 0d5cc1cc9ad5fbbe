package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		In       float64
		Expected float64
	}{
		{In: 0, Expected: 0},
		{In: 179, Expected: 179},
		{In: 180, Expected: -180},
		{In: -180, Expected: -180},
		{In: 190, Expected: -170},
		{In: -190, Expected: 170},
		{In: 720, Expected: 0},
		{In: -540, Expected: -180},
	}

	for _, test := range tests {
		require.InDelta(t, test.Expected, WrapDegrees(test.In), 1e-9, "In: %v", test.In)
	}
}

func TestClampAngleDelta(t *testing.T) {
	tests := []struct {
		From, To, Max float64
		Expected      float64
	}{
		{From: 0, To: 10, Max: 15, Expected: 10},
		{From: 0, To: 90, Max: 15, Expected: 15},
		{From: 0, To: -90, Max: 15, Expected: -15},
		// shortest way round crosses the seam
		{From: 170, To: -170, Max: 15, Expected: 15},
		{From: -170, To: 170, Max: 15, Expected: -15},
		{From: 175, To: -178, Max: 15, Expected: 7},
	}

	for _, test := range tests {
		got := ClampAngleDelta(test.From, test.To, test.Max)
		require.InDelta(t, test.Expected, got, 1e-9, "%v -> %v", test.From, test.To)
	}
}

func TestAngleToVector(t *testing.T) {
	require.InDelta(t, 0, AngleToVector(0).X, 1e-9)
	require.InDelta(t, 1, AngleToVector(0).Z, 1e-9)

	// decreasing yaw rotates toward +X
	v := AngleToVector(-90)
	require.InDelta(t, 1, v.X, 1e-9)
	require.InDelta(t, 0, v.Z, 1e-9)

	v = AngleToVector(90)
	require.InDelta(t, -1, v.X, 1e-9)
}

func TestVectorToAngleRoundTrip(t *testing.T) {
	for _, yaw := range []float64{-180, -135, -90, -1, 0, 30, 90, 179} {
		require.InDelta(t, yaw, VectorToAngle(AngleToVector(yaw)), 1e-9, "yaw %v", yaw)
	}
}
