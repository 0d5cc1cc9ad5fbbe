package rules

import (
	"testing"

	"github.com/battlesnakeio/arena/geom"
	"github.com/stretchr/testify/require"
)

func TestCheckBounds(t *testing.T) {
	box := geom.NewBox(geom.Cell{}, geom.Cell{X: 19, Z: 19})

	out := []geom.Vec3{
		{X: -1, Z: 1},
		{X: 20, Z: 1},
		{X: 1, Z: -0.01},
		{X: 1, Z: 20},
		{X: 1, Y: 1, Z: 1},
	}
	for _, p := range out {
		require.True(t, CheckBounds(p, box), "%v", p)
	}

	in := []geom.Vec3{
		{X: 0, Z: 0},
		{X: 19, Z: 19},
		{X: 19.999, Z: 10},
		{X: 10, Y: 0.5, Z: 10},
	}
	for _, p := range in {
		require.False(t, CheckBounds(p, box), "%v", p)
	}
}

func TestCheckCollisionDistance(t *testing.T) {
	other := bodyAt(
		geom.Vec3{X: 10},
		geom.Vec3{X: 12},
		geom.Vec3{X: 14},
	)

	tests := []struct {
		Head     geom.Vec3
		Expected bool
	}{
		{Head: geom.Vec3{X: 12}, Expected: true},
		{Head: geom.Vec3{X: 12, Z: 0.99}, Expected: true},
		// touching exactly is not a hit
		{Head: geom.Vec3{X: 12, Z: 2 * SegmentRadius}, Expected: false},
		{Head: geom.Vec3{X: 13, Z: 1}, Expected: false},
		{Head: geom.Vec3{X: 9.05}, Expected: true},
		{Head: geom.Vec3{X: 14, Y: 0.9}, Expected: true},
		{Head: geom.Vec3{X: 16}, Expected: false},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, CheckCollision(test.Head, other, false), "%v", test.Head)
	}
}

func TestCheckCollisionSelfSkipsOnlyHead(t *testing.T) {
	head := geom.Vec3{}

	// the head alone never hits itself
	require.False(t, CheckCollision(head, bodyAt(head), true))
	// compared as another snake the head would hit
	require.True(t, CheckCollision(head, bodyAt(head), false))

	// a neck closer than two radii is not exempt
	neck := bodyAt(head, geom.Vec3{Z: -0.6})
	require.True(t, CheckCollision(head, neck, true))

	// a normally spaced neck is clear
	spaced := bodyAt(head, geom.Vec3{Z: -Separation * Speed}, geom.Vec3{Z: -2 * Separation * Speed})
	require.False(t, CheckCollision(head, spaced, true))

	// a segment further down the body that loops back is a hit
	looped := bodyAt(head, geom.Vec3{Z: -Separation * Speed}, geom.Vec3{X: 0.4})
	require.True(t, CheckCollision(head, looped, true))
}
