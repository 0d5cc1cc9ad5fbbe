package rules

import (
	"testing"

	"github.com/battlesnakeio/arena/geom"
	"github.com/stretchr/testify/require"
)

func TestRoundFarApart(t *testing.T) {
	w := newRecordingWorld()
	r := NewRound(RoundConfig{ID: "far", Bounds: wideArena}, w)
	r.Join(NewPlayer("a"), Straight, "red", Spawn{Pos: geom.Vec3{}})
	r.Join(NewPlayer("b"), Straight, "blue", Spawn{Pos: geom.Vec3{X: 1000}})

	for i := 0; i < 200; i++ {
		require.Empty(t, r.Step())
	}
	require.Equal(t, int64(200), r.Turn())
	require.Equal(t, 2, r.Alive())
	require.False(t, r.Over())
	require.Nil(t, r.Winner())
	for _, st := range r.Standings() {
		require.True(t, st.Alive)
		require.Equal(t, 0, st.Kills)
		require.Nil(t, st.Death)
	}
}

func TestRoundWallCollision(t *testing.T) {
	w := newRecordingWorld()
	box := geom.NewBox(geom.Cell{}, geom.Cell{X: 19, Z: 19})
	r := NewRound(RoundConfig{ID: "wall", Mode: GameModeSinglePlayer, Bounds: box}, w)
	p := NewPlayer("a")
	r.Join(p, Straight, "red", Spawn{Pos: geom.Vec3{X: 18.5, Z: 10}, Yaw: -90})

	var elims []Elimination
	for !r.Over() {
		elims = append(elims, r.Step()...)
		require.True(t, r.Turn() < 10, "snake never left the arena")
	}

	// 18.5 + 3*Speed crosses x=20
	require.Equal(t, int64(3), r.Turn())
	require.Len(t, elims, 1)
	require.Equal(t, DeathCauseWallCollision, elims[0].Cause)
	require.Equal(t, Owner(p), elims[0].Victim)
	require.Equal(t, Owner(p), elims[0].Eliminator)

	st := r.Standings()
	require.Len(t, st, 1)
	require.False(t, st[0].Alive)
	require.Equal(t, int64(3), st[0].Death.Turn)
	require.Empty(t, w.live)
}

func TestRoundHeadOnCollision(t *testing.T) {
	w := newRecordingWorld()
	r := NewRound(RoundConfig{ID: "head-on", Bounds: wideArena}, w)
	pa, pb := NewPlayer("a"), NewPlayer("b")
	a := r.Join(pa, Straight, "red", Spawn{Pos: geom.Vec3{}, Yaw: -90})
	b := r.Join(pb, Straight, "blue", Spawn{Pos: geom.Vec3{X: 4}, Yaw: 90})

	var notified []Elimination
	r.OnEliminate = func(e Elimination) { notified = append(notified, e) }

	require.Empty(t, r.Step())
	require.Empty(t, r.Step())
	elims := r.Step()

	// a is checked first so b gets the credit and survives
	require.Len(t, elims, 1)
	require.Equal(t, notified, elims)
	require.Equal(t, Owner(pa), elims[0].Victim)
	require.Equal(t, Owner(pb), elims[0].Eliminator)
	require.Equal(t, DeathCauseSnakeCollision, elims[0].Cause)
	require.Equal(t, int64(3), elims[0].Turn)
	require.True(t, a.Dead())
	require.True(t, b.Alive())
	require.Equal(t, 1, b.Kills())

	require.True(t, r.Over())
	require.Equal(t, Owner(pb), r.Winner())
	st := r.Standings()
	require.Equal(t, Owner(pb), st[0].Owner)
	require.Equal(t, Owner(pa), st[1].Owner)
	require.Equal(t, Owner(pb), st[1].Death.Eliminator)
}

func TestRoundSelfCollisionCause(t *testing.T) {
	w := newRecordingWorld()
	r := NewRound(RoundConfig{ID: "self", Mode: GameModeSinglePlayer, Bounds: wideArena}, w)
	p := NewPlayer("a")
	s := r.Join(p, SteeringFunc(func(head Segment) float64 { return head.Yaw - 90 }), "red", Spawn{})
	for i := 0; i < 5; i++ {
		s.Grow()
	}

	var elims []Elimination
	for !r.Over() && r.Turn() < 100 {
		elims = append(elims, r.Step()...)
	}
	require.Len(t, elims, 1)
	require.Equal(t, DeathCauseSnakeSelfCollision, elims[0].Cause)
	require.Equal(t, 0, s.Kills())
}

func TestRoundMoveEvery(t *testing.T) {
	w := newRecordingWorld()
	r := NewRound(RoundConfig{Bounds: wideArena, MoveEvery: 2}, w)
	s := r.Join(NewPlayer("a"), Straight, "red", Spawn{})

	r.Step()
	require.InDelta(t, 0, s.HeadPosition().Z, 1e-9)
	r.Step()
	require.InDelta(t, Speed, s.HeadPosition().Z, 1e-9)
	r.Step()
	r.Step()
	require.InDelta(t, 2*Speed, s.HeadPosition().Z, 1e-9)
}

func TestRoundGrowEvery(t *testing.T) {
	w := newRecordingWorld()
	r := NewRound(RoundConfig{Bounds: wideArena, GrowEvery: 10}, w)
	a := r.Join(NewPlayer("a"), Straight, "red", Spawn{})
	b := r.Join(NewPlayer("b"), Straight, "blue", Spawn{Pos: geom.Vec3{X: 100}})

	for i := 0; i < 9; i++ {
		r.Step()
	}
	require.Equal(t, DefaultLength, a.Length())
	r.Step()
	require.Equal(t, DefaultLength+1, a.Length())
	require.Equal(t, DefaultLength+1, b.Length())
}

func TestRoundMaxTurns(t *testing.T) {
	w := newRecordingWorld()
	r := NewRound(RoundConfig{Bounds: wideArena, MaxTurns: 5}, w)
	r.Join(NewPlayer("a"), Straight, "red", Spawn{})
	r.Join(NewPlayer("b"), Straight, "blue", Spawn{Pos: geom.Vec3{X: 100}})

	for i := 0; i < 4; i++ {
		r.Step()
		require.False(t, r.Over())
	}
	r.Step()
	require.True(t, r.Over())
}

func TestRoundClose(t *testing.T) {
	w := newRecordingWorld()
	r := NewRound(RoundConfig{Bounds: wideArena}, w)
	for _, at := range RingSpawns(geom.NewBox(geom.Cell{X: -50, Z: -50}, geom.Cell{X: 50, Z: 50}), 4, 0.5) {
		r.Join(NewPlayer(""), Straight, "red", at)
	}
	for i := 0; i < 20; i++ {
		r.Step()
	}
	require.NotEmpty(t, w.live)
	r.Close()
	require.Empty(t, w.live)

	turn := r.Turn()
	require.NotPanics(t, func() {
		require.Empty(t, r.Step())
	})
	require.Equal(t, turn+1, r.Turn())
	require.Empty(t, w.live)
}
