package rules

import (
	"sort"

	"github.com/battlesnakeio/arena/geom"
	log "github.com/sirupsen/logrus"
)

// RoundConfig holds the fixed parameters of one round.
type RoundConfig struct {
	ID     string
	Mode   GameMode
	Bounds geom.Box
	// MoveEvery is the number of ticks per head advance. Ticks in between
	// only let the body settle. Values below 2 move every tick.
	MoveEvery int
	// GrowEvery grows every live snake by one each GrowEvery ticks. Zero
	// disables growth.
	GrowEvery int
	// MaxTurns ends the round regardless of survivors. Zero means no limit.
	MaxTurns int64
}

// Elimination records one snake leaving play.
type Elimination struct {
	Turn       int64
	Victim     Owner
	Eliminator Owner
	Cause      string
}

// Death is attached to an eliminated snake.
type Death struct {
	Turn       int64
	Cause      string
	Eliminator Owner
}

// Standing is one row of a round's results.
type Standing struct {
	Owner  Owner
	Color  Color
	Length int
	Kills  int
	Alive  bool
	Death  *Death
}

// Round drives every snake in an arena one fixed step at a time. It is not
// safe for concurrent use.
type Round struct {
	cfg    RoundConfig
	world  World
	snakes []*Snake
	deaths map[*Snake]*Death
	turn   int64

	// OnEliminate, when set, is called for every elimination once it has
	// been recorded.
	OnEliminate func(Elimination)
}

// NewRound returns an empty round spawning into w.
func NewRound(cfg RoundConfig, w World) *Round {
	if cfg.Mode == "" {
		cfg.Mode = GameModeMultiPlayer
	}
	return &Round{
		cfg:    cfg,
		world:  w,
		deaths: map[*Snake]*Death{},
	}
}

// Join adds a snake for owner. Snakes are checked for collisions in join
// order, so earlier snakes win ties.
func (r *Round) Join(owner Owner, steering Steering, color Color, at Spawn) *Snake {
	s := NewSnake(r.world, owner, steering, color, at.Pos, at.Yaw)
	r.snakes = append(r.snakes, s)
	log.WithFields(log.Fields{
		"RoundID": r.cfg.ID,
		"Player":  owner.ID(),
		"Color":   color,
		"Pos":     at.Pos,
	}).Debug("snake joined")
	return s
}

// Step runs one tick: every live snake moves, then every live snake is
// checked against the walls, then against all snakes. It returns the
// eliminations that happened during the step.
func (r *Round) Step() []Elimination {
	r.turn++
	move := r.cfg.MoveEvery < 2 || r.turn%int64(r.cfg.MoveEvery) == 0

	if r.cfg.GrowEvery > 0 && r.turn%int64(r.cfg.GrowEvery) == 0 {
		for _, s := range r.snakes {
			s.Grow()
		}
	}

	// All positions have to settle before anything reads them.
	for _, s := range r.snakes {
		s.Tick(move)
	}

	var out []Elimination
	for _, s := range r.snakes {
		if s.Dead() {
			continue
		}
		s.CheckBounds(r.cfg.Bounds, r.recorder(s, true, &out))
	}
	for _, s := range r.snakes {
		if s.Dead() {
			continue
		}
		s.CheckCollisions(r.snakes, r.recorder(s, false, &out))
	}
	return out
}

func (r *Round) recorder(s *Snake, wall bool, out *[]Elimination) EliminateFunc {
	return func(victim, eliminator Owner) {
		cause := DeathCauseSnakeCollision
		switch {
		case wall:
			cause = DeathCauseWallCollision
		case victim == eliminator:
			cause = DeathCauseSnakeSelfCollision
		}
		e := Elimination{
			Turn:       r.turn,
			Victim:     victim,
			Eliminator: eliminator,
			Cause:      cause,
		}
		r.deaths[s] = &Death{Turn: r.turn, Cause: cause, Eliminator: eliminator}
		*out = append(*out, e)

		log.WithFields(log.Fields{
			"RoundID":    r.cfg.ID,
			"Turn":       r.turn,
			"Victim":     victim.ID(),
			"Eliminator": eliminator.ID(),
			"Cause":      cause,
		}).Info("snake eliminated")

		if r.OnEliminate != nil {
			r.OnEliminate(e)
		}
	}
}

// Over reports whether the round has finished.
func (r *Round) Over() bool {
	if r.cfg.MaxTurns > 0 && r.turn >= r.cfg.MaxTurns {
		return true
	}
	return CheckForGameOver(r.cfg.Mode, r.Alive())
}

// Alive counts the snakes still in play.
func (r *Round) Alive() int {
	n := 0
	for _, s := range r.snakes {
		if s.Alive() {
			n++
		}
	}
	return n
}

// Winner returns the owner of the only surviving snake, or nil.
func (r *Round) Winner() Owner {
	var winner Owner
	for _, s := range r.snakes {
		if s.Dead() {
			continue
		}
		if winner != nil {
			return nil
		}
		winner = s.Owner()
	}
	return winner
}

// Standings ranks the snakes: survivors first, then by how long they
// lasted, then by kills.
func (r *Round) Standings() []Standing {
	standings := make([]Standing, 0, len(r.snakes))
	for _, s := range r.snakes {
		standings = append(standings, Standing{
			Owner:  s.Owner(),
			Color:  s.Color(),
			Length: s.Length(),
			Kills:  s.Kills(),
			Alive:  s.Alive(),
			Death:  r.deaths[s],
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Alive != b.Alive {
			return a.Alive
		}
		if ta, tb := deathTurn(a.Death), deathTurn(b.Death); ta != tb {
			return ta > tb
		}
		return a.Kills > b.Kills
	})
	return standings
}

func deathTurn(d *Death) int64 {
	if d == nil {
		return 0
	}
	return d.Turn
}

// Close despawns every snake.
func (r *Round) Close() {
	for _, s := range r.snakes {
		s.Remove()
	}
}

// Turn is the number of steps run so far.
func (r *Round) Turn() int64 { return r.turn }

// Snakes returns the snakes in join order.
func (r *Round) Snakes() []*Snake { return r.snakes }

// Config returns the round parameters.
func (r *Round) Config() RoundConfig { return r.cfg }
