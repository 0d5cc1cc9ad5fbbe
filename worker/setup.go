package worker

import (
	"fmt"

	"github.com/battlesnakeio/arena/config"
	"github.com/battlesnakeio/arena/rules"
)

// homingMargin is how close to a wall homing bots let their head get.
const homingMargin = 6

// wanderTurn is the largest random heading change a wandering bot asks for.
const wanderTurn = 25

// NewRound builds a round from its description, spawning one snake per slot
// into w on a ring around the arena centre. Slot i is steered by steer[i]
// when given and non-nil, by a bot otherwise.
func NewRound(id string, cfg config.Round, w rules.World, steer ...rules.Steering) *rules.Round {
	box := cfg.Arena.Box()
	r := rules.NewRound(rules.RoundConfig{
		ID:        id,
		Mode:      rules.GameMode(cfg.Mode),
		Bounds:    box,
		MoveEvery: cfg.MoveEvery,
		GrowEvery: cfg.GrowEvery,
		MaxTurns:  cfg.MaxTurns,
	}, w)

	palette := rules.NewPalette()
	for i, at := range rules.RingSpawns(box, cfg.Snakes, 0.6) {
		player := rules.NewPlayer(fmt.Sprintf("snake-%d", i+1))
		var s rules.Steering
		if i < len(steer) {
			s = steer[i]
		}
		if s == nil {
			s = Steering(cfg, int64(i))
		}
		r.Join(player, s, palette.Next(), at)
	}
	return r
}

// Steering returns the bot for the n-th snake of a round.
func Steering(cfg config.Round, n int64) rules.Steering {
	switch cfg.Steering {
	case config.SteeringStraight:
		return rules.Straight
	case config.SteeringWander:
		return rules.NewWander(cfg.Seed+n, wanderTurn)
	default:
		return &rules.Homing{
			Box:    cfg.Arena.Box(),
			Margin: homingMargin,
			Next:   rules.NewWander(cfg.Seed+n, wanderTurn),
		}
	}
}
