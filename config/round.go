package config

import (
	"io/ioutil"

	"github.com/battlesnakeio/arena/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Steering names understood by the engine's bots.
const (
	SteeringStraight = "straight"
	SteeringWander   = "wander"
	SteeringHoming   = "homing"
)

// Round describes a round to run. It is what a round file holds.
type Round struct {
	Mode      string `yaml:"mode"`
	Snakes    int    `yaml:"snakes"`
	Steering  string `yaml:"steering"`
	Seed      int64  `yaml:"seed"`
	Arena     Arena  `yaml:"arena"`
	MoveEvery int    `yaml:"move_every"`
	GrowEvery int    `yaml:"grow_every"`
	MaxTurns  int64  `yaml:"max_turns"`
	// TickRate is in steps per second. Zero runs as fast as possible.
	TickRate int `yaml:"tick_rate"`
}

// Arena is the inclusive cell range of the playing field.
type Arena struct {
	Min [3]int `yaml:"min"`
	Max [3]int `yaml:"max"`
}

// Box converts the arena to geometry.
func (a Arena) Box() geom.Box {
	return geom.NewBox(
		geom.Cell{X: a.Min[0], Y: a.Min[1], Z: a.Min[2]},
		geom.Cell{X: a.Max[0], Y: a.Max[1], Z: a.Max[2]},
	)
}

// DefaultRound returns a four snake wandering round on a 64x64 floor.
func DefaultRound() Round {
	return Round{
		Mode:     "multi-player",
		Snakes:   4,
		Steering: SteeringHoming,
		Seed:     1,
		Arena: Arena{
			Min: [3]int{0, 0, 0},
			Max: [3]int{63, 0, 63},
		},
		MoveEvery: 1,
		GrowEvery: 40,
		MaxTurns:  5000,
		TickRate:  TickRate,
	}
}

// LoadRound reads a YAML round file. Fields missing from the file keep
// their DefaultRound values.
func LoadRound(path string) (Round, error) {
	r := DefaultRound()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return r, errors.Wrapf(err, "unable to read round file %s", path)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, errors.Wrapf(err, "unable to parse round file %s", path)
	}
	if err := r.Validate(); err != nil {
		return r, errors.Wrapf(err, "invalid round file %s", path)
	}
	return r, nil
}

// Validate checks the round can be run.
func (r Round) Validate() error {
	switch r.Mode {
	case "single-player", "multi-player":
	default:
		return errors.Errorf("unknown mode %q", r.Mode)
	}
	switch r.Steering {
	case SteeringStraight, SteeringWander, SteeringHoming:
	default:
		return errors.Errorf("unknown steering %q", r.Steering)
	}
	if r.Snakes < 1 {
		return errors.New("at least one snake is required")
	}
	size := r.Arena.Box().Size()
	if size.X < 8 || size.Z < 8 {
		return errors.Errorf("arena %dx%d is too small", size.X, size.Z)
	}
	if r.MoveEvery < 0 || r.GrowEvery < 0 || r.MaxTurns < 0 || r.TickRate < 0 {
		return errors.New("intervals and limits must not be negative")
	}
	return nil
}
