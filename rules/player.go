package rules

import (
	uuid "github.com/satori/go.uuid"
)

// Player is the default Owner. A player starts out participating and moves
// to spectating when its snake is eliminated.
type Player struct {
	id         string
	Name       string
	spectating bool
}

// NewPlayer returns a participating player with a fresh id.
func NewPlayer(name string) *Player {
	return &Player{
		id:   uuid.NewV4().String(),
		Name: name,
	}
}

// ID returns the player's unique id.
func (p *Player) ID() string { return p.id }

// Spectate switches the player to observer mode.
func (p *Player) Spectate() { p.spectating = true }

// Spectating reports whether the player has left play.
func (p *Player) Spectating() bool { return p.spectating }

func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return p.id
}
