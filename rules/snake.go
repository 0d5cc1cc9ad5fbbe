package rules

import "github.com/battlesnakeio/arena/geom"

// World receives segments as they enter and leave play.
type World interface {
	Spawn(seg *Segment)
	Despawn(seg *Segment)
}

// Owner identifies whoever controls a snake. Owners are compared by
// identity.
type Owner interface {
	ID() string
	// Spectate moves the owner out of play once its snake is eliminated.
	Spectate()
}

// Steering yields the yaw the head should turn toward this tick.
type Steering interface {
	Yaw(head Segment) float64
}

// SteeringFunc adapts a function to Steering.
type SteeringFunc func(head Segment) float64

// Yaw calls f.
func (f SteeringFunc) Yaw(head Segment) float64 { return f(head) }

// EliminateFunc is told about every elimination as it happens.
type EliminateFunc func(victim, eliminator Owner)

// Snake ties a body to its owner and keeps its score. Once dead or removed
// a snake ignores every further call.
type Snake struct {
	world    World
	owner    Owner
	steering Steering
	color    Color
	body     *Body
	kills    int
	dead     bool
	removed  bool
}

// NewSnake spawns a snake with a single head segment.
func NewSnake(w World, owner Owner, steering Steering, color Color, pos geom.Vec3, yaw float64) *Snake {
	return &Snake{
		world:    w,
		owner:    owner,
		steering: steering,
		color:    color,
		body:     NewBody(w, color, pos, yaw),
	}
}

// Tick steers and advances the body.
func (s *Snake) Tick(move bool) {
	if s.inert() {
		return
	}
	s.body.Tick(move, s.steering.Yaw(*s.body.Head()), s.world)
}

// CheckBounds eliminates the snake if its head has left bounds. The owner is
// credited with its own elimination.
func (s *Snake) CheckBounds(bounds Bounds, fn EliminateFunc) bool {
	if s.inert() {
		return false
	}
	if !CheckBounds(s.body.HeadPosition(), bounds) {
		return false
	}
	fn(s.owner, s.owner)
	s.kill()
	return true
}

// CheckCollisions eliminates the snake if its head touches any live snake in
// others, itself included. The first hit in the order given is credited.
func (s *Snake) CheckCollisions(others []*Snake, fn EliminateFunc) bool {
	if s.inert() {
		return false
	}
	head := s.body.HeadPosition()
	for _, other := range others {
		if other.inert() {
			continue
		}
		if !CheckCollision(head, other.body, other == s) {
			continue
		}
		if other != s {
			other.kills++
		}
		fn(s.owner, other.owner)
		s.kill()
		return true
	}
	return false
}

// Grow lengthens a live snake by one segment.
func (s *Snake) Grow() {
	if s.inert() {
		return
	}
	s.body.Grow()
}

func (s *Snake) kill() {
	s.body.release(s.world)
	s.owner.Spectate()
	s.dead = true
}

// Remove despawns whatever segments remain, dead or alive. A removed snake
// takes no further part in the round and is not reported as eliminated.
func (s *Snake) Remove() {
	if s.removed {
		return
	}
	s.body.release(s.world)
	s.removed = true
}

func (s *Snake) inert() bool { return s.dead || s.removed }

// Removed reports whether Remove has been called.
func (s *Snake) Removed() bool { return s.removed }

// Owner returns the snake's owner.
func (s *Snake) Owner() Owner { return s.owner }

// Color returns the snake's visual tag.
func (s *Snake) Color() Color { return s.color }

// Dead reports whether the snake has been eliminated.
func (s *Snake) Dead() bool { return s.dead }

// Alive is the opposite of Dead.
func (s *Snake) Alive() bool { return !s.dead }

// Kills is the number of other snakes this one has eliminated.
func (s *Snake) Kills() int { return s.kills }

// Length is the target length of the body.
func (s *Snake) Length() int { return s.body.Length() }

// HeadPosition returns the head centre. It panics once the segments have
// been released.
func (s *Snake) HeadPosition() geom.Vec3 { return s.body.HeadPosition() }

// Segments returns the live segments, head first.
func (s *Snake) Segments() []*Segment { return s.body.Segments() }

// Body exposes the underlying body for inspection.
func (s *Snake) Body() *Body { return s.body }
