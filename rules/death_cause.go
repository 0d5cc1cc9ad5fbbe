package rules

const (
	// DeathCauseSnakeCollision is the death reason when a head runs into another snake
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseSnakeSelfCollision is when a head runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseWallCollision is when a snake leaves the arena
	DeathCauseWallCollision = "wall-collision"
)
