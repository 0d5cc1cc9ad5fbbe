package rules

// GameMode decides when a round is over.
type GameMode string

const (
	// GameModeSinglePlayer runs until no snake is left.
	GameModeSinglePlayer GameMode = "single-player"
	// GameModeMultiPlayer runs until at most one snake is left.
	GameModeMultiPlayer GameMode = "multi-player"
)

// CheckForGameOver checks if the round has ended. End condition is dependent on game mode.
func CheckForGameOver(mode GameMode, alive int) bool {
	if mode == GameModeSinglePlayer {
		return alive == 0
	}
	return alive <= 1
}
