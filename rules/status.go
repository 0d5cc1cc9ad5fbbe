package rules

// RoundStatus is the lifecycle state of a round.
type RoundStatus string

const (
	// RoundStatusStopped represents a stopped round
	RoundStatusStopped RoundStatus = "stopped"
	// RoundStatusRunning represents a running round
	RoundStatusRunning RoundStatus = "running"
	// RoundStatusError represents a round that ended because of an error
	RoundStatusError RoundStatus = "error"
	// RoundStatusComplete represents a round that is done
	RoundStatusComplete RoundStatus = "complete"
)
