package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of engine performance.
var (
	Workers           = getEnvInt("WORKERS", 4)
	TickRate          = getEnvInt("TICK_RATE", 20)
	PopRate           = rate.Limit(getEnvInt("POP_RPS", 40))
	PopBurstRate      = getEnvInt("POP_BURST", 10)
	PollInterval      = time.Duration(getEnvInt("POLL_INTERVAL_MS", 100)) * time.Millisecond
	HeartbeatInterval = time.Duration(getEnvInt("HEARTBEAT_INTERVAL_MS", 300)) * time.Millisecond
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
