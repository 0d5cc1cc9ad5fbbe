package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/arena/controller"
	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/world"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RoundRunner runs one round to completion.
type RoundRunner func(ctx context.Context, store controller.Store, id string) error

// Runner will run an individual round to completion. It takes a round id and
// the store holding it as arguments. Steps are paced to the round's tick
// rate; the standings are written back once the round is over.
func Runner(ctx context.Context, store controller.Store, id string) error {
	rec, err := store.GetRound(ctx, id)
	if err != nil {
		return err
	}
	if err := rec.Config.Validate(); err != nil {
		log.WithError(err).
			WithField("round", id).
			Error("ending round due to invalid config")
		if setErr := store.SetRoundStatus(ctx, id, rules.RoundStatusError, err.Error()); setErr != nil {
			log.WithError(setErr).
				WithField("round", id).
				Error("failed to mark round as errored")
		}
		return err
	}

	registry := world.New()
	round := NewRound(id, rec.Config, registry)
	defer round.Close()
	round.OnEliminate = func(e rules.Elimination) {
		eliminations.WithLabelValues(e.Cause).Inc()
	}

	roundsRunning.Inc()
	defer roundsRunning.Dec()

	limit := rate.Inf
	if rec.Config.TickRate > 0 {
		limit = rate.Limit(rec.Config.TickRate)
	}
	pacer := rate.NewLimiter(limit, 1)

	log.WithFields(log.Fields{
		"round":  id,
		"snakes": rec.Config.Snakes,
		"rate":   rec.Config.TickRate,
	}).Info("starting round")

	for !round.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		start := time.Now()
		round.Step()
		stepDuration.Observe(time.Since(start).Seconds())
	}

	log.WithFields(log.Fields{
		"round": id,
		"turn":  round.Turn(),
		"alive": round.Alive(),
	}).Info("ending round")
	return store.FinishRound(ctx, id, round.Turn(), round.Standings())
}
