// Package worker runs the queued rounds. Each round is simulated on a single
// goroutine; a pool of workers runs several rounds side by side.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/arena/controller"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Worker pops rounds from the store and runs them while holding their lock.
type Worker struct {
	Store             controller.Store
	PollInterval      time.Duration
	HeartbeatInterval time.Duration
	RunRound          RoundRunner
	// PopLimiter throttles how often the store is polled. Nil never waits.
	PopLimiter *rate.Limiter
	// ExitWhenIdle makes Run return once no round is left to pop.
	ExitWhenIdle bool
}

// Run will run the worker in a loop until ctx is done.
func (w *Worker) Run(ctx context.Context, workerID int) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := w.run(ctx, workerID)
		if err == nil {
			continue
		}
		if err == controller.ErrNotFound && w.ExitWhenIdle {
			log.WithField("worker", workerID).Info("no rounds left, worker exiting")
			return nil
		}
		if err != controller.ErrNotFound && err != controller.ErrIsLocked {
			log.WithError(err).WithField("worker", workerID).Warn("run failed")
		}

		select {
		case <-time.After(w.PollInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) run(ctx context.Context, workerID int) error {
	if w.PopLimiter != nil {
		if err := w.PopLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	// Pop an item of work.
	id, err := w.Store.PopRoundID(ctx)
	if err != nil {
		return err
	}

	// Attempt to get the lock initially.
	token, err := w.Store.Lock(ctx, id, "")
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"worker": workerID,
		"round":  id,
	}).Debug("acquired lock")

	// Get a context with the lock token.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = controller.ContextWithLockToken(ctx, token)

	defer func() {
		if err := w.Store.Unlock(ctx, id, token); err != nil {
			log.WithError(err).
				WithFields(log.Fields{"worker": workerID, "round": id}).
				Warn("unlock failed")
		}
	}()

	// Hold the lock, heartbeating every HeartbeatInterval.
	go func() {
		t := time.NewTicker(w.heartbeat())
		defer t.Stop()
		for {
			select {
			case <-t.C:
				_, err := w.Store.Lock(ctx, id, token)
				if err != nil {
					log.WithError(err).
						WithFields(log.Fields{"worker": workerID, "round": id}).
						Warn("lock expired during heartbeat")
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Perform the actual work, this should respect context and Done() rules.
	return w.RunRound(ctx, w.Store, id)
}

func (w *Worker) heartbeat() time.Duration {
	if w.HeartbeatInterval > 0 {
		return w.HeartbeatInterval
	}
	return controller.LockExpiry / 3
}

// Pool runs n workers sharing w's settings and waits for all of them. It
// returns the first error any worker stopped with.
func Pool(ctx context.Context, w *Worker, n int) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			log.WithField("worker", i).Info("arena worker starting")
			return w.Run(ctx, i)
		})
	}
	return g.Wait()
}
