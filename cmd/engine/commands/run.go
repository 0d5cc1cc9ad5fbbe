package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/battlesnakeio/arena/config"
	"github.com/battlesnakeio/arena/controller"
	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/worker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	runRounds  = 1
	runWorkers = config.Workers
	runNoPace  = false
)

func init() {
	runCmd.Flags().IntVarP(&runRounds, "rounds", "n", runRounds, "number of rounds to queue")
	runCmd.Flags().IntVarP(&runWorkers, "workers", "w", runWorkers, "rounds simulated concurrently")
	runCmd.Flags().BoolVar(&runNoPace, "no-pace", runNoPace, "ignore the tick rate and run as fast as possible")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "runs rounds on the worker pool and prints their standings",
	Run: func(c *cobra.Command, args []string) {
		cfg, err := loadRound()
		if err != nil {
			log.WithError(err).Fatal("unable to load round")
		}
		if runNoPace {
			cfg.TickRate = 0
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			<-sig
			log.Warn("interrupted, stopping workers")
			cancel()
		}()

		store := controller.InstrumentStore(controller.InMemStore())
		for i := 0; i < runRounds; i++ {
			rc := cfg
			rc.Seed = cfg.Seed + int64(i)
			if err := store.CreateRound(ctx, &controller.Round{Config: rc}); err != nil {
				log.WithError(err).Fatal("unable to queue round")
			}
		}

		w := &worker.Worker{
			Store:             store,
			PollInterval:      config.PollInterval,
			HeartbeatInterval: config.HeartbeatInterval,
			RunRound:          worker.Runner,
			PopLimiter:        rate.NewLimiter(config.PopRate, config.PopBurstRate),
			ExitWhenIdle:      true,
		}
		if err := worker.Pool(ctx, w, runWorkers); err != nil {
			log.WithError(err).Error("worker pool stopped")
		}

		rounds, err := store.ListRounds(context.Background())
		if err != nil {
			log.WithError(err).Fatal("unable to list rounds")
		}
		for _, r := range rounds {
			printRound(r)
		}
	},
}

func printRound(r *controller.Round) {
	fmt.Printf("Round %s: %s after %d turns\n", r.ID, r.Status, r.Turns)
	if r.Error != "" {
		fmt.Printf("  error: %s\n", r.Error)
	}
	for i, s := range r.Standings {
		fmt.Printf("  %d. %-10s length=%-3d kills=%-2d %s\n", i+1, s.Owner, s.Length, s.Kills, fate(s))
	}
}

func fate(s rules.Standing) string {
	if s.Alive || s.Death == nil {
		return "alive"
	}
	if s.Death.Eliminator != nil && s.Death.Eliminator != s.Owner {
		return fmt.Sprintf("%s on turn %d by %s", s.Death.Cause, s.Death.Turn, s.Death.Eliminator)
	}
	return fmt.Sprintf("%s on turn %d", s.Death.Cause, s.Death.Turn)
}
