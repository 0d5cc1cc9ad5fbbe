package commands

import (
	"github.com/battlesnakeio/arena/worker"
	"github.com/battlesnakeio/arena/world"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var inspectSegments = false

func init() {
	inspectCmd.Flags().BoolVar(&inspectSegments, "segments", inspectSegments, "also dump every live segment at the end of the round")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "runs one round headless and dumps its final state",
	Run: func(*cobra.Command, []string) {
		cfg, err := loadRound()
		if err != nil {
			log.WithError(err).Fatal("unable to load round")
		}
		if err := cfg.Validate(); err != nil {
			log.WithError(err).Fatal("invalid round")
		}

		reg := world.New()
		round := worker.NewRound("inspect", cfg, reg)
		for !round.Over() {
			round.Step()
		}

		spawned, despawned := reg.Stats()
		log.WithFields(log.Fields{
			"turn":      round.Turn(),
			"alive":     round.Alive(),
			"spawned":   spawned,
			"despawned": despawned,
		}).Info("round over")

		spew.Dump(round.Standings())
		if inspectSegments {
			spew.Dump(reg.Snapshot())
		}
		round.Close()
	},
}
