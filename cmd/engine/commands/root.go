package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/battlesnakeio/arena/config"
	"github.com/battlesnakeio/arena/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	roundFile  string
	promEnable = false
	promListen = ":9000"
	verbose    = false
)

var rootCmd = &cobra.Command{
	Use:     "engine",
	Short:   "engine runs snake arena rounds",
	Version: version.Version,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		prometheus()
	},
	Run: func(c *cobra.Command, args []string) {
		runCmd.Run(c, args)
	},
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&roundFile, "round-file", "f", "", "yaml file describing the round, defaults are used when empty")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", verbose, "log at debug level")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadRound() (config.Round, error) {
	if roundFile == "" {
		return config.DefaultRound(), nil
	}
	return config.LoadRound(roundFile)
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
