package commands

import (
	"fmt"

	"github.com/battlesnakeio/arena/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the engine version",
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Version)
	},
}
