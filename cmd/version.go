package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tutorkit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tutorkit", version)
	},
}
