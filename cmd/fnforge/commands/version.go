package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	versionString = "dev"
	commitString  = "none"
	dateString    = "unknown"
)

// SetVersionInfo stores the build-time version metadata printed by the
// version command.
func SetVersionInfo(version, commit, date string) {
	versionString = version
	commitString = commit
	dateString = date
}

// Version returns the command printing build metadata.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("fnforge %s (commit %s, built %s)\n", versionString, commitString, dateString)
		},
	}
}
