package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fnforge/fnforge/internal/history"
)

// History returns the command that prints recent build and test runs from
// the local ledger.
func History() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent build and test runs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			env, err := loadProject(configPath, false)
			if err != nil {
				return err
			}

			ledger, err := history.Open(filepath.Join(env.dir, filepath.FromSlash(env.cfg.HistoryPath)))
			if err != nil {
				return err
			}
			defer ledger.Close()

			entries, err := ledger.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no recorded runs")
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%s  %-6s %-8s %-20s %-8s %s\n",
					e.CreatedAt, e.Status, e.Phase, e.Function, e.Duration, e.Command)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to project file (default: fnforge.yml)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")

	return cmd
}
