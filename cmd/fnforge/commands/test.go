package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Test returns the command that runs the configured test targets.
func Test() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the configured test targets",
		Long: `Run every test target from the project's tests option, in order.

Configured helper processes (a local emulator, for example) start first and
the run waits out the configured startup delay before the first test. The
first failing target halts the rest. An empty tests list is a warning, not a
failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadProject(configPath, verbose)
			if err != nil {
				return err
			}
			runner, cleanup := newRunner(env)
			defer cleanup()

			outcome := runner.Test(cmd.Context())
			if outcome.Failed() {
				return outcome.Err
			}
			env.logger.Info("test phase complete", zap.Int("targets", outcome.Ran))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to project file (default: fnforge.yml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
