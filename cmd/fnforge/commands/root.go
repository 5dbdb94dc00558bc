// Package commands defines the CLI command structure and flag bindings.
// Command execution delegates to the internal packages; nothing here holds
// business logic.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the fnforge CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fnforge",
		Short:         "Build Go serverless functions from a declarative project file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Build())
	cmd.AddCommand(Test())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Predeploy())
	cmd.AddCommand(History())
	cmd.AddCommand(Version())

	return cmd
}
