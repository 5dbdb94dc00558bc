package commands

import (
	"github.com/spf13/cobra"
)

// Build returns the command that compiles every matching function, or a
// single named one.
func Build() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "build [function]",
		Short: "Generate entry-point wrappers and compile function binaries",
		Long: `Compile every function matching the target runtime, in declaration order.

Handlers that name an exported symbol (e.g. "entrypoints/widget.Handle") get
a generated wrapper program first; handlers that already point at a .go file
are compiled directly. The first failing step halts the run.

Examples:
  # Build all functions declared in fnforge.yml
  fnforge build

  # Build one function
  fnforge build widget

  # Use a different project file
  fnforge build -c deploy/fnforge.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadProject(configPath, verbose)
			if err != nil {
				return err
			}
			runner, cleanup := newRunner(env)
			defer cleanup()

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runner.Build(cmd.Context(), name)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to project file (default: fnforge.yml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
