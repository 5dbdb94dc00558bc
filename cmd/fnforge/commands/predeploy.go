package commands

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fnforge/fnforge/internal/build"
	"github.com/fnforge/fnforge/internal/predeploy"
)

// Predeploy returns the command that prints the packaging view of each
// function: handler pointed at the compiled binary, package contents
// minimized. The project file itself is not modified; the packaging tool
// consumes this output.
func Predeploy() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "predeploy [function]",
		Short: "Print descriptors rewritten to reference compiled binaries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadProject(configPath, verbose)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			fns, err := build.Select(env.project, name, env.cfg)
			if err != nil {
				return err
			}

			rewritten := make(map[string]any, len(fns))
			for _, fn := range fns {
				out := predeploy.Transform(fn, env.cfg)
				if err := env.project.Replace(fn.Name, out); err != nil {
					return err
				}
				rewritten[fn.Name] = out
			}

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(map[string]any{"functions": rewritten})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to project file (default: fnforge.yml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
