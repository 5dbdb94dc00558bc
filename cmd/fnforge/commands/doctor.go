package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fnforge/fnforge/internal/build"
	"github.com/fnforge/fnforge/internal/entrypoint"
	"github.com/fnforge/fnforge/internal/inspect"
)

// Doctor returns the command that checks every handler without building
// anything: classification, workspace validation, and symbol existence.
func Doctor() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "doctor [function]",
		Short: "Verify handlers resolve to buildable entry points",
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

			checker := inspect.New(env.dir)
			failures := 0
			for _, fn := range fns {
				spec := entrypoint.Classify(fn.Handler, env.cfg.GeneratedBuildDir)
				if spec == nil {
					fmt.Printf("ok   %-20s %s (standalone program)\n", fn.Name, fn.Handler)
					continue
				}

				moduleDir := filepath.Join(env.dir, filepath.FromSlash(spec.ModulePath))
				if _, err := entrypoint.WorkspaceRel(moduleDir, env.cfg.WorkspaceRoot); err != nil {
					fmt.Printf("FAIL %-20s %v\n", fn.Name, err)
					failures++
					continue
				}

				report := checker.Check(spec)
				if !report.OK {
					fmt.Printf("FAIL %-20s %s\n", fn.Name, report.Detail)
					failures++
					continue
				}
				fmt.Printf("ok   %-20s %s.%s\n", fn.Name, spec.ModulePath, spec.Symbol)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d functions failed verification", failures, len(fns))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to project file (default: fnforge.yml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
