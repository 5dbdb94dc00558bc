// Package predeploy rewrites function descriptors for packaging.
//
// After a build, descriptors still reference sources; packaging must ship
// the compiled binary instead. Transform is a pure function returning a new
// descriptor — the caller substitutes it back into the registry, keeping the
// rewrite free of hidden side effects on shared state.
package predeploy

import (
	"github.com/fnforge/fnforge/internal/config"
	"github.com/fnforge/fnforge/internal/entrypoint"
	"github.com/fnforge/fnforge/internal/registry"
)

// excludeEverything drops the whole source tree from the package so only
// the explicitly included binary ships.
const excludeEverything = "./**"

// Transform returns a copy of d whose handler points at the compiled binary.
// When package minimization is enabled, the descriptor is packaged
// individually with only the binary included.
func Transform(d registry.FunctionDescriptor, cfg *config.Config) registry.FunctionDescriptor {
	out := d
	out.Handler = entrypoint.OutputBinary(d.Handler, cfg.BinPath)
	if cfg.MinimizePackage {
		out.Package = &registry.PackageSpec{
			Individually: true,
			Include:      []string{out.Handler},
			Exclude:      []string{excludeEverything},
		}
	}
	return out
}
