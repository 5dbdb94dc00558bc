package build

import (
	"strings"

	"github.com/fnforge/fnforge/internal/config"
	"github.com/fnforge/fnforge/internal/registry"
)

// Select returns the descriptors a build or test run applies to, in
// declaration order.
//
// A requested name narrows the set to exactly that descriptor. When
// useBinPathForHandler is set, every handler is rewritten first — the binPath
// prefix stripped and ".go" appended — turning a compiled-artifact handler
// back into its source reference. The rewrite is purely textual.
//
// Runtime filtering: a descriptor passes when its own runtime equals the
// target, or it declares none and the project default equals the target. A
// project configured for a different default therefore only builds functions
// that explicitly opt in.
func Select(proj *registry.Project, name string, cfg *config.Config) ([]registry.FunctionDescriptor, error) {
	var fns []registry.FunctionDescriptor
	if name != "" {
		d, err := proj.Get(name)
		if err != nil {
			return nil, err
		}
		fns = []registry.FunctionDescriptor{d}
	} else {
		fns = proj.Functions()
	}

	if cfg.UseBinPathForHandler {
		for i := range fns {
			fns[i].Handler = strings.TrimPrefix(fns[i].Handler, cfg.BinPath+"/") + ".go"
		}
	}

	selected := make([]registry.FunctionDescriptor, 0, len(fns))
	for _, d := range fns {
		if d.Runtime == cfg.Runtime || (d.Runtime == "" && proj.DefaultRuntime() == cfg.Runtime) {
			selected = append(selected, d)
		}
	}
	return selected, nil
}
