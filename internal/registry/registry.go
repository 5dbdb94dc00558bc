// Package registry loads the declarative project file and exposes the
// function descriptors it declares.
//
// Declaration order is preserved: it determines build sequencing, which is
// visible through interleaved command output. yaml.v3 maps lose order, so
// the functions block is decoded by walking the mapping node directly.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fnforge/fnforge/internal/config"
)

// DefaultProjectFile is looked up in the working directory when no explicit
// path is given.
const DefaultProjectFile = "fnforge.yml"

// PackageSpec controls what ships with a deployed function.
type PackageSpec struct {
	Individually bool     `yaml:"individually,omitempty"`
	Include      []string `yaml:"include,omitempty"`
	Exclude      []string `yaml:"exclude,omitempty"`
}

// FunctionDescriptor is one deployable function as declared in the project
// file.
type FunctionDescriptor struct {
	Name    string       `yaml:"-"`
	Handler string       `yaml:"handler"`
	Runtime string       `yaml:"runtime,omitempty"`
	Package *PackageSpec `yaml:"package,omitempty"`
}

// Project is the parsed project file.
type Project struct {
	service        string
	defaultRuntime string
	functions      []FunctionDescriptor
	index          map[string]int
}

// projectFile mirrors the on-disk YAML shape. Functions stays a raw node so
// declaration order survives decoding.
type projectFile struct {
	Service  string `yaml:"service"`
	Provider struct {
		Runtime string `yaml:"runtime"`
	} `yaml:"provider"`
	Custom struct {
		Fnforge *config.Options `yaml:"fnforge"`
	} `yaml:"custom"`
	Functions yaml.Node `yaml:"functions"`
}

// Load reads the project file at path and returns the registry together
// with any tool options declared under custom.fnforge.
func Load(path string) (*Project, *config.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

// Parse decodes project file contents.
func Parse(data []byte) (*Project, *config.Options, error) {
	var pf projectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("parsing project file: %w", err)
	}

	p := &Project{
		service:        pf.Service,
		defaultRuntime: pf.Provider.Runtime,
		index:          make(map[string]int),
	}

	if pf.Functions.Kind == yaml.MappingNode {
		// Content holds alternating key/value nodes.
		for i := 0; i+1 < len(pf.Functions.Content); i += 2 {
			key := pf.Functions.Content[i]
			val := pf.Functions.Content[i+1]

			var d FunctionDescriptor
			if err := val.Decode(&d); err != nil {
				return nil, nil, fmt.Errorf("parsing function %s: %w", key.Value, err)
			}
			d.Name = key.Value
			p.index[d.Name] = len(p.functions)
			p.functions = append(p.functions, d)
		}
	}

	return p, pf.Custom.Fnforge, nil
}

// Service returns the declared service name.
func (p *Project) Service() string {
	return p.service
}

// DefaultRuntime returns the project-wide runtime that descriptors without
// an explicit runtime inherit.
func (p *Project) DefaultRuntime() string {
	return p.defaultRuntime
}

// Names lists every declared function name in declaration order.
func (p *Project) Names() []string {
	names := make([]string, len(p.functions))
	for i, d := range p.functions {
		names[i] = d.Name
	}
	return names
}

// Functions returns copies of every descriptor in declaration order.
func (p *Project) Functions() []FunctionDescriptor {
	out := make([]FunctionDescriptor, len(p.functions))
	copy(out, p.functions)
	return out
}

// Get fetches one descriptor by name.
func (p *Project) Get(name string) (FunctionDescriptor, error) {
	i, ok := p.index[name]
	if !ok {
		return FunctionDescriptor{}, fmt.Errorf("function %q is not declared in the project", name)
	}
	return p.functions[i], nil
}

// Replace substitutes a transformed descriptor back into the registry. The
// descriptor keeps its declaration slot, so ordering is unaffected.
func (p *Project) Replace(name string, d FunctionDescriptor) error {
	i, ok := p.index[name]
	if !ok {
		return fmt.Errorf("function %q is not declared in the project", name)
	}
	d.Name = name
	p.functions[i] = d
	return nil
}
