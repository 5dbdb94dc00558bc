// Package codegen renders generated wrapper programs.
//
// A wrapper is the minimal main package that imports the configured
// runtime-adapter library and hands it the exported symbol named by a
// handler. Wrappers are written to the deterministic path computed by the
// classifier, so regenerating is an idempotent overwrite.
package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/fnforge/fnforge/internal/entrypoint"
)

var wrapperTemplate = template.Must(template.New("wrapper").Parse(`// Code generated by fnforge. DO NOT EDIT.

package main

import (
	adapter "{{.AdapterImport}}"

	{{.ModuleName}} "{{.ModuleImport}}"
)

func main() {
	adapter.Start({{.ModuleName}}.{{.Symbol}})
}
`))

// wrapperContext feeds wrapperTemplate.
type wrapperContext struct {
	AdapterImport string
	ModuleImport  string
	ModuleName    string
	Symbol        string
}

// Generator writes wrapper programs for classified handlers.
type Generator struct {
	adapterImport string
}

// New creates a Generator that emits wrappers importing adapterImport.
func New(adapterImport string) *Generator {
	return &Generator{adapterImport: adapterImport}
}

// Write renders the wrapper for spec, whose package is importable at
// moduleImport (the workspace-relative path), and writes it to
// spec.GeneratedPath under dir, creating parent directories as needed.
func (g *Generator) Write(dir string, spec *entrypoint.Spec, moduleImport string) error {
	var buf bytes.Buffer
	err := wrapperTemplate.Execute(&buf, wrapperContext{
		AdapterImport: g.adapterImport,
		ModuleImport:  moduleImport,
		ModuleName:    spec.ModuleName,
		Symbol:        spec.Symbol,
	})
	if err != nil {
		return fmt.Errorf("rendering wrapper for %s: %w", spec.Handler, err)
	}

	path := filepath.Join(dir, filepath.FromSlash(spec.GeneratedPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating wrapper directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
