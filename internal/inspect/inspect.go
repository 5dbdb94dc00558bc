// Package inspect verifies that classified handlers resolve to real exported
// symbols, using go/packages to load the referenced package.
package inspect

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"

	"github.com/fnforge/fnforge/internal/entrypoint"
)

// Report is the result of checking one handler.
type Report struct {
	Handler string
	Symbol  string
	OK      bool
	Detail  string
}

// loadFunc matches packages.Load, replaceable in tests.
type loadFunc func(cfg *packages.Config, patterns ...string) ([]*packages.Package, error)

// Checker resolves handler symbols against the packages in a project
// directory.
type Checker struct {
	dir  string
	load loadFunc
}

// New creates a Checker rooted at the project directory.
func New(dir string) *Checker {
	return &Checker{dir: dir, load: packages.Load}
}

// Check loads the package at spec.ModulePath and confirms spec.Symbol names
// an exported package-level declaration.
func (c *Checker) Check(spec *entrypoint.Spec) Report {
	report := Report{Handler: spec.Handler, Symbol: spec.Symbol}

	if !Exported(spec.Symbol) {
		report.Detail = fmt.Sprintf("symbol %s is not exported", spec.Symbol)
		return report
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  c.dir,
	}
	pkgs, err := c.load(cfg, "./"+spec.ModulePath)
	if err != nil {
		report.Detail = fmt.Sprintf("loading package %s: %v", spec.ModulePath, err)
		return report
	}
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		report.Detail = fmt.Sprintf("package %s not found", spec.ModulePath)
		return report
	}
	if len(pkgs[0].Errors) > 0 {
		report.Detail = fmt.Sprintf("package %s: %v", spec.ModulePath, pkgs[0].Errors[0])
		return report
	}

	if pkgs[0].Types.Scope().Lookup(spec.Symbol) == nil {
		report.Detail = fmt.Sprintf("package %s has no symbol %s", spec.ModulePath, spec.Symbol)
		return report
	}

	report.OK = true
	return report
}

// Exported reports whether name starts with an upper-case letter, i.e.
// whether it can be referenced from a generated wrapper at all.
func Exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
