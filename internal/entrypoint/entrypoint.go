// Package entrypoint classifies function handlers and derives the
// deterministic paths used for generated wrappers and compiled binaries.
//
// A handler names either a standalone Go program ("functions/worker/main.go")
// or an exported symbol inside a package ("entrypoints/widget.Handle"). Only
// the latter needs a generated wrapper. Classification is pure path algebra:
// no I/O, same input always yields the same spec, which keeps wrapper
// regeneration idempotent.
package entrypoint

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/fnforge/fnforge/internal/config"
)

// GeneratedFileName is the fixed file name of every generated wrapper.
const GeneratedFileName = "main.go"

// sourceSuffix marks a handler that is already a standalone source file.
const sourceSuffix = "go"

// handlerPattern captures everything before the rightmost dot, then the
// non-dot suffix after it.
var handlerPattern = regexp.MustCompile(`^(.*)\.([^.]+)$`)

// Spec describes one handler that needs a generated wrapper.
type Spec struct {
	// Handler is the original handler string the spec was derived from.
	Handler string

	// ModulePath is the project-relative package path holding the exported
	// symbol, e.g. "entrypoints/widget".
	ModulePath string

	// ModuleName is the package's short name: the last segment of ModulePath.
	ModuleName string

	// Symbol is the exported identifier the wrapper invokes.
	Symbol string

	// GeneratedPath is where the wrapper source is written:
	// <generatedRoot>/<ModulePath>/<Symbol>/main.go. Distinct symbols in the
	// same package never collide; identical module path plus symbol pairs do
	// (the second write wins), which callers must not rely on.
	GeneratedPath string
}

// Classify derives the wrapper spec for a handler.
//
// Returns nil when no wrapper is needed: the handler is empty, contains no
// dot, or already names a .go source file. Malformed handlers are "not
// applicable" rather than errors; not every function needs a wrapper.
func Classify(handler, generatedRoot string) *Spec {
	if handler == "" {
		return nil
	}
	m := handlerPattern.FindStringSubmatch(handler)
	if m == nil {
		return nil
	}
	modulePath, trailing := m[1], m[2]
	if trailing == sourceSuffix {
		return nil
	}
	return &Spec{
		Handler:       handler,
		ModulePath:    modulePath,
		ModuleName:    path.Base(modulePath),
		Symbol:        trailing,
		GeneratedPath: path.Join(generatedRoot, modulePath, trailing, GeneratedFileName),
	}
}

// WorkspaceRel validates an absolute module directory against the workspace
// root and returns the module's import path relative to it.
//
// The generated wrapper's import statement is produced by stripping the
// workspace root prefix. A module outside the root would yield a meaningless
// import path, so it is rejected instead of silently generating broken code.
func WorkspaceRel(moduleDir, workspaceRoot string) (string, error) {
	if !strings.HasPrefix(moduleDir, workspaceRoot) {
		return "", &config.Error{
			Msg: fmt.Sprintf("module path %s outside workspace root %s", moduleDir, workspaceRoot),
		}
	}
	return strings.TrimPrefix(moduleDir, workspaceRoot), nil
}

// OutputBinary maps a handler to the binary path the compiler must produce:
// the handler with its trailing suffix removed (".go" for standalone
// programs, ".Symbol" for classified references), joined under binPath. A
// handler with no suffix is used as-is.
func OutputBinary(handler, binPath string) string {
	if m := handlerPattern.FindStringSubmatch(handler); m != nil {
		return path.Join(binPath, m[1])
	}
	return path.Join(binPath, handler)
}
