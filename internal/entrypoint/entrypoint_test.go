package entrypoint

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fnforge/fnforge/internal/config"
)

func TestClassify_SourceFileNeedsNoWrapper(t *testing.T) {
	handlers := []string{
		"functions/worker/main.go",
		"main.go",
		"deep/nested/path/entry.go",
	}
	for _, h := range handlers {
		if spec := Classify(h, "generatedEntrypoints"); spec != nil {
			t.Errorf("Classify(%q) = %+v, want nil", h, spec)
		}
	}
}

func TestClassify_SymbolReference(t *testing.T) {
	spec := Classify("entrypoints/widget.Handle", "generatedEntrypoints")
	if spec == nil {
		t.Fatal("Classify returned nil for a symbol reference")
	}
	if spec.ModulePath != "entrypoints/widget" {
		t.Errorf("ModulePath = %q", spec.ModulePath)
	}
	if spec.ModuleName != "widget" {
		t.Errorf("ModuleName = %q", spec.ModuleName)
	}
	if spec.Symbol != "Handle" {
		t.Errorf("Symbol = %q", spec.Symbol)
	}
	if spec.GeneratedPath != "generatedEntrypoints/entrypoints/widget/Handle/main.go" {
		t.Errorf("GeneratedPath = %q", spec.GeneratedPath)
	}
}

func TestClassify_RightmostDotWins(t *testing.T) {
	// The module path itself may contain dots; only the rightmost one splits.
	spec := Classify("vendor.d/pkg.Sym", "gen")
	if spec == nil {
		t.Fatal("Classify returned nil")
	}
	if spec.ModulePath != "vendor.d/pkg" || spec.Symbol != "Sym" {
		t.Errorf("got ModulePath=%q Symbol=%q", spec.ModulePath, spec.Symbol)
	}
}

func TestClassify_NotApplicable(t *testing.T) {
	for _, h := range []string{"", "nodotatall"} {
		if spec := Classify(h, "gen"); spec != nil {
			t.Errorf("Classify(%q) = %+v, want nil", h, spec)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	a := Classify("pkg/sub.Symbol", "gen")
	b := Classify("pkg/sub.Symbol", "gen")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two classifications differ: %+v vs %+v", a, b)
	}
}

func TestClassify_DistinctSymbolsDistinctPaths(t *testing.T) {
	a := Classify("pkg/sub.First", "gen")
	b := Classify("pkg/sub.Second", "gen")
	if a.GeneratedPath == b.GeneratedPath {
		t.Errorf("generated paths collide: %q", a.GeneratedPath)
	}
}

func TestWorkspaceRel_InsideRoot(t *testing.T) {
	rel, err := WorkspaceRel("/home/dev/go/src/github.com/acme/svc/entrypoints/widget", "/home/dev/go/src/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel != "github.com/acme/svc/entrypoints/widget" {
		t.Errorf("rel = %q", rel)
	}
}

func TestWorkspaceRel_OutsideRoot(t *testing.T) {
	_, err := WorkspaceRel("/tmp/elsewhere/project", "/home/dev/go/src/")
	if err == nil {
		t.Fatal("expected error for module outside workspace root")
	}
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *config.Error", err)
	}
}

func TestOutputBinary(t *testing.T) {
	cases := []struct {
		handler string
		binPath string
		want    string
	}{
		{"entrypoints/widget.Handle", "bin", "bin/entrypoints/widget"},
		{"functions/worker/main.go", "bin", "bin/functions/worker/main"},
		{"functions/worker/main.go", "artifacts", "artifacts/functions/worker/main"},
		{"nosuffix", "bin", "bin/nosuffix"},
	}
	for _, c := range cases {
		if got := OutputBinary(c.handler, c.binPath); got != c.want {
			t.Errorf("OutputBinary(%q, %q) = %q, want %q", c.handler, c.binPath, got, c.want)
		}
	}
}
