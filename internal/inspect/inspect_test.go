package inspect

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"

	"github.com/fnforge/fnforge/internal/entrypoint"
)

func TestExported(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Handle", true},
		{"handle", false},
		{"Ärger", true},
		{"", false},
	}
	for _, c := range cases {
		if got := Exported(c.name); got != c.want {
			t.Errorf("Exported(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCheck_UnexportedSymbolFailsWithoutLoading(t *testing.T) {
	loaded := false
	c := &Checker{
		dir: "/nonexistent",
		load: func(*packages.Config, ...string) ([]*packages.Package, error) {
			loaded = true
			return nil, nil
		},
	}

	spec := entrypoint.Classify("entrypoints/widget.handle", "gen")
	report := c.Check(spec)

	if report.OK {
		t.Error("unexported symbol must not pass")
	}
	if loaded {
		t.Error("no package load needed to reject an unexported symbol")
	}
	if !strings.Contains(report.Detail, "not exported") {
		t.Errorf("Detail = %q", report.Detail)
	}
}

func TestCheck_LoadErrorReported(t *testing.T) {
	c := &Checker{
		dir: "/nonexistent",
		load: func(*packages.Config, ...string) ([]*packages.Package, error) {
			return nil, errors.New("no such directory")
		},
	}

	spec := entrypoint.Classify("entrypoints/widget.Handle", "gen")
	report := c.Check(spec)

	if report.OK {
		t.Error("load failure must not pass")
	}
	if !strings.Contains(report.Detail, "no such directory") {
		t.Errorf("Detail = %q", report.Detail)
	}
}

func TestCheck_MissingPackageReported(t *testing.T) {
	c := &Checker{
		dir: "/nonexistent",
		load: func(*packages.Config, ...string) ([]*packages.Package, error) {
			return nil, nil
		},
	}

	spec := entrypoint.Classify("entrypoints/widget.Handle", "gen")
	report := c.Check(spec)

	if report.OK {
		t.Error("missing package must not pass")
	}
	if !strings.Contains(report.Detail, "not found") {
		t.Errorf("Detail = %q", report.Detail)
	}
}
