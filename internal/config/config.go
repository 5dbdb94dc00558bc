// Package config resolves tool options against built-in defaults.
//
// Options come from the project file's custom section. Every recognized
// option has a usable default, so a missing or empty options block never
// fails resolution. The merged Config is immutable for the rest of the
// invocation; in particular the workspace root is fixed once, here, and the
// environment is never consulted again by later phases.
package config

import "os"

// Built-in defaults for every recognized option.
const (
	DefaultBinPath           = "bin"
	DefaultGeneratedBuildDir = "generatedEntrypoints"
	DefaultBuildCmd          = `go build -ldflags="-s -w" -o {{bin}} {{src}}`
	DefaultBuildEnv          = "GOOS=linux"
	DefaultTestCmd           = "go test {{test}}"
	DefaultRuntime           = "go1.x"
	DefaultAdapterImport     = "github.com/aws/aws-lambda-go/lambda"
	DefaultHistoryPath       = ".fnforge/history.db"
	DefaultStartupDelayMs    = 3000
)

// workspaceSuffix is appended to GOPATH when no explicit root is configured.
const workspaceSuffix = "/src/"

// Options holds the user-supplied overrides as declared in the project file.
// Zero-valued fields resolve to the built-in default; pointer fields
// distinguish "absent" from an explicit zero override.
type Options struct {
	BinPath              string   `yaml:"binPath,omitempty"`
	GeneratedBuildDir    string   `yaml:"generatedBuildDir,omitempty"`
	BuildCmd             string   `yaml:"buildCmd,omitempty"`
	BuildEnv             *string  `yaml:"buildEnv,omitempty"`
	TestCmd              string   `yaml:"testCmd,omitempty"`
	Runtime              string   `yaml:"runtime,omitempty"`
	AdapterImport        string   `yaml:"adapterImport,omitempty"`
	GoPath               string   `yaml:"goPath,omitempty"`
	UseBinPathForHandler bool     `yaml:"useBinPathForHandler,omitempty"`
	MinimizePackage      *bool    `yaml:"minimizePackage,omitempty"`
	HelperProcesses      []string `yaml:"helperProcesses,omitempty"`
	StartupDelayMs       *int     `yaml:"startupDelayMs,omitempty"`
	Tests                []string `yaml:"tests,omitempty"`
	HistoryPath          string   `yaml:"historyPath,omitempty"`
}

// Config is the merged view of Options: every field carries a usable value.
type Config struct {
	BinPath           string
	GeneratedBuildDir string
	BuildCmd          string
	BuildEnv          string
	TestCmd           string
	Runtime           string
	AdapterImport     string

	// WorkspaceRoot is the prefix module paths must live under. Resolved
	// once at merge time: the goPath option when set, else $GOPATH plus
	// "/src/".
	WorkspaceRoot string

	UseBinPathForHandler bool
	MinimizePackage      bool
	HelperProcesses      []string
	StartupDelayMs       int
	Tests                []string
	HistoryPath          string
}

// Resolve merges user options over the built-in defaults. A nil opts is
// treated as an empty override set.
func Resolve(opts *Options) *Config {
	if opts == nil {
		opts = &Options{}
	}
	cfg := &Config{
		BinPath:              stringOr(opts.BinPath, DefaultBinPath),
		GeneratedBuildDir:    stringOr(opts.GeneratedBuildDir, DefaultGeneratedBuildDir),
		BuildCmd:             stringOr(opts.BuildCmd, DefaultBuildCmd),
		BuildEnv:             DefaultBuildEnv,
		TestCmd:              stringOr(opts.TestCmd, DefaultTestCmd),
		Runtime:              stringOr(opts.Runtime, DefaultRuntime),
		AdapterImport:        stringOr(opts.AdapterImport, DefaultAdapterImport),
		WorkspaceRoot:        workspaceRoot(opts.GoPath),
		UseBinPathForHandler: opts.UseBinPathForHandler,
		MinimizePackage:      true,
		HelperProcesses:      opts.HelperProcesses,
		StartupDelayMs:       DefaultStartupDelayMs,
		Tests:                opts.Tests,
		HistoryPath:          stringOr(opts.HistoryPath, DefaultHistoryPath),
	}
	if opts.BuildEnv != nil {
		cfg.BuildEnv = *opts.BuildEnv
	}
	if opts.MinimizePackage != nil {
		cfg.MinimizePackage = *opts.MinimizePackage
	}
	if opts.StartupDelayMs != nil {
		cfg.StartupDelayMs = *opts.StartupDelayMs
	}
	return cfg
}

func stringOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// workspaceRoot resolves the prefix used for import-path validation. The
// trailing separator is kept so that stripping the prefix yields a clean
// relative import path.
func workspaceRoot(override string) string {
	if override != "" {
		return override
	}
	return os.Getenv("GOPATH") + workspaceSuffix
}
