// Package build selects functions and sequences wrapper generation,
// compilation and test execution.
//
// Every phase is strictly sequential over the selected descriptors, in
// declaration order, and fail-fast: the first failure halts the remainder of
// the phase, leaving already-written wrappers and already-compiled binaries
// in place. Wrapper generation for all descriptors completes before any
// compiler runs.
package build

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fnforge/fnforge/internal/codegen"
	"github.com/fnforge/fnforge/internal/config"
	"github.com/fnforge/fnforge/internal/entrypoint"
	"github.com/fnforge/fnforge/internal/executor"
	"github.com/fnforge/fnforge/internal/registry"
)

// WrapperGenerator writes the generated entry-point program for a classified
// handler.
type WrapperGenerator interface {
	Write(dir string, spec *entrypoint.Spec, moduleImport string) error
}

// Recorder persists the outcome of each executed command.
type Recorder interface {
	Record(phase, function, command, status string, d time.Duration) error
}

type nopRecorder struct{}

func (nopRecorder) Record(string, string, string, string, time.Duration) error { return nil }

// TestOutcome tells the caller how the test phase ended. The caller, not the
// runner, decides how to terminate the process.
type TestOutcome struct {
	// Ran counts the test commands that completed successfully.
	Ran int

	// Err is the failure that stopped the phase, nil on success.
	Err error
}

// Failed reports whether the phase must map to a non-zero exit.
func (o TestOutcome) Failed() bool { return o.Err != nil }

// Runner orchestrates the build and test phases for one project.
type Runner struct {
	project    *registry.Project
	cfg        *config.Config
	projectDir string

	exec   executor.Executor
	gen    WrapperGenerator
	host   executor.Host
	rec    Recorder
	logger *zap.Logger
	sleep  func(time.Duration)

	runID string
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces the shell executor.
func WithExecutor(e executor.Executor) Option {
	return func(r *Runner) { r.exec = e }
}

// WithGenerator replaces the wrapper generator.
func WithGenerator(g WrapperGenerator) Option {
	return func(r *Runner) { r.gen = g }
}

// WithHost replaces the helper-process host.
func WithHost(h executor.Host) Option {
	return func(r *Runner) { r.host = h }
}

// WithRecorder sets the run ledger.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.rec = rec }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithProjectDir sets the absolute project directory commands run in and
// module paths are resolved against.
func WithProjectDir(dir string) Option {
	return func(r *Runner) { r.projectDir = dir }
}

// WithRunID overrides the generated run ID so callers can correlate their
// own records with the runner's log lines.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// withSleep replaces the startup-delay clock in tests.
func withSleep(fn func(time.Duration)) Option {
	return func(r *Runner) { r.sleep = fn }
}

// NewRunner creates a Runner for the given project and merged configuration.
func NewRunner(proj *registry.Project, cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		project: proj,
		cfg:     cfg,
		logger:  zap.NewNop(),
		rec:     nopRecorder{},
		sleep:   time.Sleep,
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.exec == nil {
		r.exec = executor.NewShell(r.projectDir, r.logger)
	}
	if r.gen == nil {
		r.gen = codegen.New(r.cfg.AdapterImport)
	}
	if r.host == nil {
		r.host = executor.NewBackgroundHost(r.projectDir, r.logger)
	}
	r.logger = r.logger.With(zap.String("run_id", r.runID))
	return r
}

// RunID identifies this invocation in logs and ledger rows.
func (r *Runner) RunID() string { return r.runID }

// job pairs a selected descriptor with its wrapper spec, nil when the
// handler is already a standalone program.
type job struct {
	fn   registry.FunctionDescriptor
	spec *entrypoint.Spec
}

// Build compiles every selected function, optionally narrowed to
// functionName.
//
// Wrappers for all selected functions are validated and generated before the
// first compile: a validation or generation failure aborts the phase with
// nothing built. Compiles then run sequentially in declaration order and the
// first failing command halts the rest.
func (r *Runner) Build(ctx context.Context, functionName string) error {
	fns, err := Select(r.project, functionName, r.cfg)
	if err != nil {
		return err
	}
	if len(fns) == 0 {
		r.logger.Warn("no functions match the target runtime",
			zap.String("runtime", r.cfg.Runtime))
		return nil
	}

	jobs := make([]job, 0, len(fns))
	for _, fn := range fns {
		jobs = append(jobs, job{fn: fn, spec: entrypoint.Classify(fn.Handler, r.cfg.GeneratedBuildDir)})
	}

	if err := r.generateWrappers(jobs); err != nil {
		return err
	}
	return r.compile(ctx, jobs)
}

func (r *Runner) generateWrappers(jobs []job) error {
	for _, j := range jobs {
		if j.spec == nil {
			continue
		}
		moduleDir := filepath.Join(r.projectDir, filepath.FromSlash(j.spec.ModulePath))
		moduleImport, err := entrypoint.WorkspaceRel(moduleDir, r.cfg.WorkspaceRoot)
		if err != nil {
			return err
		}
		if err := r.gen.Write(r.projectDir, j.spec, moduleImport); err != nil {
			return &GenerateError{Handler: j.spec.Handler, Err: err}
		}
		r.logger.Info("generated wrapper",
			zap.String("function", j.fn.Name),
			zap.String("path", j.spec.GeneratedPath))
	}
	return nil
}

func (r *Runner) compile(ctx context.Context, jobs []job) error {
	for _, j := range jobs {
		src := j.fn.Handler
		if j.spec != nil {
			src = j.spec.GeneratedPath
		}
		cmd := Command{
			Env:      r.cfg.BuildEnv,
			Template: r.cfg.BuildCmd,
			Bin:      entrypoint.OutputBinary(j.fn.Handler, r.cfg.BinPath),
			Src:      src,
		}
		line := cmd.Render()

		r.logger.Info("building",
			zap.String("function", j.fn.Name),
			zap.String("command", line))

		start := time.Now()
		if err := r.exec.Run(ctx, line); err != nil {
			r.record("build", j.fn.Name, line, "failed", time.Since(start))
			r.logger.Error("build failed, run it by hand to reproduce",
				zap.String("command", line))
			return &CompileError{Command: line, Err: err}
		}
		r.record("build", j.fn.Name, line, "ok", time.Since(start))
	}
	return nil
}

// Test starts the configured helper processes, waits out the startup delay,
// then runs every configured test target in order, halting on the first
// failure. An empty target list is a warning, not an error.
func (r *Runner) Test(ctx context.Context) TestOutcome {
	if len(r.cfg.HelperProcesses) > 0 {
		for _, command := range r.cfg.HelperProcesses {
			if err := r.host.Start(ctx, command); err != nil {
				return TestOutcome{Err: err}
			}
		}
		defer r.host.StopAll()

		r.logger.Info("waiting for helper processes",
			zap.Int("delay_ms", r.cfg.StartupDelayMs))
		r.sleep(time.Duration(r.cfg.StartupDelayMs) * time.Millisecond)
	}

	if len(r.cfg.Tests) == 0 {
		r.logger.Warn("no tests configured, nothing to run")
		return TestOutcome{}
	}

	for i, target := range r.cfg.Tests {
		line := TestCommand{Template: r.cfg.TestCmd, Target: target}.Render()

		r.logger.Info("testing", zap.String("command", line))

		start := time.Now()
		if err := r.exec.Run(ctx, line); err != nil {
			r.record("test", target, line, "failed", time.Since(start))
			r.logger.Error("test failed, run it by hand to reproduce",
				zap.String("command", line))
			return TestOutcome{Ran: i, Err: &TestError{Command: line, Err: err}}
		}
		r.record("test", target, line, "ok", time.Since(start))
	}
	return TestOutcome{Ran: len(r.cfg.Tests)}
}

func (r *Runner) record(phase, function, command, status string, d time.Duration) {
	if err := r.rec.Record(phase, function, command, status, d); err != nil {
		r.logger.Warn("recording run history failed", zap.Error(err))
	}
}
