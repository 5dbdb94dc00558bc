package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fnforge/fnforge/internal/build"
	"github.com/fnforge/fnforge/internal/config"
	"github.com/fnforge/fnforge/internal/history"
	"github.com/fnforge/fnforge/internal/logging"
	"github.com/fnforge/fnforge/internal/registry"
)

// projectEnv bundles everything a command needs after loading the project
// file once.
type projectEnv struct {
	project *registry.Project
	cfg     *config.Config
	dir     string
	logger  *zap.Logger
}

// loadProject reads the project file (default fnforge.yml in the working
// directory) and resolves tool options.
func loadProject(configPath string, verbose bool) (*projectEnv, error) {
	if configPath == "" {
		configPath = registry.DefaultProjectFile
	}

	proj, opts, err := registry.Load(configPath)
	if err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}

	return &projectEnv{
		project: proj,
		cfg:     config.Resolve(opts),
		dir:     dir,
		logger:  logging.New(os.Stderr, verbose),
	}, nil
}

// newRunner wires a build runner with the run ledger attached. The returned
// cleanup closes the ledger and flushes the logger.
func newRunner(env *projectEnv) (*build.Runner, func()) {
	runID := uuid.NewString()

	opts := []build.Option{
		build.WithProjectDir(env.dir),
		build.WithLogger(env.logger),
		build.WithRunID(runID),
	}

	cleanup := func() { _ = env.logger.Sync() }

	ledger, err := history.Open(filepath.Join(env.dir, filepath.FromSlash(env.cfg.HistoryPath)))
	if err != nil {
		// The ledger is best-effort; a build must not fail because the
		// history database is unavailable.
		env.logger.Warn("run history disabled", zap.Error(err))
	} else {
		opts = append(opts, build.WithRecorder(ledger.ForRun(runID)))
		cleanup = func() {
			_ = ledger.Close()
			_ = env.logger.Sync()
		}
	}

	return build.NewRunner(env.project, env.cfg, opts...), cleanup
}
