// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/luciuz/gh-seed/internal/domain"
	"github.com/luciuz/gh-seed/internal/infra/config"
	"github.com/luciuz/gh-seed/internal/infra/docs"
	"github.com/luciuz/gh-seed/internal/infra/executor"
	"github.com/luciuz/gh-seed/internal/infra/gh"
	"github.com/luciuz/gh-seed/internal/infra/logging"
	"github.com/luciuz/gh-seed/internal/infra/repo"
	"github.com/luciuz/gh-seed/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	RepoRoot string // Root directory of the repository holding the docs
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor     domain.CommandExecutor
	ConfigLoader domain.ConfigLoader

	// Optional overrides; nil means build from configuration.
	Tracker   domain.Tracker
	Documents domain.DocumentReader

	// Pointer fields
	Logger *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the repository containing dir.
// Outside a git repository dir itself is used as the root.
// Diagnostic logs are written to logOut.
func New(dir string, logOut io.Writer) (*Container, error) {
	root, err := repo.FindRoot(dir)
	if errors.Is(err, domain.ErrNotGitRepository) {
		root, err = filepath.Abs(dir)
	}
	if err != nil {
		return nil, err
	}

	logger := logging.New(logOut, logging.ParseLevel(domain.DefaultLogLevel))

	return &Container{
		Executor:     executor.NewClient(),
		ConfigLoader: config.NewLoader(root),
		Logger:       logger,
		Config:       Config{RepoRoot: root},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, loader domain.ConfigLoader, tracker domain.Tracker, documents domain.DocumentReader, logger *logging.Logger) *Container {
	return &Container{
		ConfigLoader: loader,
		Tracker:      tracker,
		Documents:    documents,
		Logger:       logger,
		Config:       cfg,
	}
}

// LoadConfig loads the configuration. A non-empty path selects an explicit
// config file instead of the repository default.
func (c *Container) LoadConfig(path string) (*domain.Config, error) {
	loader := c.ConfigLoader
	if path != "" {
		loader = config.NewLoaderWithPath(path)
	}
	if loader == nil {
		return domain.NewDefaultConfig(), nil
	}
	return loader.Load()
}

// ConfigureLogging applies the [log] settings to the logger.
func (c *Container) ConfigureLogging(cfg *domain.Config) error {
	if c.Logger == nil {
		return nil
	}
	c.Logger.SetLevel(logging.ParseLevel(cfg.Log.Level))
	if cfg.Log.File == "" {
		return nil
	}
	path := cfg.Log.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Config.RepoRoot, path)
	}
	if err := c.Logger.OpenFile(path); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	return nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	return c.Logger.Close()
}

// logger returns the logger as a port, never a nil pointer in an interface.
func (c *Container) logger() domain.Logger {
	if c.Logger == nil {
		return domain.NopLogger{}
	}
	return c.Logger
}

// TrackerFor returns the tracker for the configuration.
func (c *Container) TrackerFor(cfg *domain.Config) domain.Tracker {
	if c.Tracker != nil {
		return c.Tracker
	}
	exec := c.Executor
	if exec == nil {
		exec = executor.NewClient()
	}
	return gh.NewClient(exec, gh.Options{
		Command:    cfg.GitHub.Command,
		Dir:        c.Config.RepoRoot,
		Repo:       cfg.GitHub.Repo,
		LabelLimit: cfg.GitHub.LabelLimit,
	}, c.logger())
}

// DocumentsFor returns the document reader for the configuration.
func (c *Container) DocumentsFor(cfg *domain.Config) domain.DocumentReader {
	if c.Documents != nil {
		return c.Documents
	}
	return docs.NewReader(cfg.DocsDir(c.Config.RepoRoot))
}

// UseCase factory methods

// SeedUseCase returns a new Seed use case.
func (c *Container) SeedUseCase(cfg *domain.Config, reporter domain.SyncReporter) *usecase.Seed {
	return usecase.NewSeed(c.TrackerFor(cfg), c.DocumentsFor(cfg), cfg, reporter, c.logger())
}

// PlanUseCase returns a new Plan use case.
func (c *Container) PlanUseCase(cfg *domain.Config) *usecase.Plan {
	return usecase.NewPlan(c.DocumentsFor(cfg), cfg)
}
