package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/luciuz/gh-seed/internal/domain"
	"github.com/luciuz/gh-seed/internal/infra/docs"
	"github.com/luciuz/gh-seed/internal/infra/gh"
	"github.com/luciuz/gh-seed/internal/infra/logging"
	"github.com/luciuz/gh-seed/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DetectsRepoRoot(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)
	sub := filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	c, err := New(sub, nil)

	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(root)
	got, _ := filepath.EvalSymlinks(c.Config.RepoRoot)
	assert.Equal(t, want, got)
	assert.NotNil(t, c.Executor)
	assert.NotNil(t, c.ConfigLoader)
}

func TestNew_OutsideRepositoryUsesDir(t *testing.T) {
	dir := t.TempDir()

	c, err := New(dir, nil)

	require.NoError(t, err)
	assert.Equal(t, dir, c.Config.RepoRoot)
}

func TestContainer_DefaultsBuildRealAdapters(t *testing.T) {
	c := &Container{Config: Config{RepoRoot: "/repo"}}
	cfg := domain.NewDefaultConfig()

	assert.IsType(t, &gh.Client{}, c.TrackerFor(cfg))
	reader, ok := c.DocumentsFor(cfg).(*docs.Reader)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/repo", "docs", "project"), reader.Root())
}

func TestContainer_OverridesWin(t *testing.T) {
	tracker := testutil.NewFakeTracker()
	documents := testutil.MemoryDocuments{}
	c := NewWithDeps(Config{}, testutil.NewMockConfigLoader(), tracker, documents, nil)
	cfg := domain.NewDefaultConfig()

	assert.Same(t, tracker, c.TrackerFor(cfg))
	assert.Equal(t, documents, c.DocumentsFor(cfg))
}

func TestContainer_LoadConfig_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte("[labels]\ndescription = \"x\"\n"), 0o600))
	c := NewWithDeps(Config{}, testutil.NewMockConfigLoader(), nil, nil, nil)

	cfg, err := c.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Labels.Description)
}

func TestContainer_ConfigureLogging(t *testing.T) {
	root := t.TempDir()
	var console bytes.Buffer
	logger := logging.New(&console, logging.ParseLevel("warn"))
	c := NewWithDeps(Config{RepoRoot: root}, nil, nil, nil, logger)
	cfg := domain.NewDefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.File = "logs/seed.log"

	require.NoError(t, c.ConfigureLogging(cfg))
	c.Logger.Debug("seed", "hello")
	require.NoError(t, c.Close())

	assert.Contains(t, console.String(), "[DEBUG] [seed] hello")
	data, err := os.ReadFile(filepath.Join(root, "logs", "seed.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestContainer_NilLogger(t *testing.T) {
	c := &Container{}

	assert.NoError(t, c.ConfigureLogging(domain.NewDefaultConfig()))
	assert.NoError(t, c.Close())
	assert.IsType(t, domain.NopLogger{}, c.logger())
}
