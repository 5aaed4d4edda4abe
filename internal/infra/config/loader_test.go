package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luciuz/gh-seed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	l := NewLoader(t.TempDir())

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[docs]
root = "project-docs"

[github]
repo = "luciuz/luciuz"
issue_limit = 1000

[log]
level = "debug"
`)
	l := NewLoader(dir)

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, "project-docs", cfg.Docs.Root)
	assert.Equal(t, "labels.md", cfg.Docs.Labels)
	assert.Equal(t, "luciuz/luciuz", cfg.GitHub.Repo)
	assert.Equal(t, 1000, cfg.GitHub.IssueLimit)
	assert.Equal(t, "gh", cfg.GitHub.Command)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_UnknownKeysBecomeWarnings(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[labels]
description = "Seeded"
colour = "fff"
`)
	l := NewLoader(dir)

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, "Seeded", cfg.Labels.Description)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "labels.colour")
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[docs\nroot=")
	l := NewLoader(dir)

	_, err := l.Load()

	assert.ErrorContains(t, err, "parse config")
}

func TestLoader_Load_InvalidRepo(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[github]\nrepo = \"nope\"\n")
	l := NewLoader(dir)

	_, err := l.Load()

	assert.ErrorIs(t, err, domain.ErrInvalidRepo)
}

func TestLoader_Load_NonPositiveLimit(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[github]\nissue_limit = -1\n")
	l := NewLoader(dir)

	_, err := l.Load()

	assert.ErrorContains(t, err, "issue_limit")
}

func TestLoaderWithPath_MissingFileIsError(t *testing.T) {
	l := NewLoaderWithPath(filepath.Join(t.TempDir(), "custom.toml"))

	_, err := l.Load()

	assert.ErrorIs(t, err, os.ErrNotExist)
}
