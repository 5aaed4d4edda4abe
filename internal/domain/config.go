package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ConfigFileName is the name of the optional repository config file.
const ConfigFileName = ".gh-seed.toml"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Docs     DocsConfig   `toml:"docs"`
	GitHub   GitHubConfig `toml:"github"`
	Labels   LabelsConfig `toml:"labels"`
	Log      LogConfig    `toml:"log"`
}

// DocsConfig holds document locations from the [docs] section.
type DocsConfig struct {
	Root       string `toml:"root,omitempty"`       // Docs root, relative to the repository root
	Labels     string `toml:"labels,omitempty"`     // Labels and milestones reference document
	Milestones string `toml:"milestones,omitempty"` // Milestones document
	Backlog    string `toml:"backlog,omitempty"`    // Issue backlog document
}

// GitHubConfig holds tracker client settings from the [github] section.
type GitHubConfig struct {
	Command    string `toml:"command,omitempty"`     // gh executable
	Repo       string `toml:"repo,omitempty"`        // OWNER/NAME, empty = current checkout
	IssueLimit int    `toml:"issue_limit,omitempty"` // Max issues fetched for the existence check
	LabelLimit int    `toml:"label_limit,omitempty"` // Max labels fetched for the existence check
}

// LabelsConfig holds label settings from the [labels] section.
type LabelsConfig struct {
	Description string `toml:"description,omitempty"` // Description attached to created labels
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Optional append-only log file
}

// Default configuration values.
const (
	DefaultDocsRoot         = "docs/project"
	DefaultLabelsDoc        = "labels.md"
	DefaultMilestonesDoc    = "milestones.md"
	DefaultBacklogDoc       = "issue-backlog.md"
	DefaultGHCommand        = "gh"
	DefaultIssueLimit       = 500
	DefaultLabelLimit       = 1000
	DefaultLabelDescription = "Auto-generated label"
	DefaultLogLevel         = "warn"
)

// NewDefaultConfig returns a Config populated with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Docs: DocsConfig{
			Root:       DefaultDocsRoot,
			Labels:     DefaultLabelsDoc,
			Milestones: DefaultMilestonesDoc,
			Backlog:    DefaultBacklogDoc,
		},
		GitHub: GitHubConfig{
			Command:    DefaultGHCommand,
			IssueLimit: DefaultIssueLimit,
			LabelLimit: DefaultLabelLimit,
		},
		Labels: LabelsConfig{
			Description: DefaultLabelDescription,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// DocsDir returns the absolute docs directory for a repository root.
// An absolute Docs.Root is returned unchanged.
func (c *Config) DocsDir(repoRoot string) string {
	if filepath.IsAbs(c.Docs.Root) {
		return c.Docs.Root
	}
	return filepath.Join(repoRoot, c.Docs.Root)
}

// ValidateRepo checks that repo is empty or of the form OWNER/NAME.
func ValidateRepo(repo string) error {
	if repo == "" {
		return nil
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidRepo, repo)
	}
	return nil
}
