// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/luciuz/gh-seed/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path     string // Path to the config file
	explicit bool   // Whether the path was given by the user (must exist)
}

// NewLoader creates a Loader for the default config file in repoRoot.
// A missing file yields the default configuration.
func NewLoader(repoRoot string) *Loader {
	return &Loader{path: filepath.Join(repoRoot, domain.ConfigFileName)}
}

// NewLoaderWithPath creates a Loader for an explicit config file.
// A missing file is an error.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path, explicit: true}
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the configuration from the file merged over defaults.
// Unknown keys are reported in Config.Warnings.
func (l *Loader) Load() (*domain.Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !l.explicit {
			return domain.NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", l.path, err)
	}
	return cfg, nil
}

// decode decodes data over the defaults. Unknown keys are collected as
// warnings instead of failing.
func decode(data []byte) (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return cfg, nil
	}

	var strictErr *toml.StrictMissingError
	if !errors.As(err, &strictErr) {
		return nil, err
	}

	var warnings []string
	for _, e := range strictErr.Errors {
		warnings = append(warnings, fmt.Sprintf("unknown key in %s: %s", domain.ConfigFileName, strings.Join(e.Key(), ".")))
	}

	cfg = domain.NewDefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Warnings = warnings
	return cfg, nil
}

func validate(cfg *domain.Config) error {
	if err := domain.ValidateRepo(cfg.GitHub.Repo); err != nil {
		return err
	}
	if cfg.GitHub.IssueLimit <= 0 {
		return fmt.Errorf("github.issue_limit must be positive, got %d", cfg.GitHub.IssueLimit)
	}
	if cfg.GitHub.LabelLimit <= 0 {
		return fmt.Errorf("github.label_limit must be positive, got %d", cfg.GitHub.LabelLimit)
	}
	if cfg.GitHub.Command == "" {
		return errors.New("github.command must not be empty")
	}
	return nil
}
