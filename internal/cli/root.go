// Package cli provides the command-line interface for gh-seed.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/luciuz/gh-seed/internal/app"
	"github.com/luciuz/gh-seed/internal/domain"
	"github.com/luciuz/gh-seed/internal/usecase"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	ConfigPath string
	DocsRoot   string
	Repo       string
	LogLevel   string
	DryRun     bool
	Plan       bool
}

// NewRootCommand creates the root command for gh-seed.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts rootOptions

	validModes := make([]string, 0, len(domain.AllModes()))
	for _, m := range domain.AllModes() {
		validModes = append(validModes, string(m))
	}

	root := &cobra.Command{
		Use:   "gh-seed [" + strings.Join(validModes, "|") + "]",
		Short: "Seed GitHub labels, milestones and issues from project docs",
		Long: `gh-seed creates the labels, milestones and issues described in the
project documents on GitHub, using the authenticated gh CLI.

Only missing records are created: existing labels, milestones (open or
closed) and issues (any state) are left untouched, so running it again is
safe. Phases always run in the order labels, milestones, issues.

Documents (relative to the docs root, default docs/project):
  labels.md         backtick-quoted type/, tier/, prio/, area/ labels
  milestones.md     "## Name — Description" headings
  issue-backlog.md  "### Title" blocks with **Labels:** and **Milestone:**

Examples:
  # Seed everything
  gh-seed

  # Show the issue create commands without running them
  gh-seed issues --dry-run

  # Print what the documents contain, without contacting GitHub
  gh-seed --plan`,
		Version:   version,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: validModes,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errors.New("not initialized")
			}

			var modeArg string
			if len(args) > 0 {
				modeArg = args[0]
			}
			mode, err := domain.ParseMode(modeArg)
			if err != nil {
				return err
			}

			cfg, err := c.LoadConfig(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			if err := applyOverrides(cmd, cfg, opts); err != nil {
				return err
			}

			if err := c.ConfigureLogging(cfg); err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if opts.Plan {
				return runPlan(cmd, c, cfg, mode)
			}

			rep := newReporter(cmd.OutOrStdout())
			uc := c.SeedUseCase(cfg, rep)
			if _, err := uc.Execute(cmd.Context(), usecase.SeedInput{
				Mode:   mode,
				DryRun: opts.DryRun,
			}); err != nil {
				return err
			}

			rep.Done()
			return nil
		},
	}

	root.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print issue create commands instead of running them (issues phase only)")
	root.Flags().BoolVar(&opts.Plan, "plan", false, "Print the parsed records as YAML and exit without contacting GitHub")
	root.Flags().StringVar(&opts.DocsRoot, "docs", "", "Docs root directory (default from config: docs/project)")
	root.Flags().StringVarP(&opts.Repo, "repo", "R", "", "Target repository as OWNER/NAME (default: current checkout)")
	root.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file (default: <repo>/"+domain.ConfigFileName+")")
	root.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	return root
}

// applyOverrides applies flags that were set explicitly over the loaded config.
func applyOverrides(cmd *cobra.Command, cfg *domain.Config, opts rootOptions) error {
	flags := cmd.Flags()
	if flags.Changed("docs") {
		cfg.Docs.Root = opts.DocsRoot
	}
	if flags.Changed("repo") {
		if err := domain.ValidateRepo(opts.Repo); err != nil {
			return err
		}
		cfg.GitHub.Repo = opts.Repo
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
	return nil
}

// runPlan prints the parsed records as YAML.
func runPlan(cmd *cobra.Command, c *app.Container, cfg *domain.Config, mode domain.Mode) error {
	out, err := c.PlanUseCase(cfg).Execute(cmd.Context(), usecase.PlanInput{Mode: mode})
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return enc.Close()
}
