// Package main is the entry point for the gh-seed CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/luciuz/gh-seed/internal/app"
	"github.com/luciuz/gh-seed/internal/cli"
	"github.com/luciuz/gh-seed/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}

// reportError prints err to w and returns the process exit code.
// A failed external command prints its command line and captured streams
// and yields that command's exit status.
func reportError(w io.Writer, err error) int {
	code := 1

	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) {
		_, _ = fmt.Fprintln(w, "CMD FAILED:", cmdErr.CommandLine())
		if out := strings.TrimRight(cmdErr.Stdout, "\n"); out != "" {
			_, _ = fmt.Fprintln(w, out)
		}
		if out := strings.TrimRight(cmdErr.Stderr, "\n"); out != "" {
			_, _ = fmt.Fprintln(w, out)
		}
		if cmdErr.ExitCode > 0 {
			code = cmdErr.ExitCode
		}
	}

	if errors.Is(err, domain.ErrNotAuthenticated) {
		_, _ = fmt.Fprintf(w, "ERROR: %s. %s\n", domain.ErrNotAuthenticated, domain.AuthHint)
		return code
	}

	_, _ = fmt.Fprintln(w, "Error:", err)
	return code
}
