// Package gh implements domain.Tracker on top of the GitHub CLI.
package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/luciuz/gh-seed/internal/domain"
)

// repoPlaceholder is expanded by gh from the current checkout when no
// explicit repository is configured.
const repoPlaceholder = "{owner}/{repo}"

// milestonesPerPage is the page size used when listing milestones.
const milestonesPerPage = 100

// Options configures a Client.
type Options struct {
	Command    string // gh executable
	Dir        string // Working directory for every invocation
	Repo       string // OWNER/NAME; empty = repository of Dir
	LabelLimit int    // --limit for label listing
}

// Client implements domain.Tracker by running gh subcommands.
// Fields are ordered to minimize memory padding.
type Client struct {
	exec   domain.CommandExecutor
	logger domain.Logger
	opts   Options
}

// Ensure Client implements domain.Tracker interface.
var _ domain.Tracker = (*Client)(nil)

// NewClient creates a new gh client.
func NewClient(exec domain.CommandExecutor, opts Options, logger domain.Logger) *Client {
	if opts.Command == "" {
		opts.Command = domain.DefaultGHCommand
	}
	if opts.LabelLimit <= 0 {
		opts.LabelLimit = domain.DefaultLabelLimit
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Client{
		exec:   exec,
		logger: logger,
		opts:   opts,
	}
}

// CheckAuth runs "gh auth status".
func (c *Client) CheckAuth(ctx context.Context) error {
	if _, err := c.run(ctx, "auth", "status"); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotAuthenticated, err)
	}
	return nil
}

// ListLabels returns the names of all labels in the repository.
func (c *Client) ListLabels(ctx context.Context) ([]string, error) {
	args := []string{"label", "list", "--limit", strconv.Itoa(c.opts.LabelLimit), "--json", "name"}
	out, err := c.run(ctx, c.withRepo(args)...)
	if err != nil {
		return nil, err
	}

	var labels []struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(out, &labels); err != nil {
		return nil, fmt.Errorf("decode label list: %w", err)
	}

	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, l.Name)
	}
	return names, nil
}

// CreateLabel runs "gh label create".
func (c *Client) CreateLabel(ctx context.Context, label domain.Label) error {
	args := []string{"label", "create", label.Name, "--color", label.Color, "--description", label.Description}
	_, err := c.run(ctx, c.withRepo(args)...)
	return err
}

// ListMilestones returns the titles of all milestones, open and closed.
// Every page is fetched; gh concatenates the page arrays on stdout.
func (c *Client) ListMilestones(ctx context.Context) ([]string, error) {
	path := fmt.Sprintf("%s/milestones?state=all&per_page=%d", c.repoPath(), milestonesPerPage)
	out, err := c.run(ctx, "api", "--paginate", path)
	if err != nil {
		return nil, err
	}

	titles, err := decodeMilestonePages(out)
	if err != nil {
		return nil, fmt.Errorf("decode milestone list: %w", err)
	}
	return titles, nil
}

// CreateMilestone creates a milestone through the REST API.
func (c *Client) CreateMilestone(ctx context.Context, milestone domain.Milestone) error {
	_, err := c.run(ctx,
		"api", "-X", "POST", c.repoPath()+"/milestones",
		"-f", "title="+milestone.Title,
		"-f", "description="+milestone.Description,
	)
	return err
}

// ListIssues returns the titles of up to limit issues in any state.
func (c *Client) ListIssues(ctx context.Context, limit int) ([]string, error) {
	args := []string{"issue", "list", "--state", "all", "--limit", strconv.Itoa(limit), "--json", "title"}
	out, err := c.run(ctx, c.withRepo(args)...)
	if err != nil {
		return nil, err
	}

	var issues []struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(out, &issues); err != nil {
		return nil, fmt.Errorf("decode issue list: %w", err)
	}

	titles := make([]string, 0, len(issues))
	for _, i := range issues {
		titles = append(titles, i.Title)
	}
	return titles, nil
}

// CreateIssue runs "gh issue create".
func (c *Client) CreateIssue(ctx context.Context, issue domain.Issue) error {
	_, err := c.run(ctx, c.issueCreateArgs(issue)...)
	return err
}

// DescribeCreateIssue returns the command line CreateIssue would run.
func (c *Client) DescribeCreateIssue(issue domain.Issue) string {
	return domain.NewCommand(c.opts.Command, "", c.issueCreateArgs(issue)...).String()
}

func (c *Client) issueCreateArgs(issue domain.Issue) []string {
	args := []string{
		"issue", "create",
		"--title", issue.Title,
		"--body", issue.Body,
		"--milestone", issue.Milestone,
	}
	for _, l := range issue.Labels {
		args = append(args, "--label", l)
	}
	return c.withRepo(args)
}

// run executes gh with args and returns stdout.
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := domain.NewCommand(c.opts.Command, c.opts.Dir, args...)
	c.logger.Debug("gh", cmd.String())

	res, err := c.exec.Execute(ctx, cmd)
	if err != nil {
		c.logger.Error("gh", fmt.Sprintf("%s: %v", cmd.String(), err))
		return nil, err
	}
	return res.Stdout, nil
}

// withRepo appends --repo when an explicit repository is configured.
func (c *Client) withRepo(args []string) []string {
	if c.opts.Repo == "" {
		return args
	}
	return append(args, "--repo", c.opts.Repo)
}

// repoPath returns the "repos/OWNER/NAME" API prefix.
func (c *Client) repoPath() string {
	if c.opts.Repo == "" {
		return "repos/" + repoPlaceholder
	}
	return "repos/" + c.opts.Repo
}

// decodeJSON decodes a single JSON document. Empty output decodes as nothing.
func decodeJSON(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// decodeMilestonePages decodes one or more concatenated JSON arrays of
// milestone objects and returns their titles.
func decodeMilestonePages(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var titles []string
	for {
		var page []struct {
			Title string `json:"title"`
		}
		err := dec.Decode(&page)
		if errors.Is(err, io.EOF) {
			return titles, nil
		}
		if err != nil {
			return nil, err
		}
		for _, m := range page {
			titles = append(titles, m.Title)
		}
	}
}
