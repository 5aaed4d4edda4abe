package domain

import (
	"regexp"
	"strings"
)

// Issue represents a backlog issue to be created.
type Issue struct {
	Title     string   `yaml:"title"`
	Milestone string   `yaml:"milestone"`
	Body      string   `yaml:"body"`
	Labels    []string `yaml:"labels"`
}

// issueBlock matches one backlog entry. The body is non-greedy so it ends at
// the nearest "---" rule line rather than the last one in the document.
var issueBlock = regexp.MustCompile(
	`(?s)###[ \t]+(?P<title>[^\n]+?)\n` +
		`\*\*Labels:\*\*[ \t]+(?P<labels>[^\n]+?)\n` +
		`\*\*Milestone:\*\*[ \t]+(?P<milestone>[^\n]+?)\n\n` +
		`(?P<body>.*?)(?:\n---\n|\z)`,
)

// ParseIssues parses an issue backlog document.
//
// Format:
//
//	### Title
//	**Labels:** `type/feature`, `area/proxy`
//	**Milestone:** M1
//
//	Body text.
//
//	---
//
// Title, labels and milestone are single-line values. Blocks missing either
// metadata line produce no issue.
func ParseIssues(text string) []Issue {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var issues []Issue
	for _, m := range issueBlock.FindAllStringSubmatch(text, -1) {
		issues = append(issues, Issue{
			Title:     strings.TrimSpace(m[issueBlock.SubexpIndex("title")]),
			Labels:    parseIssueLabels(m[issueBlock.SubexpIndex("labels")]),
			Milestone: strings.TrimSpace(m[issueBlock.SubexpIndex("milestone")]),
			Body:      strings.TrimSpace(m[issueBlock.SubexpIndex("body")]),
		})
	}
	return issues
}

// parseIssueLabels splits a "**Labels:**" value on commas and trims spaces
// and backticks from each entry.
func parseIssueLabels(value string) []string {
	parts := strings.Split(value, ",")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		labels = append(labels, strings.Trim(part, " `"))
	}
	return labels
}

// splitLines splits text into lines, accepting both "\n" and "\r\n".
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
