package domain

import (
	"regexp"
	"strings"
)

// Milestone represents a tracker milestone to be created.
type Milestone struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// milestoneHeading matches "## Name — Description".
var milestoneHeading = regexp.MustCompile(`^##\s+(.+?)\s+—\s+(.+)$`)

// ParseMilestones parses a milestones document.
//
// A "## Name — Description" line opens a milestone. The inline description
// becomes the first line of its body and every following line, blank lines
// included, is appended until the next heading or the end of the document.
func ParseMilestones(text string) []Milestone {
	var (
		milestones []Milestone
		title      string
		body       []string
		open       bool
	)

	flush := func() {
		if !open {
			return
		}
		milestones = append(milestones, Milestone{
			Title:       title,
			Description: strings.TrimSpace(strings.Join(body, "\n")),
		})
	}

	for _, line := range splitLines(text) {
		if m := milestoneHeading.FindStringSubmatch(line); m != nil {
			flush()
			title = strings.TrimSpace(m[1])
			body = []string{strings.TrimSpace(m[2])}
			open = true
			continue
		}
		if open {
			body = append(body, line)
		}
	}
	flush()

	return milestones
}
