// Package domain contains core records, document parsers and port interfaces.
package domain

import (
	"regexp"
	"sort"
	"strings"
)

// LabelPrefixes lists the namespaces a backtick token must start with to be
// treated as a label.
var LabelPrefixes = []string{"type/", "tier/", "prio/", "area/"}

// DefaultLabelColor is used for names outside every palette namespace.
const DefaultLabelColor = "D4C5F9"

// labelPalette maps namespace prefixes to colors. Order matters: first match wins.
var labelPalette = []struct {
	prefix string
	color  string
}{
	{prefix: "tier/", color: "6F42C1"},
	{prefix: "prio/", color: "B07219"},
	{prefix: "type/", color: "0E8A16"},
	{prefix: "area/", color: "5319E7"},
}

// Label represents a tracker label to be created.
type Label struct {
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
}

// NewLabel builds a Label with its palette color.
func NewLabel(name, description string) Label {
	return Label{
		Name:        name,
		Color:       LabelColor(name),
		Description: description,
	}
}

// LabelColor returns the hex color (without '#') for a label name.
func LabelColor(name string) string {
	for _, p := range labelPalette {
		if strings.HasPrefix(name, p.prefix) {
			return p.color
		}
	}
	return DefaultLabelColor
}

var backtickToken = regexp.MustCompile("`([^`]+)`")

// ParseLabels extracts label names from a labels reference document.
//
// Every backtick-quoted token is considered; only tokens starting with one
// of LabelPrefixes are kept, so milestone names quoted elsewhere in the same
// document are ignored. The result is sorted and free of duplicates.
func ParseLabels(text string) []string {
	seen := make(map[string]struct{})
	for _, m := range backtickToken.FindAllStringSubmatch(text, -1) {
		token := m[1]
		if hasLabelPrefix(token) {
			seen[token] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hasLabelPrefix(token string) bool {
	for _, p := range LabelPrefixes {
		if strings.HasPrefix(token, p) {
			return true
		}
	}
	return false
}
