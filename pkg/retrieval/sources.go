package retrieval

import (
	"fmt"
	"strings"
)

// SourcesToText renders passages as a plain-text bullet list, one line per
// chunk, for inclusion in an LLM prompt.
func SourcesToText(passages []Passage) string {
	if len(passages) == 0 {
		return ""
	}
	lines := make([]string, 0, len(passages))
	for _, p := range passages {
		line := fmt.Sprintf("- %s (%s", p.Title(), p.Source())
		if chunk, ok := p.Metadata["chunk"]; ok {
			line += fmt.Sprintf(", chunk %v", chunk)
		}
		lines = append(lines, line+")")
	}
	return strings.Join(lines, "\n")
}

// SourcesToMarkdown renders passages as a markdown link list, deduplicated
// by source, for display to the end user.
func SourcesToMarkdown(passages []Passage) string {
	if len(passages) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(passages))
	lines := []string{"**Source documents:**"}
	for _, p := range passages {
		source := p.Source()
		if seen[source] {
			continue
		}
		seen[source] = true
		lines = append(lines, fmt.Sprintf("- [%s](%s)", p.Title(), source))
	}
	return strings.Join(lines, "\n")
}
