package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// SummaryMarkdown renders a compact overview of a simplified design for
// interactive terminals.
func SummaryMarkdown(design *domain.SimplifiedDesign) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", design.Name)
	if design.LastModified != "" {
		fmt.Fprintf(&b, "Last modified: `%s`\n\n", design.LastModified)
	}

	fmt.Fprintf(&b, "- Root nodes: **%d** (total %d)\n", len(design.Nodes), countNodes(design.Nodes))
	fmt.Fprintf(&b, "- Components: **%d**, component sets: **%d**\n", len(design.Components), len(design.ComponentSets))
	fmt.Fprintf(&b, "- Shared styles: **%d**\n", len(design.GlobalVars.Styles))

	if len(design.Nodes) > 0 {
		b.WriteString("\n## Roots\n\n")
		for _, node := range design.Nodes {
			label := node.Name
			if label == "" {
				label = node.ID
			}
			fmt.Fprintf(&b, "- `%s` %s (%d children)\n", node.Type, label, len(node.Children))
		}
	}

	if len(design.Components) > 0 {
		b.WriteString("\n## Components\n\n")
		names := make([]string, 0, len(design.Components))
		for _, comp := range design.Components {
			names = append(names, comp.Name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	return b.String()
}

func countNodes(nodes []*domain.SimplifiedNode) int {
	total := 0
	for _, node := range nodes {
		total += 1 + countNodes(node.Children)
	}
	return total
}
