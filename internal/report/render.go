// Package report formats resolver output for human inspection.
package report

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/dbsmedya/pedeps/internal/depgraph"
)

const headerWidth = 60

// RenderTree formats a dependency tree as display lines. Subtrees of a
// module that has already been printed are collapsed into an ellipsis so
// deep or cyclic trees stay bounded; the printed set here is independent of
// the builder's ancestry tracking.
func RenderTree(root *depgraph.Node) []string {
	printed := make(map[string]bool)
	var lines []string
	renderNode(root, 0, printed, &lines)
	return lines
}

func renderNode(node *depgraph.Node, indent int, printed map[string]bool, lines *[]string) {
	prefix := strings.Repeat("  ", indent)

	label := node.Name
	if node.Delayed {
		label += " (delay-loaded)"
	}

	*lines = append(*lines, fmt.Sprintf("%s├── %s%s", prefix, label, statusSuffix(node)))

	key := strings.ToLower(node.Name)
	if printed[key] {
		if len(node.Children) > 0 {
			*lines = append(*lines, prefix+"    └── ...")
		}
		return
	}
	printed[key] = true

	for _, child := range node.Children {
		renderNode(child, indent+1, printed, lines)
	}
}

func statusSuffix(node *depgraph.Node) string {
	switch node.Status {
	case depgraph.StatusCircular:
		return color.Yellow.Sprint(" (circular ref)")
	case depgraph.StatusNotFound:
		return color.Red.Sprint(" [NOT FOUND]")
	case depgraph.StatusDepthExceeded:
		return color.Yellow.Sprint(" [max depth reached]")
	case depgraph.StatusError:
		return color.Red.Sprintf(" [ERROR: %s]", node.Detail)
	default:
		return ""
	}
}

// Header formats a title between separator bars.
func Header(title string) []string {
	bar := strings.Repeat("=", headerWidth)
	return []string{bar, title, bar}
}
