package report

import (
	"os"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/pedeps/internal/depgraph"
)

func TestMain(m *testing.M) {
	// Deterministic output regardless of the terminal running the tests.
	color.Disable()
	os.Exit(m.Run())
}

func TestRenderTree_SingleNode(t *testing.T) {
	root := &depgraph.Node{Name: "app.exe", Status: depgraph.StatusResolved}

	lines := RenderTree(root)

	require.Len(t, lines, 1)
	assert.Equal(t, "├── app.exe", lines[0])
}

func TestRenderTree_StatusSuffixes(t *testing.T) {
	root := &depgraph.Node{
		Name:   "app.exe",
		Status: depgraph.StatusResolved,
		Children: []*depgraph.Node{
			{Name: "gone.dll", Status: depgraph.StatusNotFound},
			{Name: "loop.dll", Status: depgraph.StatusCircular},
			{Name: "deep.dll", Status: depgraph.StatusDepthExceeded},
			{Name: "bad.dll", Status: depgraph.StatusError, Detail: "corrupt header"},
		},
	}

	lines := RenderTree(root)

	require.Len(t, lines, 5)
	assert.Equal(t, "  ├── gone.dll [NOT FOUND]", lines[1])
	assert.Equal(t, "  ├── loop.dll (circular ref)", lines[2])
	assert.Equal(t, "  ├── deep.dll [max depth reached]", lines[3])
	assert.Equal(t, "  ├── bad.dll [ERROR: corrupt header]", lines[4])
}

func TestRenderTree_DelayedLabel(t *testing.T) {
	root := &depgraph.Node{
		Name:   "app.exe",
		Status: depgraph.StatusResolved,
		Children: []*depgraph.Node{
			{Name: "lazy.dll", Delayed: true, Status: depgraph.StatusResolved},
		},
	}

	lines := RenderTree(root)

	assert.Equal(t, "  ├── lazy.dll (delay-loaded)", lines[1])
}

func TestRenderTree_RepeatedSubtreeCollapsed(t *testing.T) {
	shared := func() *depgraph.Node {
		return &depgraph.Node{
			Name:   "d.dll",
			Status: depgraph.StatusResolved,
			Children: []*depgraph.Node{
				{Name: "leaf.dll", Status: depgraph.StatusResolved},
			},
		}
	}
	root := &depgraph.Node{
		Name:   "app.exe",
		Status: depgraph.StatusResolved,
		Children: []*depgraph.Node{
			{Name: "b.dll", Status: depgraph.StatusResolved, Children: []*depgraph.Node{shared()}},
			{Name: "c.dll", Status: depgraph.StatusResolved, Children: []*depgraph.Node{shared()}},
		},
	}

	lines := RenderTree(root)
	joined := strings.Join(lines, "\n")

	// d.dll's subtree is printed once; the second occurrence collapses.
	assert.Equal(t, 1, strings.Count(joined, "leaf.dll"))
	assert.Contains(t, joined, "└── ...")
}

func TestRenderTree_CollapseIsCaseInsensitive(t *testing.T) {
	root := &depgraph.Node{
		Name:   "app.exe",
		Status: depgraph.StatusResolved,
		Children: []*depgraph.Node{
			{Name: "D.DLL", Status: depgraph.StatusResolved, Children: []*depgraph.Node{
				{Name: "leaf.dll", Status: depgraph.StatusResolved},
			}},
			{Name: "d.dll", Status: depgraph.StatusResolved, Children: []*depgraph.Node{
				{Name: "leaf.dll", Status: depgraph.StatusResolved},
			}},
		},
	}

	lines := RenderTree(root)
	joined := strings.Join(lines, "\n")

	assert.Equal(t, 1, strings.Count(joined, "leaf.dll"))
}

func TestHeader(t *testing.T) {
	lines := Header("Title")

	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("=", 60), lines[0])
	assert.Equal(t, "Title", lines[1])
	assert.Equal(t, lines[0], lines[2])
}
