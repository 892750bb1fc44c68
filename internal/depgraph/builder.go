package depgraph

import (
	"path/filepath"
	"strings"

	"github.com/dbsmedya/pedeps/internal/config"
	"github.com/dbsmedya/pedeps/internal/locate"
	"github.com/dbsmedya/pedeps/internal/logger"
)

// Builder constructs a dependency tree by depth-first expansion.
//
// Cycle detection tracks the path from the root to the node being expanded
// (names are pushed before descending and popped on return), so a diamond —
// two siblings importing the same module — is expanded twice rather than
// misreported as circular. Termination is guaranteed by the ancestry set and
// by MaxDepth.
type Builder struct {
	extractor   Extractor
	extraPaths  []string
	systemPaths []string
	maxDepth    int
	log         *logger.Logger
}

// NewBuilder creates a Builder. extraPaths are searched after the target's
// own directory, systemPaths last.
func NewBuilder(extractor Extractor, extraPaths, systemPaths []string, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Builder{
		extractor:   extractor,
		extraPaths:  extraPaths,
		systemPaths: systemPaths,
		maxDepth:    config.DefaultMaxDepth,
		log:         log,
	}
}

// SetMaxDepth overrides the default depth limit.
func (b *Builder) SetMaxDepth(depth int) {
	if depth > 0 {
		b.maxDepth = depth
	}
}

// Build resolves rootPath into a dependency tree. It always returns a tree:
// individual failures are encoded as node statuses, never propagated.
func (b *Builder) Build(rootPath string) *Node {
	rootDir := filepath.Dir(absPath(rootPath))
	searchPath := locate.BuildSearchPath(rootDir, b.extraPaths, b.systemPaths)

	visiting := make(map[string]bool)
	return b.resolve(rootPath, filepath.Base(rootPath), false, 0, searchPath, visiting)
}

func (b *Builder) resolve(path, name string, delayed bool, depth int, searchPath []string, visiting map[string]bool) *Node {
	if depth > b.maxDepth {
		b.log.WithModule(name).WithDepth(depth).Debug("Depth limit reached")
		return &Node{Name: name, Path: path, Delayed: delayed, Status: StatusDepthExceeded}
	}

	key := strings.ToLower(name)
	if visiting[key] {
		return &Node{Name: name, Path: path, Delayed: delayed, Status: StatusCircular}
	}
	visiting[key] = true
	defer delete(visiting, key)

	imports, err := b.extractor.Extract(path)
	if err != nil {
		b.log.WithFile(path).Warnw("Import extraction failed", "error", err)
		return &Node{Name: name, Path: path, Delayed: delayed, Status: StatusError, Detail: err.Error()}
	}

	node := &Node{Name: name, Path: path, Delayed: delayed, Status: StatusResolved}
	for _, ref := range imports.Modules() {
		childPath, found := locate.Locate(ref.Name, searchPath)
		if !found {
			node.Children = append(node.Children, &Node{
				Name:    ref.Name,
				Delayed: ref.Delayed,
				Status:  StatusNotFound,
			})
			continue
		}
		child := b.resolve(childPath, ref.Name, ref.Delayed, depth+1, searchPath, visiting)
		node.Children = append(node.Children, child)
	}
	return node
}

// absPath resolves path for search-path construction; on failure the path is
// used as given.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
