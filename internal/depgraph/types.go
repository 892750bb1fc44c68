// Package depgraph resolves the transitive module dependencies of a PE file,
// either as a tree or as a flat deduplicated list.
package depgraph

import (
	"github.com/dbsmedya/pedeps/internal/peimport"
)

// Status classifies how the resolution of one node ended. Every status other
// than StatusResolved is terminal: the node has no children.
type Status int

const (
	// StatusResolved means the module was found and its imports expanded.
	StatusResolved Status = iota
	// StatusCircular means the module is already on the path from the root
	// to this node.
	StatusCircular
	// StatusNotFound means no file on the search path matched the name.
	StatusNotFound
	// StatusDepthExceeded means the depth limit cut the traversal here.
	StatusDepthExceeded
	// StatusError means the import extractor failed on this file; the
	// node's Detail carries the diagnostic.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusCircular:
		return "circular"
	case StatusNotFound:
		return "not found"
	case StatusDepthExceeded:
		return "depth exceeded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Node is one module in the dependency tree. Nodes are owned by their parent
// and the tree is discarded after rendering.
type Node struct {
	Name     string
	Path     string // empty when the module was not found
	Delayed  bool   // reached through a delay-load import
	Status   Status
	Detail   string // extractor diagnostic when Status is StatusError
	Children []*Node
}

// Record is one unique module in a flat collection result.
type Record struct {
	Name  string
	Path  string
	Found bool
}

// Extractor is the import-extraction collaborator consumed by the builder
// and the collector. Implementations must be deterministic for a given file
// and side-effect-free beyond reading it.
type Extractor interface {
	Extract(path string) (*peimport.ImportSet, error)
}
