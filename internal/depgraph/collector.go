package depgraph

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/dbsmedya/pedeps/internal/locate"
	"github.com/dbsmedya/pedeps/internal/logger"
)

// Collector produces the flat, deduplicated set of all modules transitively
// reachable from a root file. No depth limit is needed: each module name is
// processed at most once, which terminates any finite graph, cyclic or not.
type Collector struct {
	extractor   Extractor
	extraPaths  []string
	systemPaths []string
	log         *logger.Logger
}

// NewCollector creates a Collector with the same search-path semantics as
// NewBuilder.
func NewCollector(extractor Extractor, extraPaths, systemPaths []string, log *logger.Logger) *Collector {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Collector{
		extractor:   extractor,
		extraPaths:  extraPaths,
		systemPaths: systemPaths,
		log:         log,
	}
}

// Collect walks the dependency graph breadth-first and returns one Record
// per unique module name (case-insensitive), sorted by lowercased name. The
// root itself is not included. Extraction failures stop expansion from the
// failing file only.
func (c *Collector) Collect(rootPath string) []Record {
	rootDir := filepath.Dir(absPath(rootPath))
	searchPath := locate.BuildSearchPath(rootDir, c.extraPaths, c.systemPaths)

	records := make(map[string]Record)
	processed := make(map[string]bool)

	queue := newWorkQueue()
	queue.Enqueue(workItem{path: rootPath, name: filepath.Base(rootPath)})

	for !queue.IsEmpty() {
		item, _ := queue.Dequeue()

		key := strings.ToLower(item.name)
		if processed[key] {
			continue
		}
		processed[key] = true

		imports, err := c.extractor.Extract(item.path)
		if err != nil {
			c.log.WithFile(item.path).Warnw("Skipping unreadable module", "error", err)
			continue
		}

		for _, ref := range imports.Modules() {
			refKey := strings.ToLower(ref.Name)
			if _, seen := records[refKey]; seen {
				continue
			}

			path, found := locate.Locate(ref.Name, searchPath)
			records[refKey] = Record{Name: ref.Name, Path: path, Found: found}
			if found {
				queue.Enqueue(workItem{path: path, name: ref.Name})
			}
		}
	}

	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]Record, 0, len(records))
	for _, k := range keys {
		result = append(result, records[k])
	}
	return result
}
