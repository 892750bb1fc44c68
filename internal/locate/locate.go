// Package locate finds modules by name on an ordered search path.
package locate

import (
	"os"
	"path/filepath"
	"strings"
)

// Locate returns the path of the first file in searchPath whose name matches
// name case-insensitively, honoring the order of the directories. It never
// returns an error: unreadable or missing directories are skipped, and an
// exhausted search reports found=false.
func Locate(name string, searchPath []string) (path string, found bool) {
	for _, dir := range searchPath {
		// Exact-case fast path.
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			return candidate, true
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(entry.Name(), name) {
				return filepath.Join(dir, entry.Name()), true
			}
		}
	}
	return "", false
}

// BuildSearchPath assembles the ordered search path for one invocation:
// the target's own directory first, then caller-supplied extras, then the
// platform system directories. Duplicates are kept; first match wins.
func BuildSearchPath(rootDir string, extraPaths, systemPaths []string) []string {
	searchPath := make([]string, 0, 1+len(extraPaths)+len(systemPaths))
	searchPath = append(searchPath, rootDir)
	searchPath = append(searchPath, extraPaths...)
	searchPath = append(searchPath, systemPaths...)
	return searchPath
}

func isFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.Mode().IsRegular()
}
