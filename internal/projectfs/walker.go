package projectfs

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxDepth bounds how far Walk descends below the project root.
const DefaultMaxDepth = 6

// defaultSkipDirs are subtrees that never carry analysis-relevant files:
// dependency caches, derived build output, and bundled third-party code.
// Hidden directories are skipped wholesale, which also covers
// version-control metadata.
var defaultSkipDirs = map[string]struct{}{
	"node_modules": {},
	"build":        {},
	"DerivedData":  {},
	"Pods":         {},
	"Carthage":     {},
	"vendor":       {},
}

// Walker enumerates project files.
type Walker interface {
	Walk(root string) ([]string, error)
}

// DirWalker walks a project tree with bounded depth and a directory
// denylist. Paths are returned relative to the root with forward slashes;
// directory entries carry a trailing slash.
type DirWalker struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
	// SkipDirs adds directory names to the default denylist.
	SkipDirs []string
}

// Walk enumerates files and directories beneath root. Unreadable subtrees
// are skipped rather than failing the walk; only a root that cannot be
// walked at all yields an error.
func (w *DirWalker) Walk(root string) ([]string, error) {
	maxDepth := w.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	skip := make(map[string]struct{}, len(defaultSkipDirs)+len(w.SkipDirs))
	for name := range defaultSkipDirs {
		skip[name] = struct{}{}
	}
	for _, name := range w.SkipDirs {
		skip[name] = struct{}{}
	}

	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are treated as absent.
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/") + 1

		if info.IsDir() {
			name := info.Name()
			if _, skipped := skip[name]; skipped || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			paths = append(paths, rel+"/")
			return nil
		}

		if depth > maxDepth {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
