package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern keeps the pattern string next to its compiled form; the
// string is needed to derive a root-level variant of "**/"-prefixed
// patterns.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery finds the Python files to lint under a root directory,
// honoring include and ignore glob patterns from the configuration.
type FileDiscovery struct {
	rootDir  string
	includes []compiledPattern
	ignores  []compiledPattern
}

// NewFileDiscovery compiles the given glob patterns for discovery rooted at
// rootDir.
func NewFileDiscovery(rootDir string, include, ignore []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{rootDir: rootDir}

	for _, pattern := range include {
		cp, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		fd.includes = append(fd.includes, cp)
	}
	for _, pattern := range ignore {
		cp, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		fd.ignores = append(fd.ignores, cp)
	}

	return fd, nil
}

func compilePattern(pattern string) (compiledPattern, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return compiledPattern{}, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return compiledPattern{pattern: pattern, glob: g}, nil
}

// Discover walks the tree and returns matching files in walk order. Ignored
// directories are pruned without descending into them.
func (fd *FileDiscovery) Discover() ([]string, error) {
	files := []string{}

	err := filepath.Walk(fd.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && fd.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.shouldIgnore(relPath) {
			return nil
		}
		if fd.matchesAny(relPath, fd.includes) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// shouldIgnore reports whether a relative path matches any ignore pattern,
// either directly or as the directory part of a "dir/**" pattern.
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	if fd.matchesAny(relPath, fd.ignores) {
		return true
	}
	return fd.matchesAny(relPath+"/**", fd.ignores)
}

func (fd *FileDiscovery) matchesAny(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// "**/*.py" should also match a root-level "a.py"; gobwas/glob keeps the
	// slash literal, so retry with the "**/" prefix stripped.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if rest, ok := strings.CutPrefix(cp.pattern, "**/"); ok {
				if g, err := glob.Compile(rest, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
