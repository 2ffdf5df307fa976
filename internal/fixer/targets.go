package fixer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"halo-fixer/internal/config"
	himage "halo-fixer/internal/image"
)

// ErrNoTargets is returned when no job pattern matches an existing file.
var ErrNoTargets = errors.New("no target images found")

// File is one resolved target image.
type File struct {
	Path   string // absolute
	Rel    string // relative to the job root
	Target *config.Target
}

// Resolve expands every target's glob patterns under the job root. Matches
// are sorted per pattern, directories and files without an image extension
// are skipped, and a file matched by several targets belongs to the first
// target listing it.
func Resolve(job *config.Job) ([]File, error) {
	var files []File
	seen := make(map[string]bool)

	for i := range job.Targets {
		t := &job.Targets[i]
		for _, pattern := range t.Patterns {
			matches, err := filepath.Glob(filepath.Join(job.Root, pattern))
			if err != nil {
				return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
			}
			sort.Strings(matches)
			for _, m := range matches {
				abs, err := filepath.Abs(m)
				if err != nil {
					return nil, fmt.Errorf("failed to resolve %s: %w", m, err)
				}
				if seen[abs] || !himage.IsSupportedFormat(abs) {
					continue
				}
				info, err := os.Stat(abs)
				if err != nil || !info.Mode().IsRegular() {
					continue
				}
				seen[abs] = true

				rel, err := filepath.Rel(job.Root, abs)
				if err != nil {
					rel = filepath.Base(abs)
				}
				files = append(files, File{Path: abs, Rel: rel, Target: t})
			}
		}
	}

	if len(files) == 0 {
		return nil, ErrNoTargets
	}
	return files, nil
}
