// Package app holds the preview application state and its file watcher.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"halo-fixer/internal/config"
	"halo-fixer/internal/fixer"
	"halo-fixer/internal/image"
	"halo-fixer/internal/region"
)

// ErrNoJob is returned when a file is selected before a job is loaded.
var ErrNoJob = errors.New("no job loaded")

// ErrNotTargeted is returned by SelectPath for a file no job target matches.
var ErrNotTargeted = errors.New("file is not a target of this job")

// Selection is a consistent copy of the current selection.
type Selection struct {
	JobPath  string
	Index    int
	Original *region.Grid
	Fixed    *region.Grid
}

// State holds the loaded job and the before/after pair for the selected file.
type State struct {
	mu sync.RWMutex

	JobPath string
	Job     *config.Job
	Files   []fixer.File

	// Selection
	Index    int
	Original *region.Grid
	Fixed    *region.Grid
	Outcomes []fixer.Outcome

	listeners []func()
}

// NewState creates an empty State.
func NewState() *State {
	return &State{Index: -1}
}

// OnChange registers fn to run after every successful load or selection.
func (s *State) OnChange(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *State) notify() {
	s.mu.RLock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

// LoadJob loads and resolves the job at path, then selects its first file,
// or the file with the same relative path as the current selection.
func (s *State) LoadJob(path string) error {
	job, err := config.Load(path)
	if err != nil {
		return err
	}
	files, err := fixer.Resolve(job)
	if err != nil {
		return err
	}

	s.mu.Lock()
	keep := ""
	if s.Index >= 0 && s.Index < len(s.Files) {
		keep = s.Files[s.Index].Rel
	}
	s.JobPath = path
	s.Job = job
	s.Files = files
	s.mu.Unlock()

	index := 0
	for i, f := range files {
		if f.Rel == keep {
			index = i
			break
		}
	}
	return s.Select(index)
}

// Select loads file i and runs its target's steps on a copy.
func (s *State) Select(i int) error {
	s.mu.RLock()
	job, files := s.Job, s.Files
	s.mu.RUnlock()

	if job == nil {
		return ErrNoJob
	}
	if i < 0 || i >= len(files) {
		return fmt.Errorf("file index %d out of range [0,%d)", i, len(files))
	}

	f := files[i]
	asset, err := image.Load(f.Path)
	if err != nil {
		return err
	}
	original := region.FromImage(asset.Image)
	fixed := original.Clone()
	outcomes, err := fixer.Apply(job, f.Target, fixed, job.BleedFix && asset.HasAlpha)
	if err != nil {
		return fmt.Errorf("failed processing %s: %w", f.Rel, err)
	}
	if fixer.Opaque(f.Target) {
		bg, err := job.StepColor(config.Step{})
		if err != nil {
			bg.A = 255
		}
		region.CompositeOver(fixed, bg)
	}

	s.mu.Lock()
	s.Index = i
	s.Original = original
	s.Fixed = fixed
	s.Outcomes = outcomes
	s.mu.Unlock()

	s.notify()
	return nil
}

// SelectPath selects the resolved file at path.
func (s *State) SelectPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	s.mu.RLock()
	job, index := s.Job, -1
	for i, f := range s.Files {
		if f.Path == abs {
			index = i
			break
		}
	}
	s.mu.RUnlock()

	if job == nil {
		return ErrNoJob
	}
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrNotTargeted, filepath.Base(path))
	}
	return s.Select(index)
}

// Selection returns the selected file and its grids, read under one lock.
func (s *State) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Selection{
		JobPath:  s.JobPath,
		Index:    s.Index,
		Original: s.Original,
		Fixed:    s.Fixed,
	}
}

// Reload reloads the current job file.
func (s *State) Reload() error {
	s.mu.RLock()
	path := s.JobPath
	s.mu.RUnlock()
	if path == "" {
		return ErrNoJob
	}
	return s.LoadJob(path)
}

// Names returns the relative paths of the resolved files.
func (s *State) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.Files))
	for i, f := range s.Files {
		names[i] = f.Rel
	}
	return names
}

// Summary returns one line per applied step for the current selection.
func (s *State) Summary() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := make([]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		line := fmt.Sprintf("%s: cleared=%d", o.Step, o.Cleared)
		if o.Iterations > 0 {
			line += fmt.Sprintf(" iterations=%d", o.Iterations)
		}
		lines = append(lines, line)
	}
	return lines
}
