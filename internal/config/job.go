// Package config loads and validates halo-fixer job files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"halo-fixer/internal/region"
	"halo-fixer/pkg/colorutil"
)

// DefaultBackupDir is used when a job sets no backup_dir.
const DefaultBackupDir = "tools/iconfix-backup"

// ErrMissingParam is returned when a step lacks a parameter its operation needs.
var ErrMissingParam = errors.New("missing step parameter")

// Op names one image operation a step performs.
type Op string

const (
	OpAlphaBleed       Op = "alpha-bleed"
	OpFillTransparent  Op = "fill-transparent"
	OpSolidify         Op = "solidify"
	OpClearEdgeWhite   Op = "clear-edge-white"
	OpRecolorEdgeWhite Op = "recolor-edge-white"
	OpClearBackground  Op = "clear-background"
	OpLargestEdgeWhite Op = "largest-edge-white"
	OpLargestLightGray Op = "largest-light-gray"
	OpPeelLightGray    Op = "peel-light-gray"
	OpRobustRecolor    Op = "robust-recolor"
	OpPeelAndRecolor   Op = "peel-and-recolor"
)

// Ops lists every known operation in documentation order.
var Ops = []Op{
	OpAlphaBleed, OpFillTransparent, OpSolidify,
	OpClearEdgeWhite, OpRecolorEdgeWhite, OpClearBackground,
	OpLargestEdgeWhite, OpLargestLightGray, OpPeelLightGray,
	OpRobustRecolor, OpPeelAndRecolor,
}

// Opaque reports whether a target running the operation is saved without an
// alpha channel. Edge recolor output goes to platforms that reject alpha in
// app icons.
func (o Op) Opaque() bool {
	switch o {
	case OpSolidify, OpRecolorEdgeWhite, OpRobustRecolor, OpPeelAndRecolor:
		return true
	}
	return false
}

// Known reports whether o is a supported operation.
func (o Op) Known() bool {
	for _, k := range Ops {
		if o == k {
			return true
		}
	}
	return false
}

// Job is one JSON job file: the images to fix and how to fix each of them.
type Job struct {
	// Root is the directory target patterns are relative to. Relative roots
	// are resolved against the job file's directory; empty means that directory.
	Root       string   `json:"root,omitempty"`
	Background string   `json:"background,omitempty"` // default step color, hex
	BleedFix   bool     `json:"bleed_fix,omitempty"`  // FixAlphaBleed every source with alpha first
	BackupDir  string   `json:"backup_dir,omitempty"` // relative to Root
	Targets    []Target `json:"targets"`
}

// Target groups files matched by glob patterns under a shared step list.
// A file matched by several targets belongs to the first one.
type Target struct {
	Name      string   `json:"name,omitempty"`
	Patterns  []string `json:"patterns"`
	Steps     []Step   `json:"steps"`
	Opaque    bool     `json:"opaque,omitempty"`     // force an opaque save
	OutputExt string   `json:"output_ext,omitempty"` // write beside the source with this extension
}

// Step is one operation with its parameters. Which parameters are required
// depends on Op; nil means not given.
type Step struct {
	Op            Op                `json:"op"`
	Color         *string           `json:"color,omitempty"`
	Threshold     *int              `json:"threshold,omitempty"`
	Tolerance     *int              `json:"tolerance,omitempty"`
	Connectivity  *int              `json:"connectivity,omitempty"`
	Gray          *region.LightGray `json:"gray,omitempty"`
	NeighborAlpha *int              `json:"neighbor_alpha,omitempty"`
	Iterations    *int              `json:"iterations,omitempty"`
	Min           *int              `json:"min,omitempty"`
}

type param int

const (
	paramColor param = iota
	paramThreshold
	paramTolerance
	paramGray
	paramNeighborAlpha
	paramIterations
	paramMin
)

var required = map[Op][]param{
	OpAlphaBleed:       {paramColor},
	OpFillTransparent:  {paramColor},
	OpSolidify:         {paramColor},
	OpClearEdgeWhite:   {paramThreshold},
	OpRecolorEdgeWhite: {paramThreshold, paramColor},
	OpClearBackground:  {paramColor, paramTolerance},
	OpLargestEdgeWhite: {paramThreshold},
	OpLargestLightGray: {paramGray},
	OpPeelLightGray:    {paramGray, paramNeighborAlpha, paramIterations},
	OpRobustRecolor:    {paramColor, paramTolerance, paramGray, paramNeighborAlpha, paramIterations},
	OpPeelAndRecolor:   {paramColor, paramMin, paramIterations},
}

// Load reads, decodes and validates a job file. Unknown fields are rejected.
func Load(path string) (*Job, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("job file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat job file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("job file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer f.Close()

	var job Job
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}

	if !filepath.IsAbs(job.Root) {
		job.Root = filepath.Join(filepath.Dir(cleanPath), job.Root)
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return &job, nil
}

// Validate checks that every step names a known operation and carries the
// parameters it needs, in range.
func (j *Job) Validate() error {
	if j.Background != "" {
		if _, err := colorutil.ParseHex(j.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if j.BleedFix && j.Background == "" {
		return fmt.Errorf("%w: background (required by bleed_fix)", ErrMissingParam)
	}
	if len(j.Targets) == 0 {
		return errors.New("no targets defined")
	}
	for i, t := range j.Targets {
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("targets[%d]", i)
		}
		if len(t.Patterns) == 0 {
			return fmt.Errorf("%s: no patterns", name)
		}
		for _, p := range t.Patterns {
			if _, err := filepath.Match(p, ""); err != nil {
				return fmt.Errorf("%s: bad pattern %q: %w", name, p, err)
			}
		}
		if t.OutputExt != "" && !strings.HasPrefix(t.OutputExt, ".") {
			return fmt.Errorf("%s: output_ext must start with '.', got %q", name, t.OutputExt)
		}
		if len(t.Steps) == 0 {
			return fmt.Errorf("%s: no steps", name)
		}
		for k, s := range t.Steps {
			if err := j.validateStep(s); err != nil {
				return fmt.Errorf("%s: step %d (%s): %w", name, k, s.Op, err)
			}
		}
	}
	return nil
}

func (j *Job) validateStep(s Step) error {
	if !s.Op.Known() {
		return fmt.Errorf("unknown op %q", s.Op)
	}
	for _, p := range required[s.Op] {
		switch p {
		case paramColor:
			if _, err := j.StepColor(s); err != nil {
				return err
			}
		case paramThreshold:
			if err := checkByte("threshold", s.Threshold); err != nil {
				return err
			}
		case paramTolerance:
			if err := checkByte("tolerance", s.Tolerance); err != nil {
				return err
			}
		case paramNeighborAlpha:
			if err := checkByte("neighbor_alpha", s.NeighborAlpha); err != nil {
				return err
			}
		case paramMin:
			if err := checkByte("min", s.Min); err != nil {
				return err
			}
		case paramIterations:
			if s.Iterations == nil {
				return fmt.Errorf("%w: iterations", ErrMissingParam)
			}
			if *s.Iterations < 0 {
				return fmt.Errorf("iterations must be non-negative, got %d", *s.Iterations)
			}
		case paramGray:
			if s.Gray == nil {
				return fmt.Errorf("%w: gray", ErrMissingParam)
			}
			for _, f := range []struct {
				name string
				v    int
			}{
				{"gray.min_value", s.Gray.MinValue},
				{"gray.max_delta", s.Gray.MaxDelta},
				{"gray.min_alpha", s.Gray.MinAlpha},
			} {
				if err := checkByte(f.name, &f.v); err != nil {
					return err
				}
			}
		}
	}
	if s.Connectivity != nil && *s.Connectivity != 4 && *s.Connectivity != 8 {
		return fmt.Errorf("connectivity must be 4 or 8, got %d", *s.Connectivity)
	}
	return nil
}

func checkByte(name string, v *int) error {
	if v == nil {
		return fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	if *v < 0 || *v > 255 {
		return fmt.Errorf("%s must be in [0,255], got %d", name, *v)
	}
	return nil
}

// StepColor returns the step's color, falling back to the job background.
func (j *Job) StepColor(s Step) (color.NRGBA, error) {
	hex := j.Background
	if s.Color != nil {
		hex = *s.Color
	}
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("%w: color", ErrMissingParam)
	}
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color: %w", err)
	}
	return c, nil
}

// BackupRoot returns the absolute directory backups are written under.
func (j *Job) BackupRoot() string {
	dir := j.BackupDir
	if dir == "" {
		dir = DefaultBackupDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(j.Root, dir)
}

// ConnectivityOr returns the step's connectivity, or def when unset.
func (s Step) ConnectivityOr(def region.Connectivity) region.Connectivity {
	if s.Connectivity == nil {
		return def
	}
	return region.Connectivity(*s.Connectivity)
}
