// Package fixer runs halo-removal jobs over a tree of image files.
package fixer

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"halo-fixer/internal/config"
	himage "halo-fixer/internal/image"
	"halo-fixer/internal/logging"
	"halo-fixer/internal/region"
	"halo-fixer/pkg/colorutil"
)

// Options controls a Runner.
type Options struct {
	DryRun   bool             // process in memory, write nothing
	NoBackup bool             // skip the backup copy
	Now      func() time.Time // backup timestamp source; nil means time.Now
}

// Result is one line of the run summary: a step applied to one file.
type Result struct {
	Path       string // relative to the job root
	Format     string
	Width      int
	Height     int
	Step       config.Op
	Cleared    int
	Iterations int
}

// String formats the result as a summary line.
func (r Result) String() string {
	s := fmt.Sprintf("- %s: %s (%d, %d) cleared=%d (%s)",
		r.Path, strings.ToUpper(r.Format), r.Width, r.Height, r.Cleared, r.Step)
	if r.Iterations > 0 {
		s += fmt.Sprintf(" iterations=%d", r.Iterations)
	}
	return s
}

// Runner applies a validated job to the files it resolves.
type Runner struct {
	job  *config.Job
	opts Options
	log  zerolog.Logger
}

// NewRunner creates a Runner for job.
func NewRunner(job *config.Job, log zerolog.Logger, opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		job:  job,
		opts: opts,
		log:  logging.Component(log, "fixer"),
	}
}

// Run resolves the job's targets, backs them up, then fixes and saves each
// file in turn. Cancellation is checked between files; a file is never left
// half written. Results gathered before an error are returned with it.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	files, err := Resolve(r.job)
	if err != nil {
		return nil, err
	}
	r.log.Info().Int("files", len(files)).Str("root", r.job.Root).Bool("dry_run", r.opts.DryRun).Msg("targets resolved")

	if !r.opts.DryRun && !r.opts.NoBackup {
		dir, err := Backup(r.job.BackupRoot(), files, r.opts.Now())
		if err != nil {
			return nil, err
		}
		r.log.Info().Str("dir", dir).Msg("backup complete")
	}

	var results []Result
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.processFile(f)
		if err != nil {
			return results, fmt.Errorf("failed processing %s: %w", f.Rel, err)
		}
		results = append(results, res...)
	}
	return results, nil
}

func (r *Runner) processFile(f File) ([]Result, error) {
	asset, err := himage.Load(f.Path)
	if err != nil {
		return nil, err
	}

	g := region.FromImage(asset.Image)
	outcomes, err := Apply(r.job, f.Target, g, r.job.BleedFix && asset.HasAlpha)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, Result{
			Path:       f.Rel,
			Format:     asset.Format,
			Width:      asset.Width(),
			Height:     asset.Height(),
			Step:       o.Step,
			Cleared:    o.Cleared,
			Iterations: o.Iterations,
		})
		r.log.Debug().Str("file", f.Rel).Str("step", string(o.Step)).
			Int("cleared", o.Cleared).Int("iterations", o.Iterations).Msg("step applied")
	}

	if r.opts.DryRun {
		return results, nil
	}

	out := OutputPath(f.Path, f.Target)
	opts := himage.SaveOptions{Opaque: Opaque(f.Target), Background: r.background()}
	if err := himage.Save(out, g.Image(), opts); err != nil {
		return nil, err
	}
	ev := r.log.Info().Str("file", f.Rel).Str("out", filepath.Base(out)).Bool("opaque", opts.Opaque)
	if opts.Opaque {
		ev = ev.Str("background", colorutil.Hex(opts.Background))
	}
	ev.Msg("saved")
	return results, nil
}

func (r *Runner) background() color.NRGBA {
	if r.job.Background == "" {
		return colorutil.Black
	}
	c, err := r.job.StepColor(config.Step{})
	if err != nil {
		return colorutil.Black
	}
	return c
}

// OutputPath is where a fixed file is written: in place, or beside the
// source with the target's output extension.
func OutputPath(path string, target *config.Target) string {
	if target.OutputExt == "" {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + target.OutputExt
}
