package fixer

import (
	"fmt"

	"halo-fixer/internal/config"
	"halo-fixer/internal/region"
)

// Outcome is what one step did to a grid.
type Outcome struct {
	Step       config.Op
	Cleared    int // pixels changed, cleared or filled
	Iterations int // peel passes; zero for single-pass steps
}

// Apply runs a target's steps in order on g. When bleedFix is set the
// alpha-bleed correction runs first with the job background. The job must
// have passed Validate.
func Apply(job *config.Job, target *config.Target, g *region.Grid, bleedFix bool) ([]Outcome, error) {
	var out []Outcome
	if bleedFix {
		o, err := applyStep(job, config.Step{Op: config.OpAlphaBleed}, g)
		if err != nil {
			return nil, fmt.Errorf("bleed fix: %w", err)
		}
		out = append(out, o)
	}
	for i, s := range target.Steps {
		o, err := applyStep(job, s, g)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func applyStep(job *config.Job, s config.Step, g *region.Grid) (Outcome, error) {
	o := Outcome{Step: s.Op}

	switch s.Op {
	case config.OpAlphaBleed, config.OpFillTransparent, config.OpSolidify:
		rgb, err := job.StepColor(s)
		if err != nil {
			return o, err
		}
		switch s.Op {
		case config.OpAlphaBleed:
			o.Cleared = region.FixAlphaBleed(g, rgb)
		case config.OpFillTransparent:
			o.Cleared = region.FillTransparent(g, rgb)
		default:
			o.Cleared = region.Solidify(g, rgb)
		}

	case config.OpClearEdgeWhite:
		o.Cleared = region.FloodFill(g, region.FillOptions{
			Seeds:        region.BorderSeeds{},
			Match:        region.EdgeWhite{Threshold: *s.Threshold},
			Connectivity: s.ConnectivityOr(region.EightConnected),
		}).Changed

	case config.OpRecolorEdgeWhite:
		rgb, err := job.StepColor(s)
		if err != nil {
			return o, err
		}
		o.Cleared = region.FloodFill(g, region.FillOptions{
			Seeds:        region.BorderSeeds{},
			Match:        region.EdgeWhite{Threshold: *s.Threshold},
			Connectivity: s.ConnectivityOr(region.EightConnected),
			Transform:    region.Recolor{Color: rgb},
		}).Changed

	case config.OpClearBackground:
		rgb, err := job.StepColor(s)
		if err != nil {
			return o, err
		}
		o.Cleared = region.FloodFill(g, region.FillOptions{
			Seeds:        region.CornerSeeds{},
			Match:        region.NearColor{Color: rgb, Tolerance: *s.Tolerance},
			Connectivity: s.ConnectivityOr(region.FourConnected),
		}).Changed

	case config.OpLargestEdgeWhite:
		o.Cleared = region.LargestComponent(g, region.ComponentOptions{
			Match:        region.EdgeWhite{Threshold: *s.Threshold},
			Connectivity: s.ConnectivityOr(region.EightConnected),
		}).Changed

	case config.OpLargestLightGray:
		o.Cleared = region.LargestComponent(g, region.ComponentOptions{
			Match:        *s.Gray,
			Connectivity: s.ConnectivityOr(region.EightConnected),
		}).Changed

	case config.OpPeelLightGray:
		st := region.PeelLightGray(g, *s.Gray, uint8(*s.NeighborAlpha), *s.Iterations)
		o.Cleared, o.Iterations = st.Cleared, st.Iterations

	case config.OpRobustRecolor:
		rgb, err := job.StepColor(s)
		if err != nil {
			return o, err
		}
		st := region.RobustRecolor(g, rgb, region.RobustOptions{
			Tolerance:     *s.Tolerance,
			Gray:          *s.Gray,
			NeighborAlpha: uint8(*s.NeighborAlpha),
			MaxIterations: *s.Iterations,
		})
		o.Cleared, o.Iterations = st.Cleared, st.Iterations

	case config.OpPeelAndRecolor:
		rgb, err := job.StepColor(s)
		if err != nil {
			return o, err
		}
		st := region.PeelAndRecolor(g, rgb, region.PeelRecolorOptions{
			Min:           *s.Min,
			MaxIterations: *s.Iterations,
		})
		o.Cleared, o.Iterations = st.Cleared, st.Iterations

	default:
		return o, fmt.Errorf("unknown op %q", s.Op)
	}
	return o, nil
}

// Opaque reports whether the target's output should be saved without alpha.
func Opaque(target *config.Target) bool {
	if target.Opaque {
		return true
	}
	for _, s := range target.Steps {
		if s.Op.Opaque() {
			return true
		}
	}
	return false
}
