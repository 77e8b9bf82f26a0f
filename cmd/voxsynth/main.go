// Command voxsynth synthesizes a voxel model from an exemplar: it ingests
// the adjacency constraints of a small labeled voxel slab and grows a
// larger grid that respects them, optionally blitting detailed tiles onto
// the result.
//
// Exemplars are read from <exemplars>/<problem>.slab.vox; output goes to
// <out>/synthesized.slab.vox and, when a tilemap is given and its detailed
// counterpart exists, <out>/synthesized_detailed.slab.vox.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/voxsynth/detail"
	"github.com/katalvlaran/voxsynth/slabvox"
	"github.com/katalvlaran/voxsynth/synth"
	"github.com/katalvlaran/voxsynth/voxgrid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "voxsynth:", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := synth.DefaultOptions()
	var (
		problem   = flag.String("problem", "towers", "exemplar name")
		tilemap   = flag.String("tilemap", "", "detailed-tile pair name (empty disables detailed output)")
		size      = flag.Int("size", defaults.DomainSize, "edge length of the cubic output grid")
		periodic  = flag.Bool("periodic", false, "synthesize a toroidal structure")
		passes    = flag.Int("passes", 0, "scheduler passes (0 = one per size unit)")
		attempts  = flag.Int("attempts", defaults.AttemptsPerPass, "sub-region attempts per pass (doubled on the first)")
		subMin    = flag.Int("sub-min", defaults.SubSideMin, "minimum sub-region side")
		subMax    = flag.Int("sub-max", defaults.SubSideMax, "maximum sub-region side")
		seed      = flag.Int64("seed", 0, "RNG seed (0 = wall clock)")
		exemplars = flag.String("exemplars", "exemplars", "exemplar directory")
		out       = flag.String("out", "results", "output directory")
	)
	flag.Parse()

	opts := defaults
	opts.DomainSize = *size
	opts.Periodic = *periodic
	opts.Passes = *passes
	opts.AttemptsPerPass = *attempts
	opts.SubSideMin = *subMin
	opts.SubSideMax = *subMax
	opts.Seed = *seed
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.OnPass = func(p synth.PassInfo) {
		fmt.Fprintf(os.Stderr, "\rpass %3d / %3d, attempts: %4d, failures: %4d, successes: %4d",
			p.Pass+1, p.Passes, p.Attempts, p.Failures, p.Successes)
	}

	exemplar, err := slabvox.ReadFile(filepath.Join(*exemplars, *problem+".slab.vox"))
	if err != nil {
		return err
	}
	rules, err := synth.Ingest(exemplar)
	if err != nil {
		return err
	}
	s, err := synth.New(rules, opts)
	if err != nil {
		return err
	}
	grid, err := s.NewGrid()
	if err != nil {
		return err
	}

	// Ground-based exemplars start from the ground configuration; the rest
	// get an empty border so nothing touches the domain boundary.
	if rules.GroundLabel >= 0 {
		err = s.InitGround(grid)
	} else {
		err = s.InitBorder(grid)
	}
	if err != nil {
		return fmt.Errorf("initialize %dx%dx%d domain: %w", grid.W, grid.H, grid.D, err)
	}

	fmt.Fprintf(os.Stderr, "synthesizing %q into a %d^3 domain (%d labels)\n", *problem, *size, rules.L)
	stats := s.Solve(grid)
	fmt.Fprintf(os.Stderr, "\ndone: %d attempts, %d successes, %d failures\n",
		stats.Attempts, stats.Successes, stats.Failures)

	if err = os.MkdirAll(*out, 0o755); err != nil {
		return err
	}
	model, err := synth.Export(grid, rules)
	if err != nil {
		return err
	}
	if err = slabvox.WriteFile(filepath.Join(*out, "synthesized.slab.vox"), model); err != nil {
		return err
	}

	if *tilemap == "" {
		return nil
	}
	return emitDetailed(*exemplars, *tilemap, *out, grid, rules)
}

// emitDetailed writes the high-resolution output when the tilemap's
// detailed exemplar exists; a missing detailed file just skips the step.
func emitDetailed(exemplars, tilemap, out string, grid *voxgrid.Grid, rules *synth.Ruleset) error {
	detailedPath := filepath.Join(exemplars, tilemap+"_detailed.slab.vox")
	if _, err := os.Stat(detailedPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	low, err := slabvox.ReadFile(filepath.Join(exemplars, tilemap+".slab.vox"))
	if err != nil {
		return err
	}
	high, err := slabvox.ReadFile(detailedPath)
	if err != nil {
		return err
	}
	tm, err := detail.Build(low, high)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "tile size: %d,%d,%d\n", tm.Tx, tm.Ty, tm.Tz)
	model, err := tm.Emit(grid, rules)
	if err != nil {
		return err
	}
	return slabvox.WriteFile(filepath.Join(out, "synthesized_detailed.slab.vox"), model)
}
