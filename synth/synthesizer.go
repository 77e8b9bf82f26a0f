package synth

import (
	"math/rand"

	"github.com/kelindar/bitmap"

	"github.com/katalvlaran/voxsynth/voxgrid"
)

// Synthesizer bundles the immutable Ruleset with the run state: options,
// the seeded RNG, and the propagation worklist. It replaces the module-level
// globals of classic model-synthesis implementations so that runs are
// self-contained and reproducible.
//
// A Synthesizer is single-threaded: one logical execution owns the grid for
// the duration of synthesis.
type Synthesizer struct {
	rules *Ruleset
	opts  Options
	rng   *rand.Rand

	// queue is the FIFO propagation worklist of flat cell indices; mark
	// tracks membership so a cell is enqueued at most once between visits.
	queue []int
	mark  bitmap.Bitmap
}

// New builds a Synthesizer over rules with the given options.
// Returns ErrBadOptions for out-of-range fields.
func New(rules *Ruleset, opts Options) (*Synthesizer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{
		rules: rules,
		opts:  opts,
		rng:   rngFromSeed(opts.Seed),
	}, nil
}

// Rules returns the ruleset the synthesizer runs over.
func (s *Synthesizer) Rules() *Ruleset {
	return s.rules
}

// NewGrid allocates the cubic output grid described by the options.
func (s *Synthesizer) NewGrid() (*voxgrid.Grid, error) {
	return voxgrid.New(s.opts.DomainSize, s.opts.DomainSize, s.opts.DomainSize, s.opts.Periodic)
}
