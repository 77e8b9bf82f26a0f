package synth

import (
	"github.com/katalvlaran/voxsynth/labelset"
	"github.com/katalvlaran/voxsynth/voxgrid"
)

// Synthesize runs the randomized scan over the whole grid.
// See SynthesizeBox.
func (s *Synthesizer) Synthesize(g *voxgrid.Grid) (int, error) {
	return s.SynthesizeBox(g, g.Bounds())
}

// SynthesizeBox visits every cell of the inclusive box in a randomized
// axis-aligned sweep. At each cell it picks uniformly at random one label
// from the cell's current possibilities, restricts the cell to that label,
// and propagates. Visiting an already-settled cell re-picks its sole label
// and propagation is a no-op.
//
// Returns the number of visited cells settled to a non-empty label, or a
// ContradictionError on the first failure; the grid is then left partially
// synthesized and the caller reverts from a backup if it wants to retry.
func (s *Synthesizer) SynthesizeBox(g *voxgrid.Grid, box voxgrid.Box) (int, error) {
	if !g.InBounds(box.Min[0], box.Min[1], box.Min[2]) ||
		!g.InBounds(box.Max[0], box.Max[1], box.Max[2]) {
		return 0, ErrBoxOutOfBounds
	}

	// Randomize the sweep: a permutation of the axes and a sign per axis.
	axes := [3]int{0, 1, 2}
	for t := 0; t < 9; t++ {
		i, j := s.rng.Intn(3), s.rng.Intn(3)
		axes[i], axes[j] = axes[j], axes[i]
	}
	var start, stop, step [3]int
	for a := 0; a < 3; a++ {
		if s.rng.Intn(2) == 0 {
			start[a], stop[a], step[a] = box.Min[a], box.Max[a]+1, 1
		} else {
			start[a], stop[a], step[a] = box.Max[a], box.Min[a]-1, -1
		}
	}

	var choices [labelset.MaxLabels]int
	solids := 0
	var cur [3]int
	for v2 := start[axes[2]]; v2 != stop[axes[2]]; v2 += step[axes[2]] {
		cur[axes[2]] = v2
		for v1 := start[axes[1]]; v1 != stop[axes[1]]; v1 += step[axes[1]] {
			cur[axes[1]] = v1
			for v0 := start[axes[0]]; v0 != stop[axes[0]]; v0 += step[axes[0]] {
				cur[axes[0]] = v0

				cell := g.At(cur[0], cur[1], cur[2])
				n := 0
				for l := 0; l < s.rules.L; l++ {
					if cell.Test(l) {
						choices[n] = l
						n++
					}
				}
				if n == 0 {
					// A prior commit emptied this cell through propagation
					// after the box was entered: this attempt is lost.
					return solids, &ContradictionError{X: cur[0], Y: cur[1], Z: cur[2]}
				}
				pick := choices[s.rng.Intn(n)]
				cell.Only(pick)
				if pick != s.rules.EmptyLabel {
					solids++
				}
				if err := s.Propagate(g, cur[0], cur[1], cur[2]); err != nil {
					return solids, err
				}
			}
		}
	}
	return solids, nil
}
