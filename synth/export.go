package synth

import (
	"github.com/katalvlaran/voxsynth/slabvox"
	"github.com/katalvlaran/voxsynth/voxgrid"
)

// Export converts a synthesized grid into a voxel model carrying the
// exemplar's palette. Cells still holding several possibilities are emitted
// as their first possibility (the wildcard policy for under-determined
// output); a cell with no possibility at all yields a ContradictionError.
// Complexity: O(W×H×D).
func Export(g *voxgrid.Grid, rs *Ruleset) (*slabvox.Model, error) {
	m, err := slabvox.New(int32(g.W), int32(g.H), int32(g.D))
	if err != nil {
		return nil, err
	}
	m.Palette = rs.Palette
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				lbl := g.At(x, y, z).First()
				if lbl < 0 {
					return nil, &ContradictionError{X: x, Y: y, Z: z}
				}
				m.Set(x, y, z, rs.PaletteOf(lbl))
			}
		}
	}
	return m, nil
}
