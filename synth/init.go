package synth

import "github.com/katalvlaran/voxsynth/voxgrid"

// InitSoup fills every cell with all L labels possible: the starting point
// for whole-domain runs. The uniform soup is trivially arc-consistent, so
// no propagation is needed.
func (s *Synthesizer) InitSoup(g *voxgrid.Grid) {
	for i := 0; i < g.Len(); i++ {
		g.AtFlat(i).Fill(s.rules.L)
	}
}

// InitBorder fills the grid with the uniform soup, then pins every cell on
// a face of the bounding box to the empty label and propagates inward.
// Used when nothing may touch the domain boundary.
//
// Returns ErrNoEmptyLabel when the exemplar has no empty label, or a
// ContradictionError when the exemplar cannot satisfy an empty border.
func (s *Synthesizer) InitBorder(g *voxgrid.Grid) error {
	if s.rules.EmptyLabel < 0 {
		return ErrNoEmptyLabel
	}
	s.InitSoup(g)
	bounds := g.Bounds()
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if bounds.Interior(x, y, z) {
					continue
				}
				g.At(x, y, z).Only(s.rules.EmptyLabel)
				if err := s.Propagate(g, x, y, z); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// InitGround pins every cell above the ground plane to the empty label and
// the z=0 plane to the ground label (or empty when the exemplar has no
// ground). This is the primary starting configuration for sub-region
// scheduling.
//
// The trivial assignment is expected to be consistent with any exemplar
// that motivated it; propagation runs anyway and surfaces a
// ContradictionError for exemplars that forbid a uniform empty interior.
func (s *Synthesizer) InitGround(g *voxgrid.Grid) error {
	if s.rules.EmptyLabel < 0 {
		return ErrNoEmptyLabel
	}
	ground := s.rules.GroundLabel
	if ground < 0 {
		ground = s.rules.EmptyLabel
	}
	for z := 0; z < g.D; z++ {
		lbl := s.rules.EmptyLabel
		if z == 0 {
			lbl = ground
		}
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				g.At(x, y, z).Only(lbl)
			}
		}
	}
	// Every adjacency is checked from at least one endpoint, so a full
	// sweep of propagations verifies the seeded grid end to end.
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if err := s.Propagate(g, x, y, z); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
