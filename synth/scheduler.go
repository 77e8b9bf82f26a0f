package synth

import "github.com/katalvlaran/voxsynth/voxgrid"

// Solve refines g by repeatedly restarting small random sub-regions under
// the configured pass budget. Each attempt snapshots the grid, resets a
// random sub-cube's interior to the soup, re-propagates from the sub-cube
// boundary, re-synthesizes inside, and keeps the result only when both
// synthesis succeeded and the region did not gain non-empty cells (the
// policy prefers sparser completions). Every failed attempt reverts to the
// snapshot, so Solve always terminates and always leaves g in a valid
// state — in the worst case the initial one.
//
// Whether every cell of the returned grid is settled depends on exemplar
// tractability and budget; clients may treat remaining multi-possibility
// cells as wildcards or surface them.
func (s *Synthesizer) Solve(g *voxgrid.Grid) Stats {
	var stats Stats
	passes := s.opts.Passes
	if passes == 0 {
		passes = maxSide(g)
	}

	backup := g.Clone()
	for p := 0; p < passes; p++ {
		attempts := s.opts.AttemptsPerPass
		if p == 0 {
			// Give ground-based exemplars a chance to establish their
			// base layer before the rest of the domain is touched.
			attempts *= 2
		}
		for a := 0; a < attempts; a++ {
			stats.Attempts++
			box := s.randomBox(g, p == 0)
			backup.CopyFrom(g)

			before := interiorSolids(g, box, s.rules.EmptyLabel)
			if err := s.reinitBox(g, box); err != nil {
				g.CopyFrom(backup)
				stats.Failures++
				continue
			}
			if _, err := s.SynthesizeBox(g, box); err != nil {
				g.CopyFrom(backup)
				stats.Failures++
				continue
			}
			if interiorSolids(g, box, s.rules.EmptyLabel) > before {
				g.CopyFrom(backup)
				stats.Failures++
				continue
			}
			stats.Successes++
		}
		if s.opts.OnPass != nil {
			s.opts.OnPass(PassInfo{
				Pass:      p,
				Passes:    passes,
				Attempts:  stats.Attempts,
				Successes: stats.Successes,
				Failures:  stats.Failures,
			})
		}
	}
	return stats
}

// randomBox picks a random cubic sub-box with side uniform in
// [SubSideMin, SubSideMax], clamped per axis to the domain, whose corner
// lies inside the domain. When groundBias is set the box is pinned to the
// ground plane.
func (s *Synthesizer) randomBox(g *voxgrid.Grid, groundBias bool) voxgrid.Box {
	side := s.opts.SubSideMin + s.rng.Intn(s.opts.SubSideMax-s.opts.SubSideMin+1)
	dims := [3]int{g.W, g.H, g.D}
	var box voxgrid.Box
	for a := 0; a < 3; a++ {
		extent := side
		if extent > dims[a] {
			extent = dims[a]
		}
		box.Min[a] = s.rng.Intn(dims[a] - extent + 1)
		box.Max[a] = box.Min[a] + extent - 1
	}
	if groundBias {
		box.Max[2] -= box.Min[2]
		box.Min[2] = 0
	}
	return box
}

// reinitBox resets the interior of the box to the all-possible soup,
// preserving the box's boundary cells, then propagates from every boundary
// cell so the interior is constrained by the surrounding committed labels.
// The grid is changed even on failure; the caller reverts.
func (s *Synthesizer) reinitBox(g *voxgrid.Grid, box voxgrid.Box) error {
	for z := box.Min[2]; z <= box.Max[2]; z++ {
		for y := box.Min[1]; y <= box.Max[1]; y++ {
			for x := box.Min[0]; x <= box.Max[0]; x++ {
				if box.Interior(x, y, z) {
					g.At(x, y, z).Fill(s.rules.L)
				}
			}
		}
	}
	for z := box.Min[2]; z <= box.Max[2]; z++ {
		for y := box.Min[1]; y <= box.Max[1]; y++ {
			for x := box.Min[0]; x <= box.Max[0]; x++ {
				if box.Interior(x, y, z) {
					continue
				}
				if err := s.Propagate(g, x, y, z); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// interiorSolids counts the cells strictly inside the box that cannot be
// empty any more. Committed non-empty cells count; soup cells do not.
func interiorSolids(g *voxgrid.Grid, box voxgrid.Box, empty int) int {
	n := 0
	for z := box.Min[2]; z <= box.Max[2]; z++ {
		for y := box.Min[1]; y <= box.Max[1]; y++ {
			for x := box.Min[0]; x <= box.Max[0]; x++ {
				if !box.Interior(x, y, z) {
					continue
				}
				if empty < 0 || !g.At(x, y, z).Test(empty) {
					n++
				}
			}
		}
	}
	return n
}

func maxSide(g *voxgrid.Grid) int {
	m := g.W
	if g.H > m {
		m = g.H
	}
	if g.D > m {
		m = g.D
	}
	return m
}
