package synth

import "github.com/katalvlaran/voxsynth/voxgrid"

// Propagate restores arc consistency after the caller has restricted the
// possibility set at (x, y, z). It walks a FIFO worklist of cells whose
// possibilities may have shrunk; for each, it prunes every neighbor label
// left without support. Bits are only ever cleared, so termination follows
// from the finite total number of possibility bits.
//
// Returns a ContradictionError when some cell's set becomes empty. The grid
// is then left partially propagated; callers wanting to retry revert from a
// backup.
// Complexity: amortized O(cells × L × max fan-in) per call.
func (s *Synthesizer) Propagate(g *voxgrid.Grid, x, y, z int) error {
	s.queue = s.queue[:0]
	s.mark.Clear()
	s.mark.Grow(uint32(g.Len() - 1))

	seed := g.Index(x, y, z)
	s.queue = append(s.queue, seed)
	s.mark.Set(uint32(seed))

	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		s.mark.Remove(uint32(cur))
		cx, cy, cz := g.Coordinate(cur)
		curSet := g.AtFlat(cur)

		for dir := 0; dir < dirCount; dir++ {
			nx := cx + dirOffsets[dir][0]
			ny := cy + dirOffsets[dir][1]
			nz := cz + dirOffsets[dir][2]
			var nIdx int
			if g.InBounds(nx, ny, nz) {
				nIdx = g.Index(nx, ny, nz)
			} else if g.Periodic {
				nIdx = g.WrapIndex(nx, ny, nz)
			} else {
				// Bounded mode: out-of-domain neighbors are absent.
				continue
			}

			// A label b at the neighbor stays supported iff some label a
			// still possible at cur admits b; the fast table is consulted
			// in the incoming direction.
			nSet := g.AtFlat(nIdx)
			incoming := Opposite(dir)
			changed := false
			for b := 0; b < s.rules.L; b++ {
				if !nSet.Test(b) {
					continue
				}
				supported := false
				for _, a := range s.rules.allowed[incoming][b] {
					if curSet.Test(a) {
						supported = true
						break
					}
				}
				if !supported {
					nSet.Put(b, false)
					changed = true
				}
			}
			if !changed {
				continue
			}
			if nSet.None() {
				wx, wy, wz := g.Coordinate(nIdx)
				return &ContradictionError{X: wx, Y: wy, Z: wz}
			}
			if !s.mark.Contains(uint32(nIdx)) {
				s.queue = append(s.queue, nIdx)
				s.mark.Set(uint32(nIdx))
			}
		}
	}
	return nil
}
