package synth

import (
	"github.com/katalvlaran/voxsynth/labelset"
	"github.com/katalvlaran/voxsynth/slabvox"
)

// Ruleset holds everything derived from one exemplar: the label count, the
// palette bijection, and the adjacency constraints in both the compact
// matrix form and the fast per-direction lists. It is built once by Ingest
// and immutable thereafter.
type Ruleset struct {
	// L is the number of distinct labels discovered in the exemplar.
	L int

	// EmptyLabel and GroundLabel are the ids of the conventional empty and
	// ground palette indices, or -1 when the exemplar lacks them.
	EmptyLabel  int
	GroundLabel int

	// Palette is the exemplar's RGB palette, carried through to outputs.
	Palette [256][3]uint8

	palToID [256]int // palette index -> label id, -1 when unused
	idToPal []uint8  // label id -> palette index

	// compact is the L×L matrix of axis bitmasks; compact[a][b] records
	// observed pairs with a at the lower coordinate on the flagged axis.
	compact [][]uint8

	// allowed[d][a] lists the labels observed as the d-neighbor of a;
	// derived from compact, consulted on the hot propagation path.
	allowed [dirCount][][]int
}

// Ingest derives a Ruleset from an exemplar model. Labels are assigned
// consecutive ids in order of first appearance in scan order. The exemplar
// is walked toroidally, so the constraint set is well-defined on its
// boundary. Returns ErrTooManyLabels when the exemplar holds more than
// labelset.MaxLabels distinct palette indices.
// Complexity: O(W×H×D + L²) time, O(L²) memory.
func Ingest(m *slabvox.Model) (*Ruleset, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	rs := &Ruleset{EmptyLabel: -1, GroundLabel: -1, Palette: m.Palette}
	for i := range rs.palToID {
		rs.palToID[i] = -1
	}

	w, h, d := int(m.W), int(m.H), int(m.D)

	// 1. Discover labels in scan order of first appearance.
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pal := m.At(x, y, z)
				if rs.palToID[pal] >= 0 {
					continue
				}
				if rs.L >= labelset.MaxLabels {
					return nil, ErrTooManyLabels
				}
				rs.palToID[pal] = rs.L
				rs.idToPal = append(rs.idToPal, pal)
				rs.L++
			}
		}
	}
	if id := rs.palToID[slabvox.PaletteEmpty]; id >= 0 {
		rs.EmptyLabel = id
	}
	if id := rs.palToID[slabvox.PaletteGround]; id >= 0 {
		rs.GroundLabel = id
	}

	// 2. Record every observed ordered pair on each axis, with the
	// lower-coordinate label first.
	rs.compact = make([][]uint8, rs.L)
	for a := range rs.compact {
		rs.compact[a] = make([]uint8, rs.L)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				id := rs.palToID[m.At(x, y, z)]
				for dir := 0; dir < dirCount; dir++ {
					nx := mod(x+dirOffsets[dir][0], w)
					ny := mod(y+dirOffsets[dir][1], h)
					nz := mod(z+dirOffsets[dir][2], d)
					nid := rs.palToID[m.At(nx, ny, nz)]
					if dirTowardLower[dir] {
						rs.compact[nid][id] |= dirAxis[dir]
					} else {
						rs.compact[id][nid] |= dirAxis[dir]
					}
				}
			}
		}
	}

	rs.buildFast()
	return rs, nil
}

// buildFast derives the per-direction adjacency lists from the compact
// matrix.
func (rs *Ruleset) buildFast() {
	for dir := 0; dir < dirCount; dir++ {
		rs.allowed[dir] = make([][]int, rs.L)
		for a := 0; a < rs.L; a++ {
			var list []int
			for b := 0; b < rs.L; b++ {
				if rs.Allows(a, b, dir) {
					list = append(list, b)
				}
			}
			rs.allowed[dir][a] = list
		}
	}
}

// Allows reports whether label b may sit in direction dir from label a,
// straight from the compact matrix.
func (rs *Ruleset) Allows(a, b, dir int) bool {
	if dirTowardLower[dir] {
		// b is at the lower coordinate of the pair.
		return rs.compact[b][a]&dirAxis[dir] != 0
	}
	return rs.compact[a][b]&dirAxis[dir] != 0
}

// Allowed returns the labels observed as the dir-neighbor of label a.
// The returned slice is shared; callers must not mutate it.
func (rs *Ruleset) Allowed(a, dir int) []int {
	return rs.allowed[dir][a]
}

// PaletteOf maps a label id back to its exemplar palette index.
func (rs *Ruleset) PaletteOf(id int) uint8 {
	return rs.idToPal[id]
}

// LabelOf maps a palette index to its label id, reporting whether the
// palette index occurred in the exemplar.
func (rs *Ruleset) LabelOf(pal uint8) (int, bool) {
	id := rs.palToID[pal]
	return id, id >= 0
}

// mod is the non-negative remainder of i by n.
func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
