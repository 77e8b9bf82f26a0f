package voxgrid

import "github.com/katalvlaran/voxsynth/labelset"

// New constructs a (w, h, d) grid of empty possibility sets.
// Returns ErrEmptyGrid if any dimension is not positive.
// Complexity: O(w×h×d) time and memory.
func New(w, h, d int, periodic bool) (*Grid, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		W:        w,
		H:        h,
		D:        d,
		Periodic: periodic,
		cells:    make([]labelset.Set, w*h*d),
	}, nil
}

// Len returns the total number of cells, W×H×D.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x, y, z) lies within the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D
}

// Index maps (x, y, z) to the flat cell index: x + W·(y + H·z).
func (g *Grid) Index(x, y, z int) int {
	return x + g.W*(y+g.H*z)
}

// Coordinate converts a flat cell index back to (x, y, z).
func (g *Grid) Coordinate(idx int) (x, y, z int) {
	x = idx % g.W
	idx /= g.W
	return x, idx % g.H, idx / g.H
}

// At returns the possibility set at (x, y, z). The coordinate must be in
// bounds; callers at the domain boundary use InBounds or AtWrapped.
func (g *Grid) At(x, y, z int) *labelset.Set {
	return &g.cells[g.Index(x, y, z)]
}

// AtFlat returns the possibility set at a flat cell index.
func (g *Grid) AtFlat(idx int) *labelset.Set {
	return &g.cells[idx]
}

// AtWrapped returns the cell at ((x mod W), (y mod H), (z mod D)) with
// non-negative modular arithmetic, so negative indices wrap correctly.
func (g *Grid) AtWrapped(x, y, z int) *labelset.Set {
	return &g.cells[g.Index(wrap(x, g.W), wrap(y, g.H), wrap(z, g.D))]
}

// WrapIndex maps (x, y, z), each taken modulo its extent, to the flat index.
func (g *Grid) WrapIndex(x, y, z int) int {
	return g.Index(wrap(x, g.W), wrap(y, g.H), wrap(z, g.D))
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Bounds returns the box covering the whole grid.
func (g *Grid) Bounds() Box {
	return Box{Max: [3]int{g.W - 1, g.H - 1, g.D - 1}}
}

// Clone returns a deep copy of the grid. Cells are plain data, so this is a
// single bulk copy.
// Complexity: O(W×H×D).
func (g *Grid) Clone() *Grid {
	clone := &Grid{W: g.W, H: g.H, D: g.D, Periodic: g.Periodic,
		cells: make([]labelset.Set, len(g.cells))}
	copy(clone.cells, g.cells)
	return clone
}

// CopyFrom overwrites every cell of g with the cells of src. Both grids must
// have the same shape; returns ErrDimensionMismatch otherwise. This is the
// revert half of the scheduler's backup/revert cycle.
// Complexity: O(W×H×D).
func (g *Grid) CopyFrom(src *Grid) error {
	if g.W != src.W || g.H != src.H || g.D != src.D {
		return ErrDimensionMismatch
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether both grids have the same shape and identical
// possibility sets in every cell.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H || g.D != o.D {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(&o.cells[i]) {
			return false
		}
	}
	return true
}
