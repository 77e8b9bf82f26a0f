// Package voxgrid defines the grid type, sub-region boxes, and sentinel
// errors shared by the synthesis packages.
package voxgrid

import (
	"errors"

	"github.com/katalvlaran/voxsynth/labelset"
)

// Sentinel errors for voxgrid operations.
var (
	// ErrEmptyGrid indicates a requested grid dimension is not positive.
	ErrEmptyGrid = errors.New("voxgrid: grid dimensions must be positive")
	// ErrDimensionMismatch indicates CopyFrom between differently-shaped grids.
	ErrDimensionMismatch = errors.New("voxgrid: grid dimensions differ")
)

// Grid is a dense 3D array of possibility sets indexed (x, y, z) with sizes
// (W, H, D). Storage is row-major in x, then y, then z: x is the most
// coherent index.
//
// Periodic selects how the synthesis layers treat out-of-domain neighbors
// (absent vs. wrapped); the grid itself always supports both accessors.
type Grid struct {
	W, H, D  int
	Periodic bool

	cells []labelset.Set
}

// Box is an inclusive axis-aligned box: both Min and Max corners lie inside
// the box. Axes are indexed 0=x, 1=y, 2=z.
type Box struct {
	Min, Max [3]int
}

// Contains reports whether (x, y, z) lies inside the box.
func (b Box) Contains(x, y, z int) bool {
	return x >= b.Min[0] && x <= b.Max[0] &&
		y >= b.Min[1] && y <= b.Max[1] &&
		z >= b.Min[2] && z <= b.Max[2]
}

// Interior reports whether (x, y, z) lies strictly inside the box, off
// every face.
func (b Box) Interior(x, y, z int) bool {
	return x > b.Min[0] && x < b.Max[0] &&
		y > b.Min[1] && y < b.Max[1] &&
		z > b.Min[2] && z < b.Max[2]
}

// Side returns the number of cells the box spans along the given axis.
func (b Box) Side(axis int) int {
	return b.Max[axis] - b.Min[axis] + 1
}
