// Package voxgrid provides the dense three-dimensional grid of possibility
// sets that the synthesis core operates on, plus the inclusive axis-aligned
// boxes used to address sub-regions of it.
//
// What:
//
//   - Grid wraps a flat []labelset.Set with sizes (W, H, D) and a Periodic
//     flag; storage is row-major in x, then y, then z.
//   - At gives bounded access; AtWrapped takes indices modulo each extent
//     with non-negative arithmetic. Both accessors exist on every grid: the
//     Periodic flag only tells the synthesis layers which one to reach for
//     at the domain boundary.
//   - Box is an inclusive [Min, Max] cuboid used for sub-region scheduling.
//   - Clone and CopyFrom implement the backup/revert cycle: cells are plain
//     data, so both are bulk copies.
//
// Complexity:
//
//   - At/AtWrapped/Index/Coordinate: O(1).
//   - Clone/CopyFrom/Equal: O(W×H×D).
//
// Errors:
//
//   - ErrEmptyGrid: a requested dimension is not positive.
//   - ErrDimensionMismatch: CopyFrom between grids of different shapes.
package voxgrid
