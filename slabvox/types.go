// Package slabvox defines the voxel model type and sentinel errors for the
// slab format reader/writer.
package slabvox

import "errors"

// Sentinel errors for slab decoding.
var (
	// ErrTruncated indicates the stream ended before the header, voxel
	// payload, or palette was complete.
	ErrTruncated = errors.New("slabvox: truncated file")
	// ErrBadDimensions indicates a non-positive or implausibly large size.
	ErrBadDimensions = errors.New("slabvox: implausible dimensions")
)

// Conventional palette indices.
const (
	// PaletteEmpty is the palette index conventionally meaning "air".
	PaletteEmpty uint8 = 255
	// PaletteGround is the palette index conventionally meaning "ground".
	PaletteGround uint8 = 254
)

// maxVoxels bounds W·H·D to keep hostile headers from driving a giant
// allocation before the payload read fails anyway.
const maxVoxels = 1 << 30

// Model is an in-memory voxel slab: per-voxel palette indices plus the RGB
// palette. Voxels holds the raw payload in on-disk order; At and Set
// translate logical (x, y, z) coordinates, z = 0 being ground.
type Model struct {
	W, H, D int32
	Voxels  []uint8
	Palette [256][3]uint8
}

// New allocates a model of the given size with every voxel set to
// PaletteEmpty. Returns ErrBadDimensions for non-positive or oversized
// shapes.
func New(w, h, d int32) (*Model, error) {
	if err := checkDims(w, h, d); err != nil {
		return nil, err
	}
	m := &Model{W: w, H: h, D: d, Voxels: make([]uint8, int(w)*int(h)*int(d))}
	for i := range m.Voxels {
		m.Voxels[i] = PaletteEmpty
	}
	return m, nil
}

func checkDims(w, h, d int32) error {
	if w <= 0 || h <= 0 || d <= 0 {
		return ErrBadDimensions
	}
	if int64(w)*int64(h)*int64(d) > maxVoxels {
		return ErrBadDimensions
	}
	return nil
}

// index maps logical (x, y, z) to the payload offset: x is the outer sweep,
// then y, then z reversed.
func (m *Model) index(x, y, z int) int {
	return (x*int(m.H)+y)*int(m.D) + (int(m.D) - 1 - z)
}

// At returns the palette index at logical (x, y, z).
func (m *Model) At(x, y, z int) uint8 {
	return m.Voxels[m.index(x, y, z)]
}

// Set stores a palette index at logical (x, y, z).
func (m *Model) Set(x, y, z int, pal uint8) {
	m.Voxels[m.index(x, y, z)] = pal
}

// HasPalette reports whether any voxel uses the given palette index.
func (m *Model) HasPalette(pal uint8) bool {
	for _, v := range m.Voxels {
		if v == pal {
			return true
		}
	}
	return false
}
