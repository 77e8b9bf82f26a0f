// Package detail blits high-resolution voxel tiles onto a synthesized grid.
//
// A tile map pairs a low-resolution exemplar with a high-resolution one
// whose dimensions are an integer multiple (tx, ty, tz) of the former. For
// each palette index in the low-res exemplar, the first position whose
// corresponding high-res block shows actual detail (contains both empty and
// non-empty voxels) names that label's detail tile. Emission replaces every
// non-empty cell of the synthesized grid by its detail tile — or by a solid
// block when no detail is known — preserving tile emptiness and re-coloring
// solid voxels to SolidColor.
package detail

import (
	"errors"

	"github.com/kelindar/bitmap"

	"github.com/katalvlaran/voxsynth/slabvox"
	"github.com/katalvlaran/voxsynth/synth"
	"github.com/katalvlaran/voxsynth/voxgrid"
)

// Sentinel errors.
var (
	// ErrTileMismatch indicates the high-res exemplar's dimensions are not
	// integer multiples of the low-res exemplar's.
	ErrTileMismatch = errors.New("detail: high-res dimensions are not a multiple of low-res")
)

// SolidColor is the palette index detail voxels are re-colored to.
const SolidColor uint8 = 246

// TileMap locates one detail tile per palette index in the high-res
// exemplar.
type TileMap struct {
	// Tx, Ty, Tz is the tile size on each axis.
	Tx, Ty, Tz int

	high  *slabvox.Model
	tiles map[uint8][3]int // palette index -> low-res tile position
}

// Build scans the low-res exemplar and records, for each palette index, the
// first position whose tx×ty×tz block in the high-res exemplar shows
// detail. Returns ErrTileMismatch when the grids do not correspond through
// an integer tile size.
// Complexity: O(high-res voxels).
func Build(low, high *slabvox.Model) (*TileMap, error) {
	if high.W%low.W != 0 || high.H%low.H != 0 || high.D%low.D != 0 {
		return nil, ErrTileMismatch
	}
	tm := &TileMap{
		Tx:    int(high.W / low.W),
		Ty:    int(high.H / low.H),
		Tz:    int(high.D / low.D),
		high:  high,
		tiles: make(map[uint8][3]int),
	}

	// found marks palette indices whose tile is already recorded, so later
	// occurrences are skipped without a map lookup.
	var found bitmap.Bitmap
	found.Grow(255)
	for z := 0; z < int(low.D); z++ {
		for y := 0; y < int(low.H); y++ {
			for x := 0; x < int(low.W); x++ {
				pal := low.At(x, y, z)
				if pal == slabvox.PaletteEmpty || found.Contains(uint32(pal)) {
					continue
				}
				if tm.blockHasDetail(x, y, z) {
					tm.tiles[pal] = [3]int{x, y, z}
					found.Set(uint32(pal))
				}
			}
		}
	}
	return tm, nil
}

// blockHasDetail reports whether the high-res block at low-res position
// (x, y, z) holds both empty and non-empty voxels.
func (tm *TileMap) blockHasDetail(x, y, z int) bool {
	hasEmpty, hasSolid := false, false
	for tz := 0; tz < tm.Tz; tz++ {
		for ty := 0; ty < tm.Ty; ty++ {
			for tx := 0; tx < tm.Tx; tx++ {
				if tm.high.At(x*tm.Tx+tx, y*tm.Ty+ty, z*tm.Tz+tz) == slabvox.PaletteEmpty {
					hasEmpty = true
				} else {
					hasSolid = true
				}
			}
		}
	}
	return hasEmpty && hasSolid
}

// Tile returns the low-res position of the detail tile recorded for a
// palette index, reporting whether one is known.
func (tm *TileMap) Tile(pal uint8) ([3]int, bool) {
	pos, ok := tm.tiles[pal]
	return pos, ok
}

// Emit builds the high-resolution output: each cell of the synthesized grid
// expands to a tx×ty×tz block, empty cells to empty blocks, labeled cells
// to their detail tile (emptiness preserved, solids re-colored to
// SolidColor) or a solid block when no tile is known. Cells still holding
// several possibilities emit as their first possibility.
// Complexity: O(output voxels).
func (tm *TileMap) Emit(g *voxgrid.Grid, rs *synth.Ruleset) (*slabvox.Model, error) {
	out, err := slabvox.New(int32(g.W*tm.Tx), int32(g.H*tm.Ty), int32(g.D*tm.Tz))
	if err != nil {
		return nil, err
	}
	out.Palette = rs.Palette
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				lbl := g.At(x, y, z).First()
				if lbl < 0 {
					return nil, &synth.ContradictionError{X: x, Y: y, Z: z}
				}
				pal := rs.PaletteOf(lbl)
				if pal == slabvox.PaletteEmpty {
					continue
				}
				if pos, ok := tm.tiles[pal]; ok {
					tm.blitTile(out, x, y, z, pos)
				} else {
					tm.blitSolid(out, x, y, z)
				}
			}
		}
	}
	return out, nil
}

func (tm *TileMap) blitTile(out *slabvox.Model, x, y, z int, pos [3]int) {
	for tz := 0; tz < tm.Tz; tz++ {
		for ty := 0; ty < tm.Ty; ty++ {
			for tx := 0; tx < tm.Tx; tx++ {
				v := tm.high.At(pos[0]*tm.Tx+tx, pos[1]*tm.Ty+ty, pos[2]*tm.Tz+tz)
				if v != slabvox.PaletteEmpty {
					out.Set(x*tm.Tx+tx, y*tm.Ty+ty, z*tm.Tz+tz, SolidColor)
				}
			}
		}
	}
}

func (tm *TileMap) blitSolid(out *slabvox.Model, x, y, z int) {
	for tz := 0; tz < tm.Tz; tz++ {
		for ty := 0; ty < tm.Ty; ty++ {
			for tx := 0; tx < tm.Tx; tx++ {
				out.Set(x*tm.Tx+tx, y*tm.Ty+ty, z*tm.Tz+tz, SolidColor)
			}
		}
	}
}
