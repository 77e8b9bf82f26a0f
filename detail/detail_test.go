package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxsynth/slabvox"
	"github.com/katalvlaran/voxsynth/synth"
	"github.com/katalvlaran/voxsynth/voxgrid"
)

// tilePair builds a 2×1×1 low-res exemplar (one ground voxel, one air) and
// a 4×2×2 high-res counterpart, giving 2×2×2 tiles. The ground tile is half
// solid, half air — detailed.
func tilePair(t *testing.T) (low, high *slabvox.Model) {
	t.Helper()
	low, err := slabvox.New(2, 1, 1)
	require.NoError(t, err)
	low.Set(0, 0, 0, slabvox.PaletteGround)

	high, err = slabvox.New(4, 2, 2)
	require.NoError(t, err)
	// Ground tile occupies x 0..1: fill only its bottom layer.
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			high.Set(x, y, 0, slabvox.PaletteGround)
		}
	}
	return low, high
}

// settledColumn builds a 1×1×2 grid settled to ground under air.
func settledColumn(t *testing.T, rules *synth.Ruleset) *voxgrid.Grid {
	t.Helper()
	g, err := voxgrid.New(1, 1, 2, false)
	require.NoError(t, err)
	ground, ok := rules.LabelOf(slabvox.PaletteGround)
	require.True(t, ok)
	empty, ok := rules.LabelOf(slabvox.PaletteEmpty)
	require.True(t, ok)
	g.At(0, 0, 0).Only(ground)
	g.At(0, 0, 1).Only(empty)
	return g
}

func TestBuild_TileSizeAndDetection(t *testing.T) {
	low, high := tilePair(t)
	tm, err := Build(low, high)
	require.NoError(t, err)

	assert.Equal(t, 2, tm.Tx)
	assert.Equal(t, 2, tm.Ty)
	assert.Equal(t, 2, tm.Tz)

	pos, ok := tm.Tile(slabvox.PaletteGround)
	require.True(t, ok, "half-solid block shows detail")
	assert.Equal(t, [3]int{0, 0, 0}, pos)

	_, ok = tm.Tile(slabvox.PaletteEmpty)
	assert.False(t, ok, "air never maps to a tile")
}

func TestBuild_Mismatch(t *testing.T) {
	low, err := slabvox.New(2, 1, 1)
	require.NoError(t, err)
	high, err := slabvox.New(5, 2, 2)
	require.NoError(t, err)
	_, err = Build(low, high)
	assert.ErrorIs(t, err, ErrTileMismatch)
}

// TestEmit expands a settled 1×1×2 grid (ground under air) through the tile
// map: the ground cell becomes its detail tile with emptiness preserved and
// solids re-colored; the air cell stays empty.
func TestEmit(t *testing.T) {
	low, high := tilePair(t)
	tm, err := Build(low, high)
	require.NoError(t, err)

	rules, err := synth.Ingest(low)
	require.NoError(t, err)
	g := settledColumn(t, rules)

	out, err := tm.Emit(g, rules)
	require.NoError(t, err)
	require.Equal(t, int32(2), out.W)
	require.Equal(t, int32(2), out.H)
	require.Equal(t, int32(4), out.D)

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, SolidColor, out.At(x, y, 0), "tile solids are re-colored")
			assert.Equal(t, slabvox.PaletteEmpty, out.At(x, y, 1), "tile emptiness is preserved")
			for z := 2; z < 4; z++ {
				assert.Equal(t, slabvox.PaletteEmpty, out.At(x, y, z), "air cells expand to empty blocks")
			}
		}
	}
	assert.Equal(t, rules.Palette, out.Palette)
}

// TestEmit_SolidBlockFallback: a label with no known detail tile expands to
// a solid block.
func TestEmit_SolidBlockFallback(t *testing.T) {
	low, high := tilePair(t)
	// Make the ground tile fully solid: no detail to record.
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				high.Set(x, y, z, slabvox.PaletteGround)
			}
		}
	}
	tm, err := Build(low, high)
	require.NoError(t, err)
	_, ok := tm.Tile(slabvox.PaletteGround)
	require.False(t, ok)

	rules, err := synth.Ingest(low)
	require.NoError(t, err)
	g := settledColumn(t, rules)

	out, err := tm.Emit(g, rules)
	require.NoError(t, err)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				assert.Equal(t, SolidColor, out.At(x, y, z))
			}
		}
	}
}
