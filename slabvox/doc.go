// Package slabvox reads and writes the fixed-layout voxel slab binary format
// used for exemplars and synthesized output.
//
// Layout (byte-exact):
//
//	offset 0        W as little-endian int32
//	offset 4        H as little-endian int32
//	offset 8        D as little-endian int32
//	offset 12       W·H·D palette indices, one byte per voxel
//	offset 12+WHD   palette: 256 entries of three bytes (R, G, B)
//
// The payload sweeps x in the outer loop, then y, then z — with the z sweep
// reversed (D-1 down to 0): each (x, y) column is stored top-to-bottom.
// Model.At and Model.Set hide the reversal, so z = 0 is always "ground" in
// memory regardless of the on-disk order.
//
// Palette index 255 conventionally marks empty space and 254 marks ground;
// no other index has fixed meaning.
//
// Errors:
//
//   - ErrTruncated: the stream ended before dimensions, payload, or palette.
//   - ErrBadDimensions: a dimension is non-positive or implausibly large.
package slabvox
