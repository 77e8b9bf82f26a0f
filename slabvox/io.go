package slabvox

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Read decodes a voxel slab from r.
// Returns ErrTruncated when the stream is short and ErrBadDimensions when
// the header is implausible.
// Complexity: O(W×H×D).
func Read(r io.Reader) (*Model, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, readErr(err)
	}
	w := int32(binary.LittleEndian.Uint32(header[0:4]))
	h := int32(binary.LittleEndian.Uint32(header[4:8]))
	d := int32(binary.LittleEndian.Uint32(header[8:12]))
	if err := checkDims(w, h, d); err != nil {
		return nil, err
	}

	m := &Model{W: w, H: h, D: d, Voxels: make([]uint8, int(w)*int(h)*int(d))}
	if _, err := io.ReadFull(r, m.Voxels); err != nil {
		return nil, readErr(err)
	}

	var pal [768]byte
	if _, err := io.ReadFull(r, pal[:]); err != nil {
		return nil, readErr(err)
	}
	for i := 0; i < 256; i++ {
		m.Palette[i] = [3]uint8{pal[3*i], pal[3*i+1], pal[3*i+2]}
	}
	return m, nil
}

// readErr folds the two io short-read errors into ErrTruncated; anything
// else is passed through.
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// Write encodes the model to w in the slab layout.
// Complexity: O(W×H×D).
func Write(w io.Writer, m *Model) error {
	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(m.W))
	binary.LittleEndian.PutUint32(header[4:8], uint32(m.H))
	binary.LittleEndian.PutUint32(header[8:12], uint32(m.D))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(m.Voxels); err != nil {
		return err
	}
	var pal [768]byte
	for i := 0; i < 256; i++ {
		pal[3*i] = m.Palette[i][0]
		pal[3*i+1] = m.Palette[i][1]
		pal[3*i+2] = m.Palette[i][2]
	}
	_, err := w.Write(pal[:])
	return err
}

// ReadFile reads a slab file from disk, wrapping errors with the path.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("slabvox: open %s: %w", path, err)
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("slabvox: read %s: %w", path, err)
	}
	return m, nil
}

// WriteFile writes a slab file to disk, wrapping errors with the path.
func WriteFile(path string, m *Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("slabvox: create %s: %w", path, err)
	}
	if err = Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("slabvox: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("slabvox: close %s: %w", path, err)
	}
	return nil
}
