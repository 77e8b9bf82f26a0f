package labelset

import "math/bits"

// MaxLabels is the compile-time ceiling on distinct labels a Set can hold.
// Exemplars with more labels must be rejected by the caller at ingest.
const MaxLabels = 64

// setWords is the number of 64-bit words backing a Set.
const setWords = (MaxLabels + 63) / 64

// Set is the possibility set of a single cell: bit i is up while label i is
// still considered possible. The zero value is the empty set.
//
// Set is plain data; assignment and equality behave like any value type,
// which is what grid snapshot/revert relies on.
type Set struct {
	words [setWords]uint64
}

// Test reports whether label i is still possible.
func (s *Set) Test(i int) bool {
	return s.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Put sets label i to present (true) or absent (false).
func (s *Set) Put(i int, present bool) {
	if present {
		s.words[i>>6] |= 1 << (uint(i) & 63)
	} else {
		s.words[i>>6] &^= 1 << (uint(i) & 63)
	}
}

// Fill makes exactly the labels [0, n) possible. Bits above n are cleared,
// including the unused high bits of the last word, so that None and Count
// remain exact when n is not a multiple of 64.
// Panics if n is negative or exceeds MaxLabels.
func (s *Set) Fill(n int) {
	if n < 0 || n > MaxLabels {
		panic("labelset: Fill size out of range")
	}
	var w int
	for w = 0; w < setWords; w++ {
		low := w << 6
		switch {
		case n >= low+64:
			s.words[w] = ^uint64(0)
		case n > low:
			s.words[w] = (uint64(1) << (uint(n) & 63)) - 1
		default:
			s.words[w] = 0
		}
	}
}

// Clear empties the set: no label remains possible.
func (s *Set) Clear() {
	for w := range s.words {
		s.words[w] = 0
	}
}

// Only restricts the set to the singleton {i}.
func (s *Set) Only(i int) {
	s.Clear()
	s.Put(i, true)
}

// None reports whether the set is empty (the contradictory state).
func (s *Set) None() bool {
	for w := range s.words {
		if s.words[w] != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of labels still possible.
func (s *Set) Count() int {
	var n int
	for w := range s.words {
		n += bits.OnesCount64(s.words[w])
	}
	return n
}

// Single returns the sole possible label when the set is a singleton
// (the cell is settled), and -1 otherwise.
func (s *Set) Single() int {
	if s.Count() != 1 {
		return -1
	}
	return s.First()
}

// First returns the lowest possible label, or -1 when the set is empty.
func (s *Set) First() int {
	for w := range s.words {
		if s.words[w] != 0 {
			return w<<6 + bits.TrailingZeros64(s.words[w])
		}
	}
	return -1
}

// Equal reports whether both sets hold exactly the same labels.
func (s *Set) Equal(o *Set) bool {
	return s.words == o.words
}

// Subset reports whether every label in s is also in o.
func (s *Set) Subset(o *Set) bool {
	for w := range s.words {
		if s.words[w]&^o.words[w] != 0 {
			return false
		}
	}
	return true
}
