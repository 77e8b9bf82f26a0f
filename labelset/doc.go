// Package labelset provides the fixed-capacity possibility set used by the
// synthesis core: for every grid cell, the set of labels the cell may still
// take, packed into machine words.
//
// What:
//
//   - Set is a value type holding up to MaxLabels labels as a bit vector.
//   - Test/Put flip individual labels; Fill/Clear reset the whole set.
//   - None, Count, Single and First interrogate the remaining possibilities.
//
// Why:
//
//   - Constraint propagation clears bits millions of times on the hot path;
//     a fixed inline array keeps cells free of pointers and heap traffic.
//   - Grid snapshots (backup/revert) reduce to a bulk copy of plain data.
//
// Complexity: all operations are O(MaxLabels/64) = O(1) word scans.
//
// Capacity: MaxLabels is a compile-time constant (64). Raising it is a
// one-line change; Fill masks the unused high bits of the last word so that
// None and Count stay exact for any label count.
package labelset
