// Package synth implements exemplar-driven 3D model synthesis: an
// incremental greedy assignment over a voxel grid interleaved with forward
// constraint propagation, retried by bounded sub-region restart when a local
// assignment over-constrains.
//
// What:
//
//   - Ingest derives the label set and per-axis adjacency constraints from a
//     labeled voxel exemplar (what is observed is allowed, everything else
//     is forbidden).
//   - Synthesizer owns the immutable Ruleset, the options, the seeded RNG,
//     and the propagation worklist.
//   - Propagate restores arc consistency after any local restriction.
//   - InitSoup, InitBorder and InitGround produce starting grids.
//   - Synthesize commits one random choice per cell along a randomized
//     axis-aligned sweep, propagating after each commit.
//   - Solve schedules sub-region restart attempts under a pass budget,
//     reverting from a backup on every failed attempt. It always returns a
//     grid; in the worst case the grid is the initial one.
//
// Determinism: all randomness flows from Options.Seed through a single
// *rand.Rand; identical inputs and seed produce byte-identical grids.
//
// Complexity:
//
//   - Propagate: amortized O(cells × L × degree) per call, monotone in the
//     total number of possibility bits.
//   - Solve: bounded by (Passes+1) × AttemptsPerPass sub-region attempts
//     (the first pass runs twice AttemptsPerPass).
//
// Errors:
//
//   - ErrTooManyLabels: the exemplar exceeds labelset.MaxLabels.
//   - ErrNoEmptyLabel: a boundary/ground initializer needs an empty label
//     the exemplar does not contain.
//   - ErrContradiction: a possibility set became empty; recoverable by the
//     scheduler, surfaced by the lower-level entry points.
package synth
