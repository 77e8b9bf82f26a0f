// Package voxsynth synthesizes three-dimensional voxel models by example:
// given a small exemplar annotated with palette labels, it grows a larger
// grid whose local label adjacencies respect exactly the adjacencies
// observed in the exemplar.
//
// 🚀 What is voxsynth?
//
//	A discrete constraint-based model synthesizer in the tradition of
//	Merrell's Model Synthesis and Gumin's Wave Function Collapse:
//
//	  • Exemplar ingest: what is observed is allowed, everything else is forbidden
//	  • Worklist propagation keeping the grid arc-consistent after every commit
//	  • Randomized greedy assignment, retried by bounded sub-region restart
//
// ✨ Why choose voxsynth?
//
//   - Deterministic          — every run reproducible from a single seed
//   - Rock-solid             — monotone propagation, snapshot/revert recovery
//   - Self-contained formats — reads and writes the voxel slab binary directly
//   - Pure Go                — no cgo
//
// Under the hood, everything is organized per concern:
//
//	labelset/    — fixed-capacity possibility sets, one per cell
//	voxgrid/     — dense 3D grid, bounded or toroidal, with sub-region boxes
//	slabvox/     — the voxel slab binary reader/writer
//	synth/       — ingest, propagation, initializers, synthesis, scheduling
//	detail/      — high-resolution tile emission over synthesized grids
//	cmd/voxsynth — the command-line driver
//
// Quick ASCII example, one vertical slice of a synthesized ground world:
//
//	    . . . .
//	    . # # .
//	    # # # #        # solid   . air
//
// Dive into cmd/voxsynth for an end-to-end pipeline.
//
//	go get github.com/katalvlaran/voxsynth
package voxsynth
