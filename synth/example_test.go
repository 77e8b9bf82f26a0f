package synth_test

import (
	"fmt"

	"github.com/katalvlaran/voxsynth/slabvox"
	"github.com/katalvlaran/voxsynth/synth"
)

// ExampleSynthesizer_Solve synthesizes a 4³ domain from the simplest
// possible exemplar — a 2×2×2 slab of air. One label means every attempt
// succeeds and every cell settles.
func ExampleSynthesizer_Solve() {
	exemplar, _ := slabvox.New(2, 2, 2)
	rules, _ := synth.Ingest(exemplar)

	opts := synth.DefaultOptions()
	opts.DomainSize = 4
	s, _ := synth.New(rules, opts)

	grid, _ := s.NewGrid()
	s.InitSoup(grid)
	stats := s.Solve(grid)

	settled := 0
	for i := 0; i < grid.Len(); i++ {
		if grid.AtFlat(i).Single() >= 0 {
			settled++
		}
	}
	fmt.Println("labels:", rules.L)
	fmt.Println("settled:", settled, "of", grid.Len())
	fmt.Println("failures:", stats.Failures)

	// Output:
	// labels: 1
	// settled: 64 of 64
	// failures: 0
}
