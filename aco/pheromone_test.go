package aco_test

import (
	"math"
	"testing"

	"github.com/Hitsuji-M/aco-tsp/aco"
)

func TestEvaporate_ScalesEveryEntryAndStaysNonNegative(t *testing.T) {
	opts := squareOptions()
	opts.Decay = 0.5
	c := mustColony(t, unitSquare(t), opts)

	before := c.Pheromones()
	c.Evaporate()
	after := c.Pheromones()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b, _ := before.At(i, j)
			a, _ := after.At(i, j)
			if math.Abs(a-b*0.5) > epsTiny {
				t.Fatalf("entry (%d,%d): %v → %v, want ×0.5", i, j, b, a)
			}
			if a < 0 {
				t.Fatalf("entry (%d,%d) went negative: %v", i, j, a)
			}
		}
	}
}

func TestEvaporate_RepeatedDecayIsStrictlyDecreasing(t *testing.T) {
	opts := squareOptions()
	opts.Decay = 0.9
	c := mustColony(t, unitSquare(t), opts)

	prev := c.PheromoneAt(0, 1)
	for step := 0; step < 10; step++ {
		c.Evaporate()
		cur := c.PheromoneAt(0, 1)
		if !(cur < prev) {
			t.Fatalf("step %d: %v not strictly below %v", step, cur, prev)
		}
		if cur < 0 {
			t.Fatalf("step %d: negative pheromone %v", step, cur)
		}
		prev = cur
	}
}

func TestEvaporate_DecayOnePreservesEntries(t *testing.T) {
	opts := squareOptions()
	opts.Decay = 1
	c := mustColony(t, unitSquare(t), opts)

	before := c.PheromoneAt(2, 3)
	c.Evaporate()
	if got := c.PheromoneAt(2, 3); got != before {
		t.Fatalf("decay 1 changed an entry: %v → %v", before, got)
	}
}

func TestReinforce_TouchesOnlyTheToursSymmetricEntries(t *testing.T) {
	c := mustColony(t, unitSquare(t), squareOptions())

	perimeter := ring(4, 4) // edges 0-1, 1-2, 2-3, 3-0, all distance 1
	before := c.Pheromones()
	c.Reinforce(perimeter)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b, _ := before.At(i, j)
			got := c.PheromoneAt(i, j)
			if hasEdge(perimeter, i, j) {
				// Both directions gain exactly 1/d = 1.
				if math.Abs(got-(b+1)) > epsTiny {
					t.Fatalf("edge (%d,%d): %v → %v, want +1", i, j, b, got)
				}
			} else if got != b {
				t.Fatalf("non-participating entry (%d,%d) changed: %v → %v", i, j, b, got)
			}
		}
	}
}

func TestReinforce_InfiniteEdgeDepositsNothing(t *testing.T) {
	inf := math.Inf(1)
	c := mustColony(t, mkDense(t, [][]float64{
		{0, inf, 1},
		{inf, 0, 1},
		{1, 1, 0},
	}), squareOptions())

	tour := aco.Tour{
		Edges:  []aco.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}},
		Weight: inf,
	}
	before := c.PheromoneAt(0, 1)
	c.Reinforce(tour)
	if got := c.PheromoneAt(0, 1); got != before {
		t.Fatalf("missing edge gained pheromone: %v → %v", before, got)
	}
	if got := c.PheromoneAt(1, 2); math.Abs(got-(before+1)) > epsTiny {
		t.Fatalf("finite edge (1,2) not reinforced: %v", got)
	}
}
