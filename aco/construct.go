// Package aco - stochastic tour construction.
//
// One ant builds one tour: starting from its start city it repeatedly draws
// the next city from the unvisited set with probability proportional to
// pheromone^Alpha · (1/distance)^Beta, then closes the cycle back to the
// start. The weighted draw is what keeps the search stochastic rather than
// greedy; see chooseCity for the degenerate-score fallbacks.
package aco

import (
	"math"
	"math/rand"
)

// generatePath constructs one complete tour beginning and ending at start,
// using rng for every probabilistic choice. The pheromone matrix is only
// read, never written, so any number of ants may run concurrently within an
// iteration.
// Complexity: O(n²) time, O(n) space.
func (c *Colony) generatePath(start int, rng *rand.Rand) Tour {
	var (
		visited = make([]bool, c.n)
		edges   = make([]Edge, 0, c.n)
		current = start
		step    int
		next    int
	)
	visited[start] = true

	for step = 1; step < c.n; step++ {
		next = c.chooseCity(current, visited, rng)
		edges = append(edges, Edge{From: current, To: next})
		visited[next] = true
		current = next
	}
	// Close the cycle.
	edges = append(edges, Edge{From: current, To: start})

	return Tour{Edges: edges, Weight: c.pathWeight(edges)}
}

// chooseCity draws the next city from the unvisited set.
//
// Scores: score(from,y) = pheromone[from,y]^Alpha · (1/distance[from,y])^Beta.
// A +Inf distance drives a score to 0 (unreachable unless forced); a zero
// distance drives it to +Inf (that edge class dominates).
//
// Selection, in priority order:
//  1. single candidate ⇒ deterministic (covers the forced unreachable city);
//  2. any +Inf score ⇒ uniform draw among the +Inf-scored candidates, since
//     no finite weight can compete and Inf/Inf normalization is undefined;
//  3. positive finite total ⇒ roulette wheel over normalized scores;
//  4. all scores zero (or an undefined 0·∞ term poisoned the total) ⇒
//     uniform draw among all remaining candidates. This is the local
//     resolution of a degenerate choice; it never surfaces to the caller.
//
// Complexity: O(n) per call.
func (c *Colony) chooseCity(from int, visited []bool, rng *rand.Rand) int {
	var (
		row        = from * c.n
		candidates = make([]int, 0, c.n)
		scores     = make([]float64, 0, c.n)
		dominant   []int // candidates with +Inf score, lazily allocated
		total      float64
		y          int
		s          float64
	)
	for y = 0; y < c.n; y++ {
		if visited[y] {
			continue
		}
		s = math.Pow(c.pher[row+y], c.opts.Alpha) * math.Pow(1/c.dist[row+y], c.opts.Beta)
		if math.IsInf(s, 1) {
			dominant = append(dominant, y)
		}
		candidates = append(candidates, y)
		scores = append(scores, s)
		total += s
	}

	switch {
	case len(candidates) == 1:
		return candidates[0]
	case len(dominant) > 0:
		return dominant[rng.Intn(len(dominant))]
	case total > 0 && !math.IsInf(total, 1) && !math.IsNaN(total):
		return candidates[pickWeighted(rng, scores, total)]
	default:
		return candidates[rng.Intn(len(candidates))]
	}
}
