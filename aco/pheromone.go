// Package aco - pheromone update step.
//
// Once per iteration, in this fixed order:
//  1. evaporate: every pheromone entry is multiplied by Decay ∈ (0,1],
//     so entries shrink (or persist when Decay==1) and never go negative;
//  2. reinforce: the iteration's best tour deposits 1/distance on both
//     directions of each of its edges (the instance is symmetric, so the
//     reverse direction is reinforced even though the tour traverses only
//     one). Edges of non-participating city pairs are untouched.
//
// Only the iteration best deposits - an elitist-lite strategy that sharpens
// convergence at the cost of some path diversity.
package aco

// evaporate applies global multiplicative decay to the pheromone matrix.
// Complexity: O(n²).
func (c *Colony) evaporate() {
	c.pherM.Scale(c.opts.Decay)
}

// reinforce deposits pheromone along t's edges, both directions.
// A +Inf distance deposits nothing (1/∞ == 0), so tours forced across
// missing edges cannot strengthen them.
// Complexity: O(n).
func (c *Colony) reinforce(t Tour) {
	var e Edge
	for _, e = range t.Edges {
		c.pher[e.From*c.n+e.To] += 1 / c.dist[e.From*c.n+e.To]
		c.pher[e.To*c.n+e.From] += 1 / c.dist[e.To*c.n+e.From]
	}
}
