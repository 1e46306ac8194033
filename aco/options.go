// Package aco - engine configuration.
//
// Options are supplied once at construction and stay immutable for the
// Colony's lifetime (the random-start flag may additionally be toggled via
// Colony.SetRandomStart while the colony is still idle). Validation happens
// in New, before any matrix access; only sentinel errors from types.go.
package aco

// Options configures one Colony. The zero value is invalid; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// Ants is the number of tours constructed per iteration. Must be ≥ 1.
	Ants int

	// Iterations is the number of search rounds. Must be ≥ 1; it is the
	// sole termination condition.
	Iterations int

	// Decay is the multiplicative evaporation factor applied to every
	// pheromone entry once per iteration. Must lie in (0, 1]; 1 disables
	// forgetting.
	Decay float64

	// Alpha is the pheromone exponent in the city-selection score. Must be ≥ 0.
	Alpha float64

	// Beta is the inverse-distance exponent in the city-selection score.
	// Must be ≥ 0.
	Beta float64

	// InitPheromone is the uniform initial value of every pheromone entry.
	// Must be > 0.
	InitPheromone float64

	// RandomStart selects each ant's starting city: city 0 when false,
	// uniform in [0, n) when true.
	RandomStart bool

	// Workers bounds the number of goroutines constructing tours within one
	// iteration. 0 or 1 means serial. Any value yields identical results:
	// ant RNG streams depend only on (Seed, iteration, ant).
	Workers int

	// Seed feeds every ant's RNG stream. Seed 0 maps to a fixed default,
	// so the default is itself reproducible.
	Seed int64

	// OnImprove, when non-nil, is invoked synchronously each time the
	// global best tour improves, with the current iteration (0-based) and
	// a copy of the new best. Must not block; it runs inside the search loop.
	OnImprove func(iteration int, best Tour)
}

// Default engine parameters. Decay, Alpha and Beta follow the canonical
// four-city reference setup; ants and iterations are sized for small
// explicit instances.
const (
	DefaultAnts          = 10
	DefaultIterations    = 100
	DefaultDecay         = 0.5
	DefaultAlpha         = 1.0
	DefaultBeta          = 1.0
	DefaultInitPheromone = 0.5
)

// DefaultOptions returns a ready-to-use parameter set: 10 ants, 100
// iterations, decay 0.5, alpha = beta = 1, uniform pheromone 0.5, fixed
// start city, serial construction, deterministic default seed.
func DefaultOptions() Options {
	return Options{
		Ants:          DefaultAnts,
		Iterations:    DefaultIterations,
		Decay:         DefaultDecay,
		Alpha:         DefaultAlpha,
		Beta:          DefaultBeta,
		InitPheromone: DefaultInitPheromone,
	}
}

// validateOptions checks internal consistency of Options without touching
// any matrix. Complexity: O(1).
func validateOptions(o Options) error {
	if o.Ants < 1 {
		return ErrBadOptions
	}
	if o.Iterations < 1 {
		return ErrBadOptions
	}
	// Decay outside (0,1] would either freeze or amplify pheromone and break
	// the non-negativity/forgetting invariants.
	if !(o.Decay > 0 && o.Decay <= 1) {
		return ErrBadOptions
	}
	// Negative exponents invert the bias; NaN never compares true.
	if !(o.Alpha >= 0) || !(o.Beta >= 0) {
		return ErrBadOptions
	}
	if !(o.InitPheromone > 0) {
		return ErrBadOptions
	}
	if o.Workers < 0 {
		return ErrBadOptions
	}

	return nil
}
