package ranges

import (
	"math"
	"math/rand/v2"
	"slices"
)

// NewRand returns the random source used for a given seed. The same seed
// always yields the same ranges.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate samples cfg.NumRanges ranges from r.
//
// Raw lengths are drawn first, then starts. Starts are sorted and rounded up;
// lengths are scaled so that they add up to cfg.TotalAddresses and rounded half
// to even, so the total may be off by at most NumRanges.
func Generate(cfg Config, r *rand.Rand) ([]Range, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limit := float64(cfg.RNG)

	lengths := make([]float64, cfg.NumRanges)
	var sum float64
	for i := range lengths {
		lengths[i] = r.Float64() * limit
		sum += lengths[i]
	}

	starts := make([]float64, cfg.NumRanges)
	for i := range starts {
		starts[i] = r.Float64() * limit
	}
	slices.Sort(starts)

	if sum == 0 {
		return nil, ErrDegenerateLengths
	}
	coeff := float64(cfg.TotalAddresses) / sum

	out := make([]Range, cfg.NumRanges)
	for i := range out {
		out[i] = Range{
			Start:       int64(math.Ceil(starts[i])),
			Cardinality: int64(math.RoundToEven(lengths[i] * coeff)),
		}
	}
	return out, nil
}
