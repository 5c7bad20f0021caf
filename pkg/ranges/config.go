package ranges

import "fmt"

// Defaults used by the randranges command.
const (
	DefaultNumRanges      = 10
	DefaultRNG            = int64(1) << 32
	DefaultTotalAddresses = 1000
)

// Config controls how ranges are sampled.
type Config struct {
	// NumRanges is the number of ranges to produce.
	NumRanges int `json:"num_ranges"`
	// RNG is the exclusive upper bound for sampled starts and raw lengths.
	RNG int64 `json:"rng"`
	// TotalAddresses is the target sum of all cardinalities.
	TotalAddresses int64 `json:"total_addresses"`
}

// DefaultConfig returns the config used when no flags are given.
func DefaultConfig() Config {
	return Config{
		NumRanges:      DefaultNumRanges,
		RNG:            DefaultRNG,
		TotalAddresses: DefaultTotalAddresses,
	}
}

func (c Config) Validate() error {
	switch {
	case c.NumRanges <= 0:
		return fmt.Errorf("%w: num ranges must be positive, got %d", ErrInvalidConfig, c.NumRanges)
	case c.RNG <= 0:
		return fmt.Errorf("%w: rng must be positive, got %d", ErrInvalidConfig, c.RNG)
	case c.TotalAddresses < 0:
		return fmt.Errorf("%w: total addresses must not be negative, got %d", ErrInvalidConfig, c.TotalAddresses)
	}
	return nil
}
