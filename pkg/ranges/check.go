package ranges

// CheckMode selects what a range start is compared against.
type CheckMode int

const (
	// CheckLegacy compares each start with the previous range's cardinality,
	// which is what the existing ips.csv tooling has always done. It misses
	// most real overlaps.
	CheckLegacy CheckMode = iota
	// CheckStrict compares each start with the last address of every earlier
	// range.
	CheckStrict
)

func (m CheckMode) String() string {
	if m == CheckStrict {
		return "strict"
	}
	return "legacy"
}

// Check walks rs in order and returns an *OverlapError for the first range
// that does not start after the bound left by its predecessors.
func Check(rs []Range, mode CheckMode) error {
	var bound int64
	if mode == CheckStrict {
		bound = -1
	}

	for i, r := range rs {
		if r.Start <= bound {
			return &OverlapError{Index: i, Range: r, Bound: bound}
		}
		switch mode {
		case CheckStrict:
			bound = max(bound, r.End()-1)
		default:
			bound = r.Cardinality
		}
	}
	return nil
}
