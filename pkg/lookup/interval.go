package lookup

import "slices"

// Interval is an inclusive block of known addresses.
type Interval struct {
	From uint32
	To   uint32
}

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v uint32) bool {
	return iv.From <= v && v <= iv.To
}

// Intervals collapses addresses into the smallest set of sorted, disjoint
// intervals. The input does not need to be sorted or unique.
func Intervals(addrs []uint32) []Interval {
	if len(addrs) == 0 {
		return nil
	}

	sorted := slices.Clone(addrs)
	slices.Sort(sorted)

	var out []Interval
	cur := Interval{From: sorted[0], To: sorted[0]}
	for _, v := range sorted[1:] {
		switch {
		case v == cur.To:
			// duplicate
		case v == cur.To+1:
			cur.To = v
		default:
			out = append(out, cur)
			cur = Interval{From: v, To: v}
		}
	}
	return append(out, cur)
}
