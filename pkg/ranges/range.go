// Package ranges generates random, sorted blocks of integers (simulated IPv4
// address ranges) and reads and writes them in the text formats consumed by
// the lookup benchmark.
package ranges

import "fmt"

// Range is a contiguous block of integers starting at Start.
type Range struct {
	Start       int64 `json:"start"`
	Cardinality int64 `json:"cardinality"`
}

// End returns the first integer after the range.
func (r Range) End() int64 {
	return r.Start + r.Cardinality
}

func (r Range) String() string {
	return fmt.Sprintf("%d, %d", r.Start, r.Cardinality)
}

// Total returns the number of addresses covered by rs, counting overlaps twice.
func Total(rs []Range) int64 {
	var total int64
	for _, r := range rs {
		total += r.Cardinality
	}
	return total
}
