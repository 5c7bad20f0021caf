package lookup

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/btree"
)

// SortedMap keeps interval starts in a B-tree and looks up the greatest start
// that is not above the requested address.
type SortedMap struct {
	tree *btree.BTreeG[Interval]
}

func (a *SortedMap) Prepare(known []uint32) {
	a.tree = btree.NewG(32, func(x, y Interval) bool {
		return x.From < y.From
	})
	for _, iv := range Intervals(known) {
		a.tree.ReplaceOrInsert(iv)
	}
}

func (a *SortedMap) Run(requested []uint32) int {
	if a.tree == nil {
		return 0
	}
	found := 0
	for _, v := range requested {
		a.tree.DescendLessOrEqual(Interval{From: v}, func(iv Interval) bool {
			if v <= iv.To {
				found++
			}
			return false
		})
	}
	return found
}

func (a *SortedMap) Signature() string { return "STDMAP" }

// BinarySearch searches a sorted interval slice with sort.Search.
type BinarySearch struct {
	intervals []Interval
}

func (a *BinarySearch) Prepare(known []uint32) {
	a.intervals = Intervals(known)
}

func (a *BinarySearch) Run(requested []uint32) int {
	found := 0
	for _, v := range requested {
		// first interval starting after v
		i := sort.Search(len(a.intervals), func(i int) bool {
			return a.intervals[i].From > v
		})
		if i > 0 && v <= a.intervals[i-1].To {
			found++
		}
	}
	return found
}

func (a *BinarySearch) Signature() string { return "BINSEARCH" }

// FastBinarySearch halves the search window without an early exit, so every
// lookup takes the same number of steps.
type FastBinarySearch struct {
	BinarySearch
}

func (a *FastBinarySearch) Run(requested []uint32) int {
	found := 0
	for _, v := range requested {
		low := a.lowerBound(v)
		hit := low < len(a.intervals) && a.intervals[low].From == v
		if !hit && low > 0 {
			hit = v <= a.intervals[low-1].To
		}
		if hit {
			found++
		}
	}
	return found
}

// lowerBound returns the index of the first interval with From >= v.
func (a *FastBinarySearch) lowerBound(v uint32) int {
	size := len(a.intervals)
	low := 0
	for size > 0 {
		half := size / 2
		otherLow := low + size - half
		probe := a.intervals[low+half]
		size = half
		if probe.From < v {
			low = otherLow
		}
	}
	return low
}

func (a *FastBinarySearch) Signature() string { return "BINSEARCHFAST" }

// HashSet stores every known address in a map.
type HashSet struct {
	set map[uint32]struct{}
}

func (a *HashSet) Prepare(known []uint32) {
	a.set = make(map[uint32]struct{}, len(known))
	for _, v := range known {
		a.set[v] = struct{}{}
	}
}

func (a *HashSet) Run(requested []uint32) int {
	found := 0
	for _, v := range requested {
		if _, ok := a.set[v]; ok {
			found++
		}
	}
	return found
}

func (a *HashSet) Signature() string { return "HASHSET" }

// Visual prints the known addresses and never finds anything. Useful for
// eyeballing an input file.
type Visual struct {
	W io.Writer
}

func (a *Visual) Prepare(known []uint32) {
	for _, v := range known {
		fmt.Fprintln(a.W, v)
	}
}

func (a *Visual) Run([]uint32) int { return 0 }

func (a *Visual) Signature() string { return "VISUAL" }
