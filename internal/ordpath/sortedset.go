package ordpath

import (
	"sort"

	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// MergeSorted merges the already-sorted, deduplicated slice add into the
// already-sorted, deduplicated slice into, preserving sortedness and
// set semantics (duplicates across the two inputs are collapsed).
//
// Grounded on the sort-then-inplace_merge-then-unique sequence the original
// instance cache uses when folding newly registered indexes into a
// master's existing instance list; Go's slices package gives us the same
// three steps without hand-rolling an in-place merge.
func MergeSorted(into, add []sdfpath.Path) []sdfpath.Path {
	if len(add) == 0 {
		return into
	}
	if len(into) == 0 {
		out := append([]sdfpath.Path(nil), add...)
		return out
	}

	merged := make([]sdfpath.Path, 0, len(into)+len(add))
	merged = append(merged, into...)
	merged = append(merged, add...)
	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })

	return dedupe(merged)
}

// RemoveSorted removes every path in remove from the sorted slice from,
// preserving order, and reports whether each removed path was found.
func RemoveSorted(from []sdfpath.Path, remove sdfpath.Path) []sdfpath.Path {
	i := sort.Search(len(from), func(i int) bool { return from[i] >= remove })
	if i < len(from) && from[i] == remove {
		return append(from[:i], from[i+1:]...)
	}
	return from
}

// SortedDifference returns the elements of a that are not present in b.
// Both a and b must already be sorted. This is the set-difference step
// Step R applies to reconcile a batch's removed/added lists against each
// other before touching the cache's maps.
func SortedDifference(a, b []sdfpath.Path) []sdfpath.Path {
	out := make([]sdfpath.Path, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		out = append(out, a[i])
		i++
	}
	return out
}

// SortUnique returns a sorted, deduplicated copy of paths. paths is not
// modified.
func SortUnique(paths []sdfpath.Path) []sdfpath.Path {
	if len(paths) == 0 {
		return nil
	}
	out := append([]sdfpath.Path(nil), paths...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return dedupe(out)
}

func dedupe(sorted []sdfpath.Path) []sdfpath.Path {
	if len(sorted) == 0 {
		return sorted
	}
	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[n-1] {
			sorted[n] = sorted[i]
			n++
		}
	}
	return sorted[:n]
}
