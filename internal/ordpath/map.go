// Package ordpath provides an ordered map keyed by scene path together with
// a handful of sorted-set helpers for maintaining per-master instance
// lists. The standard library has no ordered map; the teacher's own index
// packages (hive/index) solve a similar "map many names to an offset"
// problem with hash maps because registry lookups never need a range scan.
// This cache does: prefix-based unregistration and nearest-ancestor
// path queries both require ordered traversal, so this package keeps a
// sorted slice and does its lookups with binary search rather than pulling
// in a general-purpose B-tree dependency for what is, in practice, a small
// in-memory index.
package ordpath

import (
	"sort"

	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// Map is an ordered map from sdfpath.Path to sdfpath.Path, sorted by key.
// The zero value is an empty, usable Map.
type Map struct {
	keys []sdfpath.Path
	vals []sdfpath.Path
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return len(m.keys)
}

// Get returns the value stored for key, if any.
func (m *Map) Get(key sdfpath.Path) (sdfpath.Path, bool) {
	i := m.search(key)
	if i < len(m.keys) && m.keys[i] == key {
		return m.vals[i], true
	}
	return sdfpath.Empty, false
}

// Set inserts or overwrites the value stored for key.
func (m *Map) Set(key, val sdfpath.Path) {
	i := m.search(key)
	if i < len(m.keys) && m.keys[i] == key {
		m.vals[i] = val
		return
	}
	m.keys = append(m.keys, sdfpath.Empty)
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = key

	m.vals = append(m.vals, sdfpath.Empty)
	copy(m.vals[i+1:], m.vals[i:])
	m.vals[i] = val
}

// Delete removes key from the map, if present.
func (m *Map) Delete(key sdfpath.Path) {
	i := m.search(key)
	if i >= len(m.keys) || m.keys[i] != key {
		return
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
}

// search returns the index of the first key >= target (lowerBound).
func (m *Map) search(target sdfpath.Path) int {
	return sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= target })
}

// floor returns the index of the largest key <= target, or -1 if none.
func (m *Map) floor(target sdfpath.Path) int {
	i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] > target })
	return i - 1
}

// VisitPrefix calls fn, in ascending key order, for every entry whose key
// has prefix as a path prefix (prefix itself included). This is the
// ordered range scan UnregisterInstancePrimIndexesUnder relies on to find
// every registered instance under a removed subtree.
func (m *Map) VisitPrefix(prefix sdfpath.Path, fn func(key, val sdfpath.Path)) {
	for i := m.search(prefix); i < len(m.keys); i++ {
		if !m.keys[i].HasPrefix(prefix) {
			break
		}
		fn(m.keys[i], m.vals[i])
	}
}

// FindNearestSelfOrAncestor returns the entry for the nearest path in the
// map that is either p itself or a strict ancestor of p, walking from p
// upward toward the root. It returns ok=false if no such entry exists.
//
// A single floor lookup at p is not sufficient: the largest key <= p can
// be a sibling subtree that happens to sort between the true ancestor and
// p, so each candidate is verified with HasPrefix before climbing further.
func (m *Map) FindNearestSelfOrAncestor(p sdfpath.Path) (key, val sdfpath.Path, ok bool) {
	cur := p
	for cur != sdfpath.Root {
		if i := m.floor(cur); i >= 0 && cur.HasPrefix(m.keys[i]) {
			return m.keys[i], m.vals[i], true
		}
		cur = cur.Parent()
	}
	return sdfpath.Empty, sdfpath.Empty, false
}

// FindNearestAncestor is FindNearestSelfOrAncestor restricted to strict
// ancestors of p: an entry exactly at p itself is not returned.
func (m *Map) FindNearestAncestor(p sdfpath.Path) (key, val sdfpath.Path, ok bool) {
	if p == sdfpath.Root {
		return sdfpath.Empty, sdfpath.Empty, false
	}
	return m.FindNearestSelfOrAncestor(p.Parent())
}
