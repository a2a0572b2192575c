package instancecache

import (
	"github.com/chelleccarlyle/usdinstance/instancekey"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// PrimIndex is the contract the cache requires from the composition engine
// that produces prim indexes. The engine itself — and the rules that decide
// whether two prim indexes would compose identically — are out of scope for
// this module; the cache only ever retains the path and instance key it
// reads off a PrimIndex at registration time, never the PrimIndex itself.
type PrimIndex interface {
	// Path returns the prim index's absolute scene path.
	Path() sdfpath.Path

	// IsInstanceable reports whether this prim index was declared as a
	// candidate for instance deduplication.
	IsInstanceable() bool

	// InstanceKey returns the opaque fingerprint identifying which
	// instancing equivalence class this prim index belongs to. Its
	// value is undefined when IsInstanceable returns false.
	InstanceKey() instancekey.Key
}
