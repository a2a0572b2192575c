// Package instancekey provides the opaque instancing-equivalence-class
// identifier the distilled spec calls the instance key: an equatable,
// hashable value such that two prim indexes share a key iff they would
// compose identically.
//
// The composition engine that decides *what* makes two prim indexes
// equivalent is out of scope for this module (see the core spec, §1); this
// package only gives that opaque value a concrete, comparable Go shape, the
// same way the teacher's index packages turn arbitrary names into
// comparable map keys via FNV hashing (hive/index/numeric_index.go).
package instancekey

// FNV-1a 64-bit constants, used the same way the teacher's numeric index
// hashes registry names into compact comparable keys.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// Key is an opaque, comparable instancing fingerprint. Two Keys compare
// equal iff they were built from identical fingerprint strings.
type Key struct {
	fingerprint string
	hash        uint64
}

// New builds a Key from a caller-supplied fingerprint string. The
// fingerprint is expected to canonically encode whatever composition
// inputs determine instancing equivalence (layer stack, variant selection,
// payload arcs, and so on) for the prim index it was derived from; this
// package treats it as an opaque byte string.
func New(fingerprint string) Key {
	return Key{fingerprint: fingerprint, hash: fnv64a(fingerprint)}
}

// String returns the key's fingerprint, primarily for logging and tests.
func (k Key) String() string {
	return k.fingerprint
}

// Hash returns the key's precomputed stable hash.
func (k Key) Hash() uint64 {
	return k.hash
}

// IsEmpty reports whether k is the zero Key.
func (k Key) IsEmpty() bool {
	return k == Key{}
}

func fnv64a(s string) uint64 {
	h := fnvOffset64
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}
