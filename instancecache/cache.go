// Package instancecache implements an instance-deduplication cache for a
// scene-composition system: it assigns instanceable prim indexes to shared
// "master" sub-trees, reconciles staged registrations in one batched pass,
// and answers path-based navigation queries across the instanced scene.
//
// The cache owns six keyed maps and two pending buffers exclusively; see
// Cache for the concurrency contract between registration, ProcessChanges,
// and the read-only query methods.
package instancecache

import (
	"sync"

	"github.com/chelleccarlyle/usdinstance/instancekey"
	"github.com/chelleccarlyle/usdinstance/internal/config"
	"github.com/chelleccarlyle/usdinstance/internal/ordpath"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// Cache assigns instanceable prim indexes to shared master sub-trees. The
// zero value is not usable; construct one with New or NewWithConfigFunc.
//
// Concurrency: RegisterInstancePrimIndex and UnregisterInstancePrimIndexesUnder
// are safe for concurrent use from many goroutines; they serialize only on
// mu, held for the pending-buffer mutation and (for unregistration) the
// indexToMaster range scan. ProcessChanges and the query methods are not
// safe to call concurrently with registration or with each other — the
// host is responsible for quiescing registration before calling either.
type Cache struct {
	mu sync.Mutex

	cfgFunc func() config.Config

	allocator masterPathAllocator

	// Index maps. Mutated only by ProcessChanges once construction is
	// complete; read freely (without mu) by the query methods under the
	// concurrency contract documented above.
	keyToMaster         map[instancekey.Key]sdfpath.Path
	masterToKey         map[sdfpath.Path]instancekey.Key
	indexToMaster       ordpath.Map
	masterToIndexes     map[sdfpath.Path][]sdfpath.Path // each value kept sorted
	sourceIndexToMaster map[sdfpath.Path]sdfpath.Path
	masterToSourceIndex map[sdfpath.Path]sdfpath.Path

	// Pending buffers, guarded by mu. Always empty outside ProcessChanges.
	pendingAdded   map[instancekey.Key][]sdfpath.Path
	pendingRemoved map[instancekey.Key][]sdfpath.Path
}

// New creates an empty Cache whose deterministic-master-assignment flag is
// read from the environment (see internal/config.FromEnv) once per
// ProcessChanges call.
func New() *Cache {
	return NewWithConfigFunc(config.FromEnv)
}

// NewWithConfigFunc creates an empty Cache whose configuration is read from
// cfgFunc once per ProcessChanges call, rather than from the environment.
// This is the injection point the core spec calls for so tests (and hosts
// with their own configuration system) don't have to mutate process
// environment variables to exercise deterministic assignment.
func NewWithConfigFunc(cfgFunc func() config.Config) *Cache {
	if cfgFunc == nil {
		cfgFunc = config.FromEnv
	}
	return &Cache{
		cfgFunc:             cfgFunc,
		keyToMaster:         make(map[instancekey.Key]sdfpath.Path),
		masterToKey:         make(map[sdfpath.Path]instancekey.Key),
		masterToIndexes:     make(map[sdfpath.Path][]sdfpath.Path),
		sourceIndexToMaster: make(map[sdfpath.Path]sdfpath.Path),
		masterToSourceIndex: make(map[sdfpath.Path]sdfpath.Path),
		pendingAdded:        make(map[instancekey.Key][]sdfpath.Path),
		pendingRemoved:      make(map[instancekey.Key][]sdfpath.Path),
	}
}

// GetAllMasters returns every master currently tracked by the cache, in no
// particular order.
func (c *Cache) GetAllMasters() []sdfpath.Path {
	out := make([]sdfpath.Path, 0, len(c.keyToMaster))
	for _, m := range c.keyToMaster {
		out = append(out, m)
	}
	return out
}

// GetNumMasters returns the number of masters currently tracked.
func (c *Cache) GetNumMasters() int {
	return len(c.masterToKey)
}
