package instancecache

import (
	"github.com/chelleccarlyle/usdinstance/internal/verify"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// RegisterInstancePrimIndex stages index for inclusion in the next
// ProcessChanges pass and reports whether the caller must compose index as
// the source of a brand-new master.
//
// The instance key is computed before any lock is taken, since key
// computation is assumed to be the expensive part of this call; only the
// pending-buffer mutation below is serialized. Likewise, the keyToMaster
// membership check happens before the lock: per the cache's concurrency
// contract, ProcessChanges never runs concurrently with registration, so
// keyToMaster cannot change out from under this read.
func (c *Cache) RegisterInstancePrimIndex(index PrimIndex) bool {
	if !verify.Check(verify.ErrKindPrecondition, index.IsInstanceable(), "RegisterInstancePrimIndex requires an instanceable prim index") {
		return false
	}

	key := index.InstanceKey()
	_, masterAlreadyExists := c.keyToMaster[key]

	c.mu.Lock()
	pending := append(c.pendingAdded[key], index.Path())
	c.pendingAdded[key] = pending
	c.mu.Unlock()

	// A new master must be created for this instance iff one doesn't
	// already exist and this is the first pending addition for key in
	// the current batch.
	return !masterAlreadyExists && len(pending) == 1
}

// UnregisterInstancePrimIndexesUnder marks every currently registered
// instance prim index under prefix for removal in the next ProcessChanges
// pass. Prim indexes registered earlier in the same batch but not yet
// flushed are not visible to this scan; Step R of ProcessChanges resolves
// that case by set-difference against the pending-added list.
func (c *Cache) UnregisterInstancePrimIndexesUnder(prefix sdfpath.Path) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.indexToMaster.VisitPrefix(prefix, func(indexPath, masterPath sdfpath.Path) {
		key, ok := c.masterToKey[masterPath]
		if !verify.Check(verify.ErrKindInvariant, ok, "UnregisterInstancePrimIndexesUnder found indexToMaster entry with no matching master",
			"masterPath", masterPath.String(), "indexPath", indexPath.String()) {
			return
		}
		c.pendingRemoved[key] = append(c.pendingRemoved[key], indexPath)
	})
}
