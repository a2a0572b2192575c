package instancecache

import (
	"sort"

	"github.com/chelleccarlyle/usdinstance/instancekey"
	"github.com/chelleccarlyle/usdinstance/internal/ordpath"
	"github.com/chelleccarlyle/usdinstance/internal/verify"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// ProcessChanges drains the pending add/remove buffers and reconciles them
// against the index maps in one batched pass: Step R removes unregistered
// instances (reassigning a master's source if its current one was
// removed), Step A assigns newly registered instances to masters
// (creating or reviving them as needed), Step D releases masters left with
// no instances, and Step C clears the pending buffers. out accumulates the
// new, changed, and dead masters this pass produced.
//
// ProcessChanges must not be called concurrently with registration or with
// any query method; see Cache's doc comment.
func (c *Cache) ProcessChanges(out *Changes) {
	cfg := c.cfgFunc()

	c.stepRemove(out)
	c.stepAdd(out, cfg.DeterministicMasterAssignment)
	c.stepDropEmpties(out)
	c.stepClear()
}

// stepRemove is Step R: apply every pending removal, first reconciling it
// against same-batch re-registrations so that an instance unregistered and
// then re-registered in one batch is never actually removed.
func (c *Cache) stepRemove(out *Changes) {
	for key, removed := range c.pendingRemoved {
		if added, ok := c.pendingAdded[key]; ok {
			removed = ordpath.SortedDifference(ordpath.SortUnique(removed), ordpath.SortUnique(added))
		}
		c.removeInstances(key, removed, out)
	}
}

// removeInstances implements §4.2's _RemoveInstances: it erases removed
// instances from the bidirectional index maps and, if the master's source
// prim index was among them, promotes the master's new least instance to
// source. If the master's instance set becomes empty, its release is
// deferred to Step D in case Step A revives it within the same batch.
func (c *Cache) removeInstances(key instancekey.Key, removed []sdfpath.Path, out *Changes) {
	master, ok := c.keyToMaster[key]
	if !ok {
		return
	}

	masterNeedsNewSource := false
	indexes := c.masterToIndexes[master]
	currentSource, hasSource := c.masterToSourceIndex[master]

	for _, p := range removed {
		before := len(indexes)
		indexes = ordpath.RemoveSorted(indexes, p)
		if len(indexes) != before {
			c.indexToMaster.Delete(p)
		}

		if hasSource && currentSource == p {
			delete(c.sourceIndexToMaster, p)
			delete(c.masterToSourceIndex, master)
			masterNeedsNewSource = true
			hasSource = false
		}
	}
	c.masterToIndexes[master] = indexes

	if masterNeedsNewSource && len(indexes) > 0 {
		newSource := indexes[0] // masterToIndexes is kept sorted; the least element wins.
		c.sourceIndexToMaster[newSource] = master
		c.masterToSourceIndex[master] = newSource
		out.addChangedMaster(master, newSource)
	}
	// If indexes is now empty, the master is left dangling on purpose;
	// Step D releases it unless Step A revives it first.
}

// stepAdd is Step A: assign every pending addition to a master, creating
// or reviving masters as needed. deterministic selects between the two
// supported iteration orders documented in the core spec: map order
// (non-deterministic but fast) or an order fixed by each key's minimum
// pending path (deterministic, for repeatable master-path allocation
// across runs given the same registration events).
func (c *Cache) stepAdd(out *Changes, deterministic bool) {
	if !deterministic {
		for key, added := range c.pendingAdded {
			c.createOrUpdateMaster(key, added, out)
		}
		return
	}

	type keyedMin struct {
		min sdfpath.Path
		key instancekey.Key
	}
	ordered := make([]keyedMin, 0, len(c.pendingAdded))
	for key, added := range c.pendingAdded {
		if !verify.Check(verify.ErrKindInvariant, len(added) > 0, "pending-added list is empty", "key", key.String()) {
			continue
		}
		min := added[0]
		for _, p := range added[1:] {
			if p < min {
				min = p
			}
		}
		ordered = append(ordered, keyedMin{min: min, key: key})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].min < ordered[j].min })

	for _, km := range ordered {
		c.createOrUpdateMaster(km.key, c.pendingAdded[km.key], out)
	}
}

// createOrUpdateMaster implements §4.2's _CreateOrUpdateMasterForInstances.
func (c *Cache) createOrUpdateMaster(key instancekey.Key, added []sdfpath.Path, out *Changes) {
	master, exists := c.keyToMaster[key]
	if !exists {
		master = c.allocator.next()
		c.keyToMaster[key] = master
		c.masterToKey[master] = key

		source := added[0]
		c.sourceIndexToMaster[source] = master
		c.masterToSourceIndex[master] = source
		out.addNewMaster(master, source)
	} else if _, hasSource := c.masterToSourceIndex[master]; !hasSource {
		// The master exists but lost its source earlier in this same
		// pass (Step R removed its last instance); this add revives it.
		source := added[0]
		c.sourceIndexToMaster[source] = master
		c.masterToSourceIndex[master] = source
		out.addChangedMaster(master, source)
	}

	for _, p := range added {
		c.indexToMaster.Set(p, master)
	}
	c.masterToIndexes[master] = ordpath.MergeSorted(c.masterToIndexes[master], ordpath.SortUnique(added))
}

// stepDropEmpties is Step D: release any master whose instance set is
// still empty after Step A has had a chance to revive it.
func (c *Cache) stepDropEmpties(out *Changes) {
	for key := range c.pendingRemoved {
		c.removeMasterIfNoInstances(key, out)
	}
}

func (c *Cache) removeMasterIfNoInstances(key instancekey.Key, out *Changes) {
	master, ok := c.keyToMaster[key]
	if !ok {
		return
	}

	indexes, ok := c.masterToIndexes[master]
	if !verify.Check(verify.ErrKindInvariant, ok, "masterToIndexes missing entry for a known master", "master", master.String()) {
		return
	}
	if len(indexes) != 0 {
		return
	}

	// Copy master before erasing either map: reading it back out of an
	// iterator/entry that's being torn down in the same statement is the
	// one sharp edge the original implementation calls out explicitly.
	released := master

	out.addDeadMaster(released)
	delete(c.masterToKey, released)
	delete(c.keyToMaster, key)
	delete(c.masterToIndexes, released)
}

func (c *Cache) stepClear() {
	c.pendingAdded = make(map[instancekey.Key][]sdfpath.Path)
	c.pendingRemoved = make(map[instancekey.Key][]sdfpath.Path)
}
