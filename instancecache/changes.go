package instancecache

import "github.com/chelleccarlyle/usdinstance/sdfpath"

// Changes is the output of a single ProcessChanges call: the new, changed,
// and dead masters produced by reconciling one batch of pending
// registrations and unregistrations. The zero value is ready to use; pass
// the same *Changes to successive ProcessChanges calls only after resetting
// it (e.g. by taking a fresh Changes{}), since ProcessChanges only appends.
type Changes struct {
	// NewMasterPrims holds the masters created during this pass, in the
	// order they were created.
	NewMasterPrims []sdfpath.Path

	// NewMasterPrimIndexes holds, index-for-index with NewMasterPrims,
	// the prim index chosen as each new master's source.
	NewMasterPrimIndexes []sdfpath.Path

	// ChangedMasterPrims holds masters whose source prim index was
	// reassigned during this pass (including masters revived in the
	// same batch they lost their last instance).
	ChangedMasterPrims []sdfpath.Path

	// ChangedMasterPrimIndexes holds, index-for-index with
	// ChangedMasterPrims, each master's newly assigned source.
	ChangedMasterPrimIndexes []sdfpath.Path

	// DeadMasterPrims holds masters released because their instance
	// set became empty and no pending addition revived them.
	DeadMasterPrims []sdfpath.Path
}

// IsEmpty reports whether this pass produced no observable change.
func (c *Changes) IsEmpty() bool {
	return len(c.NewMasterPrims) == 0 &&
		len(c.ChangedMasterPrims) == 0 &&
		len(c.DeadMasterPrims) == 0
}

func (c *Changes) addNewMaster(master, source sdfpath.Path) {
	c.NewMasterPrims = append(c.NewMasterPrims, master)
	c.NewMasterPrimIndexes = append(c.NewMasterPrimIndexes, source)
}

func (c *Changes) addChangedMaster(master, source sdfpath.Path) {
	c.ChangedMasterPrims = append(c.ChangedMasterPrims, master)
	c.ChangedMasterPrimIndexes = append(c.ChangedMasterPrimIndexes, source)
}

func (c *Changes) addDeadMaster(master sdfpath.Path) {
	c.DeadMasterPrims = append(c.DeadMasterPrims, master)
}
