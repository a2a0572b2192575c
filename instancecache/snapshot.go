package instancecache

import (
	"sort"

	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// MasterSnapshot is one master's state as reported by Snapshot.
type MasterSnapshot struct {
	Master    sdfpath.Path   `json:"master"`
	Source    sdfpath.Path   `json:"source"`
	Instances []sdfpath.Path `json:"instances"`
}

// Snapshot is a read-only, JSON-friendly view of every master the cache
// currently tracks, sorted by master path for reproducible output. It
// exists for inspection tools (see cmd/instancecachectl dump) and tests;
// the cache itself never consults it.
type Snapshot struct {
	Masters []MasterSnapshot `json:"masters"`
}

// Snapshot captures the cache's current state. It must not be called
// concurrently with registration or ProcessChanges, per Cache's
// concurrency contract.
func (c *Cache) Snapshot() Snapshot {
	out := Snapshot{Masters: make([]MasterSnapshot, 0, len(c.masterToKey))}
	for master := range c.masterToKey {
		out.Masters = append(out.Masters, MasterSnapshot{
			Master:    master,
			Source:    c.masterToSourceIndex[master],
			Instances: append([]sdfpath.Path(nil), c.masterToIndexes[master]...),
		})
	}
	sort.Slice(out.Masters, func(i, j int) bool { return out.Masters[i].Master < out.Masters[j].Master })
	return out
}
