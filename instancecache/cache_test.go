package instancecache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chelleccarlyle/usdinstance/instancekey"
	"github.com/chelleccarlyle/usdinstance/internal/config"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

func p(s string) sdfpath.Path { return sdfpath.New(s) }

// fakePrimIndex is the test double standing in for the composition engine's
// PrimIndex; it carries exactly the three fields the cache ever reads.
type fakePrimIndex struct {
	path         sdfpath.Path
	instanceable bool
	key          instancekey.Key
}

func instanceable(path string, key string) fakePrimIndex {
	return fakePrimIndex{path: p(path), instanceable: true, key: instancekey.New(key)}
}

func (f fakePrimIndex) Path() sdfpath.Path           { return f.path }
func (f fakePrimIndex) IsInstanceable() bool         { return f.instanceable }
func (f fakePrimIndex) InstanceKey() instancekey.Key { return f.key }

func newTestCache(deterministic bool) *Cache {
	return NewWithConfigFunc(func() config.Config {
		return config.Config{DeterministicMasterAssignment: deterministic}
	})
}

// assertInvariants walks every index map and checks the four bidirectional
// consistency invariants the core spec requires to hold outside
// ProcessChanges: keyToMaster/masterToKey agree, every master has a
// non-empty, sorted, deduplicated instance set, indexToMaster agrees with
// masterToIndexes, and every master's source prim index is itself one of
// its own instances.
func assertInvariants(t *testing.T, c *Cache) {
	t.Helper()

	require.Equal(t, len(c.keyToMaster), len(c.masterToKey), "keyToMaster/masterToKey size mismatch")
	for key, master := range c.keyToMaster {
		gotKey, ok := c.masterToKey[master]
		require.True(t, ok, "master %s missing from masterToKey", master)
		require.Equal(t, key, gotKey)

		indexes, ok := c.masterToIndexes[master]
		require.True(t, ok, "master %s missing from masterToIndexes", master)
		require.NotEmpty(t, indexes, "master %s has no instances", master)
		for i := 1; i < len(indexes); i++ {
			require.True(t, indexes[i-1] < indexes[i], "masterToIndexes[%s] not strictly sorted", master)
		}

		source, ok := c.masterToSourceIndex[master]
		require.True(t, ok, "master %s has no source prim index", master)

		found := false
		for _, idx := range indexes {
			m, ok := c.indexToMaster.Get(idx)
			require.True(t, ok, "indexToMaster missing entry for %s", idx)
			require.Equal(t, master, m)
			if idx == source {
				found = true
			}
		}
		require.True(t, found, "master %s's source %s is not among its own instances", master, source)

		m, ok := c.sourceIndexToMaster[source]
		require.True(t, ok)
		require.Equal(t, master, m)
	}

	require.Equal(t, 0, len(c.pendingAdded), "pending buffers must be empty outside ProcessChanges")
	require.Equal(t, 0, len(c.pendingRemoved), "pending buffers must be empty outside ProcessChanges")
}

func TestCache_New_IsEmpty(t *testing.T) {
	c := New()
	require.Equal(t, 0, c.GetNumMasters())
	require.Empty(t, c.GetAllMasters())
}
