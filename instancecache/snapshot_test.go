package instancecache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

func TestSnapshot_ReflectsCurrentMasters(t *testing.T) {
	c := New()
	c.RegisterInstancePrimIndex(instanceable("/World/A", "key"))
	c.RegisterInstancePrimIndex(instanceable("/World/B", "key"))

	var changes Changes
	c.ProcessChanges(&changes)
	master := changes.NewMasterPrims[0]

	snap := c.Snapshot()
	require.Len(t, snap.Masters, 1)
	require.Equal(t, master, snap.Masters[0].Master)
	require.Equal(t, p("/World/A"), snap.Masters[0].Source)
	require.ElementsMatch(t, toStrings([]sdfpath.Path{p("/World/A"), p("/World/B")}), toStrings(snap.Masters[0].Instances))
}

func TestSnapshot_EmptyCache(t *testing.T) {
	c := New()
	require.Empty(t, c.Snapshot().Masters)
}

func toStrings(paths []sdfpath.Path) []string {
	out := make([]string, len(paths))
	for i, path := range paths {
		out[i] = path.String()
	}
	return out
}
