package ordpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

func p(s string) sdfpath.Path { return sdfpath.New(s) }

func TestMap_GetSetDelete(t *testing.T) {
	var m Map
	m.Set(p("/World/A"), p("/__Master_1"))
	m.Set(p("/World/B"), p("/__Master_1"))

	v, ok := m.Get(p("/World/A"))
	require.True(t, ok)
	require.Equal(t, p("/__Master_1"), v)

	require.Equal(t, 2, m.Len())

	m.Delete(p("/World/A"))
	_, ok = m.Get(p("/World/A"))
	require.False(t, ok)
	require.Equal(t, 1, m.Len())
}

func TestMap_VisitPrefix(t *testing.T) {
	var m Map
	m.Set(p("/World/Set_1"), p("/__Master_1"))
	m.Set(p("/World/Set_1/Prop_1"), p("/__Master_2"))
	m.Set(p("/World/Set_2"), p("/__Master_1"))
	m.Set(p("/World2"), p("/__Master_3"))

	var visited []sdfpath.Path
	m.VisitPrefix(p("/World/Set_1"), func(k, v sdfpath.Path) {
		visited = append(visited, k)
	})

	require.Equal(t, []sdfpath.Path{p("/World/Set_1"), p("/World/Set_1/Prop_1")}, visited)
}

func TestMap_FindNearestSelfOrAncestor_PicksTrueAncestorPastFalsePositive(t *testing.T) {
	var m Map
	// /A/Bx sorts between /A and /A/By/C but is not an ancestor of it.
	m.Set(p("/A"), p("/__Master_root"))
	m.Set(p("/A/Bx"), p("/__Master_sibling"))

	k, v, ok := m.FindNearestSelfOrAncestor(p("/A/By/C"))
	require.True(t, ok)
	require.Equal(t, p("/A"), k)
	require.Equal(t, p("/__Master_root"), v)
}

func TestMap_FindNearestSelfOrAncestor_SelfMatch(t *testing.T) {
	var m Map
	m.Set(p("/World/Set_1"), p("/__Master_1"))

	k, _, ok := m.FindNearestSelfOrAncestor(p("/World/Set_1"))
	require.True(t, ok)
	require.Equal(t, p("/World/Set_1"), k)
}

func TestMap_FindNearestAncestor_ExcludesSelf(t *testing.T) {
	var m Map
	m.Set(p("/World/Set_1"), p("/__Master_1"))

	_, _, ok := m.FindNearestAncestor(p("/World/Set_1"))
	require.False(t, ok)

	k, _, ok := m.FindNearestAncestor(p("/World/Set_1/Prop"))
	require.True(t, ok)
	require.Equal(t, p("/World/Set_1"), k)
}

func TestMap_FindNearestAncestor_NoneAtRoot(t *testing.T) {
	var m Map
	_, _, ok := m.FindNearestAncestor(sdfpath.Root)
	require.False(t, ok)
}
