package sdfpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath_Parent(t *testing.T) {
	require.Equal(t, Root, Root.Parent())
	require.Equal(t, Root, New("/World").Parent())
	require.Equal(t, New("/World"), New("/World/Set_1").Parent())
	require.Equal(t, New("/World/Set_1"), New("/World/Set_1/Prop_1").Parent())
}

func TestPath_HasPrefix(t *testing.T) {
	require.True(t, New("/World").HasPrefix(Root))
	require.True(t, New("/World/Set_1").HasPrefix(New("/World")))
	require.True(t, New("/World").HasPrefix(New("/World")))
	require.False(t, New("/World2").HasPrefix(New("/World")))
	require.False(t, New("/Worldly/Set").HasPrefix(New("/World")))
}

func TestPath_ReplacePrefix(t *testing.T) {
	require.Equal(t,
		New("/__Master_1/Scope"),
		New("/World/Set_1/Scope").ReplacePrefix(New("/World/Set_1"), New("/__Master_1")))

	require.Equal(t,
		New("/__Master_1"),
		New("/World/Set_1").ReplacePrefix(New("/World/Set_1"), New("/__Master_1")))

	// Replacing down to root strips the prefix entirely.
	require.Equal(t,
		New("/Scope"),
		New("/World/Set_1/Scope").ReplacePrefix(New("/World/Set_1"), Root))

	// No-op when prefix doesn't match.
	p := New("/World/Set_2/Scope")
	require.Equal(t, p, p.ReplacePrefix(New("/World/Set_1"), New("/__Master_1")))
}

func TestPath_IsRootPrimPath(t *testing.T) {
	require.True(t, New("/World").IsRootPrimPath())
	require.True(t, New("/__Master_1").IsRootPrimPath())
	require.False(t, New("/World/Set_1").IsRootPrimPath())
	require.False(t, Root.IsRootPrimPath())
}

func TestPath_AppendChild(t *testing.T) {
	require.Equal(t, New("/World"), Root.AppendChild("World"))
	require.Equal(t, New("/World/Set_1"), New("/World").AppendChild("Set_1"))
}

func TestPath_Name(t *testing.T) {
	require.Equal(t, "", Root.Name())
	require.Equal(t, "World", New("/World").Name())
	require.Equal(t, "Set_1", New("/World/Set_1").Name())
}

func TestPath_RootPrim(t *testing.T) {
	require.Equal(t, New("/World"), New("/World/Set_1/Prop_1").RootPrim())
	require.Equal(t, New("/__Master_1"), New("/__Master_1/Scope").RootPrim())
	require.Equal(t, Root, Root.RootPrim())
}

func TestPath_Less(t *testing.T) {
	require.True(t, Less(New("/World/A"), New("/World/B")))
	require.True(t, Less(New("/World/A"), New("/World2")))
	require.False(t, Less(New("/World/A"), New("/World/A")))
}
