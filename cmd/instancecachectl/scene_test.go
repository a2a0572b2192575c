package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chelleccarlyle/usdinstance/instancecache"
)

func newTestCLICache() *instancecache.Cache {
	return instancecache.NewWithConfigFunc(cacheConfigFunc())
}

func TestLoadScene(t *testing.T) {
	doc := `{"prims": [
		{"path": "/World/A", "instanceable": true, "key": "keyA"},
		{"path": "/World/A/Geom", "instanceable": false}
	]}`

	prims, err := loadScene(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, prims, 2)

	require.True(t, prims[0].IsInstanceable())
	require.Equal(t, "keyA", prims[0].InstanceKey().String())
	require.False(t, prims[1].IsInstanceable())
}

func TestLoadScene_InstanceableWithoutKeyIsAnError(t *testing.T) {
	doc := `{"prims": [{"path": "/World/A", "instanceable": true}]}`
	_, err := loadScene(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadScene_EmptyPathIsAnError(t *testing.T) {
	doc := `{"prims": [{"path": "", "instanceable": false}]}`
	_, err := loadScene(strings.NewReader(doc))
	require.Error(t, err)
}

func TestRegisterScene_SkipsNonInstanceablePrims(t *testing.T) {
	doc := `{"prims": [
		{"path": "/World/A", "instanceable": true, "key": "keyA"},
		{"path": "/World/A/Geom", "instanceable": false},
		{"path": "/World/B", "instanceable": true, "key": "keyA"}
	]}`
	prims, err := loadScene(strings.NewReader(doc))
	require.NoError(t, err)

	c := newTestCLICache()
	n := registerScene(c, prims)
	require.Equal(t, 2, n)
}
