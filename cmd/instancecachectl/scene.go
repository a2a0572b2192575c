package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chelleccarlyle/usdinstance/instancecache"
	"github.com/chelleccarlyle/usdinstance/instancekey"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// scenePrim is the on-disk JSON shape for one entry in a scene description
// file: the input this CLI feeds to the cache in place of a real
// composition engine.
type scenePrim struct {
	Path         string `json:"path"`
	Instanceable bool   `json:"instanceable"`
	Key          string `json:"key,omitempty"`
}

// sceneDescription is the JSON document accepted by "register" and "dump":
// a flat list of prim indexes, each carrying the instance key its (absent)
// composition engine would have computed.
type sceneDescription struct {
	Prims []scenePrim `json:"prims"`
}

// primIndex adapts a decoded scenePrim to instancecache.PrimIndex.
type primIndex struct {
	path         sdfpath.Path
	instanceable bool
	key          instancekey.Key
}

func (p primIndex) Path() sdfpath.Path           { return p.path }
func (p primIndex) IsInstanceable() bool         { return p.instanceable }
func (p primIndex) InstanceKey() instancekey.Key { return p.key }

// loadScene decodes a scene description document from r.
func loadScene(r io.Reader) ([]primIndex, error) {
	var doc sceneDescription
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scene description: %w", err)
	}

	out := make([]primIndex, 0, len(doc.Prims))
	for _, sp := range doc.Prims {
		if sp.Path == "" {
			return nil, fmt.Errorf("scene description entry with empty path")
		}
		pi := primIndex{path: sdfpath.New(sp.Path), instanceable: sp.Instanceable}
		if sp.Instanceable {
			if sp.Key == "" {
				return nil, fmt.Errorf("instanceable prim %s has no instance key", sp.Path)
			}
			pi.key = instancekey.New(sp.Key)
		}
		out = append(out, pi)
	}
	return out, nil
}

// registerScene feeds every instanceable prim in prims to c in path order,
// matching the order a real composition walk would register them.
func registerScene(c *instancecache.Cache, prims []primIndex) (registered int) {
	for _, pi := range prims {
		if !pi.IsInstanceable() {
			continue
		}
		c.RegisterInstancePrimIndex(pi)
		registered++
	}
	return registered
}
