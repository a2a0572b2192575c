package instancecache

import (
	"github.com/chelleccarlyle/usdinstance/internal/verify"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// maxNestedInstanceDepth bounds the nested-instance resolution loops below.
// The core spec's progress argument (each rewrite either terminates or
// strictly decreases the number of non-source ancestor instances between
// cur and the root) guarantees termination well before this is ever hit;
// the bound exists only so a future invariant violation degrades into a
// logged, empty result instead of an infinite loop.
const maxNestedInstanceDepth = 1 << 16

// IsPathMasterOrInMaster reports whether path's root-prim ancestor is a
// master path. It requires an absolute path because there is no way to
// walk up to the root-prim level from a relative one.
func IsPathMasterOrInMaster(path sdfpath.Path) bool {
	if path.IsEmpty() {
		return false
	}
	if !path.IsAbsolute() {
		verify.Warnf(verify.ErrKindPrecondition, "IsPathMasterOrInMaster requires an absolute path", "path", path.String())
		return false
	}
	return hasMasterPrefix(path.RootPrim().Name())
}

// GetMasterUsingPrimIndexAtPath returns the master whose source prim index
// is primIndexPath, or sdfpath.Empty if primIndexPath is not a source.
func (c *Cache) GetMasterUsingPrimIndexAtPath(primIndexPath sdfpath.Path) sdfpath.Path {
	if m, ok := c.sourceIndexToMaster[primIndexPath]; ok {
		return m
	}
	return sdfpath.Empty
}

// GetMasterForPrimIndexAtPath returns the master primIndexPath was
// assigned to, or sdfpath.Empty if primIndexPath is not registered.
func (c *Cache) GetMasterForPrimIndexAtPath(primIndexPath sdfpath.Path) sdfpath.Path {
	if m, ok := c.indexToMaster.Get(primIndexPath); ok {
		return m
	}
	return sdfpath.Empty
}

// IsPrimInMasterForPrimIndexAtPath reports whether some strict ancestor of
// primIndexPath is itself a registered instance prim index, i.e. whether
// primIndexPath names a prim that lives inside some master's sub-tree.
func (c *Cache) IsPrimInMasterForPrimIndexAtPath(primIndexPath sdfpath.Path) bool {
	_, _, ok := c.indexToMaster.FindNearestAncestor(primIndexPath)
	return ok
}

// GetPrimInMasterForPrimIndexAtPath resolves primIndexPath — which may
// never have been composed, if its enclosing instance shares a master with
// an already-composed sibling — to the path it would occupy inside a
// master. It returns sdfpath.Empty if primIndexPath is not inside any
// instance's sub-tree.
//
// Each iteration either finds the enclosing instance is itself the
// master's source (in which case a direct prefix replacement gives the
// answer) or discovers the composed path actually lives under the source,
// not the ancestor we found, and rewrites cur to lie under that source
// before looping. See maxNestedInstanceDepth for the termination
// safeguard.
func (c *Cache) GetPrimInMasterForPrimIndexAtPath(primIndexPath sdfpath.Path) sdfpath.Path {
	cur := primIndexPath
	for i := 0; i < maxNestedInstanceDepth; i++ {
		ancestor, master, ok := c.indexToMaster.FindNearestAncestor(cur)
		if !ok {
			return sdfpath.Empty
		}

		source, hasSource := c.masterToSourceIndex[master]
		if !verify.Check(verify.ErrKindInvariant, hasSource, "master has no assigned source prim index", "master", master.String()) {
			return sdfpath.Empty
		}

		if ancestor == source {
			return cur.ReplacePrefix(ancestor, master)
		}
		cur = cur.ReplacePrefix(ancestor, source)
	}

	verify.Warnf(verify.ErrKindInvariant, "GetPrimInMasterForPrimIndexAtPath exceeded the nested-instance depth bound",
		"path", primIndexPath.String())
	return sdfpath.Empty
}

// IsPrimInMasterUsingPrimIndexAtPath reports whether primIndexPath is used
// by at least one master sub-tree. Because of nested instancing, a prim
// index can be used by zero or more masters; this answers the existence
// question without paying for the full result list.
func (c *Cache) IsPrimInMasterUsingPrimIndexAtPath(primIndexPath sdfpath.Path) bool {
	used, _ := c.primsInMastersUsingPrimIndexAtPath(primIndexPath, false)
	return used
}

// GetPrimsInMastersUsingPrimIndexAtPath returns every path, across every
// master sub-tree that uses primIndexPath, that primIndexPath projects to.
func (c *Cache) GetPrimsInMastersUsingPrimIndexAtPath(primIndexPath sdfpath.Path) []sdfpath.Path {
	_, paths := c.primsInMastersUsingPrimIndexAtPath(primIndexPath, true)
	return paths
}

// primsInMastersUsingPrimIndexAtPath implements §4.3's dual algorithm.
// Unlike GetPrimInMasterForPrimIndexAtPath it climbs from self-or-ancestor
// matches rather than strict ancestors, because primIndexPath itself may be
// the instance whose master(s) we're discovering, and it must never
// consult sourceIndexToMaster directly: doing so would falsely flag
// sibling-instance paths whose indexes were never composed.
func (c *Cache) primsInMastersUsingPrimIndexAtPath(primIndexPath sdfpath.Path, collectAll bool) (bool, []sdfpath.Path) {
	used := false
	var results []sdfpath.Path

	cur := primIndexPath
	for i := 0; i < maxNestedInstanceDepth && cur != sdfpath.Root; i++ {
		ancestor, master, ok := c.indexToMaster.FindNearestSelfOrAncestor(cur)
		if !ok {
			break
		}

		source, hasSource := c.masterToSourceIndex[master]
		if !verify.Check(verify.ErrKindInvariant, hasSource, "master has no assigned source prim index", "master", master.String()) {
			break
		}

		if cur.HasPrefix(source) {
			used = true
			if !collectAll {
				break
			}
			results = append(results, primIndexPath.ReplacePrefix(source, master))
		}

		// A strict-ancestor match means primIndexPath descends from an
		// instanceable prim index, which can only ever belong to one
		// master; stop. A self match means cur is itself an instance,
		// so there may be an outer master nesting it — keep climbing.
		if ancestor != cur {
			break
		}
		cur = ancestor.Parent()
	}

	return used, results
}
