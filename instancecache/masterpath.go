package instancecache

import (
	"strconv"
	"strings"

	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

// masterPathPrefix is the literal name prefix that distinguishes a master
// path's root-prim name from any other prim in the scene.
const masterPathPrefix = "__Master_"

// masterPathAllocator hands out unique, never-reused master paths from a
// monotonically increasing counter. A master path's identity is permanent
// even after the master it names is released.
type masterPathAllocator struct {
	lastIndex uint64
}

// next pre-increments the counter and returns the next master path.
func (a *masterPathAllocator) next() sdfpath.Path {
	a.lastIndex++
	return sdfpath.Path("/" + masterPathPrefix + strconv.FormatUint(a.lastIndex, 10))
}

// hasMasterPrefix reports whether name carries the master root-prim prefix.
func hasMasterPrefix(name string) bool {
	return strings.HasPrefix(name, masterPathPrefix)
}
