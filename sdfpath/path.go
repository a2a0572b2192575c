// Package sdfpath implements the absolute hierarchical path value type used
// throughout the instancing cache: scene paths of the form "/World/Set_1".
//
// Go has no ecosystem-standard scene-graph path type, so this package plays
// the role the distilled spec assigns to an external "path library"
// collaborator: equality, ordering, parent/prefix/replace operations, and
// name extraction, all on an immutable string-backed value.
package sdfpath

import "strings"

// Path is an absolute, slash-separated hierarchical path. The zero value is
// not a valid path; use Root or New.
type Path string

// Root is the distinguished absolute root path "/".
const Root Path = "/"

// Empty is the empty path, used as the "no result" sentinel returned by
// lookups that found nothing.
const Empty Path = ""

// New normalizes s into a Path. Callers are expected to pass already
// well-formed absolute paths; New does not attempt to repair malformed
// input beyond trimming a trailing slash.
func New(s string) Path {
	if s == "/" || s == "" {
		if s == "" {
			return Empty
		}
		return Root
	}
	return Path(strings.TrimSuffix(s, "/"))
}

// IsEmpty reports whether p is the empty sentinel path.
func (p Path) IsEmpty() bool {
	return p == Empty
}

// IsAbsolute reports whether p begins with "/".
func (p Path) IsAbsolute() bool {
	return len(p) > 0 && p[0] == '/'
}

// String returns the path's textual form.
func (p Path) String() string {
	return string(p)
}

// Parent returns the path's parent. The parent of Root is Root.
func (p Path) Parent() Path {
	s := string(p)
	if p == Root || p == Empty {
		return Root
	}
	idx := strings.LastIndex(s, "/")
	if idx <= 0 {
		return Root
	}
	return Path(s[:idx])
}

// HasPrefix reports whether p is equal to prefix or a descendant of it.
// This is a path-component-aware test: "/World2" does not have prefix
// "/World" even though it does as a raw string.
func (p Path) HasPrefix(prefix Path) bool {
	if prefix == Root {
		return p.IsAbsolute()
	}
	ps, pfx := string(p), string(prefix)
	if ps == pfx {
		return true
	}
	return strings.HasPrefix(ps, pfx+"/")
}

// ReplacePrefix rewrites p by substituting an old prefix with a new one. If
// p does not have old as a prefix, p is returned unchanged.
func (p Path) ReplacePrefix(old, replacement Path) Path {
	if !p.HasPrefix(old) {
		return p
	}
	ps, os := string(p), string(old)
	if ps == os {
		return replacement
	}
	suffix := ps[len(os):] // begins with "/"
	if replacement == Root {
		return Path(suffix)
	}
	return Path(string(replacement) + suffix)
}

// IsRootPrimPath reports whether p is an absolute path with exactly one
// element, e.g. "/World" or "/__Master_1".
func (p Path) IsRootPrimPath() bool {
	s := string(p)
	if len(s) < 2 || s[0] != '/' {
		return false
	}
	return !strings.Contains(s[1:], "/")
}

// AppendChild returns the path of a child named name under p.
func (p Path) AppendChild(name string) Path {
	if p == Root {
		return Path("/" + name)
	}
	return Path(string(p) + "/" + name)
}

// Name returns the final element of p, or "" for Root.
func (p Path) Name() string {
	s := string(p)
	if p == Root || p == Empty {
		return ""
	}
	idx := strings.LastIndex(s, "/")
	return s[idx+1:]
}

// RootPrim walks p up to its root-prim ancestor: the single top-level
// element of its hierarchy (e.g. RootPrim of "/World/Set_1/Prop" is
// "/World").
func (p Path) RootPrim() Path {
	cur := p
	for cur != Root && !cur.IsRootPrimPath() {
		cur = cur.Parent()
	}
	return cur
}

// Less reports whether p sorts before other. Paths are compared as raw
// strings: since '/' sorts below the letters, digits, and underscores used
// in scene-path names, this coincides with component-wise lexicographic
// ordering for the name alphabet this package assumes. Callers that need
// scene paths containing punctuation such as '.' or '-' should not rely on
// this ordering matching component-wise comparison.
func Less(a, b Path) bool {
	return a < b
}
