//go:build unix

// Package dumpdir resolves a default, per-user directory for
// "instancecachectl dump" output when the caller doesn't pass --out.
//
// Grounded on hive/dirty's build-tag split between unix and windows syscall
// backends (flush_unix.go / flush_windows.go): rather than pull the
// teacher's raw msync/FlushViewOfFile wiring into a cache that never maps
// any files, we reuse the same platform-conditional compilation shape for
// the one piece of real OS-specific information this CLI needs, a stable
// per-user scratch directory.
package dumpdir

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Default returns "/tmp/instancecachectl-<uid>", unique per user on a
// shared machine without requiring a config file.
func Default() string {
	return fmt.Sprintf("/tmp/instancecachectl-%d", unix.Getuid())
}
