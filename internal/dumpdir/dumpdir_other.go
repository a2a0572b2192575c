//go:build !unix

package dumpdir

import (
	"fmt"
	"os"
)

// Default returns a best-effort per-user scratch directory on platforms
// without a uid, falling back to a fixed name if the environment doesn't
// say who's running.
func Default() string {
	user := os.Getenv("USERNAME")
	if user == "" {
		user = "default"
	}
	return fmt.Sprintf("%s\\instancecachectl-%s", os.TempDir(), user)
}
