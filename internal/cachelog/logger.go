// Package cachelog gives the instancing cache a package-level structured
// logger, defaulting to a discarding handler so the cache is silent until a
// host process opts in. Grounded on the teacher's
// cmd/hiveexplorer/logger package.
package cachelog

import (
	"io"
	"log/slog"
)

// L is the logger the cache writes debug and warning records to. It starts
// out discarding everything; call SetLogger to attach a real handler.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger, e.g. with one configured by the
// host application.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	L = l
}
