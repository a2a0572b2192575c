// Package verify implements the cache's invariant-checking hook: a
// boolean-returning assertion that logs on failure and never panics,
// grounded on the teacher's hive/verify package (which validates hive
// structural invariants and is primarily exercised from tests) and on the
// TF_VERIFY idiom the instance cache's original implementation uses
// throughout its map bookkeeping.
package verify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chelleccarlyle/usdinstance/internal/cachelog"
)

// ErrKind classifies the conditions this package can report, grounded on
// the teacher's pkg/types.ErrKind/Error pair. Neither kind is ever
// returned to a cache caller as a Go error: per the core spec's error
// design, both precondition and invariant violations are reported through
// logging and answered with a benign default, never a hard failure.
type ErrKind int

const (
	// ErrKindPrecondition marks a caller-supplied argument that violated
	// a documented precondition, e.g. registering a non-instanceable
	// prim index or querying with a relative path.
	ErrKindPrecondition ErrKind = iota

	// ErrKindInvariant marks an internal map inconsistency caught by a
	// Check call. This indicates a bug in the cache itself, not a
	// recoverable runtime condition; the offending step is skipped and
	// processing continues.
	ErrKindInvariant
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindPrecondition:
		return "precondition"
	case ErrKindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Error is the value Check and Warnf log when a condition fails. It is
// never returned to a caller; it exists so the logged record has a
// stable, programmatically inspectable shape.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Check reports whether ok is true. When it is false, it logs a warning
// with the given message, kind, and structured fields and returns false
// so the caller can treat the failure as a skip-this-entry condition
// rather than an abort.
func Check(kind ErrKind, ok bool, msg string, args ...any) bool {
	if !ok {
		err := &Error{Kind: kind, Msg: msg}
		cachelog.L.Warn(err.Error(), args...)
	}
	return ok
}

// Warnf logs a warning record without asserting a condition, used for
// precondition violations (e.g. a non-instanceable prim index) that return
// a benign default rather than skip an entry.
func Warnf(kind ErrKind, msg string, args ...any) {
	err := &Error{Kind: kind, Msg: msg}
	cachelog.L.Log(context.Background(), slog.LevelWarn, err.Error(), args...)
}
