package verify

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chelleccarlyle/usdinstance/internal/cachelog"
)

func withCapturedLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := cachelog.L
	cachelog.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { cachelog.L = prev })
	return &buf
}

func TestCheck_PassingConditionLogsNothing(t *testing.T) {
	buf := withCapturedLog(t)

	ok := Check(ErrKindInvariant, true, "should never log")

	require.True(t, ok)
	require.Empty(t, buf.String())
}

func TestCheck_FailingConditionLogsAndReturnsFalse(t *testing.T) {
	buf := withCapturedLog(t)

	ok := Check(ErrKindInvariant, false, "masterToIndexes missing entry", "master", "/World/__Master_1")

	require.False(t, ok)
	require.Contains(t, buf.String(), "invariant")
	require.Contains(t, buf.String(), "masterToIndexes missing entry")
	require.Contains(t, buf.String(), "/World/__Master_1")
}

func TestWarnf_AlwaysLogs(t *testing.T) {
	buf := withCapturedLog(t)

	Warnf(ErrKindPrecondition, "requires an absolute path", "path", "relative/path")

	require.Contains(t, buf.String(), "precondition")
	require.Contains(t, buf.String(), "requires an absolute path")
	require.Contains(t, buf.String(), "relative/path")
}

func TestErrKind_String(t *testing.T) {
	require.Equal(t, "precondition", ErrKindPrecondition.String())
	require.Equal(t, "invariant", ErrKindInvariant.String())
	require.Equal(t, "unknown", ErrKind(99).String())
}

func TestError_Error(t *testing.T) {
	err := &Error{Kind: ErrKindInvariant, Msg: "bad state"}
	require.Equal(t, "invariant: bad state", err.Error())
}
