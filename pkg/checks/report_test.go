package checks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusSymbols(t *testing.T) {
	r, buf := newTestReporter()

	failed := r.Status(true, "all good")
	require.False(t, failed)
	require.Contains(t, buf.String(), "✓ all good")

	failed = r.Status(false, "all bad")
	require.True(t, failed)
	require.Contains(t, buf.String(), "✗ all bad")
}

func TestFailReturnsBitOnlyOnFailure(t *testing.T) {
	r, _ := newTestReporter()

	require.Equal(t, 0, r.Fail(true, 4, "fine"))
	require.Equal(t, 4, r.Fail(false, 4, "not fine"))
}

func TestWarnNeverLooksLikeFailure(t *testing.T) {
	r, buf := newTestReporter()

	r.Warn("heads up")

	require.Contains(t, buf.String(), "⚠ heads up")
	require.NotContains(t, buf.String(), "✗")
}
