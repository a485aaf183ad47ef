package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeOnlyAccumulates(t *testing.T) {
	run := NewRunData()
	require.Zero(t, run.Flags)

	run.Merge(FailAudit)
	run.Merge(0) // a passing stage must not clear anything
	run.Merge(FailHTTPS)

	require.Equal(t, FailAudit|FailHTTPS, run.Flags)
}

func TestRootModeStrings(t *testing.T) {
	require.Equal(t, "blogger", RootBlogger.String())
	require.Equal(t, "registrar-forwarding", RootRegistrar.String())
	require.Equal(t, "invalid", RootInvalid.String())
}

func TestFqdnHelpers(t *testing.T) {
	d := NewCheckData()
	require.Equal(t, "www."+d.CustomDomain, d.WwwHost())
	require.Equal(t, "blog."+d.CustomDomain, d.Fqdn("blog"))
}
