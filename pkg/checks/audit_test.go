package checks

import (
	"fmt"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"

	"github.com/mt-inside/blog-check/pkg/state"
)

// wireUp populates a resolver with healthy CNAMEs for all three expected
// hosts, fully propagated across the given servers.
func wireUp(res *fakeResolver, d *state.CheckData, servers ...string) {
	for host, target := range map[string]string{
		"www":           d.WwwTarget,
		d.BlogSubdomain: d.BlogspotDomain,
		d.VerifyHost:    d.VerifyTarget,
	} {
		res.set(d.Fqdn(host), dns.TypeCNAME, "", target)
		for _, server := range servers {
			res.set(d.Fqdn(host), dns.TypeCNAME, server, target)
		}
	}
}

func TestAuditAllHealthy(t *testing.T) {
	r, buf := newTestReporter()
	d := testCheckData()
	nsList := []string{"ns-cloud-e1.googledomains.com", "ns-cloud-e2.googledomains.com"}

	res := &fakeResolver{}
	wireUp(res, d, append(nsList, d.Resolvers...)...)

	flags := DNSAudit(r, res, d, nsList)

	require.Zero(t, flags)
	require.Contains(t, buf.String(), "Propagation → public 3/3 | authoritative 2/2")
	require.Contains(t, buf.String(), "✓ Verification CNAME NXDOMAIN on A lookup")
}

func TestAuditMissingCnameFails(t *testing.T) {
	r, buf := newTestReporter()
	d := testCheckData()

	res := &fakeResolver{}
	wireUp(res, d, d.Resolvers...)
	// Knock out the www record everywhere
	res.set(d.WwwHost(), dns.TypeCNAME, "")

	flags := DNSAudit(r, res, d, nil)

	require.Equal(t, state.FailAudit, flags)
	require.Contains(t, buf.String(), "✗ Missing CNAME — expected www→"+d.WwwTarget)
}

// A present A record on the verification token is anomalous but only a
// warning; it must not set any failure bit.
func TestAuditVerificationARecordWarnsOnly(t *testing.T) {
	r, buf := newTestReporter()
	d := testCheckData()

	res := &fakeResolver{}
	wireUp(res, d, d.Resolvers...)
	res.set(d.Fqdn(d.VerifyHost), dns.TypeA, "", "203.0.113.7")

	flags := DNSAudit(r, res, d, nil)

	require.Zero(t, flags)
	require.Contains(t, buf.String(), "⚠ Verification CNAME resolves to A-record")
}

// Partial propagation is informational: non-answering and disagreeing
// resolvers count as non-matching but never flip the failure flag.
func TestAuditPartialPropagationInformational(t *testing.T) {
	r, buf := newTestReporter()
	d := testCheckData()
	nsList := []string{"ns1.example.net"}

	res := &fakeResolver{}
	wireUp(res, d) // local answers only; public + authoritative all come back empty

	flags := DNSAudit(r, res, d, nsList)

	require.Zero(t, flags)
	require.Contains(t, buf.String(), "Propagation → public 0/3 | authoritative 0/1")
}

func TestAuditCountsOnlyExactMatches(t *testing.T) {
	r, buf := newTestReporter()
	d := testCheckData()

	res := &fakeResolver{}
	wireUp(res, d, d.Resolvers...)
	// One public resolver still serves a stale target
	res.set(d.WwwHost(), dns.TypeCNAME, d.Resolvers[1], "stale.example.org")

	flags := DNSAudit(r, res, d, nil)

	require.Zero(t, flags)
	require.Contains(t, buf.String(), "Propagation → public 2/3 | authoritative 0/0")
	require.Contains(t, buf.String(), fmt.Sprintf("%s disagrees", d.Resolvers[1]))
}
