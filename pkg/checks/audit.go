package checks

import (
	"fmt"

	"github.com/miekg/dns"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mt-inside/blog-check/pkg/state"
)

// DNSAudit verifies the CNAME wiring for each expected (subdomain,
// target) pair and measures how far the record has propagated: the local
// resolver's answer is re-queried against the public resolvers and the
// authoritative nameservers, counting exact matches. A missing CNAME is
// a failure; partial propagation is reported but doesn't fail the run,
// since it fixes itself with time.
func DNSAudit(r *Reporter, res Resolver, d *state.CheckData, nsList []string) int {
	r.Section("DNS Audit")

	pairs := []struct {
		host     string
		expected string
	}{
		{"www", d.WwwTarget},
		{d.BlogSubdomain, d.BlogspotDomain},
		{d.VerifyHost, d.VerifyTarget},
	}

	flags := 0
	for _, pair := range pairs {
		fqdn := d.Fqdn(pair.host)
		r.Infof("\n── %s ──", fqdn)

		cname := res.Lookup(fqdn, dns.TypeCNAME, "")
		if len(cname) == 0 {
			flags |= r.Fail(false, state.FailAudit, fmt.Sprintf("Missing CNAME — expected %s→%s", pair.host, pair.expected))
			continue
		}
		local := cname[0]
		r.Infof("CNAME → %s", local)

		if pair.host == d.VerifyHost {
			// The verification host is a pure CNAME used only for
			// ownership proof: an empty A answer is the healthy state,
			// a present one is anomalous. Absence = success here.
			if a := res.Lookup(fqdn, dns.TypeA, ""); len(a) > 0 {
				r.Warn("Verification CNAME resolves to A-record — NXDOMAIN expected")
			} else {
				r.Status(true, "Verification CNAME NXDOMAIN on A lookup")
			}
		}

		pub := countMatching(r, res, fqdn, local, d.Resolvers)
		auth := countMatching(r, res, fqdn, local, nsList)
		r.Infof("Propagation → public %d/%d | authoritative %d/%d", pub, len(d.Resolvers), auth, len(nsList))
	}

	return flags
}

// countMatching re-queries the CNAME against each server and counts
// answers identical to the local resolver's first answer. A server that
// answers nothing counts as non-matching; one that answers differently
// gets its answer diffed against ours, which makes typo'd targets jump
// out.
func countMatching(r *Reporter, res Resolver, fqdn, local string, servers []string) int {
	differ := dmp.New()

	n := 0
	for _, server := range servers {
		var got string
		if ans := res.Lookup(fqdn, dns.TypeCNAME, server); len(ans) > 0 {
			got = ans[0]
		}

		if got == local {
			n++
		} else if got != "" {
			diffs := differ.DiffMain(local, got, false)
			r.Infof("  %s disagrees: %s", server, differ.DiffPrettyText(diffs))
		}
	}
	return n
}
