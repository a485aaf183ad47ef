package checks

import (
	"fmt"

	"github.com/miekg/dns"

	"github.com/mt-inside/blog-check/pkg/state"
)

// RootARecords classifies the apex A records into exactly one of three
// modes. All four Blogger addresses present (extras allowed) means
// Blogger manages the apex and its redirect; all four known forwarding
// addresses means a registrar-side redirect - valid but advisory-worthy;
// anything else, including a partial set of either list, is broken.
func RootARecords(r *Reporter, res Resolver, d *state.CheckData) (state.RootMode, int) {
	r.Section("Root A-record Presence & Forwarding")

	rootIPs := res.Lookup(d.CustomDomain, dns.TypeA, "")

	if containsAll(rootIPs, d.BloggerIPs) {
		r.Status(true, "All Blogger A-records present")
		return state.RootBlogger, 0
	}

	if containsAll(rootIPs, d.ForwardIPs) {
		r.Warn("Registrar DNS-forwarding detected — recommend switching to Blogger A-records")
		r.Status(true, "Registrar DNS-forwarding — redirect handled externally")
		return state.RootRegistrar, 0
	}

	return state.RootInvalid, r.Fail(false, state.FailRoot, fmt.Sprintf("A-record misconfigured — found %v", rootIPs))
}

func containsAll(haystack, needles []string) bool {
	set := make(map[string]bool, len(haystack))
	for _, h := range haystack {
		set[h] = true
	}
	for _, n := range needles {
		if !set[n] {
			return false
		}
	}
	return true
}
