package checks

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/mt-inside/blog-check/pkg/state"
)

// NameserverSanity fetches the apex NS set and flags glue-style
// nameservers - an NS host inside the domain itself means the domain is
// trying to be its own authority without a delegated zone, and nothing
// will resolve. Advisory only; the returned list feeds the propagation
// audit. An empty answer is deliberately not flagged: a transient lookup
// failure shouldn't masquerade as a glue problem.
func NameserverSanity(r *Reporter, res Resolver, d *state.CheckData) []string {
	r.Section("Nameserver Sanity")

	ns := res.Lookup(d.CustomDomain, dns.TypeNS, "")

	glue := false
	for _, n := range ns {
		if strings.HasSuffix(strings.TrimSuffix(n, "."), d.CustomDomain) {
			glue = true
			break
		}
	}

	if glue {
		r.Warn(fmt.Sprintf("Glue-style NS detected: %v", ns))
	} else {
		r.Status(true, "Nameservers correct")
	}

	// Information only - Blogger domains mostly aren't signed, and an
	// unsigned zone is not a misconfiguration.
	if err := res.ValidateDNSSEC(d.CustomDomain); err != nil {
		r.Infof("DNSSEC: not validated (%v)", err)
	} else {
		r.Info("DNSSEC: zone validates")
	}

	return ns
}
