package checks

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"

	"github.com/mt-inside/blog-check/pkg/state"
)

// SelfTest proves the host environment works at all - DNS, ICMP, and the
// HTTPS path to a known-good host - before any domain-specific result is
// trusted. A non-nil return is fatal: the run must stop, because every
// later check would be reporting on a broken environment, not a broken
// domain.
func SelfTest(r *Reporter, res Resolver, ping Pinger, web Web, d *state.CheckData) error {
	r.Section("Self-Test")

	var ip string
	if as := res.Lookup(d.TestHost, dns.TypeA, ""); len(as) > 0 {
		ip = as[0]
	}
	if r.Status(ip != "", fmt.Sprintf("DNS resolves %s → %s", d.TestHost, ip)) {
		r.Status(false, "ping failed")
		return errors.New("DNS resolution failed for known-good host")
	}

	if !ping.Ping(ip) {
		r.Status(false, "ping failed")
		return errors.New("no ICMP reply from known-good host")
	}
	r.Status(true, "ping OK")

	if status := web.Status("https://" + d.TestHost); status != "200" {
		r.Status(false, fmt.Sprintf("HTTPS status %s", status))
		return fmt.Errorf("HTTPS status %q for known-good host", status)
	}
	r.Status(true, "HTTPS OK")

	r.Passed("Self-tests passed")
	return nil
}
