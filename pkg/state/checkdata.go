package state

import (
	"fmt"
	"time"
)

/* All of these are compiled in deliberately: the tool audits one known
 * domain setup, and the values come straight off the Blogger / Search
 * Console dashboards. A config file would just be another thing to get
 * out of sync with what those dashboards actually say.
 */
const (
	customDomain   = "example.com"
	wwwTarget      = "ghs.google.com"
	blogSubdomain  = "blog"
	blogspotDomain = "example.blogspot.com"
	verifyHost     = "abcd1234"
	verifyTarget   = "gv-xxxxxxx.dv.googlehosted.com"

	testHost = "www.google.com"
)

// CheckData is the read-only input to a run: the domain under audit, the
// targets its records should have, and the resolver/address sets used to
// judge them. Nothing mutates it after construction.
type CheckData struct {
	CustomDomain   string
	WwwTarget      string
	BlogSubdomain  string
	BlogspotDomain string
	VerifyHost     string
	VerifyTarget   string

	// Known-good host for the connectivity self-test
	TestHost string

	// Public recursive resolvers to measure propagation against
	Resolvers []string

	// The four A records Blogger wants on the apex
	BloggerIPs []string
	// The four A records common registrar DNS-forwarding services use
	ForwardIPs []string

	PingTimeout   time.Duration
	HeaderTimeout time.Duration
	StatusTimeout time.Duration
}

func NewCheckData() *CheckData {
	return &CheckData{
		CustomDomain:   customDomain,
		WwwTarget:      wwwTarget,
		BlogSubdomain:  blogSubdomain,
		BlogspotDomain: blogspotDomain,
		VerifyHost:     verifyHost,
		VerifyTarget:   verifyTarget,

		TestHost: testHost,

		Resolvers: []string{"8.8.8.8", "1.1.1.1", "9.9.9.9"},

		BloggerIPs: []string{"216.239.32.21", "216.239.34.21", "216.239.36.21", "216.239.38.21"},
		ForwardIPs: []string{"198.49.23.144", "198.49.23.145", "198.185.159.144", "198.185.159.145"},

		PingTimeout:   1 * time.Second,
		HeaderTimeout: 5 * time.Second,
		StatusTimeout: 10 * time.Second,
	}
}

// Fqdn joins a subdomain label onto the custom domain.
func (d *CheckData) Fqdn(host string) string {
	return fmt.Sprintf("%s.%s", host, d.CustomDomain)
}

func (d *CheckData) WwwHost() string {
	return d.Fqdn("www")
}
