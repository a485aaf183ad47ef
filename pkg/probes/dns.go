package probes

import (
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/peterzen/goresolver"
)

const resolvConf = "/etc/resolv.conf"

// DNSClient does single-shot record lookups, optionally against a caller
// chosen server. All failure modes (NXDOMAIN, SERVFAIL, timeout, dead
// server) collapse to an empty answer: the checks treat "no answer" and
// "couldn't get an answer" identically, and surfacing the difference
// would just push that collapse into every call site.
type DNSClient struct {
	config *dns.ClientConfig
	client *dns.Client
}

func NewDNSClient() (*DNSClient, error) {
	dnsConfig, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil {
		return nil, err
	}

	return &DNSClient{
		config: dnsConfig,
		client: &dns.Client{
			Dialer: &net.Dialer{Timeout: 5 * time.Second},
		},
	}, nil
}

// Lookup resolves name for the given record type. server overrides the
// resolver (hostname or IP, port 53 assumed); empty means the first
// system resolver from resolv.conf. Answers come back in dig +short
// form: CNAME/NS targets and A addresses as strings, trailing dots
// stripped.
func (c *DNSClient) Lookup(name string, rrtype uint16, server string) []string {
	if server == "" {
		if len(c.config.Servers) == 0 {
			return nil
		}
		server = c.config.Servers[0]
	}

	m := new(dns.Msg)
	// Asks the server to recurse for us. Recursing manually from the
	// roots is a huge amount of work for no gain here.
	m.SetQuestion(dns.Fqdn(name), rrtype)

	in, _, err := c.client.Exchange(m, net.JoinHostPort(strings.TrimSuffix(server, "."), c.config.Port))
	if err != nil {
		return nil
	}

	var answers []string
	for _, ans := range in.Answer {
		switch t := ans.(type) {
		case *dns.A:
			if rrtype == dns.TypeA {
				answers = append(answers, t.A.String())
			}
		case *dns.AAAA:
			if rrtype == dns.TypeAAAA {
				answers = append(answers, t.AAAA.String())
			}
		case *dns.CNAME:
			if rrtype == dns.TypeCNAME {
				answers = append(answers, strings.TrimSuffix(t.Target, "."))
			}
		case *dns.NS:
			if rrtype == dns.TypeNS {
				answers = append(answers, strings.TrimSuffix(t.Ns, "."))
			}
		}
	}

	return answers
}

// ValidateDNSSEC does a full signature-chain validation for name's A
// records. goresolver does the RRSIG/DNSKEY/DS walk properly; recursive
// resolvers are known to *strip* DNSSEC-related records, let alone not
// validate them.
func (c *DNSClient) ValidateDNSSEC(name string) error {
	resolver, err := goresolver.NewResolver(resolvConf)
	if err != nil {
		return err
	}

	_, err = resolver.StrictNSQuery(dns.Fqdn(name), dns.TypeA)
	return err
}
