package checks

// Narrow views of the probe adapters, one per external capability, so
// every check can be driven by fakes without touching the network.

// Resolver is a single-shot DNS lookup with optional server override
// (empty server means the system default). A nil/empty answer covers
// both NXDOMAIN and lookup failure.
type Resolver interface {
	Lookup(name string, rrtype uint16, server string) []string
	ValidateDNSSEC(name string) error
}

// Pinger sends one ICMP echo and says whether a reply came back in time.
type Pinger interface {
	Ping(addr string) bool
}

// Web fetches a URL for its status code as text ("" on transport
// failure), or for its raw response header lines (status line first).
type Web interface {
	Status(url string) string
	Headers(url string) []string
}

// ToolRunner runs optional external diagnostics, streaming their output
// through.
type ToolRunner interface {
	Have(name string) bool
	Passthrough(name string, args ...string)
}
