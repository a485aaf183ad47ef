package state

// Exit-status bits. Each stage that can fail owns one, so the overall
// exit code says which stages went wrong, not just that something did.
// Warnings never set a bit.
const (
	FailSelfTest = 1 << iota
	FailAudit
	FailRoot
	FailRedirect
	FailHTTPS
)

// RootMode classifies the apex domain's A records. Exactly one of these
// comes back from the root check; the redirect check keys off it.
type RootMode int

const (
	// RootBlogger - apex carries all four Blogger A records; Blogger
	// serves the 301 to www itself.
	RootBlogger RootMode = iota
	// RootRegistrar - apex carries registrar DNS-forwarding addresses;
	// the redirect happens outside anything we can usefully probe.
	RootRegistrar
	// RootInvalid - anything else, including a proper subset of either
	// address list.
	RootInvalid
)

func (m RootMode) String() string {
	switch m {
	case RootBlogger:
		return "blogger"
	case RootRegistrar:
		return "registrar-forwarding"
	default:
		return "invalid"
	}
}

// RunData is everything a run accumulates: the exit-status bits, and the
// outputs earlier stages hand to later ones. Execution is strictly
// sequential so there's one writer at a time by construction.
type RunData struct {
	// OR of Fail* bits; becomes the process exit code
	Flags int

	// From nameserver sanity, consumed by the propagation audit
	Nameservers []string

	// From the root A-record check, consumed by the redirect check
	RootMode RootMode

	// Raw header lines captured by the redirect check, re-shown by the
	// debug dump. Empty if that check never ran.
	LastHeaders []string
}

func NewRunData() *RunData {
	return &RunData{RootMode: RootInvalid}
}

// Merge ORs a stage's failure bits into the accumulator. It never clears
// anything; flags only go up.
func (r *RunData) Merge(flags int) {
	r.Flags |= flags
}
