package checks

import (
	"github.com/mt-inside/blog-check/pkg/state"
)

// Advanced runs the optional deep diagnostics: a short traceroute and a
// subfinder enumeration, each only when installed - missing tools are
// skipped without comment. Output streams straight through and nothing
// here touches the exit status.
func Advanced(r *Reporter, tools ToolRunner, d *state.CheckData) {
	if tools.Have("traceroute") {
		r.Section("ADVANCED: Traceroute")
		tools.Passthrough("traceroute", "-m4", d.CustomDomain)
	}

	if tools.Have("subfinder") {
		r.Section("ADVANCED: Subdomain Enumeration")
		tools.Passthrough("subfinder", "-silent", "-d", d.CustomDomain)
	}
}
