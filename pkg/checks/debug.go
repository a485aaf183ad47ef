package checks

import (
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/mt-inside/blog-check/pkg/state"
)

// Debug re-surfaces the raw material behind the run: the full delegation
// trace for the apex (when dig is around to produce it), whatever
// headers the redirect check captured, and a dump of the accumulated run
// state. Display only; the exit status is already decided.
func Debug(r *Reporter, tools ToolRunner, d *state.CheckData, run *state.RunData) {
	r.Section("DEBUG")

	if tools.Have("dig") {
		tools.Passthrough("dig", "+trace", d.CustomDomain)
	}

	for _, line := range run.LastHeaders {
		r.Info(line)
	}

	r.Info(strings.TrimRight(spew.Sdump(run), "\n"))
}
