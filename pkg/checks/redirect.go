package checks

import (
	"fmt"

	"github.com/mt-inside/blog-check/pkg/parser"
	"github.com/mt-inside/blog-check/pkg/state"
)

// RedirectCheck validates the apex 301 to the secure www URL. It only
// means anything in Blogger mode: registrar forwarding redirects outside
// our visibility, and an invalid apex has no redirect to inspect - both
// skip silently. The captured header lines are returned for the debug
// dump regardless of outcome.
func RedirectCheck(r *Reporter, web Web, d *state.CheckData, mode state.RootMode) ([]string, int) {
	if mode != state.RootBlogger {
		return nil, 0
	}

	headers := web.Headers("https://" + d.CustomDomain)

	status := parser.StatusCode(headers)
	location := parser.Location(headers)
	want := fmt.Sprintf("https://%s/", d.WwwHost())

	ok := status == "301" && location == want
	flags := r.Fail(ok, state.FailRedirect, "HTTP 301 → www")
	if !ok {
		r.Infof("  got status %q, Location %q — want 301 → %s", status, location, want)
	}

	return headers, flags
}
