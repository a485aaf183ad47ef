package checks

import (
	"github.com/mt-inside/blog-check/pkg/state"
)

// HTTPSStatus verifies the www host itself, independent of how the apex
// is set up: HTTPS must serve 200, and plain HTTP must 301 over to it.
// The two sub-checks fail independently.
func HTTPSStatus(r *Reporter, web Web, d *state.CheckData) int {
	r.Section("Blogger HTTPS Status")

	flags := r.Fail(web.Status("https://"+d.WwwHost()) == "200", state.FailHTTPS, "HTTPS enabled")
	flags |= r.Fail(web.Status("http://"+d.WwwHost()) == "301", state.FailHTTPS, "HTTP→HTTPS redirect enabled")

	return flags
}
