package checks

import (
	"bytes"
	"fmt"

	"github.com/logrusorgru/aurora/v3"

	"github.com/mt-inside/blog-check/pkg/state"
)

// fakeResolver answers from a canned table keyed on (name, rrtype,
// server). Anything not in the table gets an empty answer, same as a
// real NXDOMAIN or lookup failure.
type fakeResolver struct {
	answers   map[string][]string
	dnssecErr error
}

func rkey(name string, rrtype uint16, server string) string {
	return fmt.Sprintf("%s/%d@%s", name, rrtype, server)
}

func (f *fakeResolver) set(name string, rrtype uint16, server string, answers ...string) {
	if f.answers == nil {
		f.answers = map[string][]string{}
	}
	f.answers[rkey(name, rrtype, server)] = answers
}

func (f *fakeResolver) Lookup(name string, rrtype uint16, server string) []string {
	return f.answers[rkey(name, rrtype, server)]
}

func (f *fakeResolver) ValidateDNSSEC(name string) error {
	return f.dnssecErr
}

type fakePinger struct {
	ok     bool
	pinged []string
}

func (f *fakePinger) Ping(addr string) bool {
	f.pinged = append(f.pinged, addr)
	return f.ok
}

// fakeWeb returns canned statuses and header captures per URL.
type fakeWeb struct {
	statuses map[string]string
	headers  map[string][]string
	fetched  []string
}

func (f *fakeWeb) Status(url string) string {
	f.fetched = append(f.fetched, url)
	return f.statuses[url]
}

func (f *fakeWeb) Headers(url string) []string {
	f.fetched = append(f.fetched, url)
	return f.headers[url]
}

type fakeTools struct {
	installed map[string]bool
	ran       [][]string
}

func (f *fakeTools) Have(name string) bool {
	return f.installed[name]
}

func (f *fakeTools) Passthrough(name string, args ...string) {
	f.ran = append(f.ran, append([]string{name}, args...))
}

// newTestReporter gives a Reporter writing plain (uncolored) text into
// the returned buffer, so assertions can match on symbols and messages.
func newTestReporter() (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewReporter(aurora.NewAurora(false), &buf), &buf
}

func testCheckData() *state.CheckData {
	return state.NewCheckData()
}
