package checks

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora/v3"
)

// Reporter prints the one-line-per-check output: green ✓ for pass, red ✗
// for fail, yellow ⚠ for advisory. It doesn't accumulate anything -
// checks collect their own failure bits and the driver merges them.
type Reporter struct {
	au  aurora.Aurora
	out io.Writer
}

func NewReporter(au aurora.Aurora, out io.Writer) *Reporter {
	return &Reporter{au: au, out: out}
}

// Status prints a ✓ or ✗ line and returns true iff the check failed.
func (r *Reporter) Status(ok bool, msg string) bool {
	if ok {
		fmt.Fprintf(r.out, "%s %s\n", r.au.Green("✓"), r.au.Green(msg))
	} else {
		fmt.Fprintf(r.out, "%s %s\n", r.au.Red("✗"), r.au.Red(msg))
	}
	return !ok
}

// Fail returns bit if the Status line reported a failure, else 0.
func (r *Reporter) Fail(ok bool, bit int, msg string) int {
	if r.Status(ok, msg) {
		return bit
	}
	return 0
}

func (r *Reporter) Warn(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", r.au.Yellow("⚠"), r.au.Yellow(msg))
}

func (r *Reporter) Info(msg string) {
	fmt.Fprintf(r.out, "%s\n", msg)
}

func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) Section(title string) {
	fmt.Fprintf(r.out, "\n===== %s =====\n", title)
}

// Passed prints the distinguished self-tests-passed confirmation; the
// integration harness greps for this exact line.
func (r *Reporter) Passed(msg string) {
	fmt.Fprintf(r.out, "%s\n", r.au.Green("✔ "+msg))
}
