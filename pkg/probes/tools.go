package probes

import (
	"context"
	"os"
	"os/exec"
	"time"
)

// Tools wraps the external binaries the checks shell out to: ping for
// the ICMP probe, and the optional passthrough diagnostics (traceroute,
// subfinder, dig +trace). Everything else is done in-process.
type Tools struct{}

func NewTools() *Tools {
	return &Tools{}
}

// Have reports whether the named binary is on PATH.
func (t *Tools) Have(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Ping sends a single ICMP echo with a 1s reply deadline. Raw sockets
// need privileges Go usually won't have, so this stays an external tool.
func (t *Tools) Ping(addr string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", "-c1", "-W1", addr)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

// Passthrough runs the named tool streaming its output straight to the
// terminal. The caller is expected to have checked Have() first; a
// failed run is the tool's business, not ours.
func (t *Tools) Passthrough(name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	_ = cmd.Run()
}
