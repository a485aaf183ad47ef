package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora/v3"
	"github.com/mt-inside/http-log/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mt-inside/blog-check/internal/build"
	"github.com/mt-inside/blog-check/pkg/checks"
	"github.com/mt-inside/blog-check/pkg/probes"
	"github.com/mt-inside/blog-check/pkg/state"
)

func init() {
	spew.Config.DisableMethods = true
	spew.Config.DisablePointerMethods = true
}

func main() {

	cmd := &cobra.Command{
		Use:  build.Name,
		Args: cobra.NoArgs,
		Run:  appMain,
	}

	cmd.Flags().Bool("advanced", false, "Run traceroute (4 hops) & subdomain enumeration (subfinder)")
	cmd.Flags().Bool("debug", false, "Dump raw dig +trace output and full HTTP headers")
	viper.BindPFlag("advanced", cmd.Flags().Lookup("advanced"))
	viper.BindPFlag("debug", cmd.Flags().Lookup("debug"))

	err := cmd.Execute()
	if err != nil {
		fmt.Println("error during execution:", err)
	}
}

func appMain(cmd *cobra.Command, args []string) {

	s := output.NewTtyStyler(aurora.NewAurora(true))
	b := output.NewTtyBios(s)
	r := checks.NewReporter(aurora.NewAurora(true), os.Stdout)

	b.Banner(build.NameAndVersion())

	d := state.NewCheckData()
	run := state.NewRunData()

	web := probes.NewWebClient(d.StatusTimeout, d.HeaderTimeout)
	tools := probes.NewTools()

	dnsClient, err := probes.NewDNSClient()
	if err != nil {
		// Can't even load resolver config; nothing downstream can work
		r.Section("Self-Test")
		r.Status(false, fmt.Sprintf("no usable DNS resolver: %v", err))
		os.Exit(state.FailSelfTest)
	}

	if err := checks.SelfTest(r, dnsClient, tools, web, d); err != nil {
		b.Trace("Aborting", "reason", err.Error())
		run.Merge(state.FailSelfTest)
		os.Exit(run.Flags)
	}

	run.Nameservers = checks.NameserverSanity(r, dnsClient, d)

	run.Merge(checks.DNSAudit(r, dnsClient, d, run.Nameservers))

	mode, flags := checks.RootARecords(r, dnsClient, d)
	run.RootMode = mode
	run.Merge(flags)

	headers, flags := checks.RedirectCheck(r, web, d, mode)
	run.LastHeaders = headers
	run.Merge(flags)

	run.Merge(checks.HTTPSStatus(r, web, d))

	if viper.GetBool("advanced") {
		checks.Advanced(r, tools, d)
	}
	if viper.GetBool("debug") {
		checks.Debug(r, tools, d, run)
	}

	os.Exit(run.Flags)
}
