package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sardorm/fruitbook"
	"github.com/sardorm/fruitbook/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the business at a glance" }
func (*dashboardCmd) Usage() string {
	return `meva dashboard

  Shows the warehouse value, today's sales and profit, the size of the
  contact books and the most recent trades.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (p *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	dashboard := fruitbook.NewDashboard(ledger, appNow(), time.Local)
	printMarkdown(renderer.DashboardMarkdown(dashboard))
	return subcommands.ExitSuccess
}
