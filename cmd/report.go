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

type reportCmd struct {
	period string
	date   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "summarize trading over a period" }
func (*reportCmd) Usage() string {
	return `meva report [-p all|today|week|month] [-d <date>]

  Summarizes the purchases, sales and profit of a period, followed by the
  trades the period covers. The week period covers the last seven days; the
  month period covers one calendar month back from today.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "all", "Report period (all, today, week, month).")
	f.StringVar(&p.date, "d", "", "Reference day for the period (YYYY-MM-DD, default today).")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := fruitbook.ParseReportPeriod(p.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	asOf := appNow()
	if p.date != "" {
		day, err := fruitbook.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		asOf = day.Time(time.Local)
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := fruitbook.NewSummary(ledger, period, asOf, time.Local)
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
