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

type txCmd struct {
	kind    string
	product string
	date    string
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the recorded transactions" }
func (*txCmd) Usage() string {
	return `meva tx [-type purchase|sale] [-product <name>] [-d <date>] [-head <n>] [-tail <n>]

  Lists transactions in chronological order, with options for filtering and
  limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "type", "", "Show only trades of this kind (purchase or sale).")
	f.StringVar(&p.product, "product", "", "Show only trades of this product.")
	f.StringVar(&p.date, "d", "", "Show only trades on this day (YYYY-MM-DD).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var filters []func(fruitbook.Transaction) bool
	if p.kind != "" {
		kind := fruitbook.CommandType(p.kind)
		if kind != fruitbook.CmdPurchase && kind != fruitbook.CmdSale {
			fmt.Fprintf(os.Stderr, "Error: unknown transaction type %q\n", p.kind)
			return subcommands.ExitUsageError
		}
		filters = append(filters, fruitbook.ByType(kind))
	}
	if p.product != "" {
		filters = append(filters, fruitbook.ByProduct(p.product))
	}
	if p.date != "" {
		day, err := fruitbook.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, fruitbook.OnDay(day, time.Local))
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var transactions []fruitbook.Transaction
	for _, tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown("Transactions", transactions))

	return subcommands.ExitSuccess
}
