package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sardorm/fruitbook/renderer"
)

type contactsCmd struct {
	suppliers bool
	customers bool
}

func (*contactsCmd) Name() string     { return "contacts" }
func (*contactsCmd) Synopsis() string { return "list known suppliers and customers" }
func (*contactsCmd) Usage() string {
	return `meva contacts [-suppliers] [-customers]

  Lists the contact books, in the order parties first traded. Each record
  carries the latest phone number and the time of the last trade. With no
  flags both books are shown.
`
}

func (p *contactsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.suppliers, "suppliers", false, "Show only the supplier book.")
	f.BoolVar(&p.customers, "customers", false, "Show only the customer book.")
}

func (p *contactsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	both := p.suppliers == p.customers
	if p.suppliers || both {
		printMarkdown(renderer.ContactsMarkdown("Suppliers", ledger.Suppliers()))
	}
	if p.customers || both {
		printMarkdown(renderer.ContactsMarkdown("Customers", ledger.Customers()))
	}
	return subcommands.ExitSuccess
}
