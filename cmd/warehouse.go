package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sardorm/fruitbook/renderer"
)

type warehouseCmd struct{}

func (*warehouseCmd) Name() string     { return "warehouse" }
func (*warehouseCmd) Synopsis() string { return "show the current stock positions" }
func (*warehouseCmd) Usage() string {
	return `meva warehouse

  Shows every product currently in stock, its quantity, its weighted average
  cost per kilogram and its total acquisition cost.
`
}

func (*warehouseCmd) SetFlags(f *flag.FlagSet) {}

func (p *warehouseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WarehouseMarkdown(ledger.Inventory()))
	return subcommands.ExitSuccess
}
