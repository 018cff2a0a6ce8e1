package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sardorm/fruitbook"
	"github.com/sardorm/fruitbook/renderer"
)

type purchaseCmd struct {
	product  string
	quantity string
	price    string
	supplier string
	phone    string
	vehicle  string
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record fruit bought from a supplier" }
func (*purchaseCmd) Usage() string {
	return `meva purchase -product <name> -q <kg> -p <price> -supplier <name> [-phone <phone>] [-vehicle <plate>]

  Records an incoming trade: the fruit is added to the warehouse at its
  purchase cost and the supplier is remembered in the contact book.

Usage Examples:
# Buy 100 kg of apples at 5000 so'm per kg.
$ meva purchase -product Olma -q 100 -p 5000 -supplier "Karimov aka" -phone "+998901234567" -vehicle "01A123BC"

`
}

func (p *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.product, "product", "", "Name of the fruit bought.")
	f.StringVar(&p.quantity, "q", "", "Quantity bought, in kilograms.")
	f.StringVar(&p.price, "p", "", "Price per kilogram, in so'm.")
	f.StringVar(&p.supplier, "supplier", "", "Name of the supplier.")
	f.StringVar(&p.phone, "phone", "", "Supplier phone number.")
	f.StringVar(&p.vehicle, "vehicle", "", "Plate of the delivering vehicle.")
}

func (p *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	product := strings.TrimSpace(p.product)
	supplier := strings.TrimSpace(p.supplier)

	quantity, err := fruitbook.ParseQuantity(p.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := fruitbook.ParseMoney(p.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.RecordPurchase(fruitbook.NewPurchase(product, quantity, price, supplier, p.phone, p.vehicle))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
