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

type sellCmd struct {
	product  string
	quantity string
	price    string
	customer string
	phone    string
	vehicle  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record fruit sold to a customer" }
func (*sellCmd) Usage() string {
	return `meva sell -product <name> -q <kg> -p <price> -customer <name> [-phone <phone>] [-vehicle <plate>]

  Records an outgoing trade. The sale is refused if the warehouse does not
  hold enough of the product; otherwise the stock shrinks by the quantity
  sold, the profit is locked in against the current average cost, and the
  customer is remembered in the contact book.

Usage Examples:
# Sell 30 kg of apples at 7000 so'm per kg.
$ meva sell -product Olma -q 30 -p 7000 -customer "Bozor retseptsiya" -phone "+998907654321"

`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.product, "product", "", "Name of the fruit sold.")
	f.StringVar(&p.quantity, "q", "", "Quantity sold, in kilograms.")
	f.StringVar(&p.price, "p", "", "Price per kilogram, in so'm.")
	f.StringVar(&p.customer, "customer", "", "Name of the customer.")
	f.StringVar(&p.phone, "phone", "", "Customer phone number.")
	f.StringVar(&p.vehicle, "vehicle", "", "Plate of the delivery vehicle.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	product := strings.TrimSpace(p.product)
	customer := strings.TrimSpace(p.customer)

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

	tx, err := ledger.RecordSale(fruitbook.NewSale(product, quantity, price, customer, p.phone, p.vehicle))
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
