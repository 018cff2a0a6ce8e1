package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sardorm/fruitbook"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx fruitbook.Transaction) string {
	switch v := tx.(type) {
	case fruitbook.Purchase:
		return fmt.Sprintf("Bought %s kg of %s from %s for %s", v.Quantity, v.ProductName, v.Supplier, v.Total)
	case fruitbook.Sale:
		return fmt.Sprintf("Sold %s kg of %s to %s for %s (profit %s)", v.Quantity, v.ProductName, v.Customer, v.Total, v.Profit.SignedString())
	default:
		return string(tx.What())
	}
}

// party returns the counterparty of a trade: the supplier for a purchase,
// the customer for a sale.
func party(tx fruitbook.Transaction) string {
	switch v := tx.(type) {
	case fruitbook.Purchase:
		return v.Supplier
	case fruitbook.Sale:
		return v.Customer
	default:
		return ""
	}
}

// amounts extracts the quantity, unit price and total of a trade as strings.
func amounts(tx fruitbook.Transaction) (qty, price, total string) {
	switch v := tx.(type) {
	case fruitbook.Purchase:
		return v.Quantity.String(), v.Price.String(), v.Total.String()
	case fruitbook.Sale:
		return v.Quantity.String(), v.Price.String(), v.Total.String()
	default:
		return "", "", ""
	}
}

const displayTime = "2006-01-02 15:04"

// TransactionsMarkdown renders a list of trades as a markdown table.
func TransactionsMarkdown(title string, txs []fruitbook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Type", "Product", "Quantity (kg)", "Price", "Total", "Party"},
	}
	for _, tx := range txs {
		qty, price, total := amounts(tx)
		table.Rows = append(table.Rows, []string{
			tx.When().Format(displayTime),
			string(tx.What()),
			tx.Product(),
			qty,
			price,
			total,
			party(tx),
		})
	}
	doc.Table(table)

	return doc.String()
}
