package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sardorm/fruitbook"
)

// WarehouseMarkdown renders the current stock positions as a markdown table,
// in the order products first entered the warehouse.
func WarehouseMarkdown(inv *fruitbook.Inventory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Warehouse")
	if inv.Len() == 0 {
		doc.PlainText("The warehouse is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Product", "Quantity (kg)", "Avg Cost", "Total Cost"},
	}
	for e := range inv.Entries() {
		table.Rows = append(table.Rows, []string{
			e.ProductName,
			e.Quantity.String(),
			e.AverageCost().String(),
			e.TotalCost.String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total warehouse value: %s", inv.TotalValue()))

	return doc.String()
}
