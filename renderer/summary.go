package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sardorm/fruitbook"
)

// periodTitles maps each report period to its human heading.
var periodTitles = map[fruitbook.ReportPeriod]string{
	fruitbook.All:       "Report: All Time",
	fruitbook.PastDay:   "Report: Today",
	fruitbook.PastWeek:  "Report: Last 7 Days",
	fruitbook.PastMonth: "Report: Last Month",
}

// SummaryMarkdown renders a period report: the aggregate figures followed by
// the matching trades.
func SummaryMarkdown(s *fruitbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title, ok := periodTitles[s.Period]
	if !ok {
		title = "Report"
	}
	doc.H1(title)

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Trades", fmt.Sprintf("%d", s.TransactionCount)},
			{"Purchases", fmt.Sprintf("%d trades, %s", s.PurchaseCount, s.TotalPurchases)},
			{"Sales", fmt.Sprintf("%d trades, %s", s.SaleCount, s.TotalSales)},
			{"Profit", s.TotalProfit.SignedString()},
		},
	})

	if len(s.Transactions) == 0 {
		doc.PlainText("No transactions in this period.")
		return doc.String()
	}

	doc.H2("Transactions")
	table := md.TableSet{
		Header: []string{"Date", "Type", "Product", "Quantity (kg)", "Total", "Party"},
	}
	for _, tx := range s.Transactions {
		qty, _, total := amounts(tx)
		table.Rows = append(table.Rows, []string{
			tx.When().Format(displayTime),
			string(tx.What()),
			tx.Product(),
			qty,
			total,
			party(tx),
		})
	}
	doc.Table(table)

	return doc.String()
}

// DashboardMarkdown renders the at-a-glance business view.
func DashboardMarkdown(d *fruitbook.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard on %s", d.AsOf.Format("2006-01-02")))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Warehouse value", d.WarehouseValue.String()},
			{"Products in stock", fmt.Sprintf("%d", d.ProductCount)},
			{"Today's sales", d.TodaySales.String()},
			{"Today's profit", d.TodayProfit.SignedString()},
			{"Suppliers", fmt.Sprintf("%d", d.SupplierCount)},
			{"Customers", fmt.Sprintf("%d", d.CustomerCount)},
		},
	})

	doc.H2("Recent Activity")
	if len(d.Recent) == 0 {
		doc.PlainText("No activity yet.")
		return doc.String()
	}
	items := make([]string, 0, len(d.Recent))
	for _, tx := range d.Recent {
		items = append(items, fmt.Sprintf("%s: %s", tx.When().Format(displayTime), Transaction(tx)))
	}
	doc.BulletList(items...)

	return doc.String()
}
