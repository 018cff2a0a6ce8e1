package fruitbook

import (
	"fmt"
	"time"
)

// ReportPeriod selects the window of transactions a report covers.
type ReportPeriod int

const (
	// All covers every transaction ever recorded.
	All ReportPeriod = iota
	// PastDay covers the current calendar day.
	PastDay
	// PastWeek covers the seven days up to and including today.
	PastWeek
	// PastMonth covers the calendar month up to and including today.
	PastMonth
)

func (p ReportPeriod) String() string {
	switch p {
	case All:
		return "all"
	case PastDay:
		return "today"
	case PastWeek:
		return "week"
	case PastMonth:
		return "month"
	default:
		return "unknown"
	}
}

// ParseReportPeriod parses a string into a ReportPeriod.
func ParseReportPeriod(s string) (ReportPeriod, error) {
	switch s {
	case "all":
		return All, nil
	case "today":
		return PastDay, nil
	case "week":
		return PastWeek, nil
	case "month":
		return PastMonth, nil
	default:
		return 0, fmt.Errorf("unknown report period: %q", s)
	}
}

// filter returns the transaction filter implementing the period relative to
// the asOf instant in the given location. All returns nil: no filtering.
//
// The month window starts one calendar month before today, using normalizing
// date arithmetic, so on March 31 it starts on March 3 (February 28 plus the
// overflow), not on an invented February 31.
func (p ReportPeriod) filter(asOf time.Time, loc *time.Location) func(Transaction) bool {
	day := DateOf(asOf.In(loc))
	switch p {
	case PastDay:
		return OnDay(day, loc)
	case PastWeek:
		return Since(day.Add(-7).Time(loc))
	case PastMonth:
		return Since(day.AddMonth(-1).Time(loc))
	default:
		return nil
	}
}

// Summary is the aggregate view of one report period: the money that went
// out on purchases, the money that came in on sales, and the profit locked
// in at sale time. It is computed from the ledger and never alters it, so
// running the same report twice yields the same summary.
type Summary struct {
	Period ReportPeriod
	AsOf   time.Time

	TransactionCount int // both kinds of trades together
	PurchaseCount    int
	SaleCount        int
	TotalPurchases   Money
	TotalSales       Money
	TotalProfit      Money

	// Transactions lists the matching trades in chronological order.
	Transactions []Transaction
}

// NewSummary computes the report for a period, as seen at the asOf instant
// in the given location.
func NewSummary(ledger *Ledger, period ReportPeriod, asOf time.Time, loc *time.Location) *Summary {
	s := &Summary{Period: period, AsOf: asOf}

	var filters []func(Transaction) bool
	if f := period.filter(asOf, loc); f != nil {
		filters = append(filters, f)
	}

	for _, tx := range ledger.Transactions(filters...) {
		s.Transactions = append(s.Transactions, tx)
		s.TransactionCount++
		switch v := tx.(type) {
		case Purchase:
			s.PurchaseCount++
			s.TotalPurchases = s.TotalPurchases.Add(v.Total)
		case Sale:
			s.SaleCount++
			s.TotalSales = s.TotalSales.Add(v.Total)
			s.TotalProfit = s.TotalProfit.Add(v.Profit)
		}
	}
	return s
}

// Dashboard is the at-a-glance view of the business: the warehouse value,
// today's trading results and the most recent activity.
type Dashboard struct {
	AsOf time.Time

	WarehouseValue Money // WarehouseValue is the acquisition cost of everything in stock.
	ProductCount   int   // ProductCount is the number of distinct products in stock.
	TodaySales     Money // TodaySales is the revenue from today's sales.
	TodayProfit    Money // TodayProfit is the profit locked in by today's sales.
	SupplierCount  int
	CustomerCount  int

	// Recent lists the latest trades, newest first, capped at ten.
	Recent []Transaction
}

// recentActivityLimit caps the dashboard's activity feed.
const recentActivityLimit = 10

// NewDashboard computes the dashboard for the asOf instant in the given location.
func NewDashboard(ledger *Ledger, asOf time.Time, loc *time.Location) *Dashboard {
	d := &Dashboard{
		AsOf:           asOf,
		WarehouseValue: ledger.Inventory().TotalValue(),
		ProductCount:   ledger.Inventory().Len(),
		SupplierCount:  ledger.Suppliers().Len(),
		CustomerCount:  ledger.Customers().Len(),
	}

	today := OnDay(DateOf(asOf.In(loc)), loc)
	for _, tx := range ledger.Transactions(today, ByType(CmdSale)) {
		sale := tx.(Sale)
		d.TodaySales = d.TodaySales.Add(sale.Total)
		d.TodayProfit = d.TodayProfit.Add(sale.Profit)
	}

	for tx := range ledger.Recent(recentActivityLimit) {
		d.Recent = append(d.Recent, tx)
	}
	return d
}
