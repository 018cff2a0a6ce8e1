package fruitbook

import (
	"errors"
	"slices"
	"testing"
)

func TestWeightedAverageCost(t *testing.T) {
	l := testLedger()

	mustPurchase(t, l, "Olma", 100, 5000, "Karimov aka")
	e := l.Inventory().entry("Olma")
	if e == nil {
		t.Fatal("expected Olma in the warehouse after the first purchase")
	}
	if !e.Quantity.Equal(KG(100)) {
		t.Errorf("quantity after first purchase = %s, want 100", e.Quantity)
	}
	if !e.TotalCost.Equal(UZS(500000)) {
		t.Errorf("total cost after first purchase = %v, want 500000", e.TotalCost)
	}
	if !e.AverageCost().Equal(UZS(5000)) {
		t.Errorf("average cost after first purchase = %v, want 5000", e.AverageCost())
	}

	// A more expensive batch raises the average.
	mustPurchase(t, l, "Olma", 50, 6000, "Karimov aka")
	e = l.Inventory().entry("Olma")
	if !e.Quantity.Equal(KG(150)) {
		t.Errorf("quantity after second purchase = %s, want 150", e.Quantity)
	}
	if !e.TotalCost.Equal(UZS(800000)) {
		t.Errorf("total cost after second purchase = %v, want 800000", e.TotalCost)
	}
	if !moneyNear(e.AverageCost(), UZS(800000.0/150)) {
		t.Errorf("average cost after second purchase = %v, want 800000/150", e.AverageCost())
	}
}

func TestSaleCostAndProfit(t *testing.T) {
	l := testLedger()
	mustPurchase(t, l, "Olma", 100, 5000, "Karimov aka")
	mustPurchase(t, l, "Olma", 50, 6000, "Karimov aka")

	// 30 kg at the current average of 800000/150 per kg.
	sale := mustSale(t, l, "Olma", 30, 7000, "Chorsu bozori")

	if !sale.Total.Equal(UZS(210000)) {
		t.Errorf("sale total = %v, want 210000", sale.Total)
	}
	if !moneyNear(sale.Cost, UZS(160000)) {
		t.Errorf("sale cost = %v, want 160000", sale.Cost)
	}
	if !moneyNear(sale.Profit, UZS(50000)) {
		t.Errorf("sale profit = %v, want 50000", sale.Profit)
	}

	e := l.Inventory().entry("Olma")
	if !e.Quantity.Equal(KG(120)) {
		t.Errorf("remaining quantity = %s, want 120", e.Quantity)
	}
	if !moneyNear(e.TotalCost, UZS(640000)) {
		t.Errorf("remaining total cost = %v, want 640000", e.TotalCost)
	}
	// The average cost is unchanged by a sale.
	if !moneyNear(e.AverageCost(), UZS(800000.0/150)) {
		t.Errorf("average cost after sale = %v, want 800000/150", e.AverageCost())
	}
}

func TestSaleProfitIsLockedIn(t *testing.T) {
	l := testLedger()
	mustPurchase(t, l, "Anor", 100, 10000, "Rustam aka")
	sale := mustSale(t, l, "Anor", 50, 15000, "Chorsu bozori")

	// A later, much more expensive purchase must not change the recorded profit.
	mustPurchase(t, l, "Anor", 100, 20000, "Rustam aka")

	recorded := l.Get(sale.Id)
	if recorded == nil {
		t.Fatal("recorded sale not found by id")
	}
	if got := recorded.(Sale).Profit; !got.Equal(UZS(250000)) {
		t.Errorf("profit after later purchase = %v, want 250000", got)
	}
}

func TestSaleDrainsPosition(t *testing.T) {
	l := testLedger()
	mustPurchase(t, l, "Uzum", 50, 8000, "Karimov aka")
	mustSale(t, l, "Uzum", 50, 9000, "Chorsu bozori")

	if e := l.Inventory().entry("Uzum"); e != nil {
		t.Errorf("expected Uzum to leave the warehouse, still have %s kg", e.Quantity)
	}
	if l.Inventory().Len() != 0 {
		t.Errorf("warehouse size = %d, want 0", l.Inventory().Len())
	}

	// Buying again opens a fresh position at the new price.
	mustPurchase(t, l, "Uzum", 20, 12000, "Karimov aka")
	e := l.Inventory().entry("Uzum")
	if e == nil {
		t.Fatal("expected a fresh Uzum position")
	}
	if !e.AverageCost().Equal(UZS(12000)) {
		t.Errorf("fresh average cost = %v, want 12000", e.AverageCost())
	}
}

func TestInsufficientStock(t *testing.T) {
	l := testLedger()
	mustPurchase(t, l, "Olma", 10, 5000, "Karimov aka")

	_, err := l.RecordSale(NewSale("Olma", KG(20), UZS(7000), "Chorsu bozori", "", ""))
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected an InsufficientStockError, got %v", err)
	}
	if !stockErr.Requested.Equal(KG(20)) || !stockErr.Available.Equal(KG(10)) {
		t.Errorf("error reports %s requested, %s available; want 20 and 10", stockErr.Requested, stockErr.Available)
	}

	// The refused sale must leave the books untouched.
	if l.Len() != 1 {
		t.Errorf("ledger length after refused sale = %d, want 1", l.Len())
	}
	if got := l.AvailableQuantity("Olma"); !got.Equal(KG(10)) {
		t.Errorf("stock after refused sale = %s, want 10", got)
	}
	if l.Customers().Len() != 0 {
		t.Errorf("customer book after refused sale has %d records, want 0", l.Customers().Len())
	}
}

func TestSellingUnknownProduct(t *testing.T) {
	l := testLedger()
	_, err := l.RecordSale(NewSale("Gilos", KG(1), UZS(30000), "Chorsu bozori", "", ""))
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected an InsufficientStockError, got %v", err)
	}
	if !stockErr.Available.IsZero() {
		t.Errorf("available stock of an unknown product = %s, want 0", stockErr.Available)
	}
}

func TestWarehouseInsertionOrder(t *testing.T) {
	l := testLedger()
	mustPurchase(t, l, "Nok", 10, 6000, "Karimov aka")
	mustPurchase(t, l, "Olma", 10, 5000, "Karimov aka")
	mustPurchase(t, l, "Anor", 10, 10000, "Rustam aka")

	order := func() []string {
		var names []string
		for e := range l.Inventory().Entries() {
			names = append(names, e.ProductName)
		}
		return names
	}

	want := []string{"Nok", "Olma", "Anor"}
	if got := order(); !slices.Equal(got, want) {
		t.Errorf("warehouse order = %v, want %v", got, want)
	}

	// Draining a position removes it; buying again re-enters at the end.
	mustSale(t, l, "Olma", 10, 7000, "Chorsu bozori")
	mustPurchase(t, l, "Olma", 5, 5500, "Karimov aka")
	want = []string{"Nok", "Anor", "Olma"}
	if got := order(); !slices.Equal(got, want) {
		t.Errorf("warehouse order after re-entry = %v, want %v", got, want)
	}
}

func TestPurchaseOrderCommutes(t *testing.T) {
	// The average cost does not depend on the order of purchases.
	a := testLedger()
	mustPurchase(t, a, "Olma", 100, 5000, "Karimov aka")
	mustPurchase(t, a, "Olma", 50, 6000, "Karimov aka")

	b := testLedger()
	mustPurchase(t, b, "Olma", 50, 6000, "Karimov aka")
	mustPurchase(t, b, "Olma", 100, 5000, "Karimov aka")

	ea, eb := a.Inventory().entry("Olma"), b.Inventory().entry("Olma")
	if !ea.Quantity.Equal(eb.Quantity) {
		t.Errorf("quantities differ: %s vs %s", ea.Quantity, eb.Quantity)
	}
	if !ea.TotalCost.Equal(eb.TotalCost) {
		t.Errorf("total costs differ: %v vs %v", ea.TotalCost, eb.TotalCost)
	}
	if !ea.AverageCost().Equal(eb.AverageCost()) {
		t.Errorf("average costs differ: %v vs %v", ea.AverageCost(), eb.AverageCost())
	}
}

func TestTotalValue(t *testing.T) {
	l := testLedger()
	mustPurchase(t, l, "Olma", 100, 5000, "Karimov aka")
	mustPurchase(t, l, "Anor", 20, 10000, "Rustam aka")

	if got := l.Inventory().TotalValue(); !got.Equal(UZS(700000)) {
		t.Errorf("total warehouse value = %v, want 700000", got)
	}
}
