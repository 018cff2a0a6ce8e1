package fruitbook

import (
	"encoding/json"
	"iter"
	"time"
)

// InventoryEntry is the warehouse position for a single product: how many
// kilograms are in stock and what they cost to acquire in total.
type InventoryEntry struct {
	ProductName string
	Quantity    Quantity
	TotalCost   Money
	LastUpdated time.Time
}

// AverageCost returns the weighted average acquisition cost per kilogram.
// It is zero for an empty position.
func (e *InventoryEntry) AverageCost() Money {
	if !e.Quantity.IsPositive() {
		return Money{}
	}
	return e.TotalCost.Div(e.Quantity)
}

// Value returns the total acquisition cost of the position.
func (e *InventoryEntry) Value() Money {
	return e.TotalCost
}

// MarshalJSON implements the json.Marshaler interface for InventoryEntry.
// The product name is the key of the enclosing object and is not repeated here.
func (e InventoryEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("quantity", e.Quantity)
	w.Append("averagePrice", e.AverageCost())
	w.Append("totalCost", e.TotalCost)
	w.Append("lastUpdated", e.LastUpdated.UTC().Format(isoTimestamp))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for InventoryEntry.
// A stored averagePrice is ignored: quantity and totalCost are authoritative
// and the average is always their quotient.
func (e *InventoryEntry) UnmarshalJSON(data []byte) error {
	var temp struct {
		Quantity    Quantity  `json:"quantity"`
		TotalCost   Money     `json:"totalCost"`
		LastUpdated time.Time `json:"lastUpdated"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.Quantity = temp.Quantity
	e.TotalCost = temp.TotalCost
	e.LastUpdated = temp.LastUpdated
	return nil
}

// Inventory is the warehouse: the stock position of every product currently
// held, in the order products first entered the warehouse. It is a pure
// projection of the purchase and sale transactions applied to it.
type Inventory struct {
	entries map[string]*InventoryEntry
	order   []string
}

func newInventory() *Inventory {
	return &Inventory{entries: make(map[string]*InventoryEntry)}
}

// entry returns the position for a product, or nil if the product is not in stock.
func (inv *Inventory) entry(product string) *InventoryEntry {
	return inv.entries[product]
}

// put registers a position under its product name, appending it to the
// insertion order if it is new.
func (inv *Inventory) put(e *InventoryEntry) {
	if _, exists := inv.entries[e.ProductName]; !exists {
		inv.order = append(inv.order, e.ProductName)
	}
	inv.entries[e.ProductName] = e
}

// remove drops a product from the warehouse entirely.
func (inv *Inventory) remove(product string) {
	delete(inv.entries, product)
	for i, name := range inv.order {
		if name == product {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			return
		}
	}
}

// applyPurchase folds an incoming trade into the warehouse. An existing
// position grows by the purchased quantity and total; an unknown product
// opens a new position at the end of the insertion order.
func (inv *Inventory) applyPurchase(tx Purchase) {
	if e := inv.entry(tx.ProductName); e != nil {
		e.Quantity = e.Quantity.Add(tx.Quantity)
		e.TotalCost = e.TotalCost.Add(tx.Total)
		e.LastUpdated = tx.Date
		return
	}
	inv.put(&InventoryEntry{
		ProductName: tx.ProductName,
		Quantity:    tx.Quantity,
		TotalCost:   tx.Total,
		LastUpdated: tx.Date,
	})
}

// applySale folds an outgoing trade into the warehouse. The position shrinks
// by the sold quantity and by its cost of goods sold; a position drained to
// zero (or below) is removed from the warehouse.
func (inv *Inventory) applySale(tx Sale) {
	e := inv.entry(tx.ProductName)
	if e == nil {
		return
	}
	remaining := e.Quantity.Sub(tx.Quantity)
	if !remaining.IsPositive() {
		inv.remove(tx.ProductName)
		return
	}
	e.Quantity = remaining
	e.TotalCost = e.TotalCost.Sub(tx.Cost)
	e.LastUpdated = tx.Date
}

// Entries returns an iterator over the warehouse positions, in the order
// products first entered the warehouse.
func (inv *Inventory) Entries() iter.Seq[*InventoryEntry] {
	return func(yield func(*InventoryEntry) bool) {
		for _, name := range inv.order {
			if !yield(inv.entries[name]) {
				return
			}
		}
	}
}

// Len returns the number of products currently in stock.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// TotalValue returns the acquisition cost of the whole warehouse, the sum of
// every position's total cost.
func (inv *Inventory) TotalValue() Money {
	var total Money
	for e := range inv.Entries() {
		total = total.Add(e.TotalCost)
	}
	return total
}
