package fruitbook

import (
	"fmt"
	"iter"
	"log"
	"time"
)

// Ledger is the single source of truth for the business: an append-only list
// of purchase and sale transactions in chronological order, together with the
// projections derived from them (the warehouse and the two contact
// registries).
//
// Recording is all-or-nothing. A transaction is validated against the current
// state first, and only a valid transaction is appended and folded into the
// projections.
type Ledger struct {
	transactions []Transaction
	inventory    *Inventory
	suppliers    *ContactRegistry
	customers    *ContactRegistry

	// now is the clock used to stamp new transactions. Tests swap it out.
	now func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		inventory:    newInventory(),
		suppliers:    newContactRegistry(),
		customers:    newContactRegistry(),
		now:          time.Now,
	}
}

// SetClock replaces the clock used to stamp new transactions.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// Inventory returns the warehouse projection of this ledger.
func (l *Ledger) Inventory() *Inventory { return l.inventory }

// Suppliers returns the registry of parties fruit was bought from.
func (l *Ledger) Suppliers() *ContactRegistry { return l.suppliers }

// Customers returns the registry of parties fruit was sold to.
func (l *Ledger) Customers() *ContactRegistry { return l.customers }

// AvailableQuantity returns the stock of a product currently in the
// warehouse. It is zero for a product not in stock.
func (l *Ledger) AvailableQuantity(product string) Quantity {
	if e := l.inventory.entry(product); e != nil {
		return e.Quantity
	}
	return Quantity{}
}

// AverageCost returns the weighted average acquisition cost per kilogram of
// a product currently in the warehouse, or zero for a product not in stock.
func (l *Ledger) AverageCost(product string) Money {
	if e := l.inventory.entry(product); e != nil {
		return e.AverageCost()
	}
	return Money{}
}

// stamp assigns the next transaction timestamp and identifier. Timestamps
// are strictly increasing even when the clock stalls, and the identifier is
// the timestamp in Unix milliseconds, so identifiers are strictly increasing
// too.
func (l *Ledger) stamp() (int64, time.Time) {
	ts := l.now()
	if n := len(l.transactions); n > 0 {
		if last := l.transactions[n-1].When(); !ts.After(last) {
			ts = last.Add(time.Millisecond)
		}
	}
	return ts.UnixMilli(), ts
}

// RecordPurchase validates an incoming trade, stamps it, appends it to the
// ledger and folds it into the warehouse and the supplier registry. It
// returns the transaction as recorded. On error the ledger is left untouched.
func (l *Ledger) RecordPurchase(tx Purchase) (Purchase, error) {
	validated, err := tx.Validate(l)
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction: %w", tx.What(), err)
	}
	tx = validated.(Purchase)
	tx.Id, tx.Date = l.stamp()

	l.transactions = append(l.transactions, tx)
	l.inventory.applyPurchase(tx)
	l.suppliers.record(tx.Supplier, tx.SupplierPhone, tx.Date)
	log.Printf("%v: append %q %s", tx.When(), tx.What(), tx.ProductName)
	return tx, nil
}

// RecordSale validates an outgoing trade against the current stock, stamps
// it, appends it to the ledger and folds it into the warehouse and the
// customer registry. It returns the transaction as recorded, with its cost
// and profit resolved. On error the ledger is left untouched.
func (l *Ledger) RecordSale(tx Sale) (Sale, error) {
	validated, err := tx.Validate(l)
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction: %w", tx.What(), err)
	}
	tx = validated.(Sale)
	tx.Id, tx.Date = l.stamp()

	l.transactions = append(l.transactions, tx)
	l.inventory.applySale(tx)
	l.customers.record(tx.Customer, tx.CustomerPhone, tx.Date)
	log.Printf("%v: append %q %s", tx.When(), tx.What(), tx.ProductName)
	return tx, nil
}

// Transactions returns an iterator that yields each transaction in
// chronological order. A transaction is yielded only if it matches every
// filter; with no filters every transaction is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Recent returns an iterator over the last n transactions, newest first.
func (l *Ledger) Recent(n int) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for i := len(l.transactions) - 1; i >= 0 && i >= len(l.transactions)-n; i-- {
			if !yield(l.transactions[i]) {
				return
			}
		}
	}
}

// Get returns the transaction with the given identifier, or nil if unknown.
func (l *Ledger) Get(id int64) Transaction {
	for _, tx := range l.transactions {
		if tx.ID() == id {
			return tx
		}
	}
	return nil
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// NewestTransactionDate returns the timestamp of the latest transaction, or
// the zero time for an empty ledger.
func (l *Ledger) NewestTransactionDate() time.Time {
	if len(l.transactions) == 0 {
		return time.Time{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// ByType returns a filter accepting transactions of the given kind.
func ByType(c CommandType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.What() == c }
}

// ByProduct returns a filter accepting transactions trading the given fruit.
func ByProduct(product string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Product() == product }
}

// Since returns a filter accepting transactions recorded at or after the
// given instant.
func Since(t time.Time) func(Transaction) bool {
	return func(tx Transaction) bool { return !tx.When().Before(t) }
}

// OnDay returns a filter accepting transactions recorded on the given
// calendar day in the given location.
func OnDay(day Date, loc *time.Location) func(Transaction) bool {
	return func(tx Transaction) bool { return DateOf(tx.When().In(loc)) == day }
}
