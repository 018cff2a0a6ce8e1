package fruitbook

import (
	"math"
	"testing"
	"time"
)

// UZS is a helper for tests to create so'm money from a const.
func UZS(v float64) Money { return M(v) }

// KG is a helper for tests to create a quantity from a const.
func KG(v float64) Quantity { return Q(v) }

// moneyNear reports whether two amounts agree within a milli-so'm. Average
// costs are quotients, so derived amounts can be off by a vanishing rounding
// remainder.
func moneyNear(a, b Money) bool {
	return math.Abs(a.AsFloat()-b.AsFloat()) < 1e-3
}

// stepClock yields the given instants in order, then keeps advancing by one
// second past the last one.
type stepClock struct {
	times []time.Time
	last  time.Time
}

func (c *stepClock) next() time.Time {
	if len(c.times) > 0 {
		c.last = c.times[0]
		c.times = c.times[1:]
		return c.last
	}
	c.last = c.last.Add(time.Second)
	return c.last
}

// testLedger returns an empty ledger whose clock yields the given instants,
// starting from a fixed base date when none are given.
func testLedger(times ...time.Time) *Ledger {
	l := NewLedger()
	c := &stepClock{times: times, last: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	l.SetClock(c.next)
	return l
}

// mustPurchase records a purchase and fails the test on error.
func mustPurchase(t *testing.T, l *Ledger, product string, q, p float64, supplier string) Purchase {
	t.Helper()
	tx, err := l.RecordPurchase(NewPurchase(product, KG(q), UZS(p), supplier, "", ""))
	if err != nil {
		t.Fatalf("RecordPurchase(%s, %v, %v) failed: %v", product, q, p, err)
	}
	return tx
}

// mustSale records a sale and fails the test on error.
func mustSale(t *testing.T, l *Ledger, product string, q, p float64, customer string) Sale {
	t.Helper()
	tx, err := l.RecordSale(NewSale(product, KG(q), UZS(p), customer, "", ""))
	if err != nil {
		t.Fatalf("RecordSale(%s, %v, %v) failed: %v", product, q, p, err)
	}
	return tx
}
