package fruitbook

import (
	"strings"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	avg := UZS(800000).Div(KG(150))
	cost := avg.Mul(KG(30))
	if !moneyNear(cost, UZS(160000)) {
		t.Errorf("800000/150*30 = %v, want about 160000", cost)
	}

	if got := UZS(210000).Sub(cost); !moneyNear(got, UZS(50000)) {
		t.Errorf("210000 - cost = %v, want about 50000", got)
	}
}

func TestMoneyStringRoundsToWholeAmount(t *testing.T) {
	// Display rounds to whole so'm, so a vanishing division remainder never
	// shows up.
	exact := UZS(160000)
	remainder := UZS(800000).Div(KG(150)).Mul(KG(30))
	if exact.String() != remainder.String() {
		t.Errorf("%q and %q should display identically", exact.String(), remainder.String())
	}
}

func TestSignedString(t *testing.T) {
	if got := (Money{}).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := UZS(50000).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("positive SignedString = %q, want a + prefix", got)
	}
	if got := UZS(-50000).SignedString(); strings.HasPrefix(got, "+") {
		t.Errorf("negative SignedString = %q, must not have a + prefix", got)
	}
}

func TestParseMoneyAndQuantity(t *testing.T) {
	m, err := ParseMoney("5000")
	if err != nil || !m.Equal(UZS(5000)) {
		t.Errorf("ParseMoney(5000) = %v, %v", m, err)
	}
	q, err := ParseQuantity("12.5")
	if err != nil || !q.Equal(KG(12.5)) {
		t.Errorf("ParseQuantity(12.5) = %v, %v", q, err)
	}
	if _, err := ParseMoney("so'm"); err == nil {
		t.Error("expected an error for a malformed amount")
	}
	if _, err := ParseQuantity("a lot"); err == nil {
		t.Error("expected an error for a malformed quantity")
	}
}
