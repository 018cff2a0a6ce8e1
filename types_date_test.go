package fruitbook

import (
	"testing"
	"time"
)

func TestAddMonthNormalizes(t *testing.T) {
	cases := []struct {
		name   string
		start  Date
		months int
		want   string
	}{
		{"regular month back", NewDate(2026, time.March, 15), -1, "2026-02-15"},
		{"month-end overflow", NewDate(2026, time.March, 31), -1, "2026-03-03"},
		{"month-end overflow in leap year", NewDate(2024, time.March, 31), -1, "2024-03-02"},
		{"31st back to 30-day month", NewDate(2026, time.July, 31), -1, "2026-07-01"},
		{"year boundary", NewDate(2026, time.January, 10), -1, "2025-12-10"},
		{"forward", NewDate(2026, time.January, 31), 1, "2026-03-03"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.AddMonth(tc.months).String(); got != tc.want {
				t.Errorf("%s + %d months = %s, want %s", tc.start, tc.months, got, tc.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	d := NewDate(2026, time.March, 2)
	if got := d.Add(-7).String(); got != "2026-02-23" {
		t.Errorf("2026-03-02 - 7 days = %s, want 2026-02-23", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-7-1")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2026-07-01" {
		t.Errorf("parsed %s, want 2026-07-01", d)
	}
	if _, err := ParseDate("first of july"); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	// 23:30 UTC on March 9 is already March 10 in Tashkent (UTC+5).
	tashkent := time.FixedZone("UZT", 5*3600)
	instant := time.Date(2026, time.March, 9, 23, 30, 0, 0, time.UTC)

	if got := DateOf(instant); got != NewDate(2026, time.March, 9) {
		t.Errorf("DateOf in UTC = %s, want 2026-03-09", got)
	}
	if got := DateOf(instant.In(tashkent)); got != NewDate(2026, time.March, 10) {
		t.Errorf("DateOf in Tashkent = %s, want 2026-03-10", got)
	}
}
