package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func frac(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fullAllocation() Allocation {
	return Allocation{
		"o":  frac("0.6"),
		"e":  frac("0.1"),
		"a":  frac("0.1"),
		"i":  frac("0.1"),
		"ed": frac("0.05"),
		"d":  frac("0.05"),
	}
}

func TestDeriveEnvelopes_SingleIncome(t *testing.T) {
	txs := []Transaction{income(1000)}

	env := DeriveEnvelopes(fullAllocation(), txs)

	if want := frac("600"); !env["o"].Equal(want) {
		t.Errorf("o: expected %s, got %s", want, env["o"])
	}
	if want := frac("100"); !env["e"].Equal(want) {
		t.Errorf("e: expected %s, got %s", want, env["e"])
	}
	if want := frac("50"); !env["ed"].Equal(want) {
		t.Errorf("ed: expected %s, got %s", want, env["ed"])
	}
}

// Fractions summing to 0.5 must route exactly half the income, with no
// implicit normalization to 100%.
func TestDeriveEnvelopes_NoNormalization(t *testing.T) {
	alloc := Allocation{"o": frac("0.3"), "a": frac("0.2")}
	txs := []Transaction{income(1000)}

	env := DeriveEnvelopes(alloc, txs)

	total := decimal.Zero
	for _, v := range env {
		total = total.Add(v)
	}

	if want := frac("500"); !total.Equal(want) {
		t.Fatalf("expected total %s across envelopes, got %s", want, total)
	}
}

func TestDeriveEnvelopes_ExpensesSubtract(t *testing.T) {
	alloc := Allocation{"o": frac("0.5"), "e": frac("0.5")}
	txs := []Transaction{
		income(1000),
		expense(700, "o"), // overspends the 500 envelope
		expense(100, "e"),
		expense(50, "zz"), // unknown category, no envelope effect
		expense(25, ""),   // uncategorized, no envelope effect
	}

	env := DeriveEnvelopes(alloc, txs)

	if want := frac("-200"); !env["o"].Equal(want) {
		t.Errorf("o: expected deficit %s, got %s", want, env["o"])
	}
	if want := frac("400"); !env["e"].Equal(want) {
		t.Errorf("e: expected %s, got %s", want, env["e"])
	}
	if !env["a"].IsZero() {
		t.Errorf("a: expected zero, got %s", env["a"])
	}
}

func TestDeriveEnvelopes_OrderIndependentTotals(t *testing.T) {
	at := func(day int) time.Time {
		return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
	}

	a := income(1000)
	a.Timestamp = at(1)
	b := expense(200, "o")
	b.Timestamp = at(15)
	c := income(500)
	c.Timestamp = at(20)

	forward := DeriveEnvelopes(fullAllocation(), []Transaction{a, b, c})
	reversed := DeriveEnvelopes(fullAllocation(), []Transaction{c, b, a})

	for _, cat := range Categories() {
		if !forward[cat.ID].Equal(reversed[cat.ID]) {
			t.Errorf("%s: forward %s != reversed %s", cat.ID, forward[cat.ID], reversed[cat.ID])
		}
	}
}

func TestDeriveEnvelopes_DoesNotMutateInput(t *testing.T) {
	at := func(day int) time.Time {
		return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
	}

	late := income(100)
	late.Timestamp = at(20)
	early := income(200)
	early.Timestamp = at(1)

	txs := []Transaction{late, early}
	DeriveEnvelopes(fullAllocation(), txs)

	if !txs[0].Timestamp.Equal(at(20)) {
		t.Fatal("input slice was reordered")
	}
}

func TestDeriveEnvelopes_NilAllocation(t *testing.T) {
	env := DeriveEnvelopes(nil, []Transaction{income(1000)})

	for _, c := range Categories() {
		if !env[c.ID].IsZero() {
			t.Errorf("%s: expected zero with nil allocation, got %s", c.ID, env[c.ID])
		}
	}
}
