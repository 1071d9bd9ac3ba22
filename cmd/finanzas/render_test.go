package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
	"github.com/sergiovallenilla/finanzaspersonales/internal/usecase"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRenderCategories(t *testing.T) {
	var buf bytes.Buffer
	renderCategories(&buf, domain.Categories())

	out := buf.String()
	for _, want := range []string{"Obligatorios", "Entretenimiento", "Donaciones"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSchedule(t *testing.T) {
	payment := decimal.NewFromInt(100)
	s := domain.BuildSchedule(dec("1000"), dec("0.24"), payment)

	var buf bytes.Buffer
	renderSchedule(&buf, payment, s)

	out := buf.String()
	if !strings.Contains(out, "Monthly payment: 100.00") {
		t.Errorf("output missing payment header:\n%s", out)
	}
	if !strings.Contains(out, "Total interest:") {
		t.Errorf("output missing totals:\n%s", out)
	}
	if strings.Contains(out, "simulation ceiling") {
		t.Errorf("amortizing schedule must not warn about the ceiling:\n%s", out)
	}
}

func TestRenderSchedule_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderSchedule(&buf, decimal.Zero, domain.Schedule{})

	if !strings.Contains(buf.String(), "Nothing to amortize.") {
		t.Errorf("expected empty-schedule message, got:\n%s", buf.String())
	}
}

func TestRenderSchedule_CeilingWarning(t *testing.T) {
	payment := decimal.NewFromInt(1)
	s := domain.BuildSchedule(dec("1000"), dec("0.24"), payment)

	var buf bytes.Buffer
	renderSchedule(&buf, payment, s)

	if !strings.Contains(buf.String(), "simulation ceiling") {
		t.Error("expected a warning for a non-amortizing payment")
	}
}

func TestRenderCapacity(t *testing.T) {
	var buf bytes.Buffer
	renderCapacity(&buf, domain.ComputeCapacity(dec("2000"), dec("800"), dec("200")))

	out := buf.String()
	for _, want := range []string{"Capacity: 1000.00", "DTI: 0.1000", "Band: Excelente"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport(t *testing.T) {
	report := &usecase.Report{
		SpentByCategory:     domain.SpentByCategory(nil),
		Envelopes:           domain.DeriveEnvelopes(nil, nil),
		TotalIncome:         dec("2000"),
		EssentialSpend:      dec("0"),
		TotalMonthlyPayment: dec("150"),
		Debts: []usecase.DebtAnalysis{
			{
				Debt:           domain.Debt{Name: "card", Principal: dec("1000"), MinPayment: dec("150")},
				MonthlyPayment: dec("150"),
				Schedule:       domain.BuildSchedule(dec("1000"), dec("0.24"), dec("150")),
			},
		},
		Capacity: domain.ComputeCapacity(dec("2000"), dec("0"), dec("150")),
	}

	var buf bytes.Buffer
	renderReport(&buf, report)

	out := buf.String()
	for _, want := range []string{"Total income: 2000.00", "card", "Total monthly debt payment: 150.00", "Band: Excelente"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
