package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/sergiovallenilla/finanzaspersonales/internal/domain"
	"github.com/sergiovallenilla/finanzaspersonales/internal/usecase"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func renderCategories(w io.Writer, cats []domain.Category) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	tw.Flush()
}

func renderReport(w io.Writer, report *usecase.Report) {
	fmt.Fprintf(w, "Total income: %s\n\n", money(report.TotalIncome))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSPENT\tENVELOPE")
	for _, c := range domain.Categories() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, money(report.SpentByCategory[c.ID]), money(report.Envelopes[c.ID]))
	}
	tw.Flush()

	if len(report.Debts) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DEBT\tPAYMENT\tMONTHS\tINTEREST\tPAID OFF")
		for _, da := range report.Debts {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%v\n",
				da.Debt.Name, money(da.MonthlyPayment), da.Schedule.TotalMonths,
				money(da.Schedule.TotalInterest), da.Schedule.PaidOff())
		}
		tw.Flush()
		fmt.Fprintf(w, "\nTotal monthly debt payment: %s\n", money(report.TotalMonthlyPayment))
	}

	fmt.Fprintln(w)
	renderCapacity(w, report.Capacity)
}

func renderSchedule(w io.Writer, payment decimal.Decimal, s domain.Schedule) {
	if len(s.Entries) == 0 {
		fmt.Fprintln(w, "Nothing to amortize.")
		return
	}

	fmt.Fprintf(w, "Monthly payment: %s\n\n", money(payment))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MONTH\tPAYMENT\tINTEREST\tPRINCIPAL\tBALANCE\t")
	for _, e := range s.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			e.Month, money(e.Payment), money(e.Interest), money(e.Principal), money(e.Balance))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nMonths: %d  Total interest: %s\n", s.TotalMonths, money(s.TotalInterest))
	if !s.PaidOff() {
		fmt.Fprintln(w, "Balance remains after the simulation ceiling; the payment is too low to amortize.")
	}
}

func renderCapacity(w io.Writer, r domain.CapacityResult) {
	fmt.Fprintf(w, "Capacity: %s\nDTI: %s\nBand: %s\n", money(r.Capacity), r.DTI.StringFixed(4), r.Band)
}
