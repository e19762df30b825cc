package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/adama/first-debit/internal/calculation"
	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/pkg/dateutil"
	money "github.com/adama/first-debit/pkg/decimal"
)

// Prints the April first debit for every effect day of a month, to eyeball
// proration and the deferred-bundle switch.
func main() {
	premium := flag.Float64("premium", 100, "monthly premium")
	year := flag.Int("year", 2025, "effect year")
	month := flag.Int("month", 4, "effect month")
	day := flag.Int("day", 5, "debit day")
	flag.Parse()

	ce := calculation.NewCalculationEngine()
	first := dateutil.Date(*year, time.Month(*month), 1)
	signature := dateutil.AddMonths(first, -1)

	fmt.Printf("April, premium %.2f, debit day %d\n", *premium, *day)
	for effect := first; dateutil.SameMonth(effect, first); effect = effect.AddDate(0, 0, 1) {
		in := domain.Inputs{
			Premium:       money.NewMoney(*premium).Decimal,
			SignatureDate: signature,
			EffectDate:    effect,
			DebitDay:      *day,
		}
		r := ce.EvaluateInputs(domain.InsurerApril, in)
		if !r.OK {
			fmt.Printf("%s: %s\n", dateutil.FormatDMY(effect), r.Message)
			continue
		}
		fmt.Printf("%s -> %s  %8s  (%d lines)\n", dateutil.FormatDMY(effect), dateutil.FormatDMY(r.FirstDebitDate), money.NewMoneyFromDecimal(r.Amount), len(r.Lines))
	}
}
