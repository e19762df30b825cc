package output

import (
	"time"

	"github.com/adama/first-debit/pkg/dateutil"
	money "github.com/adama/first-debit/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as euros the French way ("1 234,56 €").
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatDate formats a date as DD/MM/YYYY, or a dash when unset.
func FormatDate(date time.Time) string { return dateutil.FormatDMY(date) }
