package calculation

import (
	"github.com/adama/first-debit/internal/domain"
	money "github.com/adama/first-debit/pkg/decimal"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// incomplete mirrors the form check each evaluator runs on its own inputs
func incomplete(in domain.Inputs) bool {
	return !in.Premium.IsPositive() ||
		in.SignatureDate.IsZero() ||
		in.EffectDate.IsZero() ||
		in.DebitDay == 0
}

// line builds a charge line rounded to cents
func line(label string, amount money.Money) domain.ChargeLine {
	return domain.ChargeLine{Label: label, Amount: amount.Round().Decimal}
}

func total(lines []domain.ChargeLine) decimal.Decimal {
	amounts := lo.Map(lines, func(l domain.ChargeLine, _ int) money.Money {
		return money.NewMoneyFromDecimal(l.Amount)
	})
	return money.Sum(amounts...).Decimal
}

func feePtr(amount decimal.Decimal) *decimal.Decimal {
	fee := amount
	return &fee
}
