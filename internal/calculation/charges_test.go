package calculation

import (
	"testing"

	"github.com/adama/first-debit/internal/domain"
	money "github.com/adama/first-debit/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChargeLinesRoundBeforeSumming(t *testing.T) {
	third := money.NewMoneyFromDecimal(decimal.NewFromInt(100)).Prorate(1, 3)
	lines := []domain.ChargeLine{
		line("a", third),
		line("b", third),
		line("c", third),
	}

	for _, l := range lines {
		assertMoney(t, "33.33", l.Amount)
	}
	assertMoney(t, "99.99", total(lines))
	assert.True(t, total(nil).IsZero())
}

func TestWholePeriodsMultiplyPremium(t *testing.T) {
	premium := money.NewMoneyFromDecimal(decimal.RequireFromString("89.995"))
	assertMoney(t, "179.99", line("2 mois", premium.Times(2)).Amount)
	assertMoney(t, "90.00", line("1 mois", premium.Times(1)).Amount)
}
