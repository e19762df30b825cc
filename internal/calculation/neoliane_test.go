package calculation

import (
	"testing"
	"time"

	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int, month time.Month, year int) time.Time {
	return dateutil.Date(year, month, day)
}

func inputs(premium int64, signature, effect time.Time, day int) domain.Inputs {
	return domain.Inputs{
		Premium:       decimal.NewFromInt(premium),
		SignatureDate: signature,
		EffectDate:    effect,
		DebitDay:      day,
	}
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(2))
}

func TestEvaluateNeoliane(t *testing.T) {
	policy := domain.DefaultPolicyTable().Neoliane

	tests := []struct {
		name           string
		signature      time.Time
		effect         time.Time
		debitDay       int
		expectedDate   time.Time
		expectedAmount string
		expectedAlerts int
		expectedPhase  string
		description    string
	}{
		{
			name:           "Signature before cut-off",
			signature:      date(20, time.January, 2025),
			effect:         date(1, time.February, 2025),
			debitDay:       5,
			expectedDate:   date(5, time.February, 2025),
			expectedAmount: "100.00",
			expectedAlerts: 0,
			expectedPhase:  "M+1",
			description:    "January + 1 is the effect month; one period started on 01/02",
		},
		{
			name:           "Signature after cut-off",
			signature:      date(27, time.January, 2025),
			effect:         date(1, time.February, 2025),
			debitDay:       5,
			expectedDate:   date(5, time.March, 2025),
			expectedAmount: "200.00",
			expectedAlerts: 1,
			expectedPhase:  "M+2",
			description:    "01/02 and 01/03 periods both started by 05/03",
		},
		{
			name:           "Never before the effect month",
			signature:      date(10, time.January, 2025),
			effect:         date(15, time.April, 2025),
			debitDay:       10,
			expectedDate:   date(10, time.April, 2025),
			expectedAmount: "100.00",
			expectedAlerts: 0,
			expectedPhase:  "M+1",
			description:    "Debit before the effect day still charges one period",
		},
		{
			name:           "Late effect in month",
			signature:      date(10, time.March, 2025),
			effect:         date(29, time.March, 2025),
			debitDay:       10,
			expectedDate:   date(10, time.April, 2025),
			expectedAmount: "100.00",
			expectedAlerts: 1,
			expectedPhase:  "M+1",
			description:    "Two days left in the effect month raises the deferral alert",
		},
		{
			name:           "Month-end effect anchors periods",
			signature:      date(26, time.December, 2024),
			effect:         date(31, time.December, 2024),
			debitDay:       10,
			expectedDate:   date(10, time.February, 2025),
			expectedAmount: "200.00",
			expectedAlerts: 2,
			expectedPhase:  "M+2",
			description:    "31/12 and 31/01 started, 28/02 not yet; late effect too",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs(100, tt.signature, tt.effect, tt.debitDay)
			in.FeeOption = decimal.NewFromInt(30)

			result := EvaluateNeoliane(policy, in)

			require.True(t, result.OK, tt.description)
			assert.Equal(t, domain.InsurerNeoliane, result.Insurer)
			assert.Equal(t, "Néoliane Santé", result.InsurerLabel)
			assert.Equal(t, tt.expectedDate, result.FirstDebitDate, tt.description)
			assertMoney(t, tt.expectedAmount, result.Amount)
			require.Len(t, result.Lines, 1)
			assertMoney(t, tt.expectedAmount, result.Lines[0].Amount)
			assert.Len(t, result.Alerts, tt.expectedAlerts, tt.description)
			assert.Contains(t, result.Remarks[1], tt.expectedPhase)
			require.NotNil(t, result.SeparateFee)
			assertMoney(t, "30.00", *result.SeparateFee)
			assert.Nil(t, result.IncludedFee)
		})
	}
}

func TestEvaluateNeolianeGroupingAlert(t *testing.T) {
	policy := domain.DefaultPolicyTable().Neoliane
	in := inputs(80, date(27, time.January, 2025), date(1, time.February, 2025), 5)

	result := EvaluateNeoliane(policy, in)

	require.True(t, result.OK)
	assert.Equal(t, "2 mois (périodes commencées)", result.Lines[0].Label)
	assertMoney(t, "160.00", result.Amount)
	require.Len(t, result.Alerts, 1)
	assert.Contains(t, result.Alerts[0], "2 périodes")
	assertMoney(t, "0.00", *result.SeparateFee)
}

func TestEvaluateNeolianeIncomplete(t *testing.T) {
	policy := domain.DefaultPolicyTable().Neoliane
	sig, eff := date(1, time.March, 2025), date(1, time.April, 2025)

	cases := map[string]domain.Inputs{
		"zero premium":      inputs(0, sig, eff, 5),
		"missing day":       inputs(100, sig, eff, 0),
		"missing signature": inputs(100, time.Time{}, eff, 5),
		"missing effect":    inputs(100, sig, time.Time{}, 5),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			result := EvaluateNeoliane(policy, in)
			assert.False(t, result.OK)
			assert.ErrorIs(t, result.Err, domain.ErrIncompleteFields)
			assert.Equal(t, domain.ErrIncompleteFields.Error(), result.Message)
			assert.Empty(t, result.Lines)
			assert.True(t, result.FirstDebitDate.IsZero())
		})
	}
}

func TestStartedPeriods(t *testing.T) {
	assert.Equal(t, 1, StartedPeriods(date(15, time.April, 2025), date(10, time.April, 2025)))
	assert.Equal(t, 1, StartedPeriods(date(1, time.February, 2025), date(1, time.February, 2025)))
	assert.Equal(t, 2, StartedPeriods(date(1, time.February, 2025), date(1, time.March, 2025)))
	assert.Equal(t, 3, StartedPeriods(date(31, time.January, 2025), date(31, time.March, 2025)))
	assert.Equal(t, 2, StartedPeriods(date(31, time.January, 2025), date(30, time.March, 2025)))
}
