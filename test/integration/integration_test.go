package integration

import (
	"bytes"
	"testing"

	"github.com/adama/first-debit/internal/calculation"
	"github.com/adama/first-debit/internal/config"
	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEngine(t *testing.T) *calculation.CalculationEngine {
	t.Helper()
	parser := config.NewInputParser()
	policies, err := parser.LoadPolicyFile("../testdata/policies.yaml")
	require.NoError(t, err)
	return calculation.NewCalculationEngineWithPolicies(policies)
}

func TestPolicyFileDrivesEvaluation(t *testing.T) {
	engine := loadEngine(t)

	result := engine.Evaluate(domain.InsurerApril, domain.Form{
		Premium:       "100",
		SignatureDate: "01/03/2025",
		EffectDate:    "01/04/2025",
		DebitDay:      5,
	})

	require.True(t, result.OK)
	assert.Equal(t, "125.00", result.Amount.StringFixed(2))
	assert.Equal(t, "25.00", result.IncludedFee.StringFixed(2))
}

func TestOutputGeneration(t *testing.T) {
	engine := loadEngine(t)

	forms := map[domain.Insurer]domain.Form{
		domain.InsurerNeoliane: {Premium: "100", SignatureDate: "27/01/2025", EffectDate: "01/02/2025", DebitDay: 5, FeeOption: "30"},
		domain.InsurerKereis:   {Premium: "89,90", SignatureDate: "20/03/2025", EffectDate: "25/03/2025", DebitDay: 5},
		domain.InsurerApril:    {Premium: "120", SignatureDate: "15/04/2025", EffectDate: "20/04/2025", DebitDay: 5},
	}

	for insurer, form := range forms {
		result := engine.Evaluate(insurer, form)
		require.True(t, result.OK, "%s: %s", insurer, result.Message)

		for _, format := range output.AvailableFormatterNames() {
			var buf bytes.Buffer
			assert.NoError(t, output.GenerateReport(&buf, &result, format))
			assert.NotEmpty(t, buf.String())
		}
	}
}

func TestReferenceScenarios(t *testing.T) {
	engine := calculation.NewCalculationEngine()

	kereis := engine.Evaluate(domain.InsurerKereis, domain.Form{Premium: "100", SignatureDate: "20/03/2025", EffectDate: "20/03/2025", DebitDay: 24})
	require.True(t, kereis.OK)
	assert.Equal(t, "200.00", kereis.Amount.StringFixed(2))

	april := engine.Evaluate(domain.InsurerApril, domain.Form{Premium: "100", SignatureDate: "01/03/2025", EffectDate: "01/04/2025", DebitDay: 3})
	require.True(t, april.OK)
	require.Len(t, april.Lines, 2)
	assert.Equal(t, "100.00", april.Lines[0].Amount.StringFixed(2))
}
