package calculation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/pkg/dateutil"
	money "github.com/adama/first-debit/pkg/decimal"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var formValidator = validator.New()

// Evaluator computes the first debit for one insurer. Evaluators are pure:
// they only read the policy table and the inputs.
type Evaluator func(policies *domain.PolicyTable, in domain.Inputs) domain.Result

var evaluators = map[domain.Insurer]Evaluator{
	domain.InsurerNeoliane: func(pt *domain.PolicyTable, in domain.Inputs) domain.Result {
		return EvaluateNeoliane(pt.Neoliane, in)
	},
	domain.InsurerKereis: func(pt *domain.PolicyTable, in domain.Inputs) domain.Result {
		return EvaluateKereis(pt.Kereis, in)
	},
	domain.InsurerApril: func(pt *domain.PolicyTable, in domain.Inputs) domain.Result {
		return EvaluateApril(pt.April, in)
	},
}

// CalculationEngine validates raw form values and dispatches them to the
// evaluator of the selected insurer. It holds no state between calls and is
// safe for concurrent use.
type CalculationEngine struct {
	Policies *domain.PolicyTable
	Logger   Logger
}

// NewCalculationEngine creates an engine using the built-in policy table
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithPolicies(domain.DefaultPolicyTable())
}

// NewCalculationEngineWithPolicies creates an engine over a loaded policy table
func NewCalculationEngineWithPolicies(policies *domain.PolicyTable) *CalculationEngine {
	if policies == nil {
		policies = domain.DefaultPolicyTable()
	}
	return &CalculationEngine{
		Policies: policies,
		Logger:   NopLogger{},
	}
}

// Evaluate parses the form, validates it and runs the insurer's evaluator.
// Every failure comes back as the failure variant of the result.
func (ce *CalculationEngine) Evaluate(insurer domain.Insurer, form domain.Form) domain.Result {
	in, err := ce.Normalize(insurer, form)
	if err != nil {
		ce.logger().Debugf("rejected %s form: %v", insurer, err)
		return domain.Failure(err)
	}
	return ce.EvaluateInputs(insurer, in)
}

// Normalize turns raw field values into evaluator inputs. Unparsable premiums
// become zero; unparsable dates are a validation failure.
func (ce *CalculationEngine) Normalize(insurer domain.Insurer, form domain.Form) (domain.Inputs, error) {
	if _, ok := evaluators[insurer]; !ok {
		return domain.Inputs{}, domain.ErrUnknownInsurer
	}

	signature, okSignature := dateutil.ParseDMY(form.SignatureDate)
	effect, okEffect := dateutil.ParseDMY(form.EffectDate)
	if !okSignature || !okEffect {
		return domain.Inputs{}, domain.ErrInvalidDates
	}
	if effect.Before(signature) {
		return domain.Inputs{}, domain.ErrEffectBeforeSignature
	}

	if err := validateForm(form); err != nil {
		return domain.Inputs{}, err
	}

	in := domain.Inputs{
		Premium:       money.ParseMoney(form.Premium).Decimal,
		SignatureDate: signature,
		EffectDate:    effect,
		DebitDay:      form.DebitDay,
	}
	if insurer == domain.InsurerNeoliane {
		fee, err := ce.feeOption(form.FeeOption)
		if err != nil {
			return domain.Inputs{}, err
		}
		in.FeeOption = fee
	}
	return in, nil
}

// feeOption resolves a fee option value against the Néoliane policy. An
// empty value selects the default option.
func (ce *CalculationEngine) feeOption(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ce.Policies.Neoliane.DefaultFeeOption().Amount, nil
	}
	option, ok := lo.Find(ce.Policies.Neoliane.FeeOptions, func(o domain.FeeOption) bool {
		return o.Value == value
	})
	if !ok {
		return decimal.Zero, domain.ErrUnsupportedFeeOption
	}
	return option.Amount, nil
}

// validateForm checks the field bounds declared on domain.Form and maps the
// first violation to the matching user-facing error.
func validateForm(form domain.Form) error {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	switch fieldErrs[0].Field() {
	case "DebitDay":
		return domain.ErrUnsupportedDebitDay
	case "FeeOption":
		return domain.ErrUnsupportedFeeOption
	default:
		return domain.ErrIncompleteFields
	}
}

// EvaluateInputs runs the insurer's evaluator on already normalized inputs
func (ce *CalculationEngine) EvaluateInputs(insurer domain.Insurer, in domain.Inputs) domain.Result {
	evaluate, ok := evaluators[insurer]
	if !ok {
		return domain.Failure(domain.ErrUnknownInsurer)
	}
	if in.DebitDay != 0 {
		days, _ := ce.DebitDays(insurer)
		if !lo.Contains(days, in.DebitDay) {
			ce.logger().Debugf("debit day %d not offered by %s", in.DebitDay, insurer)
			return domain.Failure(domain.ErrUnsupportedDebitDay)
		}
	}

	ce.logger().Debugf("evaluating first debit for %s", insurer)
	result := evaluate(ce.Policies, in)
	if result.OK && result.HasAlerts() {
		ce.logger().Debugf("%s evaluation raised %d alert(s)", insurer, len(result.Alerts))
	}
	return result
}

// DebitDays lists the debit days an insurer offers
func (ce *CalculationEngine) DebitDays(insurer domain.Insurer) ([]int, error) {
	common, ok := ce.Policies.Common(insurer)
	if !ok {
		return nil, fmt.Errorf("%q: %w", insurer, domain.ErrUnknownInsurer)
	}
	return append([]int(nil), common.DebitDays...), nil
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}
