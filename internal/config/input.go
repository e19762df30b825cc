package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adama/first-debit/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser loads and validates insurer policy tables
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New()}
}

// LoadPolicyFile loads a policy table from a YAML file. Insurers missing from
// the file keep their built-in parameters.
func (ip *InputParser) LoadPolicyFile(filename string) (*domain.PolicyTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParsePolicies(data)
}

// ParsePolicies decodes YAML over the default policy table and validates the result
func (ip *InputParser) ParsePolicies(data []byte) (*domain.PolicyTable, error) {
	table := domain.DefaultPolicyTable()
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePolicyTable(table); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}
	return table, nil
}

// ValidatePolicyTable validates every insurer block of the table
func (ip *InputParser) ValidatePolicyTable(table *domain.PolicyTable) error {
	if table == nil {
		return errors.New("no policy table provided")
	}

	if err := ip.validate.Struct(table.Neoliane); err != nil {
		return fmt.Errorf("neoliane: %w", err)
	}
	for _, option := range table.Neoliane.FeeOptions {
		if option.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("neoliane: fee option %s cannot be negative", option.Value)
		}
	}
	values := lo.Map(table.Neoliane.FeeOptions, func(o domain.FeeOption, _ int) string { return o.Value })
	if dup := lo.FindDuplicates(values); len(dup) > 0 {
		return fmt.Errorf("neoliane: duplicate fee option %s", dup[0])
	}

	if err := ip.validate.Struct(table.Kereis); err != nil {
		return fmt.Errorf("kereis: %w", err)
	}
	if table.Kereis.IncludedFee.LessThan(decimal.Zero) {
		return fmt.Errorf("kereis: included fee cannot be negative")
	}

	if err := ip.validate.Struct(table.April); err != nil {
		return fmt.Errorf("april: %w", err)
	}
	if table.April.IncludedFee.LessThan(decimal.Zero) {
		return fmt.Errorf("april: included fee cannot be negative")
	}

	for _, insurer := range domain.Insurers() {
		common, _ := table.Common(insurer)
		if dup := lo.FindDuplicates(common.DebitDays); len(dup) > 0 {
			return fmt.Errorf("%s: duplicate debit day %d", insurer, dup[0])
		}
	}
	return nil
}

// SavePolicyTable writes a policy table as YAML
func SavePolicyTable(table *domain.PolicyTable, filename string) error {
	b, err := yaml.Marshal(table)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
