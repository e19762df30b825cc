package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insurer identifies one of the supported billing policies
type Insurer string

const (
	InsurerNeoliane Insurer = "neoliane" // date-to-date, never prorated, grouped periods
	InsurerKereis   Insurer = "kereis"   // date-to-date, half-month month count
	InsurerApril    Insurer = "april"    // prorate or defer
)

// Insurers lists the supported insurers in display order
func Insurers() []Insurer {
	return []Insurer{InsurerNeoliane, InsurerKereis, InsurerApril}
}

// Form holds the raw field values typed by the agent
type Form struct {
	Premium       string `yaml:"premium" json:"premium"`
	SignatureDate string `yaml:"signature_date" json:"signature_date"`
	EffectDate    string `yaml:"effect_date" json:"effect_date"`
	DebitDay      int    `yaml:"debit_day" json:"debit_day" validate:"min=0,max=31"`
	FeeOption     string `yaml:"fee_option,omitempty" json:"fee_option,omitempty" validate:"omitempty,max=32"`
}

// Inputs are the normalized values a policy evaluator works on.
// A zero date or zero premium means the field was missing or unparsable.
type Inputs struct {
	Premium       decimal.Decimal `json:"premium"`
	SignatureDate time.Time       `json:"signature_date"`
	EffectDate    time.Time       `json:"effect_date"`
	DebitDay      int             `json:"debit_day"`
	FeeOption     decimal.Decimal `json:"fee_option"`
}

// ChargeLine is one itemized part of the first debit
type ChargeLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Result is the outcome of one evaluation. When OK is false only Message
// (and Err) are set.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Err     error  `json:"-"`

	Insurer        Insurer         `json:"insurer,omitempty"`
	InsurerLabel   string          `json:"insurer_label,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Lines          []ChargeLine    `json:"lines,omitempty"`
	FirstDebitDate time.Time       `json:"first_debit_date"`
	Remarks        []string        `json:"remarks,omitempty"`
	Alerts         []string        `json:"alerts,omitempty"`

	// At most one of the two fee fields is set.
	SeparateFee *decimal.Decimal `json:"separate_fee,omitempty"`
	IncludedFee *decimal.Decimal `json:"included_fee,omitempty"`
}

// Failure builds the failure variant; the error text is shown verbatim to the agent.
func Failure(err error) Result {
	return Result{OK: false, Message: err.Error(), Err: err}
}

// HasAlerts reports whether the result hit an uncertain case
func (r Result) HasAlerts() bool {
	return len(r.Alerts) > 0
}
