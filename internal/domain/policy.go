package domain

import (
	"github.com/shopspring/decimal"
)

// PolicyTable holds the per-insurer parameters the evaluators read.
// It is read-only once loaded.
type PolicyTable struct {
	Neoliane NeolianePolicy `yaml:"neoliane" json:"neoliane"`
	Kereis   KereisPolicy   `yaml:"kereis" json:"kereis"`
	April    AprilPolicy    `yaml:"april" json:"april"`
}

// CommonPolicy carries what every insurer has: a display label and the
// debit days the agent may pick.
type CommonPolicy struct {
	Label     string   `yaml:"label" json:"label" validate:"required"`
	DebitDays []int    `yaml:"debit_days" json:"debit_days" validate:"required,min=1,dive,min=1,max=31"`
	Memo      []string `yaml:"memo,omitempty" json:"memo,omitempty"`
}

// FeeOption is one choice of document fee offered for Néoliane
type FeeOption struct {
	Value  string          `yaml:"value" json:"value" validate:"required"`
	Label  string          `yaml:"label" json:"label" validate:"required"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// NeolianePolicy: date-to-date billing, first debit in M+1 or M+2 depending on the signature day
type NeolianePolicy struct {
	CommonPolicy       `yaml:",inline"`
	SignatureCutoffDay int         `yaml:"signature_cutoff_day" json:"signature_cutoff_day" validate:"min=1,max=31"`
	LateEffectDays     int         `yaml:"late_effect_days" json:"late_effect_days" validate:"min=0,max=30"`
	FeeOptions         []FeeOption `yaml:"fee_options" json:"fee_options" validate:"required,min=1,dive"`
}

// KereisPolicy: one or two months depending on the signature day when signature and effect share a month
type KereisPolicy struct {
	CommonPolicy       `yaml:",inline"`
	HalfMonthCutoffDay int             `yaml:"half_month_cutoff_day" json:"half_month_cutoff_day" validate:"min=1,max=31"`
	IncludedFee        decimal.Decimal `yaml:"included_fee" json:"included_fee"`
}

// AprilPolicy: prorated effect month, deferred and bundled when the debit day is already past
type AprilPolicy struct {
	CommonPolicy   `yaml:",inline"`
	ShortDelayDays int             `yaml:"short_delay_days" json:"short_delay_days" validate:"min=0,max=365"`
	IncludedFee    decimal.Decimal `yaml:"included_fee" json:"included_fee"`
}

// Common returns the shared policy block of an insurer
func (pt *PolicyTable) Common(insurer Insurer) (CommonPolicy, bool) {
	switch insurer {
	case InsurerNeoliane:
		return pt.Neoliane.CommonPolicy, true
	case InsurerKereis:
		return pt.Kereis.CommonPolicy, true
	case InsurerApril:
		return pt.April.CommonPolicy, true
	}
	return CommonPolicy{}, false
}

// DefaultFeeOption is the fee option preselected for Néoliane (the first one listed)
func (p NeolianePolicy) DefaultFeeOption() FeeOption {
	if len(p.FeeOptions) == 0 {
		return FeeOption{Amount: decimal.Zero}
	}
	return p.FeeOptions[0]
}

// DefaultPolicyTable returns the built-in parameters
func DefaultPolicyTable() *PolicyTable {
	return &PolicyTable{
		Neoliane: NeolianePolicy{
			CommonPolicy: CommonPolicy{
				Label:     "Néoliane Santé",
				DebitDays: []int{5, 10},
				Memo: []string{
					"1er prélèvement : 5 ou 10.",
					"Signature ≤25 → M+1 ; >25 → M+2 (jamais avant le mois de l’effet).",
					"Jamais de prorata : chaque période de date à date commencée est due.",
					"Frais 30 € (santé seule) séparés (~15) ; 0 € si couplé.",
				},
			},
			SignatureCutoffDay: 25,
			LateEffectDays:     3,
			FeeOptions: []FeeOption{
				{Value: "30", Label: "30 € (santé seule)", Amount: decimal.NewFromInt(30)},
				{Value: "0", Label: "0 € (couplé prévoyance)", Amount: decimal.Zero},
			},
		},
		Kereis: KereisPolicy{
			CommonPolicy: CommonPolicy{
				Label:     "Kereis (Cegema)",
				DebitDays: []int{5, 12, 24},
				Memo: []string{
					"Jours : 5 / 12 / 24.",
					"Si effet = mois de souscription : 1–15 → 1 mois ; 16–31 → 2 mois.",
					"Sinon : 1 mois, au jour choisi dans le mois d’effet.",
					"Cas rares : date exacte ajustée → échéancier Kereis.",
				},
			},
			HalfMonthCutoffDay: 15,
			IncludedFee:        decimal.NewFromInt(15),
		},
		April: AprilPolicy{
			CommonPolicy: CommonPolicy{
				Label:     "April (santé)",
				DebitDays: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
				Memo: []string{
					"Effet au 1er : 1 mois. Effet en cours : prorata jours restants.",
					"Jour 1 à 10. Jour antérieur à l’effet → prélèvement le mois suivant (prorata + 1 mois).",
					"Délais courts → possible décalage fin de mois d’effet / début mois suivant.",
					"Appel de cotisation ~15 j avant l’effet (raccourci si <15 j). Frais 20 € inclus.",
				},
			},
			ShortDelayDays: 12,
			IncludedFee:    decimal.NewFromInt(20),
		},
	}
}
