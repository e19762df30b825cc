package calculation

import (
	"fmt"

	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/pkg/dateutil"
	money "github.com/adama/first-debit/pkg/decimal"
	"github.com/samber/lo"
)

// EvaluateApril prorates the effect month (full month when effect is on the
// 1st). When the chosen day is earlier than the effect day the debit moves to
// the following month and bundles the effect-month charge with one more full
// month. The document fee is always part of the first payment.
func EvaluateApril(p domain.AprilPolicy, in domain.Inputs) domain.Result {
	if incomplete(in) {
		return domain.Failure(domain.ErrIncompleteFields)
	}
	signature, effect := in.SignatureDate, in.EffectDate
	premium := money.NewMoneyFromDecimal(in.Premium)

	daysInMonth := dateutil.DaysInMonth(effect)
	remaining := daysInMonth - effect.Day() + 1
	canDebitInEffectMonth := in.DebitDay >= effect.Day()

	var lines []domain.ChargeLine
	if effect.Day() == 1 {
		lines = append(lines, line("1 mois complet", premium))
	} else {
		lines = append(lines, line(
			fmt.Sprintf("Prorata (%d j / %d)", remaining, daysInMonth),
			premium.Prorate(remaining, daysInMonth),
		))
	}

	effectMonth := dateutil.FirstOfMonth(effect)
	firstDebit := dateutil.SetDayOfMonth(effectMonth, in.DebitDay)
	if !canDebitInEffectMonth {
		firstDebit = dateutil.SetDayOfMonth(dateutil.AddMonths(effectMonth, 1), in.DebitDay)
		lines = append(lines, line("1 mois suivant", premium))
	}
	lines = append(lines, line("Frais de dossier (inclus)", money.NewMoneyFromDecimal(p.IncludedFee)))

	var alerts []string
	if !canDebitInEffectMonth {
		alerts = append(alerts,
			"Jour choisi antérieur à la date d’effet : April peut effectuer un prélèvement exceptionnel fin de mois d’effet (prorata, rare) au lieu de tout regrouper le mois suivant. L’échéancier confirmera.")
	}
	if dateutil.DaysBetween(signature, effect) < p.ShortDelayDays {
		alerts = append(alerts,
			"Délais courts entre signature et effet : fortes chances de décalage vers fin de mois d’effet ou début du mois suivant. L’échéancier (envoyé par la compagnie) fera foi.")
	}

	remarks := []string{
		"Effet au 1er : 1 mois complet ; effet en cours de mois : prorata des jours restants.",
		fmt.Sprintf("Jour de prélèvement : %d à %d.", lo.Min(p.DebitDays), lo.Max(p.DebitDays)),
		"Appel de cotisation envoyé ~15 jours avant l’effet (raccourci si <15 j).",
		fmt.Sprintf("Frais %s inclus au 1er paiement.", money.FormatEuro(p.IncludedFee)),
	}
	if !canDebitInEffectMonth {
		remarks = append(remarks,
			"Prélèvement reporté au mois suivant : mois d’effet + 1 mois regroupés (estimation, l’échéancier fait foi).")
	}

	return domain.Result{
		OK:             true,
		Insurer:        domain.InsurerApril,
		InsurerLabel:   p.Label,
		Amount:         total(lines),
		Lines:          lines,
		FirstDebitDate: firstDebit,
		Remarks:        remarks,
		Alerts:         alerts,
		IncludedFee:    feePtr(p.IncludedFee),
	}
}
