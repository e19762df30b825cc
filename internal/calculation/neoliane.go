package calculation

import (
	"fmt"
	"time"

	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/pkg/dateutil"
	money "github.com/adama/first-debit/pkg/decimal"
)

// EvaluateNeoliane applies date-to-date billing without proration. The first
// debit lands in M+1 (signature on or before the cut-off day) or M+2, never
// before the effect month, and charges every period already started by then.
func EvaluateNeoliane(p domain.NeolianePolicy, in domain.Inputs) domain.Result {
	if incomplete(in) {
		return domain.Failure(domain.ErrIncompleteFields)
	}
	signature, effect := in.SignatureDate, in.EffectDate

	offset := 1
	if signature.Day() > p.SignatureCutoffDay {
		offset = 2
	}
	month := dateutil.AddMonths(dateutil.FirstOfMonth(signature), offset)
	if dateutil.MonthBefore(month, effect) {
		month = dateutil.FirstOfMonth(effect)
	}
	firstDebit := dateutil.SetDayOfMonth(month, in.DebitDay)

	periods := StartedPeriods(effect, firstDebit)
	lines := []domain.ChargeLine{
		line(periodLabel(periods), money.NewMoneyFromDecimal(in.Premium).Times(periods)),
	}

	var alerts []string
	if periods >= 2 {
		alerts = append(alerts, fmt.Sprintf(
			"Le 1er prélèvement regroupe %d périodes de date à date déjà commencées : règle de regroupement à confirmer par l’échéancier Néoliane.",
			periods))
	}
	if dateutil.DaysBetween(effect, dateutil.EndOfMonth(effect)) <= p.LateEffectDays {
		alerts = append(alerts,
			"Effet très tard dans le mois : Néoliane peut décaler le 1er prélèvement d’un mois. L’échéancier (envoyé par la compagnie) confirmera.")
	}

	return domain.Result{
		OK:             true,
		Insurer:        domain.InsurerNeoliane,
		InsurerLabel:   p.Label,
		Amount:         total(lines),
		Lines:          lines,
		FirstDebitDate: firstDebit,
		Remarks: []string{
			"Cotisations de date à date (pas de prorata).",
			fmt.Sprintf("1er passage théorique en M+%d selon la signature.", offset),
			"Toute période de date à date commencée à la date du 1er prélèvement est due (estimation, l’échéancier fait foi).",
			"Frais de dossier prélevés séparément (souvent autour du 15).",
		},
		Alerts:      alerts,
		SeparateFee: feePtr(in.FeeOption),
	}
}

// StartedPeriods counts the date-to-date periods, anchored on the effect
// date, whose start is on or before at. The result is at least 1.
func StartedPeriods(effect, at time.Time) int {
	count := 0
	for !dateutil.AddMonths(effect, count).After(at) {
		count++
	}
	if count < 1 {
		return 1
	}
	return count
}

func periodLabel(periods int) string {
	if periods == 1 {
		return "1 mois"
	}
	return fmt.Sprintf("%d mois (périodes commencées)", periods)
}
