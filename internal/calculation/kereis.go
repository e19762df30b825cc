package calculation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/pkg/dateutil"
	money "github.com/adama/first-debit/pkg/decimal"
	"github.com/samber/lo"
)

// EvaluateKereis charges one month, or two when signature and effect share a
// month and the signature is past the half-month cut-off. The debit falls on
// the chosen day of the effect month.
func EvaluateKereis(p domain.KereisPolicy, in domain.Inputs) domain.Result {
	if incomplete(in) {
		return domain.Failure(domain.ErrIncompleteFields)
	}
	signature, effect := in.SignatureDate, in.EffectDate
	sameMonth := dateutil.SameMonth(signature, effect)

	months := 1
	if sameMonth && signature.Day() > p.HalfMonthCutoffDay {
		months = 2
	}

	var alerts []string
	effectMonth := dateutil.FirstOfMonth(effect)
	firstDebit := dateutil.SetDayOfMonth(effectMonth, in.DebitDay)
	if sameMonth && firstDebit.Before(signature) {
		firstDebit = dateutil.SetDayOfMonth(dateutil.AddMonths(effectMonth, 1), in.DebitDay)
		alerts = append(alerts,
			"Chez Kereis, le 1er passage est souvent le 24 quand effet et souscription sont le même mois. L’échéancier confirmera la date exacte.")
	}

	lines := []domain.ChargeLine{
		line(fmt.Sprintf("%d mois", months), money.NewMoneyFromDecimal(in.Premium).Times(months)),
	}
	days := lo.Map(p.DebitDays, func(d int, _ int) string { return strconv.Itoa(d) })

	return domain.Result{
		OK:             true,
		Insurer:        domain.InsurerKereis,
		InsurerLabel:   p.Label,
		Amount:         total(lines),
		Lines:          lines,
		FirstDebitDate: firstDebit,
		Remarks: []string{
			fmt.Sprintf("Règle : 1–%d → 1 mois ; %d–31 → 2 mois si effet le même mois.", p.HalfMonthCutoffDay, p.HalfMonthCutoffDay+1),
			"Sinon : 1 mois, prélevé au jour choisi dans le mois d’effet.",
			"Jours possibles : " + strings.Join(days, " / ") + ".",
			fmt.Sprintf("Frais %s inclus au 1er paiement.", money.FormatEuro(p.IncludedFee)),
		},
		Alerts:      alerts,
		IncludedFee: feePtr(p.IncludedFee),
	}
}
