package output

import (
	"bytes"
	"fmt"

	"github.com/adama/first-debit/internal/domain"
)

// ConsoleFormatter renders the result the way the agent reads it on screen.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	if !result.OK {
		msg := result.Message
		if msg == "" {
			msg = "Complétez les champs."
		}
		fmt.Fprintln(&buf, msg)
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "Compagnie : %s\n", result.InsurerLabel)
	fmt.Fprintf(&buf, "Montant du 1er prélèvement : %s\n", FormatCurrency(result.Amount))
	fmt.Fprintf(&buf, "Date estimée du 1er prélèvement : %s\n", FormatDate(result.FirstDebitDate))

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Détail :")
	for _, l := range result.Lines {
		fmt.Fprintf(&buf, "  - %s : %s\n", l.Label, FormatCurrency(l.Amount))
	}
	if result.SeparateFee != nil && result.SeparateFee.IsPositive() {
		fmt.Fprintf(&buf, "  - Frais de dossier (prélevés séparément) : %s\n", FormatCurrency(*result.SeparateFee))
	}
	if result.IncludedFee != nil && result.IncludedFee.IsPositive() {
		fmt.Fprintf(&buf, "  - Frais %s inclus au 1er paiement\n", FormatCurrency(*result.IncludedFee))
	}

	writeList(&buf, "À savoir :", result.Remarks)
	writeList(&buf, "⚠ Cas à confirmer :", result.Alerts)
	return buf.Bytes(), nil
}

func writeList(buf *bytes.Buffer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, title)
	for _, item := range items {
		fmt.Fprintf(buf, "  - %s\n", item)
	}
}
