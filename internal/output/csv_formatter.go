package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/adama/first-debit/internal/domain"
)

// ErrNothingToExport is returned when a failed evaluation is exported as CSV
var ErrNothingToExport = errors.New("no charge lines to export")

// CSVFormatter writes one row per charge line, then the fee rows.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.Result) ([]byte, error) {
	if !result.OK {
		return nil, fmt.Errorf("%w: %s", ErrNothingToExport, result.Message)
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Insurer", "FirstDebitDate", "Kind", "Label", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	date := FormatDate(result.FirstDebitDate)
	for _, l := range result.Lines {
		row := []string{string(result.Insurer), date, "charge", l.Label, l.Amount.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if result.SeparateFee != nil {
		row := []string{string(result.Insurer), date, "separate_fee", "Frais de dossier", result.SeparateFee.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if result.IncludedFee != nil {
		row := []string{string(result.Insurer), date, "included_fee", "Frais inclus au 1er paiement", result.IncludedFee.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{string(result.Insurer), date, "total", "Total", result.Amount.StringFixed(2)}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
