package output

import (
	"github.com/adama/first-debit/internal/domain"
	json "github.com/goccy/go-json"
	"github.com/samber/lo"
)

// JSONFormatter serializes the result as pretty-printed JSON with display-ready
// amounts (two decimals) and DD/MM/YYYY dates.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type jsonResult struct {
	OK             bool       `json:"ok"`
	Message        string     `json:"message,omitempty"`
	Insurer        string     `json:"insurer,omitempty"`
	InsurerLabel   string     `json:"insurer_label,omitempty"`
	Amount         string     `json:"amount,omitempty"`
	Lines          []jsonLine `json:"lines,omitempty"`
	FirstDebitDate string     `json:"first_debit_date,omitempty"`
	Remarks        []string   `json:"remarks,omitempty"`
	Alerts         []string   `json:"alerts"`
	SeparateFee    *string    `json:"separate_fee,omitempty"`
	IncludedFee    *string    `json:"included_fee,omitempty"`
}

func (j JSONFormatter) Format(result *domain.Result) ([]byte, error) {
	view := jsonResult{OK: result.OK, Message: result.Message, Alerts: []string{}}
	if result.OK {
		view.Insurer = string(result.Insurer)
		view.InsurerLabel = result.InsurerLabel
		view.Amount = result.Amount.StringFixed(2)
		view.Lines = lo.Map(result.Lines, func(l domain.ChargeLine, _ int) jsonLine {
			return jsonLine{Label: l.Label, Amount: l.Amount.StringFixed(2)}
		})
		view.FirstDebitDate = FormatDate(result.FirstDebitDate)
		view.Remarks = result.Remarks
		if len(result.Alerts) > 0 {
			view.Alerts = result.Alerts
		}
		if result.SeparateFee != nil {
			view.SeparateFee = lo.ToPtr(result.SeparateFee.StringFixed(2))
		}
		if result.IncludedFee != nil {
			view.IncludedFee = lo.ToPtr(result.IncludedFee.StringFixed(2))
		}
	}
	return json.MarshalIndent(view, "", "  ")
}
