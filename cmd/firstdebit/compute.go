package main

import (
	"errors"

	"github.com/adama/first-debit/internal/domain"
	"github.com/adama/first-debit/internal/output"
	"github.com/spf13/cobra"
)

// errEvaluationFailed signals a failed evaluation whose message was already printed
var errEvaluationFailed = errors.New("evaluation failed")

func newComputeCmd(a *app) *cobra.Command {
	var (
		insurer string
		form    domain.Form
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the theoretical first debit",
		Example: `  firstdebit compute --insurer april --premium "89,90" --signature 15/04/2025 --effect 20/04/2025 --day 5
  firstdebit compute --insurer neoliane --premium 100 --signature 27/01/2025 --effect 01/02/2025 --day 5 --fee 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if insurer == "" {
				insurer = a.settings.Insurer
			}
			selected, err := parseInsurer(insurer)
			if err != nil {
				return err
			}

			result := a.engine.Evaluate(selected, form)
			format := a.settings.Format
			if !result.OK && output.NormalizeFormatName(format) == "csv" {
				format = "console"
			}
			if err := output.GenerateReport(cmd.OutOrStdout(), &result, format); err != nil {
				return err
			}
			if !result.OK {
				a.log.Debugf("evaluation failed: %v", result.Err)
				return errEvaluationFailed
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&insurer, "insurer", "", "insurer: neoliane, kereis or april")
	flags.StringVar(&form.Premium, "premium", "", "monthly premium, comma or period decimals")
	flags.StringVar(&form.SignatureDate, "signature", "", "signature date (jj/mm/aaaa)")
	flags.StringVar(&form.EffectDate, "effect", "", "effect date (jj/mm/aaaa)")
	flags.IntVar(&form.DebitDay, "day", 0, "debit day of month")
	flags.StringVar(&form.FeeOption, "fee", "", "Néoliane document fee option value from the policy table (30 or 0 by default)")
	return cmd
}
