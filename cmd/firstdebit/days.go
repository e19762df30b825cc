package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDaysCmd(a *app) *cobra.Command {
	var insurer string

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the debit days an insurer offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if insurer == "" {
				insurer = a.settings.Insurer
			}
			selected, err := parseInsurer(insurer)
			if err != nil {
				return err
			}
			days, err := a.engine.DebitDays(selected)
			if err != nil {
				return err
			}
			for _, d := range days {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&insurer, "insurer", "", "insurer: neoliane, kereis or april")
	return cmd
}
