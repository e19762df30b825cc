package main

import (
	"github.com/adama/first-debit/internal/config"
	"github.com/adama/first-debit/internal/output"
	"github.com/spf13/cobra"
)

func newPoliciesCmd(a *app) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "policies",
		Short: "Show the per-insurer rules memo, or export the policy table as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if export != "" {
				if err := config.SavePolicyTable(a.engine.Policies, export); err != nil {
					return err
				}
				a.log.Infof("policy table written to %s", export)
				return nil
			}
			_, err := cmd.OutOrStdout().Write(output.FormatPolicyMemo(a.engine.Policies))
			return err
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "write the active policy table to this YAML file")
	return cmd
}
