package main

import (
	"fmt"
	"strings"

	"github.com/adama/first-debit/internal/calculation"
	"github.com/adama/first-debit/internal/config"
	"github.com/adama/first-debit/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once settings are loaded
type app struct {
	configDir string
	settings  *config.Settings
	log       *logrus.Logger
	engine    *calculation.CalculationEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "firstdebit",
		Short:         "Estimate the first premium debit of a health-insurance subscription",
		Long:          "firstdebit estimates the amount and date of the first premium debit for Néoliane, Kereis and April health plans.\nResults are theoretical: the insurer's own schedule is authoritative.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding firstdebit.yaml")
	root.PersistentFlags().String("policies", "", "YAML file overriding the built-in insurer policy table")
	root.PersistentFlags().String("format", "", "output format (console, json, csv)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newComputeCmd(a), newDaysCmd(a), newPoliciesCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	v := config.NewViper(a.configDir)
	flags := cmd.Flags()
	for key, flag := range map[string]string{"policy_file": "policies", "format": "format", "log_level": "log-level"} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	settings, err := config.LoadSettings(v)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.settings = settings

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	a.log.SetLevel(level)

	policies := domain.DefaultPolicyTable()
	if settings.PolicyFile != "" {
		policies, err = config.NewInputParser().LoadPolicyFile(settings.PolicyFile)
		if err != nil {
			return err
		}
		a.log.Infof("loaded policy table from %s", settings.PolicyFile)
	}

	a.engine = calculation.NewCalculationEngineWithPolicies(policies)
	a.engine.Logger = a.log
	return nil
}

func parseInsurer(name string) (domain.Insurer, error) {
	insurer := domain.Insurer(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range domain.Insurers() {
		if insurer == known {
			return insurer, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, domain.ErrUnknownInsurer)
}
