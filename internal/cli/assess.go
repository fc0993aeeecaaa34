package cli

import (
	"github.com/amirasaad/transparency/pkg/deferral"
	"github.com/spf13/cobra"
)

func newAssessCmd(rc *RootConfig) *cobra.Command {
	f := &tradeFlags{}
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess one trade under the UK and EU regimes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := f.input()
			if err != nil {
				return err
			}
			a, err := rc.Deferral.Assess(cmd.Context(), in)
			if err != nil {
				return err
			}
			return rc.Printer.Assessment(a)
		},
	}
	cmd.Flags().StringVarP(&f.Category, "category", "c", "", "bond category: sovereign-public, corporate-convertible-other or covered")
	f.bindSizes(cmd)
	f.bindSovereign(cmd)
	f.bindRating(cmd)
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newCorporateCoveredCmd(rc *RootConfig) *cobra.Command {
	f := &tradeFlags{}
	cmd := &cobra.Command{
		Use:   "corporate-covered",
		Short: "Assess a corporate or covered bond trade under the UK regime and both EU regimes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := f.input()
			if err != nil {
				return err
			}
			a, err := rc.Deferral.AssessCorporateCovered(cmd.Context(), in)
			if err != nil {
				return err
			}
			return rc.Printer.Assessment(a)
		},
	}
	f.bindSizes(cmd)
	f.bindRating(cmd)
	return cmd
}

func newVariantsCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the rule variants and every outcome each can produce",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return rc.Printer.Variants(deferral.Variants(deferral.Ladders...))
		},
	}
}
