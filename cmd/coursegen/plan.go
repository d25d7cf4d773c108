package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/display"
	"github.com/backmassage/coursegen/internal/pipeline"
)

var planCmd = &cobra.Command{
	Use:   "plan [outline]",
	Short: "Print the pages a run would generate, without writing anything",
	Long: `plan walks the outline like a normal run, looking up existing section
folders but creating nothing, and prints every page it would write as YAML
or JSON together with the run totals.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		res, err := pipeline.Plan(cmd.Context(), &cfg, appFs)
		if err != nil {
			return err
		}
		return display.OutputTo(cmd.OutOrStdout(), cfg.OutputFormat, res)
	},
}

func init() {
	config.DefineOutputFlag(planCmd.Flags())
}
