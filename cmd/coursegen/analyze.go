package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/display"
	"github.com/backmassage/coursegen/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [outline]",
	Short: "Show lectures per section and flag suspicious sections",
	Long: `analyze groups the outline's lectures and unrecognized lines by section
header. Sections without lectures are flagged [!]; sections with
unrecognized lines or a repeated header number are flagged [*].

With -o yaml or -o json the breakdown is printed as structured data instead
of a table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd, args)
		if err != nil {
			return err
		}
		defer log.Close()

		a, err := pipeline.Analyze(cmd.Context(), &cfg, appFs)
		if err != nil {
			log.Error("%v", err)
			return reportedError{err}
		}
		if cmd.Flags().Changed("output") {
			return display.OutputTo(cmd.OutOrStdout(), cfg.OutputFormat, a)
		}
		pipeline.PrintAnalysisTable(cmd.OutOrStdout(), a)
		pipeline.LogAnalysisSummary(log, a)
		return nil
	},
}

func init() {
	config.DefineOutputFlag(analyzeCmd.Flags())
}
