package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/backmassage/coursegen/internal/check"
	"github.com/backmassage/coursegen/internal/display"
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check [outline]",
	Short: "Verify the outline and output directory and summarize the outline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd, args)
		if err != nil {
			return err
		}
		defer log.Close()

		display.PrintBanner(cmd.OutOrStdout())
		if !check.RunCheck(&cfg, appFs, log) {
			return reportedError{errCheckFailed}
		}
		return nil
	},
}
