package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/display"
	"github.com/backmassage/coursegen/internal/logging"
	"github.com/backmassage/coursegen/internal/pipeline"
)

var (
	cfgFile string

	// appFs is the filesystem every command works on.
	appFs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "coursegen [outline]",
	Short: "Generate section folders and lecture note pages from a course outline",
	Long: `coursegen reads a course outline (section headers such as "01 - Basics",
numbered lectures, role plays, and player noise like "Play" or "5 min") and
creates one folder per section with a note-taking HTML page per lecture.

Existing section folders are matched by number and reused; pages are
overwritten on every run.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runGenerate, // Default action is generate
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./coursegen.yaml if present)",
	)
	config.DefineFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the effective config for cmd: defaults, config file,
// environment, then flags. A positional argument names the outline.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return cfg, err
	}
	if len(args) > 0 {
		cfg.Outline = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setup loads config and opens the logger. The caller must Close the logger.
func setup(cmd *cobra.Command, args []string) (config.Config, *logging.Logger, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return cfg, nil, err
	}
	log, err := logging.NewLoggerTo(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, fmt.Errorf("open log: %w", err)
	}
	return cfg, log, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(cmd.OutOrStdout())
	log.Info("=== coursegen v%s ===", version)

	if _, err := pipeline.Run(cmd.Context(), &cfg, appFs, log); err != nil {
		return reportedError{err}
	}
	return nil
}
