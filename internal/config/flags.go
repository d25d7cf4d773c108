package config

// This file registers CLI flags and binds them into viper so that a flag set
// on the command line overrides the config file and environment. Flags are
// grouped into paths, behavior and display.

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps each flag name to the viper key it overrides.
var flagKeys = map[string]string{
	"outline":    "outline",
	"output-dir": "output_dir",
	"dry-run":    "dry_run",
	"verbose":    "verbose",
	"color":      "color",
	"log":        "log",
	"output":     "output",
}

// DefineFlags registers the shared flags on fs. Defaults shown in help come
// from [DefaultConfig]; the effective defaults are applied by [Load].
func DefineFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	definePathFlags(fs, d)
	defineBehaviorFlags(fs, d)
	defineDisplayFlags(fs, d)
}

// definePathFlags registers -i/--outline and -d/--output-dir.
func definePathFlags(fs *pflag.FlagSet, d Config) {
	fs.StringP("outline", "i", d.Outline, "Outline text file")
	fs.StringP("output-dir", "d", d.OutputDir, "Directory that receives the section folders")
}

// defineBehaviorFlags registers -n/--dry-run.
func defineBehaviorFlags(fs *pflag.FlagSet, d Config) {
	fs.BoolP("dry-run", "n", d.DryRun, "Preview only; do not create folders or files")
}

// defineDisplayFlags registers -v/--verbose, --color and -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, d Config) {
	fs.BoolP("verbose", "v", d.Verbose, "Log how every outline line was classified")
	fs.String("color", string(d.ColorMode), "Colored logs: auto | always | never")
	fs.StringP("log", "l", "", "Append logs to file")
}

// DefineOutputFlag registers -o/--output for commands with structured output.
func DefineOutputFlag(fs *pflag.FlagSet) {
	fs.StringP("output", "o", string(DefaultConfig().OutputFormat), "Output format: yaml | json")
}

// BindFlags binds every registered flag present in fs to its viper key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}
