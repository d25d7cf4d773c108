package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. COURSEGEN_OUTPUT_DIR.
const EnvPrefix = "COURSEGEN"

// Load layers configuration onto [DefaultConfig]. Precedence, lowest first:
// defaults, config file, environment (including a .env file in the working
// directory), flags bound with [BindFlags].
//
// cfgFile names an explicit config file, which must exist. When empty, an
// optional coursegen.yaml in the working directory is used.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	cfg := DefaultConfig()

	v.SetDefault("outline", cfg.Outline)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("dry_run", cfg.DryRun)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("color", string(cfg.ColorMode))
	v.SetDefault("log", cfg.LogFile)
	v.SetDefault("output", string(cfg.OutputFormat))

	// .env only fills variables that are not already set.
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("coursegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
