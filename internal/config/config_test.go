package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/courses/go", "/courses/go"},
		{"single trailing slash", "/courses/go/", "/courses/go"},
		{"multiple trailing slashes", "/courses/go///", "/courses/go"},
		{"root path", "/", "/"},
		{"relative path", "notes", "notes"},
		{"relative with slash", "notes/", "notes"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		want    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, ColorAuto, false},
		{"always is valid", ColorAlways, ColorAlways, false},
		{"never is valid", ColorNever, ColorNever, false},
		{"case folded", "NEVER", ColorNever, false},
		{"empty is invalid", "", "", true},
		{"unknown is invalid", "rainbow", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ColorMode)
		})
	}
}

func TestValidate_OutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  OutputFormat
		wantErr bool
	}{
		{"yaml is valid", OutputYAML, false},
		{"json is valid", OutputJSON, false},
		{"xml is invalid", "xml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.OutputFormat = tt.format
			err := cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v", err)
		})
	}
}

func TestValidate_RequiresOutline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Outline = "  "
	assert.Error(t, cfg.Validate())
}

func TestValidate_NormalizesOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = "notes/"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "notes", cfg.OutputDir)

	cfg.OutputDir = ""
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "outline.txt", cfg.Outline)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.Equal(t, OutputYAML, cfg.OutputFormat)
	assert.False(t, cfg.DryRun, "default DryRun should be false")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coursegen.yaml")
	content := `
outline: course.txt
output_dir: notes
dry_run: true
color: never
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "course.txt", cfg.Outline)
	assert.Equal(t, "notes", cfg.OutputDir)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, ColorNever, cfg.ColorMode)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coursegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: from-file\n"), 0o644))
	t.Setenv("COURSEGEN_OUTPUT_DIR", "from-env")
	t.Setenv("COURSEGEN_VERBOSE", "true")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("COURSEGEN_OUTLINE", "env.txt")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(fs)
	DefineOutputFlag(fs)
	require.NoError(t, fs.Parse([]string{"-i", "flag.txt", "--dry-run", "-o", "json"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "flag.txt", cfg.Outline)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, OutputJSON, cfg.OutputFormat)
	assert.Equal(t, ".", cfg.OutputDir, "unset flags keep the default")
}
