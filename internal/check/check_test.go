package check

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/outline"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recordingLogger) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recordingLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recordingLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }
func (r *recordingLogger) Debug(v bool, f string, a ...interface{}) {
	if v {
		r.add("DEBUG", f, a...)
	}
}

func (r *recordingLogger) count(level string) int {
	n := 0
	for _, l := range r.lines {
		if len(l) > len(level) && l[:len(level)+1] == level+" " {
			n++
		}
	}
	return n
}

const sampleOutline = "01 - Basics\nPlay\n1. Hello\n2. World\n5 min\nsomething odd\n"

func TestRequireOutline(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/outline.txt", []byte(sampleOutline), 0o644))

	assert.NoError(t, RequireOutline(fs, "/in/outline.txt"))

	err := RequireOutline(fs, "/in/missing.txt")
	assert.ErrorIs(t, err, ErrOutlineNotFound)
	assert.Contains(t, err.Error(), "/in/missing.txt")

	assert.ErrorIs(t, RequireOutline(fs, "/in"), ErrOutlineIsDir)
}

func TestRequireWritable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	require.NoError(t, RequireWritable(fs, "/out"))
	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file must be removed")

	ro := afero.NewReadOnlyFs(fs)
	assert.ErrorIs(t, RequireWritable(ro, "/out"), ErrOutputNotWritable)
}

func TestClassifyCounts(t *testing.T) {
	counts := ClassifyCounts(outline.SplitLines(sampleOutline))
	assert.Equal(t, 1, counts[outline.KindSection])
	assert.Equal(t, 2, counts[outline.KindLecture])
	assert.Equal(t, 2, counts[outline.KindNoise])
	assert.Equal(t, 1, counts[outline.KindUnrecognized])
	assert.Equal(t, 0, counts[outline.KindRolePlay])
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(fs afero.Fs) afero.Fs
		outputDir string
		want      bool
		wantErrs  int
	}{
		{
			name: "all good",
			setup: func(fs afero.Fs) afero.Fs {
				_ = fs.MkdirAll("/out", 0o755)
				return fs
			},
			outputDir: "/out",
			want:      true,
		},
		{
			name:      "output root missing is not fatal",
			setup:     func(fs afero.Fs) afero.Fs { return fs },
			outputDir: "/not-yet",
			want:      true,
		},
		{
			name: "read-only output root",
			setup: func(fs afero.Fs) afero.Fs {
				_ = fs.MkdirAll("/out", 0o755)
				return afero.NewReadOnlyFs(fs)
			},
			outputDir: "/out",
			want:      false,
			wantErrs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(base, "/outline.txt", []byte(sampleOutline), 0o644))
			fs := tt.setup(base)

			cfg := config.DefaultConfig()
			cfg.Outline = "/outline.txt"
			cfg.OutputDir = tt.outputDir

			log := &recordingLogger{}
			assert.Equal(t, tt.want, RunCheck(&cfg, fs, log))
			assert.Equal(t, tt.wantErrs, log.count("ERROR"))
		})
	}
}

func TestRunCheck_MissingOutline(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.DefaultConfig()
	cfg.Outline = "/nope.txt"
	cfg.OutputDir = "/"

	log := &recordingLogger{}
	assert.False(t, RunCheck(&cfg, fs, log))
	assert.GreaterOrEqual(t, log.count("ERROR"), 1)
}

func TestRunCheck_VerboseListsUnrecognized(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/outline.txt", []byte(sampleOutline), 0o644))
	cfg := config.DefaultConfig()
	cfg.Outline = "/outline.txt"
	cfg.OutputDir = "/"
	cfg.Verbose = true

	log := &recordingLogger{}
	require.True(t, RunCheck(&cfg, fs, log))
	assert.Contains(t, log.lines, `DEBUG   unrecognized: "something odd"`)
}
