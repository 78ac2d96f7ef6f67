package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/blueprint"
)

// isolate points config discovery at an empty directory so a developer's
// own config file cannot leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, blueprint.DefaultExam, cfg.Exam)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Select.Count)
	assert.Zero(t, cfg.Select.Seed)
	assert.Equal(t, 5, cfg.Snapshots.Keep)
	assert.Empty(t, cfg.Blueprints)
}

func TestLoad_DefaultFileEnvAndFlags(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "examprep", "config.yaml"), `
exam: S65
log:
  level: info
select:
  count: 20
  seed: 99
`)
	t.Setenv("EXAMPREP_SELECT_COUNT", "15")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("exam", "", "")
	flags.String("log-level", "", "")
	flags.String("db", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "S65", cfg.Exam, "from file")
	assert.Equal(t, uint64(99), cfg.Select.Seed, "from file")
	assert.Equal(t, 15, cfg.Select.Count, "env beats file")
	assert.Equal(t, "debug", cfg.Log.Level, "flag beats file")
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"zero count", "select:\n  count: 0\n"},
		{"keep zero", "snapshots:\n  keep: 0\n"},
		{"blueprint without exam", "blueprints:\n  - entries:\n      - domain: A\n        weight: 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, tt.yaml)
			_, err := Load(path, nil)
			assert.Error(t, err)
		})
	}
}

func TestRegisterBlueprints(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
exam: ZZTEST
blueprints:
  - exam: ZZTEST
    name: Test Exam
    entries:
      - domain: ALPHA
        weight: 60
      - domain: BETA
        weight: 40
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.NoError(t, cfg.RegisterBlueprints())

	bp, ok := blueprint.Get("ZZTEST")
	require.True(t, ok)
	assert.Equal(t, 60, bp.Weight("ALPHA"))
	assert.Equal(t, "Test Exam", bp.Name)
}

func TestRegisterBlueprints_RejectsBadWeights(t *testing.T) {
	cfg := &Config{Blueprints: []blueprint.Blueprint{{
		Exam:    "ZZBAD",
		Entries: []blueprint.Entry{{Domain: "A", Weight: 50}},
	}}}
	assert.Error(t, cfg.RegisterBlueprints())
	_, ok := blueprint.Get("ZZBAD")
	assert.False(t, ok)
}
