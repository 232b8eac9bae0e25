package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "featex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "R", cfg.Bands.Primary)
	assert.Equal(t, "B", cfg.Bands.Secondary)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Empty(t, cfg.Only)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
only: [Mean, Std, PeriodLS]
exclude: [CAR_sigma]
data: [time, magnitude, error]
workers: 4
seed: 3
bands:
  primary: I
  secondary: V
output:
  format: json
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mean", "Std", "PeriodLS"}, cfg.Only)
	assert.Equal(t, []string{"CAR_sigma"}, cfg.Exclude)
	assert.Equal(t, []string{"time", "magnitude", "error"}, cfg.Data)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, "I", cfg.Bands.Primary)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfigBadFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\n")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadTable(t *testing.T) {
	t1, m, e, err := readTable(strings.NewReader("1 10 0.1\n2 11 0.2\n# comment\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, t1)
	assert.Equal(t, []float64{10, 11}, m)
	assert.Equal(t, []float64{0.1, 0.2}, e)
}
