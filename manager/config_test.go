package manager_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/manager"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()
	cfg, err := manager.ParseConfig([]byte(`
seed: 42
log_level: warn
min_percentage_added: 0.25
mean_part_number: 5
`))
	require.NoError(t, err)
	assert.Equal(t, manager.Config{Seed: 42, LogLevel: "warn", MinPercentageAdded: 0.25, MeanPartNumber: 5}, cfg)

	cfg, err = manager.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, manager.DefaultConfig(), cfg)

	cfg, err = manager.ParseConfig([]byte("seed: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, manager.DefaultConfig().MeanPartNumber, cfg.MeanPartNumber)
}

func TestParseConfig_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"percentage above one", "min_percentage_added: 1.5\n", true},
		{"negative percentage", "min_percentage_added: -0.1\n", true},
		{"zero parts", "mean_part_number: 0\n", true},
		{"log level", "log_level: loud\n", true},
		{"unknown key", "seeds: 3\n", false},
		{"bad type", "seed: many\n", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := manager.ParseConfig([]byte(tc.doc))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, manager.ErrInvalidConfig)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "manager.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nmean_part_number: 3\n"), 0o600))

	cfg, err := manager.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.MeanPartNumber)

	_, err = manager.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_OptionsReplaySeed(t *testing.T) {
	t.Parallel()
	source := sampleSource(t)
	cfg := manager.Config{Seed: 21, MeanPartNumber: 3}
	opts, err := cfg.Options()
	require.NoError(t, err)

	build := func(m *manager.Manager) string {
		target := grid.New()
		m.ExportAttributes(target)
		m.ExportRandomParts(target, cfg.MeanPartNumber)
		return target.String()
	}
	assert.Equal(t, build(manager.New(source, manager.WithSeed(21))), build(manager.New(source, opts...)))
}

func TestConfig_Logger(t *testing.T) {
	t.Parallel()
	logger, err := manager.Config{LogLevel: "warn", MeanPartNumber: 1}.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))

	nop, err := manager.DefaultConfig().Logger()
	require.NoError(t, err)
	assert.False(t, nop.Core().Enabled(zap.ErrorLevel))
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { manager.WithLogger(nil) })
	assert.Panics(t, func() { manager.WithRand(nil) })
}
