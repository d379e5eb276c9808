package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/bench"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/logger"
	"github.com/katalvlaran/algoviz/sorttrace"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, bench.DefaultSweepConfig(), cfg.Sweep.SweepConfig)
	assert.Equal(t, bench.Comparisons, cfg.Sweep.Metric)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Overlay(t *testing.T) {
	doc := `
server:
  addr: "127.0.0.1:9000"
  writeTimeout: 2m
  corsOrigins: ["https://viz.example"]
  logMode: prod
  limits:
    maxN: 256
sweep:
  algorithms: [merge, tim]
  kind: reversed
  maxN: 800
  metric: writes
`
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://viz.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, logger.ModeProd, cfg.Server.LogMode)
	assert.Equal(t, 256, cfg.Server.Limits.MaxN)
	assert.Equal(t, 201, cfg.Server.Limits.MaxRows)

	assert.Equal(t, []string{"merge", "tim"}, cfg.Sweep.Algorithms)
	assert.Equal(t, arraygen.Reversed, cfg.Sweep.Kind)
	assert.Equal(t, 100, cfg.Sweep.MinN)
	assert.Equal(t, 800, cfg.Sweep.MaxN)
	assert.Equal(t, bench.Writes, cfg.Sweep.Metric)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "server:\n  port: 80\n",
		"bad mode":     "server:\n  logMode: loud\n",
		"bad metric":   "sweep:\n  metric: joules\n",
		"bad kind":     "sweep:\n  kind: sorted\n",
		"bad duration": "server:\n  readTimeout: soon\n",
		"not yaml":     "server: [",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = ""
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Server.ReadTimeout = -time.Second
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Server.Limits.MaxTrials = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Server.Limits.MaxRows = 2
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Sweep.Trials = 0
	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, bench.ErrBadTrials)

	cfg = config.Default()
	cfg.Sweep.Algorithms = []string{"bogo"}
	err = cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, sorttrace.ErrUnknownAlgorithm)
}

func TestLoadAndMarshal(t *testing.T) {
	want := config.Default()
	want.Sweep.Algorithms = []string{"heap", "intro"}
	want.Server.LogMode = logger.ModeSilence
	b, err := want.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(b), "logMode: silence")
	assert.Contains(t, string(b), "readTimeout: 10s")

	path := filepath.Join(t.TempDir(), "algoviz.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func mapLookup(m map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(mapLookup(map[string]string{
		config.EnvAddr:        "127.0.0.1:9000",
		config.EnvLogMode:     " PROD ",
		config.EnvCORSOrigins: "https://a.example, ,https://b.example",
		config.EnvMaxN:        "64",
	})))
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, logger.ModeProd, cfg.Server.LogMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 64, cfg.Server.Limits.MaxN)

	// empty values leave the field alone
	cfg = config.Default()
	require.NoError(t, cfg.ApplyEnv(mapLookup(map[string]string{config.EnvAddr: "  "})))
	assert.Equal(t, config.Default(), cfg)
}

func TestApplyEnv_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"mode":     {config.EnvLogMode: "loud"},
		"maxN":     {config.EnvMaxN: "many"},
		"negative": {config.EnvMaxN: "-1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			assert.ErrorIs(t, cfg.ApplyEnv(mapLookup(env)), config.ErrInvalidConfig)
		})
	}
}

func TestLookupEnv_DotenvAndProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ALGOVIZ_ADDR=:7000\nALGOVIZ_MAX_N=100\n"), 0o600))
	t.Setenv(config.EnvMaxN, "200")

	lookup, err := config.LookupEnv(path)
	require.NoError(t, err)
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, 200, cfg.Server.Limits.MaxN, "process environment wins")

	_, err = config.LookupEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
