package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, DefaultInstance, cfg.Instance)
	require.Equal(t, 0.1, cfg.StopTime)
	require.Equal(t, 0.01, cfg.StepSize)
	require.ErrorIs(t, cfg.Validate(), ErrInvalid, "default has no fmu")
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "sim.yaml", `
fmu: units/stub.fmu
instance: sim
stop_time: 1
step_size: 0.25
logging_on: true
debug_categories: [logAll]
start_values:
  v: 2
  gain: 1.5
  flagA: true
  label: run
outputs: [x, steps]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(filepath.Dir(path), "units/stub.fmu"), cfg.FMU)
	require.Equal(t, "sim", cfg.Instance)
	require.Equal(t, 0.0, cfg.StartTime)
	require.Equal(t, 1.0, cfg.StopTime)
	require.Equal(t, 0.25, cfg.StepSize)
	require.True(t, cfg.LoggingOn)
	require.Equal(t, []string{"logAll"}, cfg.DebugCategories)
	require.Equal(t, []string{"x", "steps"}, cfg.Outputs)
	require.Equal(t, 2, cfg.StartValues["v"])
	require.Equal(t, 1.5, cfg.StartValues["gain"])
	require.Equal(t, true, cfg.StartValues["flagA"])
	require.Equal(t, "run", cfg.StartValues["label"])
	require.Equal(t, 4, cfg.Steps())
}

func TestLoadKeepsAbsoluteFMU(t *testing.T) {
	path := writeFile(t, "sim.yaml", "fmu: /opt/units/a.fmu\noutputs: [y]\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/units/a.fmu", cfg.FMU)
	require.Equal(t, DefaultStepSize, cfg.StepSize)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "fmu: [unterminated\n"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "invalid.yaml", "fmu: a.fmu\nstep_size: 0\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := Default()
		c.FMU = "a.fmu"
		c.Outputs = []string{"x"}
		return c
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"no instance":   func(c *Config) { c.Instance = "" },
		"negative step": func(c *Config) { c.StepSize = -1 },
		"stop <= start": func(c *Config) { c.StopTime = c.StartTime },
		"tolerance":     func(c *Config) { c.Tolerance = -1e-6 },
		"dup output":    func(c *Config) { c.Outputs = []string{"x", "x"} },
		"empty output":  func(c *Config) { c.Outputs = []string{""} },
		"bad start":     func(c *Config) { c.StartValues = map[string]any{"x": []any{1}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			require.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.FMU = "/abs/a.fmu"
	cfg.Outputs = []string{"x"}
	cfg.StartValues = map[string]any{"v": 2.5}
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestSteps(t *testing.T) {
	c := Default()
	require.Equal(t, 10, c.Steps())
	c.StopTime = 1.05
	c.StepSize = 0.5
	require.Equal(t, 3, c.Steps())
}
