//go:build cgo && (darwin || linux)

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmiwrap/fmiwrap-go/internal/stubunit"
)

func writeConfig(t *testing.T, archive string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	body := "fmu: " + archive + `
instance: cli
stop_time: 1
step_size: 0.5
start_values:
  v: 4
outputs: [x, steps]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRunCommand(t *testing.T) {
	cfg := writeConfig(t, stubunit.Archive(t))

	out, err := execute(t, "run", "-c", cfg)
	require.NoError(t, err)

	var final map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &final))
	require.Equal(t, 4.0, final["x"])
	require.Equal(t, 2.0, final["steps"])
}

func TestRunCommandPlot(t *testing.T) {
	cfg := writeConfig(t, stubunit.Archive(t))

	out, err := execute(t, "run", "-c", cfg, "--plot", "x")
	require.NoError(t, err)
	require.Contains(t, out, "x vs time")

	_, err = execute(t, "run", "-c", cfg, "--plot", "nope")
	require.Error(t, err)
}

func TestInspectArchive(t *testing.T) {
	out, err := execute(t, "inspect", stubunit.Archive(t))
	require.NoError(t, err)
	require.Contains(t, out, "model:    Stub")
	require.Contains(t, out, stubunit.GUID)
	require.Contains(t, out, "co-simulation (stub_unit)")
	require.Contains(t, out, "types platform: default")
	require.Contains(t, out, "entry points:   43/44")
	require.Contains(t, out, "missing fmi2GetDirectionalDerivative")
}

func TestInspectLibrary(t *testing.T) {
	out, err := execute(t, "inspect", stubunit.Build(t))
	require.NoError(t, err)
	require.NotContains(t, out, "model:")
	require.Contains(t, out, "version:        2.0")
}
