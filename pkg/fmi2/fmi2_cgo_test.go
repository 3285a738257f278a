//go:build cgo && (darwin || linux)

package fmi2

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmiwrap/fmiwrap-go/internal/stubunit"
	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2/logging"
)

func TestInstantiateRoutesUnitLogsToLogger(t *testing.T) {
	path := stubunit.Build(t)
	var buf bytes.Buffer
	logger := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	inst, err := Instantiate(path, InstanceConfig{
		Name:      "routed",
		Type:      CoSimulation,
		GUID:      stubunit.GUID,
		LoggingOn: true,
	}, WithLogger(logger))
	require.NoError(t, err)

	status, err := inst.SetDebugLogging(true, []string{"multi"})
	require.NoError(t, err)
	require.Equal(t, StatusOK, status)
	require.NoError(t, inst.Free())

	out := buf.String()
	require.Contains(t, out, `msg="x=42 y=abc z=1.50"`)
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "instance=routed")
	require.Contains(t, out, `msg="freeing routed after 0 steps"`)
	require.Contains(t, out, `msg="unit instantiated"`)
}

func TestInstantiateFailure(t *testing.T) {
	path := stubunit.Build(t)
	var messages []string
	inst, err := Instantiate(path, InstanceConfig{Name: "refused", GUID: stubunit.FailGUID},
		WithLogSink(func(_ string, _ Status, _, message string) { messages = append(messages, message) }))
	require.Nil(t, inst)
	require.ErrorIs(t, err, ErrInstantiate)
	require.Equal(t, []string{"instantiation of refused refused"}, messages)
}

func TestStepFinishedOption(t *testing.T) {
	path := stubunit.Build(t)
	var statuses []Status
	inst, err := Instantiate(path, InstanceConfig{Name: "async", Type: CoSimulation, GUID: stubunit.GUID},
		WithLogger(logging.Discard()), WithStepFinished(func(s Status) { statuses = append(statuses, s) }))
	require.NoError(t, err)
	defer inst.Free()

	_, err = inst.SetInteger([]ValueReference{stubunit.IntNotify}, []int32{1})
	require.NoError(t, err)
	_, err = inst.DoStep(0, 0.1, false)
	require.NoError(t, err)
	require.Equal(t, []Status{StatusOK}, statuses)
}
