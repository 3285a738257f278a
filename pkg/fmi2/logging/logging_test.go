package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmiwrap/fmiwrap-go/internal/native"
)

func newBufferLogger(buf *bytes.Buffer) Logger {
	return New(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func TestSinkLevels(t *testing.T) {
	cases := []struct {
		status native.Status
		level  string
	}{
		{native.StatusOK, "level=INFO"},
		{native.StatusWarning, "level=WARN"},
		{native.StatusDiscard, "level=WARN"},
		{native.StatusError, "level=ERROR"},
		{native.StatusFatal, "level=ERROR"},
		{native.StatusPending, "level=DEBUG"},
	}
	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			var buf bytes.Buffer
			Sink(newBufferLogger(&buf))("sim", tc.status, "logAll", "stepped")

			line := buf.String()
			require.Contains(t, line, tc.level)
			require.Contains(t, line, "msg=stepped")
			require.Contains(t, line, "instance=sim")
			require.Contains(t, line, "category=logAll")
			require.Contains(t, line, "status="+tc.status.String())
		})
	}
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).With("run", "r1")
	Sink(l)("sim", native.StatusOK, "", "hello")
	require.Contains(t, buf.String(), "run=r1")
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	Reporter(newBufferLogger(&buf))(errors.New("boom"))
	require.True(t, strings.Contains(buf.String(), "level=ERROR"))
	require.Contains(t, buf.String(), "error=boom")
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		Sink(Discard())("sim", native.StatusFatal, "c", "dropped")
	})
}

func TestNewNilUsesDefault(t *testing.T) {
	require.NotNil(t, New(nil))
}
