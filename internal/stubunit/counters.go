//go:build darwin || linux

package stubunit

import (
	"testing"

	"github.com/ebitengine/purego"
)

// Counters reads the stub unit's global counters.
type Counters struct {
	LiveInstances     func() int32
	InstantiatedTotal func() int32
	FreedTotal        func() int32
	LiveStates        func() int32
	LastSetBool       func(vr int32) int32
}

// OpenCounters loads the library at path a second time and binds the counter
// functions. The extra handle is closed when the test ends, so the counters
// stay readable after the code under test has unloaded its own handle.
func OpenCounters(tb testing.TB, path string) *Counters {
	tb.Helper()
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		tb.Fatalf("open stub counters: %v", err)
	}
	tb.Cleanup(func() { _ = purego.Dlclose(h) })

	c := &Counters{}
	purego.RegisterLibFunc(&c.LiveInstances, h, "stub_live_instances")
	purego.RegisterLibFunc(&c.InstantiatedTotal, h, "stub_instantiated_total")
	purego.RegisterLibFunc(&c.FreedTotal, h, "stub_freed_total")
	purego.RegisterLibFunc(&c.LiveStates, h, "stub_live_states")
	purego.RegisterLibFunc(&c.LastSetBool, h, "stub_last_set_bool")
	return c
}
