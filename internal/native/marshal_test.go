package native

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidenBools(t *testing.T) {
	src := []bool{true, false, true, true, false}
	dst := []wideBool{7, 7, 7, 7, 7}
	widenBools(dst, src)
	require.Equal(t, []wideBool{1, 0, 1, 1, 0}, dst)
}

func TestNarrowBoolsTreatsNonZeroAsTrue(t *testing.T) {
	src := []wideBool{0, 1, -1, 2, 0, 1 << 30}
	dst := make([]bool, len(src))
	narrowBools(dst, src)
	require.Equal(t, []bool{false, true, true, true, false, true}, dst)
}

func TestBoolsRoundTripPreservesOrder(t *testing.T) {
	for n := 0; n < 40; n++ {
		src := make([]bool, n)
		for i := range src {
			src[i] = (i*7+n)%3 == 0
		}
		wide := make([]wideBool, n)
		widenBools(wide, src)
		back := make([]bool, n)
		narrowBools(back, wide)
		require.Equal(t, src, back, "n=%d", n)
	}
}

func TestCheckLen(t *testing.T) {
	require.NoError(t, checkLen("GetReal", 3, 3))
	require.NoError(t, checkLen("GetReal", 0, 0))

	err := checkLen("SetBoolean", 2, 3)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMarshal))
	require.Contains(t, err.Error(), "SetBoolean")
}

func TestSymbolTable(t *testing.T) {
	names := SymbolNames()
	require.Len(t, names, int(numSymbols))
	require.Contains(t, names, "fmi2SerializedFMUstateSize")

	s, ok := lookupSymbol("fmi2DoStep")
	require.True(t, ok)
	require.Equal(t, symDoStep, s)
	require.Equal(t, "fmi2DoStep", s.String())

	_, ok = lookupSymbol("fmi2Bogus")
	require.False(t, ok)
	require.Equal(t, "unknown", numSymbols.String())

	var tbl table
	tbl[symDoStep] = 1
	require.True(t, tbl.has(symDoStep))
	require.Equal(t, []string{"fmi2DoStep"}, tbl.resolved())
	require.Len(t, tbl.missing(), int(numSymbols)-1)
	require.NotContains(t, tbl.missing(), "fmi2DoStep")

	names[0] = "mutated"
	require.Equal(t, "fmi2GetTypesPlatform", SymbolNames()[0])
}

func TestRegistry(t *testing.T) {
	base := registered()
	var got []error
	s := &sinks{Error: func(err error) { got = append(got, err) }}

	h1 := register(s)
	h2 := register(s)
	require.NotEqual(t, h1, h2)
	require.NotZero(t, h1)
	require.Equal(t, base+2, registered())

	found, ok := lookup(h1)
	require.True(t, ok)
	found.report(ErrMarshal)
	require.Equal(t, []error{ErrMarshal}, got)

	unregister(h1)
	unregister(h2)
	_, ok = lookup(h1)
	require.False(t, ok)
	require.Equal(t, base, registered())

	// A sink without an error handler drops reports.
	(&sinks{}).report(ErrMarshal)
}

func TestStatusStrings(t *testing.T) {
	require.Equal(t, "ok", StatusOK.String())
	require.Equal(t, "pending", StatusPending.String())
	require.Equal(t, "co-simulation", CoSimulation.String())
	require.True(t, State{}.IsZero())
}
