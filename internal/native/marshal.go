package native

import "fmt"

// fmi2Boolean is an int on every platform the FMI 2.0 headers target.
type wideBool = int32

// widenBools copies src into dst as fmi2Boolean values.
func widenBools(dst []wideBool, src []bool) {
	for i, b := range src {
		if b {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// narrowBools copies src into dst. Any non-zero fmi2Boolean is true.
func narrowBools(dst []bool, src []wideBool) {
	for i, w := range src {
		dst[i] = w != 0
	}
}

func checkLen(op string, nvr, nvalues int) error {
	if nvr != nvalues {
		return fmt.Errorf("%w: %s: %d value references but %d values", ErrMarshal, op, nvr, nvalues)
	}
	return nil
}
