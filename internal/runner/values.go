package runner

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fmiwrap/fmiwrap-go/internal/fmu"
	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2"
)

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}

func toInt32(v any) (int32, bool) {
	switch x := v.(type) {
	case int:
		return int32(x), x >= math.MinInt32 && x <= math.MaxInt32
	case int64:
		return int32(x), x >= math.MinInt32 && x <= math.MaxInt32
	case float64:
		return int32(x), x == math.Trunc(x) && x >= math.MinInt32 && x <= math.MaxInt32
	case string:
		i, err := strconv.ParseInt(x, 10, 32)
		return int32(i), err == nil
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case int:
		return x != 0, true
	case string:
		b, err := strconv.ParseBool(x)
		return b, err == nil
	}
	return false, false
}

// setValue writes one start value according to the variable's type.
func setValue(inst *fmi2.Instance, v fmu.Variable, value any) (fmi2.Status, error) {
	vr := []fmi2.ValueReference{fmi2.ValueReference(v.ValueReference)}
	bad := fmt.Errorf("%w: %s (%s) cannot take %v", ErrValue, v.Name, v.Kind(), value)

	switch v.Kind() {
	case fmu.KindReal:
		f, ok := toFloat(value)
		if !ok {
			return fmi2.StatusError, bad
		}
		return inst.SetReal(vr, []float64{f})
	case fmu.KindInteger, fmu.KindEnumeration:
		i, ok := toInt32(value)
		if !ok {
			return fmi2.StatusError, bad
		}
		return inst.SetInteger(vr, []int32{i})
	case fmu.KindBoolean:
		b, ok := toBool(value)
		if !ok {
			return fmi2.StatusError, bad
		}
		return inst.SetBoolean(vr, []bool{b})
	case fmu.KindString:
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		return inst.SetString(vr, []string{s})
	default:
		return fmi2.StatusError, bad
	}
}

// getValue reads one variable. Numeric values are also returned as float64
// for the time series; strings report ok=false there.
func getValue(inst *fmi2.Instance, v fmu.Variable) (any, float64, bool, fmi2.Status, error) {
	vr := []fmi2.ValueReference{fmi2.ValueReference(v.ValueReference)}

	switch v.Kind() {
	case fmu.KindReal:
		out := make([]float64, 1)
		status, err := inst.GetReal(vr, out)
		return out[0], out[0], true, status, err
	case fmu.KindInteger, fmu.KindEnumeration:
		out := make([]int32, 1)
		status, err := inst.GetInteger(vr, out)
		return out[0], float64(out[0]), true, status, err
	case fmu.KindBoolean:
		out := make([]bool, 1)
		status, err := inst.GetBoolean(vr, out)
		f := 0.0
		if out[0] {
			f = 1
		}
		return out[0], f, true, status, err
	case fmu.KindString:
		out := make([]string, 1)
		status, err := inst.GetString(vr, out)
		return out[0], 0, false, status, err
	default:
		return nil, 0, false, fmi2.StatusError, fmt.Errorf("%w: %s has no type", ErrValue, v.Name)
	}
}
