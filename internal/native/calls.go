//go:build cgo

package native

/*
#include <stdlib.h>
#include "fmiw.h"
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Every forwarding method returns the unit's status verbatim with a nil
// error. A non-nil error is a wrapper-local failure and comes with
// StatusError; the status is then not the unit's.

func vrPtr(v []ValueReference) *C.fmi2ValueReference {
	if len(v) == 0 {
		return nil
	}
	return (*C.fmi2ValueReference)(unsafe.Pointer(&v[0]))
}

func realPtr(v []float64) *C.fmi2Real {
	if len(v) == 0 {
		return nil
	}
	return (*C.fmi2Real)(unsafe.Pointer(&v[0]))
}

func intPtr(v []int32) *C.fmi2Integer {
	if len(v) == 0 {
		return nil
	}
	return (*C.fmi2Integer)(unsafe.Pointer(&v[0]))
}

func bytePtr(v []byte) *C.fmi2Byte {
	if len(v) == 0 {
		return nil
	}
	return (*C.fmi2Byte)(unsafe.Pointer(&v[0]))
}

// allocBools returns a C buffer of n fmi2Boolean and a Go view of it. The
// caller frees the buffer with C.free.
func allocBools(n int) (*C.fmi2Boolean, []wideBool, error) {
	if n == 0 {
		return nil, nil, nil
	}
	p := C.fmiw_alloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.fmi2Boolean(0))))
	if p == nil {
		return nil, nil, fmt.Errorf("%w: boolean buffer of %d entries", ErrMarshal, n)
	}
	return (*C.fmi2Boolean)(p), unsafe.Slice((*wideBool)(p), n), nil
}

// allocStrings returns a C array of n fmi2String.
func allocStrings(n int) (*C.fmi2String, []C.fmi2String, error) {
	if n == 0 {
		return nil, nil, nil
	}
	p := C.fmiw_alloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.fmi2String(nil))))
	if p == nil {
		return nil, nil, fmt.Errorf("%w: string array of %d entries", ErrMarshal, n)
	}
	arr := unsafe.Slice((*C.fmi2String)(p), n)
	for i := range arr {
		arr[i] = nil
	}
	return (*C.fmi2String)(p), arr, nil
}

// cStrings copies values into a C array of C strings. release frees the
// strings and the array.
func cStrings(values []string) (*C.fmi2String, func(), error) {
	p, arr, err := allocStrings(len(values))
	if err != nil {
		return nil, func() {}, err
	}
	for i, v := range values {
		arr[i] = C.CString(v)
	}
	release := func() {
		for _, s := range arr {
			C.free(unsafe.Pointer(s))
		}
		if p != nil {
			C.free(unsafe.Pointer(p))
		}
	}
	return p, release, nil
}

func (i *Instance) simple(s symbol) (Status, error) {
	fn, err := i.fn(s)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_component(fn, i.component)), nil
}

// SetDebugLogging forwards fmi2SetDebugLogging.
func (i *Instance) SetDebugLogging(loggingOn bool, categories []string) (Status, error) {
	fn, err := i.fn(symSetDebugLogging)
	if err != nil {
		return StatusError, err
	}
	cats, release, err := cStrings(categories)
	defer release()
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_debug_logging(fn, i.component, cBool(loggingOn), C.size_t(len(categories)), cats)), nil
}

// SetupExperiment forwards fmi2SetupExperiment.
func (i *Instance) SetupExperiment(toleranceDefined bool, tolerance, startTime float64, stopTimeDefined bool, stopTime float64) (Status, error) {
	fn, err := i.fn(symSetupExperiment)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_setup_experiment(fn, i.component, cBool(toleranceDefined), C.fmi2Real(tolerance),
		C.fmi2Real(startTime), cBool(stopTimeDefined), C.fmi2Real(stopTime))), nil
}

func (i *Instance) EnterInitializationMode() (Status, error) {
	return i.simple(symEnterInitializationMode)
}

func (i *Instance) ExitInitializationMode() (Status, error) {
	return i.simple(symExitInitializationMode)
}

func (i *Instance) Terminate() (Status, error) { return i.simple(symTerminate) }

func (i *Instance) Reset() (Status, error) { return i.simple(symReset) }

// GetReal reads len(vrs) real variables into values.
func (i *Instance) GetReal(vrs []ValueReference, values []float64) (Status, error) {
	fn, err := i.fn(symGetReal)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("GetReal", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_get_real(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), realPtr(values))), nil
}

func (i *Instance) GetInteger(vrs []ValueReference, values []int32) (Status, error) {
	fn, err := i.fn(symGetInteger)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("GetInteger", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_get_integer(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), intPtr(values))), nil
}

// GetBoolean reads into a temporary fmi2Boolean buffer and narrows each entry
// into values.
func (i *Instance) GetBoolean(vrs []ValueReference, values []bool) (Status, error) {
	fn, err := i.fn(symGetBoolean)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("GetBoolean", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	buf, wide, err := allocBools(len(vrs))
	if err != nil {
		return StatusError, err
	}
	defer C.free(unsafe.Pointer(buf))

	status := Status(C.fmiw_get_boolean(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), buf))
	narrowBools(values, wide)
	return status, nil
}

// GetString copies the unit-owned strings into values before returning.
func (i *Instance) GetString(vrs []ValueReference, values []string) (Status, error) {
	fn, err := i.fn(symGetString)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("GetString", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	p, arr, err := allocStrings(len(vrs))
	if err != nil {
		return StatusError, err
	}
	defer C.free(unsafe.Pointer(p))

	status := Status(C.fmiw_get_string(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), p))
	for j, s := range arr {
		values[j] = C.GoString(s)
	}
	return status, nil
}

func (i *Instance) SetReal(vrs []ValueReference, values []float64) (Status, error) {
	fn, err := i.fn(symSetReal)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("SetReal", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_real(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), realPtr(values))), nil
}

func (i *Instance) SetInteger(vrs []ValueReference, values []int32) (Status, error) {
	fn, err := i.fn(symSetInteger)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("SetInteger", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_integer(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), intPtr(values))), nil
}

// SetBoolean widens values into a temporary fmi2Boolean buffer.
func (i *Instance) SetBoolean(vrs []ValueReference, values []bool) (Status, error) {
	fn, err := i.fn(symSetBoolean)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("SetBoolean", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	buf, wide, err := allocBools(len(vrs))
	if err != nil {
		return StatusError, err
	}
	defer C.free(unsafe.Pointer(buf))

	widenBools(wide, values)
	return Status(C.fmiw_set_boolean(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), buf)), nil
}

func (i *Instance) SetString(vrs []ValueReference, values []string) (Status, error) {
	fn, err := i.fn(symSetString)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("SetString", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	p, release, err := cStrings(values)
	defer release()
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_string(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), p)), nil
}

// GetFMUState stores a snapshot in *state. A non-zero *state is handed to the
// unit for reuse.
func (i *Instance) GetFMUState(state *State) (Status, error) {
	fn, err := i.fn(symGetFMUstate)
	if err != nil {
		return StatusError, err
	}
	st := C.fmi2FMUstate(state.p)
	status := Status(C.fmiw_get_fmu_state(fn, i.component, &st))
	state.p = unsafe.Pointer(st)
	return status, nil
}

func (i *Instance) SetFMUState(state State) (Status, error) {
	fn, err := i.fn(symSetFMUstate)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_fmu_state(fn, i.component, C.fmi2FMUstate(state.p))), nil
}

// FreeFMUState releases the snapshot; the unit resets *state to zero.
func (i *Instance) FreeFMUState(state *State) (Status, error) {
	fn, err := i.fn(symFreeFMUstate)
	if err != nil {
		return StatusError, err
	}
	st := C.fmi2FMUstate(state.p)
	status := Status(C.fmiw_free_fmu_state(fn, i.component, &st))
	state.p = unsafe.Pointer(st)
	return status, nil
}

func (i *Instance) SerializedFMUStateSize(state State) (int, Status, error) {
	fn, err := i.fn(symSerializedFMUstateSize)
	if err != nil {
		return 0, StatusError, err
	}
	var size C.size_t
	status := Status(C.fmiw_serialized_fmu_state_size(fn, i.component, C.fmi2FMUstate(state.p), &size))
	return int(size), status, nil
}

// SerializeFMUState writes the snapshot into the caller-owned buf, which must
// be at least SerializedFMUStateSize bytes long.
func (i *Instance) SerializeFMUState(state State, buf []byte) (Status, error) {
	fn, err := i.fn(symSerializeFMUstate)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_serialize_fmu_state(fn, i.component, C.fmi2FMUstate(state.p), bytePtr(buf), C.size_t(len(buf)))), nil
}

func (i *Instance) DeSerializeFMUState(buf []byte, state *State) (Status, error) {
	fn, err := i.fn(symDeSerializeFMUstate)
	if err != nil {
		return StatusError, err
	}
	st := C.fmi2FMUstate(state.p)
	status := Status(C.fmiw_deserialize_fmu_state(fn, i.component, bytePtr(buf), C.size_t(len(buf)), &st))
	state.p = unsafe.Pointer(st)
	return status, nil
}

// GetDirectionalDerivative forwards fmi2GetDirectionalDerivative. dvKnown
// pairs with known and dvUnknown with unknown.
func (i *Instance) GetDirectionalDerivative(unknown, known []ValueReference, dvKnown, dvUnknown []float64) (Status, error) {
	fn, err := i.fn(symGetDirectionalDerivative)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("GetDirectionalDerivative", len(known), len(dvKnown)); err != nil {
		return StatusError, err
	}
	if err := checkLen("GetDirectionalDerivative", len(unknown), len(dvUnknown)); err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_get_directional_derivative(fn, i.component,
		vrPtr(unknown), C.size_t(len(unknown)), vrPtr(known), C.size_t(len(known)),
		realPtr(dvKnown), realPtr(dvUnknown))), nil
}

func (i *Instance) EnterEventMode() (Status, error) { return i.simple(symEnterEventMode) }

// NewDiscreteStates forwards fmi2NewDiscreteStates and unpacks the event info.
func (i *Instance) NewDiscreteStates() (EventInfo, Status, error) {
	fn, err := i.fn(symNewDiscreteStates)
	if err != nil {
		return EventInfo{}, StatusError, err
	}
	var (
		needed, terminate, nominals, values, defined C.fmi2Boolean
		next                                         C.fmi2Real
	)
	status := Status(C.fmiw_new_discrete_states(fn, i.component, &needed, &terminate, &nominals, &values, &defined, &next))
	return EventInfo{
		NewDiscreteStatesNeeded:           needed != 0,
		TerminateSimulation:               terminate != 0,
		NominalsOfContinuousStatesChanged: nominals != 0,
		ValuesOfContinuousStatesChanged:   values != 0,
		NextEventTimeDefined:              defined != 0,
		NextEventTime:                     float64(next),
	}, status, nil
}

func (i *Instance) EnterContinuousTimeMode() (Status, error) {
	return i.simple(symEnterContinuousTimeMode)
}

// CompletedIntegratorStep returns the narrowed enterEventMode and
// terminateSimulation flags.
func (i *Instance) CompletedIntegratorStep(noSetFMUStatePriorToCurrentPoint bool) (enterEventMode, terminateSimulation bool, status Status, err error) {
	fn, err := i.fn(symCompletedIntegratorStep)
	if err != nil {
		return false, false, StatusError, err
	}
	var enter, terminate C.fmi2Boolean
	status = Status(C.fmiw_completed_integrator_step(fn, i.component, cBool(noSetFMUStatePriorToCurrentPoint), &enter, &terminate))
	return enter != 0, terminate != 0, status, nil
}

func (i *Instance) SetTime(time float64) (Status, error) {
	fn, err := i.fn(symSetTime)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_time(fn, i.component, C.fmi2Real(time))), nil
}

func (i *Instance) SetContinuousStates(x []float64) (Status, error) {
	fn, err := i.fn(symSetContinuousStates)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_continuous_states(fn, i.component, realPtr(x), C.size_t(len(x)))), nil
}

func (i *Instance) realArray(s symbol, x []float64) (Status, error) {
	fn, err := i.fn(s)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_real_array(fn, i.component, realPtr(x), C.size_t(len(x)))), nil
}

func (i *Instance) GetDerivatives(derivatives []float64) (Status, error) {
	return i.realArray(symGetDerivatives, derivatives)
}

func (i *Instance) GetEventIndicators(indicators []float64) (Status, error) {
	return i.realArray(symGetEventIndicators, indicators)
}

func (i *Instance) GetContinuousStates(x []float64) (Status, error) {
	return i.realArray(symGetContinuousStates, x)
}

func (i *Instance) GetNominalsOfContinuousStates(nominals []float64) (Status, error) {
	return i.realArray(symGetNominalsOfContinuousStates, nominals)
}

func (i *Instance) SetRealInputDerivatives(vrs []ValueReference, order []int32, values []float64) (Status, error) {
	fn, err := i.fn(symSetRealInputDerivatives)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("SetRealInputDerivatives", len(vrs), len(order)); err != nil {
		return StatusError, err
	}
	if err := checkLen("SetRealInputDerivatives", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_set_real_input_derivatives(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), intPtr(order), realPtr(values))), nil
}

func (i *Instance) GetRealOutputDerivatives(vrs []ValueReference, order []int32, values []float64) (Status, error) {
	fn, err := i.fn(symGetRealOutputDerivatives)
	if err != nil {
		return StatusError, err
	}
	if err := checkLen("GetRealOutputDerivatives", len(vrs), len(order)); err != nil {
		return StatusError, err
	}
	if err := checkLen("GetRealOutputDerivatives", len(vrs), len(values)); err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_get_real_output_derivatives(fn, i.component, vrPtr(vrs), C.size_t(len(vrs)), intPtr(order), realPtr(values))), nil
}

// DoStep forwards fmi2DoStep. It blocks for as long as the unit integrates.
func (i *Instance) DoStep(currentCommunicationPoint, communicationStepSize float64, noSetFMUStatePriorToCurrentPoint bool) (Status, error) {
	fn, err := i.fn(symDoStep)
	if err != nil {
		return StatusError, err
	}
	return Status(C.fmiw_do_step(fn, i.component, C.fmi2Real(currentCommunicationPoint), C.fmi2Real(communicationStepSize),
		cBool(noSetFMUStatePriorToCurrentPoint))), nil
}

// CancelStep forwards fmi2CancelStep. Units may ignore it.
func (i *Instance) CancelStep() (Status, error) { return i.simple(symCancelStep) }

// GetStatus returns the queried status value and the call status.
func (i *Instance) GetStatus(kind StatusKind) (Status, Status, error) {
	fn, err := i.fn(symGetStatus)
	if err != nil {
		return StatusError, StatusError, err
	}
	var value C.fmi2Status
	status := Status(C.fmiw_get_status(fn, i.component, C.fmi2StatusKind(kind), &value))
	return Status(value), status, nil
}

func (i *Instance) GetRealStatus(kind StatusKind) (float64, Status, error) {
	fn, err := i.fn(symGetRealStatus)
	if err != nil {
		return 0, StatusError, err
	}
	var value C.fmi2Real
	status := Status(C.fmiw_get_real_status(fn, i.component, C.fmi2StatusKind(kind), &value))
	return float64(value), status, nil
}

func (i *Instance) GetIntegerStatus(kind StatusKind) (int32, Status, error) {
	fn, err := i.fn(symGetIntegerStatus)
	if err != nil {
		return 0, StatusError, err
	}
	var value C.fmi2Integer
	status := Status(C.fmiw_get_integer_status(fn, i.component, C.fmi2StatusKind(kind), &value))
	return int32(value), status, nil
}

func (i *Instance) GetBooleanStatus(kind StatusKind) (bool, Status, error) {
	fn, err := i.fn(symGetBooleanStatus)
	if err != nil {
		return false, StatusError, err
	}
	var value C.fmi2Boolean
	status := Status(C.fmiw_get_boolean_status(fn, i.component, C.fmi2StatusKind(kind), &value))
	return value != 0, status, nil
}

func (i *Instance) GetStringStatus(kind StatusKind) (string, Status, error) {
	fn, err := i.fn(symGetStringStatus)
	if err != nil {
		return "", StatusError, err
	}
	var value C.fmi2String
	status := Status(C.fmiw_get_string_status(fn, i.component, C.fmi2StatusKind(kind), &value))
	return C.GoString(value), status, nil
}
