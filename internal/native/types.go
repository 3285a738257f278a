package native

import (
	"errors"
	"fmt"
	"unsafe"
)

// Status is the fmi2Status result of every forwarded call.
type Status int32

const (
	StatusOK Status = iota
	StatusWarning
	StatusDiscard
	StatusError
	StatusFatal
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusDiscard:
		return "discard"
	case StatusError:
		return "error"
	case StatusFatal:
		return "fatal"
	case StatusPending:
		return "pending"
	default:
		return fmt.Sprintf("status(%d)", int32(s))
	}
}

// Type selects the FMI interface the unit is instantiated for.
type Type int32

const (
	ModelExchange Type = iota
	CoSimulation
)

func (t Type) String() string {
	switch t {
	case ModelExchange:
		return "model-exchange"
	case CoSimulation:
		return "co-simulation"
	default:
		return fmt.Sprintf("type(%d)", int32(t))
	}
}

// StatusKind selects the value queried by the Get*Status family.
type StatusKind int32

const (
	DoStepStatus StatusKind = iota
	PendingStatus
	LastSuccessfulTime
	Terminated
)

// ValueReference identifies one variable of the unit.
type ValueReference uint32

// State is an opaque fmi2FMUstate owned by the unit. The zero State asks
// GetFMUState to allocate a new snapshot.
type State struct {
	p unsafe.Pointer
}

// IsZero reports whether s refers to no snapshot.
func (s State) IsZero() bool { return s.p == nil }

// EventInfo is the unpacked form of fmi2EventInfo.
type EventInfo struct {
	NewDiscreteStatesNeeded           bool
	TerminateSimulation               bool
	NominalsOfContinuousStatesChanged bool
	ValuesOfContinuousStatesChanged   bool
	NextEventTimeDefined              bool
	NextEventTime                     float64
}

// LogFunc receives one fully rendered log message from the unit.
type LogFunc func(instanceName string, status Status, category, message string)

// StepFinishedFunc receives the status of an asynchronous fmi2DoStep.
type StepFinishedFunc func(status Status)

// Callbacks are the caller closures stored by a binding. Any of them may be
// nil. Error receives wrapper-local failures raised inside a trampoline, where
// there is no caller to return them to.
type Callbacks struct {
	Log          LogFunc
	StepFinished StepFinishedFunc
	Error        func(error)
}

var (
	// ErrLoad reports that the shared library could not be opened.
	ErrLoad = errors.New("fmi2: cannot load unit library")

	// ErrUnsupported reports a call whose entry point the unit does not export.
	ErrUnsupported = errors.New("fmi2: operation not supported by unit")

	// ErrInstantiate reports that fmi2Instantiate returned no component.
	ErrInstantiate = errors.New("fmi2: unit instantiation failed")

	// ErrMarshal reports a wrapper-local argument conversion or allocation
	// failure.
	ErrMarshal = errors.New("fmi2: argument marshaling failed")

	// ErrClosed reports use of a binding or instance after its release.
	ErrClosed = errors.New("fmi2: binding already released")

	// ErrNotBuilt reports that the binary was compiled without cgo.
	ErrNotBuilt = errors.New("fmi2: native bindings not built")
)
