package fmi2

import "github.com/fmiwrap/fmiwrap-go/internal/native"

// Binding is a loaded unit library that has not been instantiated yet.
type Binding = native.Binding

// Instance is a live unit component. It must be released with Free.
type Instance = native.Instance

type (
	Status           = native.Status
	Type             = native.Type
	StatusKind       = native.StatusKind
	ValueReference   = native.ValueReference
	State            = native.State
	EventInfo        = native.EventInfo
	LogFunc          = native.LogFunc
	StepFinishedFunc = native.StepFinishedFunc
)

const (
	StatusOK      = native.StatusOK
	StatusWarning = native.StatusWarning
	StatusDiscard = native.StatusDiscard
	StatusError   = native.StatusError
	StatusFatal   = native.StatusFatal
	StatusPending = native.StatusPending
)

const (
	ModelExchange = native.ModelExchange
	CoSimulation  = native.CoSimulation
)

const (
	DoStepStatus       = native.DoStepStatus
	PendingStatus      = native.PendingStatus
	LastSuccessfulTime = native.LastSuccessfulTime
	Terminated         = native.Terminated
)

// EntryPoints lists every fmi2 function a binding tries to resolve.
func EntryPoints() []string { return native.SymbolNames() }
