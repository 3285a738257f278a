//go:build !cgo

package native

// Stub implementations for builds without cgo. They compile but return
// ErrNotBuilt when called.

type Binding struct{}

func Bind(string, Callbacks) (*Binding, error) { return nil, ErrNotBuilt }

func (b *Binding) Path() string { return "" }
func (b *Binding) Supported(string) bool { return false }
func (b *Binding) Symbols() []string { return nil }
func (b *Binding) Missing() []string { return SymbolNames() }
func (b *Binding) TypesPlatform() (string, error) { return "", ErrNotBuilt }
func (b *Binding) Version() (string, error) { return "", ErrNotBuilt }
func (b *Binding) Close() error { return ErrNotBuilt }

func (b *Binding) Instantiate(string, Type, string, string, bool, bool) (*Instance, error) {
	return nil, ErrNotBuilt
}

type Instance struct{}

func (i *Instance) Name() string { return "" }
func (i *Instance) Binding() *Binding { return nil }
func (i *Instance) Free() error { return ErrNotBuilt }

func (i *Instance) SetDebugLogging(bool, []string) (Status, error) { return StatusError, ErrNotBuilt }

func (i *Instance) SetupExperiment(bool, float64, float64, bool, float64) (Status, error) {
	return StatusError, ErrNotBuilt
}

func (i *Instance) EnterInitializationMode() (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) ExitInitializationMode() (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) Terminate() (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) Reset() (Status, error) { return StatusError, ErrNotBuilt }

func (i *Instance) GetReal([]ValueReference, []float64) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) GetInteger([]ValueReference, []int32) (Status, error) {
	return StatusError, ErrNotBuilt
}
func (i *Instance) GetBoolean([]ValueReference, []bool) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) GetString([]ValueReference, []string) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) SetReal([]ValueReference, []float64) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) SetInteger([]ValueReference, []int32) (Status, error) {
	return StatusError, ErrNotBuilt
}
func (i *Instance) SetBoolean([]ValueReference, []bool) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) SetString([]ValueReference, []string) (Status, error) { return StatusError, ErrNotBuilt }

func (i *Instance) GetFMUState(*State) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) SetFMUState(State) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) FreeFMUState(*State) (Status, error) { return StatusError, ErrNotBuilt }

func (i *Instance) SerializedFMUStateSize(State) (int, Status, error) {
	return 0, StatusError, ErrNotBuilt
}
func (i *Instance) SerializeFMUState(State, []byte) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) DeSerializeFMUState([]byte, *State) (Status, error) {
	return StatusError, ErrNotBuilt
}

func (i *Instance) GetDirectionalDerivative(_, _ []ValueReference, _, _ []float64) (Status, error) {
	return StatusError, ErrNotBuilt
}

func (i *Instance) EnterEventMode() (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) NewDiscreteStates() (EventInfo, Status, error) {
	return EventInfo{}, StatusError, ErrNotBuilt
}
func (i *Instance) EnterContinuousTimeMode() (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) CompletedIntegratorStep(bool) (bool, bool, Status, error) {
	return false, false, StatusError, ErrNotBuilt
}

func (i *Instance) SetTime(float64) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) SetContinuousStates([]float64) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) GetDerivatives([]float64) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) GetEventIndicators([]float64) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) GetContinuousStates([]float64) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) GetNominalsOfContinuousStates([]float64) (Status, error) { return StatusError, ErrNotBuilt }

func (i *Instance) SetRealInputDerivatives([]ValueReference, []int32, []float64) (Status, error) {
	return StatusError, ErrNotBuilt
}
func (i *Instance) GetRealOutputDerivatives([]ValueReference, []int32, []float64) (Status, error) {
	return StatusError, ErrNotBuilt
}

func (i *Instance) DoStep(float64, float64, bool) (Status, error) { return StatusError, ErrNotBuilt }
func (i *Instance) CancelStep() (Status, error) { return StatusError, ErrNotBuilt }

func (i *Instance) GetStatus(StatusKind) (Status, Status, error) {
	return StatusError, StatusError, ErrNotBuilt
}
func (i *Instance) GetRealStatus(StatusKind) (float64, Status, error) { return 0, StatusError, ErrNotBuilt }
func (i *Instance) GetIntegerStatus(StatusKind) (int32, Status, error) {
	return 0, StatusError, ErrNotBuilt
}
func (i *Instance) GetBooleanStatus(StatusKind) (bool, Status, error) {
	return false, StatusError, ErrNotBuilt
}
func (i *Instance) GetStringStatus(StatusKind) (string, Status, error) {
	return "", StatusError, ErrNotBuilt
}
