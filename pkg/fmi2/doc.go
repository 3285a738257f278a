// Package fmi2 loads an FMI 2.0 simulation unit at runtime and exposes its
// function table with Go types.
//
// A unit is used in three steps: Bind opens the shared library and resolves
// its entry points, Binding.Instantiate creates the component, and
// Instance.Free tears everything down again:
//
//	inst, err := fmi2.Instantiate(path, fmi2.InstanceConfig{
//	    Name: "sim",
//	    Type: fmi2.CoSimulation,
//	    GUID: md.GUID,
//	}, fmi2.WithLogger(logging.New(nil)))
//	if err != nil {
//	    return err
//	}
//	defer inst.Free()
//
//	status, err := inst.DoStep(t, h, true)
//
// Every forwarded call returns the unit's status untouched together with an
// error that is non-nil only when the wrapper itself failed (a missing entry
// point, mismatched slice lengths, an allocation failure or use after Free).
// When the error is non-nil the status is StatusError and does not come from
// the unit.
//
// The unit's variadic log callback arrives fully rendered. Without an explicit
// WithLogSink, messages are routed to the configured logging.Logger.
//
// The package needs cgo. Without it every entry point returns ErrNotBuilt.
package fmi2
