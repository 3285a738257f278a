// Package native is the cgo boundary between Go and an FMI 2.0 simulation
// unit loaded at runtime.
//
// # Design Principles
//
// 1. Isolation: all cgo code of the module lives in this package. No other
//    package imports "C".
//
// 2. Transparent conduit: every forwarded call returns the unit's own status
//    untouched. Wrapper-local failures are reported as errors, never as a
//    status.
//
// 3. Ownership: a Binding owns its library handle and function table. The
//    Instance created from it additionally owns the unit component and the
//    fmi2CallbackFunctions record, which lives in C memory at a stable address
//    until Free has run the unit's own fmi2FreeInstance.
//
// 4. Callbacks: the unit calls back through two C trampolines. They recover
//    the owning Binding from the componentEnvironment pointer, which carries a
//    registry handle rather than a Go pointer.
//
// # Threading
//
// A Binding performs no locking. Callers must not issue two calls on the same
// Instance concurrently. Trampolines may run on any thread, including inside
// a forwarded call.
package native
