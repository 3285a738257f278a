//go:build cgo

package native

/*
#include <stdlib.h>
#include "fmiw.h"
*/
import "C"

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/fmiwrap/fmiwrap-go/internal/dynlib"
)

// fmi2Boolean must be exactly as wide as wideBool.
var (
	_ [unsafe.Sizeof(C.fmi2Boolean(0)) - unsafe.Sizeof(wideBool(0))]byte
	_ [unsafe.Sizeof(wideBool(0)) - unsafe.Sizeof(C.fmi2Boolean(0))]byte
)

var (
	liveLibraries atomic.Int64
	liveRecords   atomic.Int64

	// teardownHook observes the release steps of Free and of rollbacks.
	teardownHook func(step string)
)

func traceTeardown(step string) {
	if teardownHook != nil {
		teardownHook(step)
	}
}

// Binding is a loaded unit library with its resolved function table and no
// instance yet.
type Binding struct {
	lib   *dynlib.Library
	fns   table
	sinks *sinks

	// owned is set once Instantiate has taken over the library.
	owned bool
}

// Bind opens the unit library at path and resolves every fmi2 entry point.
// Missing entry points are tolerated; calling one later reports
// ErrUnsupported.
func Bind(path string, cb Callbacks) (*Binding, error) {
	lib, err := dynlib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	liveLibraries.Add(1)

	s := sinks(cb)
	b := &Binding{lib: lib, sinks: &s}
	for i, name := range symbolNames {
		if addr, err := lib.Symbol(name); err == nil {
			b.fns[i] = addr
		}
	}
	return b, nil
}

// Path returns the library path the binding was created from.
func (b *Binding) Path() string {
	if b == nil || b.lib == nil {
		return ""
	}
	return b.lib.Path()
}

// Supported reports whether the unit exports the named fmi2 entry point.
func (b *Binding) Supported(name string) bool {
	s, ok := lookupSymbol(name)
	return ok && b != nil && b.fns.has(s)
}

// Symbols lists the resolved entry points.
func (b *Binding) Symbols() []string { return b.fns.resolved() }

// Missing lists the entry points the unit does not export.
func (b *Binding) Missing() []string { return b.fns.missing() }

// TypesPlatform forwards fmi2GetTypesPlatform.
func (b *Binding) TypesPlatform() (string, error) {
	fn, err := b.fn(symGetTypesPlatform)
	if err != nil {
		return "", err
	}
	return C.GoString(C.fmiw_get_types_platform(fn)), nil
}

// Version forwards fmi2GetVersion.
func (b *Binding) Version() (string, error) {
	fn, err := b.fn(symGetVersion)
	if err != nil {
		return "", err
	}
	return C.GoString(C.fmiw_get_version(fn)), nil
}

func (b *Binding) fn(s symbol) (C.uintptr_t, error) {
	if b == nil || b.lib == nil {
		return 0, ErrClosed
	}
	if !b.fns.has(s) {
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, s)
	}
	return C.uintptr_t(b.fns[s]), nil
}

// Close unloads a binding that was never instantiated. Once Instantiate has
// been called the library belongs to the instance and Close reports
// ErrClosed.
func (b *Binding) Close() error {
	if b == nil || b.lib == nil || b.owned {
		return ErrClosed
	}
	return b.release()
}

func (b *Binding) release() error {
	err := b.lib.Close()
	b.lib = nil
	liveLibraries.Add(-1)
	traceTeardown("close-library")
	return err
}

// Instance is a live unit component created by Instantiate.
type Instance struct {
	b         *Binding
	component C.fmi2Component
	callbacks *C.fmi2CallbackFunctions
	env       envHandle
	name      string
}

// Instantiate creates the unit component. It takes ownership of b whether or
// not it succeeds: on failure every resource of the binding is released and
// b must not be used again.
func (b *Binding) Instantiate(instanceName string, kind Type, guid, resourceLocation string, visible, loggingOn bool) (*Instance, error) {
	if b == nil || b.lib == nil || b.owned {
		return nil, ErrClosed
	}
	b.owned = true
	for _, s := range []symbol{symInstantiate, symFreeInstance} {
		if !b.fns.has(s) {
			_ = b.release()
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, s)
		}
	}

	env := register(b.sinks)
	cb := C.fmiw_new_callbacks(C.uintptr_t(env))
	if cb == nil {
		unregister(env)
		_ = b.release()
		return nil, fmt.Errorf("%w: callback record", ErrMarshal)
	}
	liveRecords.Add(1)

	cName := C.CString(instanceName)
	defer C.free(unsafe.Pointer(cName))
	cGUID := C.CString(guid)
	defer C.free(unsafe.Pointer(cGUID))
	cResources := C.CString(resourceLocation)
	defer C.free(unsafe.Pointer(cResources))

	component := C.fmiw_instantiate(C.uintptr_t(b.fns[symInstantiate]), cName, C.fmi2Type(kind), cGUID, cResources,
		cb, cBool(visible), cBool(loggingOn))
	if component == nil {
		freeRecord(cb, env)
		_ = b.release()
		return nil, fmt.Errorf("%w: %s", ErrInstantiate, instanceName)
	}

	return &Instance{b: b, component: component, callbacks: cb, env: env, name: instanceName}, nil
}

func freeRecord(cb *C.fmi2CallbackFunctions, env envHandle) {
	C.fmiw_free_callbacks(cb)
	unregister(env)
	liveRecords.Add(-1)
	traceTeardown("free-callbacks")
}

// Name returns the instance name passed to Instantiate.
func (i *Instance) Name() string { return i.name }

// Binding returns the binding the instance was created from.
func (i *Instance) Binding() *Binding { return i.b }

// Free runs fmi2FreeInstance, then releases the callback record and finally
// unloads the library. It is the only release path of an instance; every
// later call on i reports ErrClosed.
func (i *Instance) Free() error {
	if i == nil || i.component == nil {
		return ErrClosed
	}
	C.fmiw_free_instance(C.uintptr_t(i.b.fns[symFreeInstance]), i.component)
	i.component = nil
	traceTeardown("free-instance")

	freeRecord(i.callbacks, i.env)
	i.callbacks = nil
	i.env = 0
	return i.b.release()
}

func (i *Instance) fn(s symbol) (C.uintptr_t, error) {
	if i == nil || i.component == nil {
		return 0, ErrClosed
	}
	if !i.b.fns.has(s) {
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, s)
	}
	return C.uintptr_t(i.b.fns[s]), nil
}

func cBool(b bool) C.fmi2Boolean {
	if b {
		return 1
	}
	return 0
}
