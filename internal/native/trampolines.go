//go:build cgo

package native

/*
#include <stdint.h>
#include "fmiw.h"
*/
import "C"

import "fmt"

// renderObserver sees every rendered message with the size of the buffer it
// was rendered into.
var renderObserver func(message string, size int)

//export fmiwGoLog
func fmiwGoLog(env C.uintptr_t, instanceName *C.char, status C.int, category *C.char, message *C.char, size C.size_t) {
	s, ok := lookup(envHandle(env))
	if !ok {
		return
	}
	defer s.recoverSink("log")

	name := C.GoString(instanceName)
	if message == nil {
		s.report(fmt.Errorf("%w: log message of %s could not be rendered", ErrMarshal, name))
		return
	}
	msg := C.GoString(message)
	if renderObserver != nil {
		renderObserver(msg, int(size))
	}
	if s.Log != nil {
		s.Log(name, Status(status), C.GoString(category), msg)
	}
}

//export fmiwGoStepFinished
func fmiwGoStepFinished(env C.uintptr_t, status C.int) {
	s, ok := lookup(envHandle(env))
	if !ok {
		return
	}
	defer s.recoverSink("step finished")

	if s.StepFinished != nil {
		s.StepFinished(Status(status))
	}
}

// recoverSink stops a panicking sink from unwinding through the unit's C
// frames.
func (s *sinks) recoverSink(kind string) {
	if r := recover(); r != nil {
		s.report(fmt.Errorf("fmi2: %s callback panicked: %v", kind, r))
	}
}
