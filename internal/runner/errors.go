package runner

import (
	"errors"
	"fmt"

	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2"
)

// ErrValue reports a start value or output that does not fit its variable.
var ErrValue = errors.New("runner: invalid variable value")

// StatusError is returned when the unit answers a call with a status worse
// than Warning.
type StatusError struct {
	Op     string
	Time   float64
	Status fmi2.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("runner: %s at t=%g returned %s", e.Op, e.Time, e.Status)
}

// check turns a forwarded call result into an error.
func check(op string, t float64, status fmi2.Status, err error) error {
	if err != nil {
		return fmt.Errorf("runner: %s: %w", op, err)
	}
	if status > fmi2.StatusWarning {
		return &StatusError{Op: op, Time: t, Status: status}
	}
	return nil
}
