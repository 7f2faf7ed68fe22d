// Package rec converts panics into error returns at call boundaries.
package rec

import (
	"fmt"
	"runtime/debug"
)

func recovered() error {
	r := recover()
	if r == nil {
		return nil
	}

	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic: %w\n%s", err, debug.Stack())
	}
	return fmt.Errorf("recovered panic: %v\n%s", r, debug.Stack())
}

// Error recovers a panic and assigns it to the provided error.
func Error(err *error) {
	if r := recovered(); r != nil {
		*err = r
	}
}

// Wrap recovers a panic and assigns it to the provided error using the
// given format, with the panic appended to the arguments. If no panic was
// recovered but the error is already set, the error is wrapped the same way.
func Wrap(err *error, format string, a ...any) {
	if r := recovered(); r != nil {
		*err = fmt.Errorf(format, append(a, r)...)
	} else if *err != nil {
		*err = fmt.Errorf(format, append(a, *err)...)
	}
}
