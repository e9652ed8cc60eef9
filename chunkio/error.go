package chunkio

import (
	"errors"
	"runtime"
)

// ErrContract is the error wrapped by every panic raised from a failed
// contract check. There is exactly one error kind in this module; nothing a
// chunk codec does is recoverable short of fixing the calling code.
var ErrContract = errors.New("contract violation")

// NewError returns an Error wrapping err with message and caller.
// If caller is empty, it is automatically filled with the calling function's name.
func NewError(err error, message string, caller string) error {
	if caller == "" {
		caller = GetCaller(1)
	}

	return Error{
		Err:     err,
		Message: message,
		Caller:  caller,
	}
}

// Error carries a wrapped error kind with the failing call site and detail.
type Error struct {
	Err     error
	Message string
	Caller  string
}

// Error implements error
func (e Error) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap()
func (e Error) Unwrap() error {
	return e.Err
}

// GetCaller returns the name of the calling function, skipping skip functions.
// i.e. 0 writes the calling function, 1 the function calling that etc...
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "Unknown Function"
	}

	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}
