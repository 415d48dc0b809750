package herr

import (
	"github.com/ztrue/tracerr"
)

// Error wraps one or more stack-traced errors. The zero value is not nil;
// use NilError for the canonical empty error, and IsNil to test for it.
type Error struct {
	errs []tracerr.Error
}

var NilError = Error{nil}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr.First() == nil
	}
	return err == nil
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	}
	return e.errs[0]
}

func (e Error) Error() string {
	if len(e.errs) == 0 {
		return ""
	}
	result := ""
	for _, err := range e.errs {
		result += err.Error() + "\n"
	}
	return result
}

func Wrap(err error) Error {
	if err == nil {
		return NilError
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}

func Join(others ...Error) Error {
	hasError := false
	for _, o := range others {
		if !IsNil(o) {
			hasError = true
			break
		}
	}
	if !hasError {
		return NilError
	}

	result := Error{}
	for _, o := range others {
		if !IsNil(o) {
			result.errs = append(result.errs, o.errs...)
		}
	}
	return result
}
