package jni

import (
	"errors"
	"strings"
)

var (
	ErrNilVM                       = errors.New("nil runtime handle")
	ErrThreadAttachFailed          = errors.New("failed to attach thread to the runtime")
	ErrUnsupportedInterfaceVersion = errors.New("runtime does not support the requested interface version")
	ErrEnvironmentUnavailable      = errors.New("runtime environment unavailable")
	ErrAlreadyLoaded               = errors.New("runtime already loaded")
	ErrNotLoaded                   = errors.New("runtime not loaded")
	ErrWrongThread                 = errors.New("environment used from a thread other than its own")
	ErrReferenceCreationFailed     = errors.New("failed to create reference")
	ErrNullReference               = errors.New("null reference")
	ErrClassNotFound               = errors.New("class not found")
	ErrMethodNotFound              = errors.New("method not found")
	ErrFieldNotFound               = errors.New("field not found")
	ErrPendingException            = errors.New("pending exception")
	ErrUseAfterRelease             = errors.New("object used after release")
	ErrIndexOutOfBounds            = errors.New("index out of bounds")
	ErrOperationFailed             = errors.New("runtime operation failed")
	ErrInvalidParameter            = errors.New("invalid parameter")
)

// PendingExceptionError is returned when a call left an exception pending.
// The exception has already been described and cleared.
type PendingExceptionError struct {
	// Class is the dotted class name of the throwable, if it could be read.
	Class string

	// Description is the throwable's toString() result.
	Description string

	// Throwable is set when exceptions are preserved. The caller owns it.
	Throwable *GlobalRef
}

func (e *PendingExceptionError) Error() string {
	if e.Description == "" {
		return ErrPendingException.Error()
	}
	return ErrPendingException.Error() + ": " + e.Description
}

func (e *PendingExceptionError) Is(target error) bool {
	return target == ErrPendingException
}

func newPendingExceptionError(description string) *PendingExceptionError {
	class, _, _ := strings.Cut(description, ": ")
	return &PendingExceptionError{
		Class:       class,
		Description: description,
	}
}
