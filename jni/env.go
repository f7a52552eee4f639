package jni

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"omibyte.io/gojni/internal/osthread"
	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/mutf8"
	"omibyte.io/gojni/sig"
)

// Env is the environment of one attached thread. It must only be used on the
// thread it was acquired on.
type Env struct {
	raw    jvm.Env
	acc    *Accessor
	thread uint64

	// frames holds the identity of every local frame pushed through this
	// environment, innermost last.
	frames    []uint64
	nextFrame uint64
}

// Raw returns the underlying function table.
func (e *Env) Raw() jvm.Env {
	return e.env()
}

// Accessor returns the accessor the environment was acquired from.
func (e *Env) Accessor() *Accessor {
	return e.acc
}

func (e *Env) env() jvm.Env {
	if e.acc.opts.CheckThread && osthread.ID() != e.thread {
		panic(ErrWrongThread)
	}
	return e.raw
}

// Version returns the interface version of the runtime.
func (e *Env) Version() jvm.Version {
	return e.env().GetVersion()
}

// Check converts a pending exception into a *PendingExceptionError. The
// exception is described and cleared. It returns nil if nothing is pending.
func (e *Env) Check() error {
	raw := e.env()
	if !raw.ExceptionCheck() {
		return nil
	}
	return e.takeException(true)
}

// ExceptionCheck reports whether an exception is pending without clearing it.
func (e *Env) ExceptionCheck() bool {
	return e.env().ExceptionCheck()
}

// takeException clears the pending exception and returns it as an error.
// With describe set the runtime prints it first.
func (e *Env) takeException(describe bool) *PendingExceptionError {
	raw := e.env()

	thr := raw.ExceptionOccurred()
	if describe {
		raw.ExceptionDescribe()
	}
	raw.ExceptionClear()

	if thr == 0 {
		return newPendingExceptionError("")
	}
	defer raw.DeleteLocalRef(thr)

	err := newPendingExceptionError(e.describe(thr))
	if e.acc.opts.PreserveExceptions {
		if g, gerr := e.NewGlobal(thr); gerr == nil {
			err.Throwable = g
		}
	}
	if describe {
		e.acc.log.Warn("pending exception", zap.String("category", "exception"), zap.String("exception", err.Description))
	}
	return err
}

// describe returns thr.toString(). Exceptions raised while describing are
// discarded.
func (e *Env) describe(thr jvm.Throwable) string {
	raw := e.env()

	cls := raw.GetObjectClass(thr)
	if cls == 0 {
		raw.ExceptionClear()
		return ""
	}
	mid := raw.GetMethodID(cls, "toString", sig.Method(sig.String))
	raw.DeleteLocalRef(cls)
	if mid == 0 {
		raw.ExceptionClear()
		return ""
	}

	str := raw.CallObjectMethodA(thr, mid, nil)
	if raw.ExceptionCheck() || str == 0 {
		raw.ExceptionClear()
		return ""
	}
	defer raw.DeleteLocalRef(str)

	utf, chars := raw.GetStringUTFChars(str)
	if chars == 0 {
		raw.ExceptionClear()
		return ""
	}
	defer raw.ReleaseStringUTFChars(str, chars)
	return mutf8.Decode(utf)
}

// lookupFailure clears the exception a failed lookup raised and returns
// sentinel wrapped with the lookup context.
func (e *Env) lookupFailure(sentinel error, format string, args ...any) error {
	err := errors.Wrapf(sentinel, format, args...)
	if e.env().ExceptionCheck() {
		pending := e.takeException(false)
		e.acc.log.Debug("lookup failed", zap.String("category", "class"), zap.Error(err), zap.String("exception", pending.Description))
		if pending.Throwable != nil {
			pending.Throwable.ReleaseWith(e)
		}
	}
	return err
}

// Throw raises obj in the runtime. The exception stays pending and is seen
// by the runtime when the native method returns.
func (e *Env) Throw(obj jvm.Throwable) error {
	if obj == 0 {
		return ErrNullReference
	}
	if e.env().Throw(obj) != 0 {
		return errors.Wrap(ErrOperationFailed, "throw")
	}
	return nil
}

// ThrowNew raises a new exception of the named class. An empty class name
// raises java.lang.Exception.
func (e *Env) ThrowNew(className, msg string) error {
	if className == "" {
		className = "java.lang.Exception"
	}
	cls, err := e.FindClass(className)
	if err != nil {
		return err
	}
	defer e.DeleteLocal(cls)

	if e.env().ThrowNew(cls, msg) != 0 {
		return errors.Wrapf(ErrOperationFailed, "throw %s", className)
	}
	return nil
}

// FatalError aborts the runtime. It does not return.
func (e *Env) FatalError(msg string) {
	e.acc.log.Error("fatal error", zap.String("category", "exception"), zap.String("msg", msg))
	e.env().FatalError(msg)
}

// MonitorEnter enters the monitor of obj.
func (e *Env) MonitorEnter(obj jvm.Object) error {
	if obj == 0 {
		return ErrNullReference
	}
	if e.env().MonitorEnter(obj) != 0 {
		if err := e.Check(); err != nil {
			return err
		}
		return errors.Wrap(ErrOperationFailed, "monitor enter")
	}
	return nil
}

// MonitorExit exits the monitor of obj.
func (e *Env) MonitorExit(obj jvm.Object) error {
	if obj == 0 {
		return ErrNullReference
	}
	if e.env().MonitorExit(obj) != 0 {
		if err := e.Check(); err != nil {
			return err
		}
		return errors.Wrap(ErrOperationFailed, "monitor exit")
	}
	return nil
}

// Synchronized runs fn while holding the monitor of obj.
func (e *Env) Synchronized(obj jvm.Object, fn func() error) (err error) {
	if err := e.MonitorEnter(obj); err != nil {
		return err
	}
	defer func() {
		if exitErr := e.MonitorExit(obj); err == nil {
			err = exitErr
		}
	}()
	return fn()
}

// RegisterNatives binds native implementations to methods of cls.
func (e *Env) RegisterNatives(cls jvm.Class, methods []jvm.NativeMethod) error {
	if e.env().RegisterNatives(cls, methods) != 0 {
		if err := e.Check(); err != nil {
			return err
		}
		return errors.Wrap(ErrOperationFailed, "register natives")
	}
	return nil
}

// UnregisterNatives removes every native binding of cls.
func (e *Env) UnregisterNatives(cls jvm.Class) error {
	if e.env().UnregisterNatives(cls) != 0 {
		if err := e.Check(); err != nil {
			return err
		}
		return errors.Wrap(ErrOperationFailed, "unregister natives")
	}
	return nil
}
