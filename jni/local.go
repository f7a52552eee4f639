package jni

import (
	"github.com/pkg/errors"

	"omibyte.io/gojni/jvm"
)

// Local is a local reference bound to the environment and frame it was
// created in. It must not be used once that frame has been popped or from
// another environment.
type Local struct {
	env   *Env
	depth int
	frame uint64
	ref   jvm.Object
}

// Local adopts obj, a local reference of the current frame.
func (e *Env) Local(obj jvm.Object) Local {
	l := Local{env: e, depth: len(e.frames), ref: obj}
	if l.depth > 0 {
		l.frame = e.frames[l.depth-1]
	}
	return l
}

// Ref returns the raw handle without checking its scope.
func (l Local) Ref() jvm.Object { return l.ref }

// IsNull reports whether the reference is null.
func (l Local) IsNull() bool { return l.ref == 0 }

// Live reports whether the frame that owns the reference is still on env's
// frame stack.
func (l Local) Live(env *Env) bool {
	if l.env == nil || l.env != env {
		return false
	}
	if l.depth > len(env.frames) {
		return false
	}
	return l.depth == 0 || env.frames[l.depth-1] == l.frame
}

// In returns the raw handle for use on env.
func (l Local) In(env *Env) (jvm.Object, error) {
	switch {
	case l.env == nil:
		return 0, errors.Wrap(ErrNullReference, "zero local")
	case l.env != env:
		return 0, errors.Wrap(ErrWrongThread, "local reference from another environment")
	case !l.Live(env):
		return 0, errors.Wrap(ErrUseAfterRelease, "local reference outside its frame")
	}
	return l.ref, nil
}

// Global promotes the reference to a global one.
func (l Local) Global() (*GlobalRef, error) {
	obj, err := l.In(l.env)
	if err != nil {
		return nil, err
	}
	return l.env.NewGlobal(obj)
}

// Delete deletes the reference if its frame is still live.
func (l Local) Delete() {
	if obj, err := l.In(l.env); err == nil {
		l.env.DeleteLocal(obj)
	}
}
