package jni

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"omibyte.io/gojni/jvm"
)

// GlobalRef is a reference valid on every thread until it is released.
type GlobalRef struct {
	acc      *Accessor
	ref      jvm.Object
	released atomic.Bool
}

// NewGlobal promotes obj to a global reference.
func (e *Env) NewGlobal(obj jvm.Object) (*GlobalRef, error) {
	if obj == 0 {
		return nil, errors.Wrap(ErrReferenceCreationFailed, "global reference to null")
	}
	g := e.env().NewGlobalRef(obj)
	if g == 0 {
		if err := e.Check(); err != nil {
			return nil, errors.Wrap(ErrReferenceCreationFailed, err.Error())
		}
		return nil, errors.Wrap(ErrReferenceCreationFailed, "global reference")
	}
	e.acc.log.Debug("global reference created", zap.String("category", "ref"), zap.Uintptr("ref", uintptr(g)))
	return &GlobalRef{acc: e.acc, ref: g}, nil
}

// Ref returns the raw handle, or 0 once released.
func (g *GlobalRef) Ref() jvm.Object {
	if g == nil || g.released.Load() {
		return 0
	}
	return g.ref
}

// Released reports whether Release was called.
func (g *GlobalRef) Released() bool {
	return g.released.Load()
}

// Release deletes the reference on the calling thread's environment. Only
// the first call has an effect.
func (g *GlobalRef) Release() {
	if g == nil || !g.released.CompareAndSwap(false, true) {
		return
	}
	err := g.acc.Do(func(env *Env) error {
		g.delete(env)
		return nil
	})
	if err != nil {
		g.acc.log.Warn("global reference leaked", zap.String("category", "ref"), zap.Uintptr("ref", uintptr(g.ref)), zap.Error(err))
	}
}

// ReleaseWith deletes the reference using an environment the caller already
// holds.
func (g *GlobalRef) ReleaseWith(env *Env) {
	if g == nil || !g.released.CompareAndSwap(false, true) {
		return
	}
	g.delete(env)
}

func (g *GlobalRef) delete(env *Env) {
	env.env().DeleteGlobalRef(g.ref)
	g.acc.log.Debug("global reference deleted", zap.String("category", "ref"), zap.Uintptr("ref", uintptr(g.ref)))
}

// WeakRef refers to an object without keeping it alive.
type WeakRef struct {
	acc      *Accessor
	ref      jvm.Weak
	released atomic.Bool
}

// NewWeak creates a weak global reference to obj.
func (e *Env) NewWeak(obj jvm.Object) (*WeakRef, error) {
	if obj == 0 {
		return nil, errors.Wrap(ErrReferenceCreationFailed, "weak reference to null")
	}
	w := e.env().NewWeakGlobalRef(obj)
	if w == 0 {
		if err := e.Check(); err != nil {
			return nil, errors.Wrap(ErrReferenceCreationFailed, err.Error())
		}
		return nil, errors.Wrap(ErrReferenceCreationFailed, "weak reference")
	}
	return &WeakRef{acc: e.acc, ref: w}, nil
}

// Get returns a new local reference to the referent. It reports false if the
// referent was collected or the reference released.
func (w *WeakRef) Get(env *Env) (jvm.Object, bool) {
	if w == nil || w.released.Load() {
		return 0, false
	}
	local := env.env().NewLocalRef(w.ref)
	return local, local != 0
}

// Collected reports whether the referent has been collected.
func (w *WeakRef) Collected(env *Env) bool {
	if w == nil || w.released.Load() {
		return true
	}
	return env.env().IsSameObject(w.ref, 0)
}

// Release deletes the weak reference. Only the first call has an effect.
func (w *WeakRef) Release() {
	if w == nil || !w.released.CompareAndSwap(false, true) {
		return
	}
	err := w.acc.Do(func(env *Env) error {
		env.env().DeleteWeakGlobalRef(w.ref)
		return nil
	})
	if err != nil {
		w.acc.log.Warn("weak reference leaked", zap.String("category", "ref"), zap.Uintptr("ref", uintptr(w.ref)), zap.Error(err))
	}
}

// NewLocal creates a new local reference to obj in the current frame. A
// null obj yields a null Local.
func (e *Env) NewLocal(obj jvm.Object) (Local, error) {
	if obj == 0 {
		return e.Local(0), nil
	}
	local := e.env().NewLocalRef(obj)
	if local == 0 {
		if err := e.Check(); err != nil {
			return Local{}, err
		}
		return Local{}, errors.Wrap(ErrReferenceCreationFailed, "local reference")
	}
	return e.Local(local), nil
}

// DeleteLocal deletes a local reference. Deleting 0 is a no-op.
func (e *Env) DeleteLocal(obj jvm.Object) {
	if obj != 0 {
		e.env().DeleteLocalRef(obj)
	}
}

// EnsureLocalCapacity makes sure at least capacity more local references can
// be created in the current frame.
func (e *Env) EnsureLocalCapacity(capacity int) error {
	if e.env().EnsureLocalCapacity(int32(capacity)) != 0 {
		if err := e.Check(); err != nil {
			return err
		}
		return errors.Wrap(ErrOperationFailed, "ensure local capacity")
	}
	return nil
}

// PushLocalFrame starts a frame of local references.
func (e *Env) PushLocalFrame(capacity int) error {
	if e.env().PushLocalFrame(int32(capacity)) != 0 {
		if err := e.Check(); err != nil {
			return err
		}
		return errors.Wrap(ErrOperationFailed, "push local frame")
	}
	e.nextFrame++
	e.frames = append(e.frames, e.nextFrame)
	return nil
}

// PopLocalFrame frees every local reference of the current frame except
// keep, which is returned as a reference in the enclosing frame.
func (e *Env) PopLocalFrame(keep jvm.Object) jvm.Object {
	e.popFrame()
	return e.env().PopLocalFrame(keep)
}

func (e *Env) popFrame() {
	if n := len(e.frames); n > 0 {
		e.frames = e.frames[:n-1]
	}
}

// WithLocalFrame runs fn inside a new local frame. Only the object fn returns
// survives the frame; it is returned as a local of the enclosing frame. The
// frame is popped even if fn panics.
func (e *Env) WithLocalFrame(capacity int, fn func() (jvm.Object, error)) (jvm.Object, error) {
	if err := e.PushLocalFrame(capacity); err != nil {
		return 0, err
	}

	popped := false
	defer func() {
		if !popped {
			e.popFrame()
			e.raw.PopLocalFrame(0)
		}
	}()

	result, err := fn()
	if err != nil {
		result = 0
	}
	popped = true
	return e.PopLocalFrame(result), err
}

// IsSameObject reports whether a and b refer to the same object.
func (e *Env) IsSameObject(a, b jvm.Object) bool {
	return e.env().IsSameObject(a, b)
}

// IsNull reports whether obj is null or a cleared weak reference.
func (e *Env) IsNull(obj jvm.Object) bool {
	return obj == 0 || e.env().IsSameObject(obj, 0)
}

// IsInstanceOf reports whether obj is an instance of cls. Null is an
// instance of every class.
func (e *Env) IsInstanceOf(obj jvm.Object, cls jvm.Class) bool {
	return e.env().IsInstanceOf(obj, cls)
}

// RefType returns the kind of reference obj is.
func (e *Env) RefType(obj jvm.Object) jvm.RefType {
	return e.env().GetObjectRefType(obj)
}
