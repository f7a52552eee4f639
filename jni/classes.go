package jni

import (
	"github.com/pkg/errors"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// FindClass returns a local reference to the named class. Dotted names are
// converted to the runtime's binary form.
func (e *Env) FindClass(name string) (jvm.Class, error) {
	binary := sig.BinaryName(name)
	cls := e.env().FindClass(binary)
	if cls == 0 {
		return 0, e.lookupFailure(ErrClassNotFound, "%s", binary)
	}
	return cls, nil
}

// ObjectClass returns a local reference to the class of obj.
func (e *Env) ObjectClass(obj jvm.Object) (jvm.Class, error) {
	if obj == 0 {
		return 0, ErrNullReference
	}
	cls := e.env().GetObjectClass(obj)
	if cls == 0 {
		if err := e.Check(); err != nil {
			return 0, err
		}
		return 0, errors.Wrap(ErrOperationFailed, "object class")
	}
	return cls, nil
}

// Superclass returns a local reference to the superclass of cls, or 0 for
// java.lang.Object.
func (e *Env) Superclass(cls jvm.Class) jvm.Class {
	return e.env().GetSuperclass(cls)
}

// IsAssignableFrom reports whether an object of class sub can be cast to sup.
func (e *Env) IsAssignableFrom(sub, sup jvm.Class) bool {
	return e.env().IsAssignableFrom(sub, sup)
}

// MethodID resolves an instance method on the class of obj. The receiver's
// class reference is released before returning.
func (e *Env) MethodID(obj jvm.Object, name, desc string) (jvm.MethodID, error) {
	cls, err := e.ObjectClass(obj)
	if err != nil {
		return 0, err
	}
	defer e.DeleteLocal(cls)
	return e.ClassMethodID(cls, name, desc)
}

// ClassMethodID resolves an instance method or constructor on cls.
func (e *Env) ClassMethodID(cls jvm.Class, name, desc string) (jvm.MethodID, error) {
	id := e.env().GetMethodID(cls, name, desc)
	if id == 0 {
		return 0, e.lookupFailure(ErrMethodNotFound, "%s%s", name, desc)
	}
	return id, nil
}

// StaticMethodID resolves a static method on cls.
func (e *Env) StaticMethodID(cls jvm.Class, name, desc string) (jvm.MethodID, error) {
	id := e.env().GetStaticMethodID(cls, name, desc)
	if id == 0 {
		return 0, e.lookupFailure(ErrMethodNotFound, "static %s%s", name, desc)
	}
	return id, nil
}

// FieldID resolves an instance field on cls.
func (e *Env) FieldID(cls jvm.Class, name string, typ sig.Type) (jvm.FieldID, error) {
	id := e.env().GetFieldID(cls, name, string(typ))
	if id == 0 {
		return 0, e.lookupFailure(ErrFieldNotFound, "%s %s", name, typ)
	}
	return id, nil
}

// StaticFieldID resolves a static field on cls.
func (e *Env) StaticFieldID(cls jvm.Class, name string, typ sig.Type) (jvm.FieldID, error) {
	id := e.env().GetStaticFieldID(cls, name, string(typ))
	if id == 0 {
		return 0, e.lookupFailure(ErrFieldNotFound, "static %s %s", name, typ)
	}
	return id, nil
}

// objectFieldID resolves an instance field on the class of obj.
func (e *Env) objectFieldID(obj jvm.Object, name string, typ sig.Type) (jvm.FieldID, error) {
	cls, err := e.ObjectClass(obj)
	if err != nil {
		return 0, err
	}
	defer e.DeleteLocal(cls)
	return e.FieldID(cls, name, typ)
}

// class resolves a class through the accessor's cache. The returned release
// function must be called once the class is no longer needed.
func (e *Env) class(name string) (jvm.Class, func(), error) {
	if e.acc.classes != nil {
		cls, err := e.acc.classes.Class(e, name)
		return cls, func() {}, err
	}
	cls, err := e.FindClass(name)
	if err != nil {
		return 0, nil, err
	}
	return cls, func() { e.DeleteLocal(cls) }, nil
}
