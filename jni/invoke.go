package jni

import (
	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// checked pairs the result of a raw call with the pending-exception check.
// A value is never returned alongside an error.
func checked[T any](e *Env, v T) (T, error) {
	if err := e.Check(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (e *Env) CallObjectMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (jvm.Object, error) {
	return checked(e, e.env().CallObjectMethodA(obj, id, args))
}

func (e *Env) CallBooleanMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (bool, error) {
	return checked(e, e.env().CallBooleanMethodA(obj, id, args))
}

func (e *Env) CallByteMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (int8, error) {
	return checked(e, e.env().CallByteMethodA(obj, id, args))
}

func (e *Env) CallCharMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (uint16, error) {
	return checked(e, e.env().CallCharMethodA(obj, id, args))
}

func (e *Env) CallShortMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (int16, error) {
	return checked(e, e.env().CallShortMethodA(obj, id, args))
}

func (e *Env) CallIntMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (int32, error) {
	return checked(e, e.env().CallIntMethodA(obj, id, args))
}

func (e *Env) CallLongMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (int64, error) {
	return checked(e, e.env().CallLongMethodA(obj, id, args))
}

func (e *Env) CallFloatMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (float32, error) {
	return checked(e, e.env().CallFloatMethodA(obj, id, args))
}

func (e *Env) CallDoubleMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) (float64, error) {
	return checked(e, e.env().CallDoubleMethodA(obj, id, args))
}

func (e *Env) CallVoidMethod(obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	e.env().CallVoidMethodA(obj, id, args)
	return e.Check()
}

// CallNonvirtualVoidMethod calls the implementation of id declared by cls,
// bypassing overrides in the class of obj.
func (e *Env) CallNonvirtualVoidMethod(obj jvm.Object, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	e.env().CallNonvirtualVoidMethodA(obj, cls, id, args)
	return e.Check()
}

func (e *Env) CallStaticObjectMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (jvm.Object, error) {
	return checked(e, e.env().CallStaticObjectMethodA(cls, id, args))
}

func (e *Env) CallStaticBooleanMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (bool, error) {
	return checked(e, e.env().CallStaticBooleanMethodA(cls, id, args))
}

func (e *Env) CallStaticByteMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (int8, error) {
	return checked(e, e.env().CallStaticByteMethodA(cls, id, args))
}

func (e *Env) CallStaticCharMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (uint16, error) {
	return checked(e, e.env().CallStaticCharMethodA(cls, id, args))
}

func (e *Env) CallStaticShortMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (int16, error) {
	return checked(e, e.env().CallStaticShortMethodA(cls, id, args))
}

func (e *Env) CallStaticIntMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (int32, error) {
	return checked(e, e.env().CallStaticIntMethodA(cls, id, args))
}

func (e *Env) CallStaticLongMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (int64, error) {
	return checked(e, e.env().CallStaticLongMethodA(cls, id, args))
}

func (e *Env) CallStaticFloatMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (float32, error) {
	return checked(e, e.env().CallStaticFloatMethodA(cls, id, args))
}

func (e *Env) CallStaticDoubleMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) (float64, error) {
	return checked(e, e.env().CallStaticDoubleMethodA(cls, id, args))
}

func (e *Env) CallStaticVoidMethod(cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	e.env().CallStaticVoidMethodA(cls, id, args)
	return e.Check()
}

// NewObjectWith constructs an instance of cls with a resolved constructor.
func (e *Env) NewObjectWith(cls jvm.Class, ctor jvm.MethodID, args []jvm.Value) (jvm.Object, error) {
	obj, err := checked(e, e.env().NewObjectA(cls, ctor, args))
	if err == nil && obj == 0 {
		err = ErrReferenceCreationFailed
	}
	return obj, err
}

// AllocObject allocates an instance of cls without running a constructor.
func (e *Env) AllocObject(cls jvm.Class) (jvm.Object, error) {
	obj, err := checked(e, e.env().AllocObject(cls))
	if err == nil && obj == 0 {
		err = ErrReferenceCreationFailed
	}
	return obj, err
}

func (e *Env) GetObjectField(obj jvm.Object, id jvm.FieldID) (jvm.Object, error) {
	return checked(e, e.env().GetObjectField(obj, id))
}

func (e *Env) GetBooleanField(obj jvm.Object, id jvm.FieldID) (bool, error) {
	return checked(e, e.env().GetBooleanField(obj, id))
}

func (e *Env) GetByteField(obj jvm.Object, id jvm.FieldID) (int8, error) {
	return checked(e, e.env().GetByteField(obj, id))
}

func (e *Env) GetCharField(obj jvm.Object, id jvm.FieldID) (uint16, error) {
	return checked(e, e.env().GetCharField(obj, id))
}

func (e *Env) GetShortField(obj jvm.Object, id jvm.FieldID) (int16, error) {
	return checked(e, e.env().GetShortField(obj, id))
}

func (e *Env) GetIntField(obj jvm.Object, id jvm.FieldID) (int32, error) {
	return checked(e, e.env().GetIntField(obj, id))
}

func (e *Env) GetLongField(obj jvm.Object, id jvm.FieldID) (int64, error) {
	return checked(e, e.env().GetLongField(obj, id))
}

func (e *Env) GetFloatField(obj jvm.Object, id jvm.FieldID) (float32, error) {
	return checked(e, e.env().GetFloatField(obj, id))
}

func (e *Env) GetDoubleField(obj jvm.Object, id jvm.FieldID) (float64, error) {
	return checked(e, e.env().GetDoubleField(obj, id))
}

func (e *Env) GetStaticObjectField(cls jvm.Class, id jvm.FieldID) (jvm.Object, error) {
	return checked(e, e.env().GetStaticObjectField(cls, id))
}

func (e *Env) GetStaticBooleanField(cls jvm.Class, id jvm.FieldID) (bool, error) {
	return checked(e, e.env().GetStaticBooleanField(cls, id))
}

func (e *Env) GetStaticByteField(cls jvm.Class, id jvm.FieldID) (int8, error) {
	return checked(e, e.env().GetStaticByteField(cls, id))
}

func (e *Env) GetStaticCharField(cls jvm.Class, id jvm.FieldID) (uint16, error) {
	return checked(e, e.env().GetStaticCharField(cls, id))
}

func (e *Env) GetStaticShortField(cls jvm.Class, id jvm.FieldID) (int16, error) {
	return checked(e, e.env().GetStaticShortField(cls, id))
}

func (e *Env) GetStaticIntField(cls jvm.Class, id jvm.FieldID) (int32, error) {
	return checked(e, e.env().GetStaticIntField(cls, id))
}

func (e *Env) GetStaticLongField(cls jvm.Class, id jvm.FieldID) (int64, error) {
	return checked(e, e.env().GetStaticLongField(cls, id))
}

func (e *Env) GetStaticFloatField(cls jvm.Class, id jvm.FieldID) (float32, error) {
	return checked(e, e.env().GetStaticFloatField(cls, id))
}

func (e *Env) GetStaticDoubleField(cls jvm.Class, id jvm.FieldID) (float64, error) {
	return checked(e, e.env().GetStaticDoubleField(cls, id))
}

// SetFieldValue stores p in an instance field.
func (e *Env) SetFieldValue(obj jvm.Object, id jvm.FieldID, p Parameter) error {
	raw := e.env()
	switch p.kind {
	case sig.KindBoolean:
		raw.SetBooleanField(obj, id, p.Bool())
	case sig.KindByte:
		raw.SetByteField(obj, id, p.Byte())
	case sig.KindChar:
		raw.SetCharField(obj, id, p.Char())
	case sig.KindShort:
		raw.SetShortField(obj, id, p.Short())
	case sig.KindInt:
		raw.SetIntField(obj, id, p.Int())
	case sig.KindLong:
		raw.SetLongField(obj, id, p.Long())
	case sig.KindFloat:
		raw.SetFloatField(obj, id, p.Float())
	case sig.KindDouble:
		raw.SetDoubleField(obj, id, p.Double())
	case sig.KindObject:
		raw.SetObjectField(obj, id, p.Object())
	default:
		return ErrInvalidParameter
	}
	return e.Check()
}

// SetStaticFieldValue stores p in a static field.
func (e *Env) SetStaticFieldValue(cls jvm.Class, id jvm.FieldID, p Parameter) error {
	raw := e.env()
	switch p.kind {
	case sig.KindBoolean:
		raw.SetStaticBooleanField(cls, id, p.Bool())
	case sig.KindByte:
		raw.SetStaticByteField(cls, id, p.Byte())
	case sig.KindChar:
		raw.SetStaticCharField(cls, id, p.Char())
	case sig.KindShort:
		raw.SetStaticShortField(cls, id, p.Short())
	case sig.KindInt:
		raw.SetStaticIntField(cls, id, p.Int())
	case sig.KindLong:
		raw.SetStaticLongField(cls, id, p.Long())
	case sig.KindFloat:
		raw.SetStaticFloatField(cls, id, p.Float())
	case sig.KindDouble:
		raw.SetStaticDoubleField(cls, id, p.Double())
	case sig.KindObject:
		raw.SetStaticObjectField(cls, id, p.Object())
	default:
		return ErrInvalidParameter
	}
	return e.Check()
}
