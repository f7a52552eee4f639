package jni

import (
	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

func assign[T any](dst *T, v T, err error) error {
	if err == nil {
		*dst = v
	}
	return err
}

// Bool is a boolean, descriptor Z.
type Bool bool

func (Bool) Descriptor() sig.Type { return sig.Boolean }

func (v Bool) Parameter(*Env) (Parameter, func(), error) {
	return BoolParam(bool(v)), nil, nil
}

func (v *Bool) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetBooleanField(obj, id)
	return assign(v, Bool(r), err)
}

func (v *Bool) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticBooleanField(cls, id)
	return assign(v, Bool(r), err)
}

func (v *Bool) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallBooleanMethod(obj, id, args)
	return assign(v, Bool(r), err)
}

func (v *Bool) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticBooleanMethod(cls, id, args)
	return assign(v, Bool(r), err)
}

// Byte is a signed 8-bit integer, descriptor B.
type Byte int8

func (Byte) Descriptor() sig.Type { return sig.Byte }

func (v Byte) Parameter(*Env) (Parameter, func(), error) {
	return ByteParam(int8(v)), nil, nil
}

func (v *Byte) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetByteField(obj, id)
	return assign(v, Byte(r), err)
}

func (v *Byte) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticByteField(cls, id)
	return assign(v, Byte(r), err)
}

func (v *Byte) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallByteMethod(obj, id, args)
	return assign(v, Byte(r), err)
}

func (v *Byte) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticByteMethod(cls, id, args)
	return assign(v, Byte(r), err)
}

// Char is a UTF-16 code unit, descriptor C.
type Char uint16

func (Char) Descriptor() sig.Type { return sig.Char }

func (v Char) Parameter(*Env) (Parameter, func(), error) {
	return CharParam(uint16(v)), nil, nil
}

func (v *Char) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetCharField(obj, id)
	return assign(v, Char(r), err)
}

func (v *Char) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticCharField(cls, id)
	return assign(v, Char(r), err)
}

func (v *Char) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallCharMethod(obj, id, args)
	return assign(v, Char(r), err)
}

func (v *Char) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticCharMethod(cls, id, args)
	return assign(v, Char(r), err)
}

// Short is a signed 16-bit integer, descriptor S.
type Short int16

func (Short) Descriptor() sig.Type { return sig.Short }

func (v Short) Parameter(*Env) (Parameter, func(), error) {
	return ShortParam(int16(v)), nil, nil
}

func (v *Short) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetShortField(obj, id)
	return assign(v, Short(r), err)
}

func (v *Short) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticShortField(cls, id)
	return assign(v, Short(r), err)
}

func (v *Short) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallShortMethod(obj, id, args)
	return assign(v, Short(r), err)
}

func (v *Short) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticShortMethod(cls, id, args)
	return assign(v, Short(r), err)
}

// Int is a platform int passed as a 32-bit int, descriptor I. Values outside
// the 32-bit range wrap when passed; results are sign extended.
type Int int

func (Int) Descriptor() sig.Type { return sig.Int }

func (v Int) Parameter(*Env) (Parameter, func(), error) {
	return IntParam(int32(v)), nil, nil
}

func (v *Int) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetIntField(obj, id)
	return assign(v, Int(r), err)
}

func (v *Int) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticIntField(cls, id)
	return assign(v, Int(r), err)
}

func (v *Int) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallIntMethod(obj, id, args)
	return assign(v, Int(r), err)
}

func (v *Int) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticIntMethod(cls, id, args)
	return assign(v, Int(r), err)
}

type Int32 int32

func (Int32) Descriptor() sig.Type { return sig.Int }

func (v Int32) Parameter(*Env) (Parameter, func(), error) {
	return IntParam(int32(v)), nil, nil
}

func (v *Int32) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetIntField(obj, id)
	return assign(v, Int32(r), err)
}

func (v *Int32) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticIntField(cls, id)
	return assign(v, Int32(r), err)
}

func (v *Int32) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallIntMethod(obj, id, args)
	return assign(v, Int32(r), err)
}

func (v *Int32) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticIntMethod(cls, id, args)
	return assign(v, Int32(r), err)
}

type Long int64

func (Long) Descriptor() sig.Type { return sig.Long }

func (v Long) Parameter(*Env) (Parameter, func(), error) {
	return LongParam(int64(v)), nil, nil
}

func (v *Long) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetLongField(obj, id)
	return assign(v, Long(r), err)
}

func (v *Long) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticLongField(cls, id)
	return assign(v, Long(r), err)
}

func (v *Long) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallLongMethod(obj, id, args)
	return assign(v, Long(r), err)
}

func (v *Long) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticLongMethod(cls, id, args)
	return assign(v, Long(r), err)
}

type Float float32

func (Float) Descriptor() sig.Type { return sig.Float }

func (v Float) Parameter(*Env) (Parameter, func(), error) {
	return FloatParam(float32(v)), nil, nil
}

func (v *Float) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetFloatField(obj, id)
	return assign(v, Float(r), err)
}

func (v *Float) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticFloatField(cls, id)
	return assign(v, Float(r), err)
}

func (v *Float) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallFloatMethod(obj, id, args)
	return assign(v, Float(r), err)
}

func (v *Float) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticFloatMethod(cls, id, args)
	return assign(v, Float(r), err)
}

type Double float64

func (Double) Descriptor() sig.Type { return sig.Double }

func (v Double) Parameter(*Env) (Parameter, func(), error) {
	return DoubleParam(float64(v)), nil, nil
}

func (v *Double) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetDoubleField(obj, id)
	return assign(v, Double(r), err)
}

func (v *Double) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticDoubleField(cls, id)
	return assign(v, Double(r), err)
}

func (v *Double) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallDoubleMethod(obj, id, args)
	return assign(v, Double(r), err)
}

func (v *Double) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticDoubleMethod(cls, id, args)
	return assign(v, Double(r), err)
}
