package jni

import (
	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// readObject decodes the local reference a read produced and deletes it.
func readObject(env *Env, obj jvm.Object, err error, decode func(obj jvm.Object) error) error {
	if err != nil {
		return err
	}
	if obj != 0 {
		defer env.DeleteLocal(obj)
	}
	return decode(obj)
}

// localArg boxes a freshly created local reference and releases it after
// the call.
func localArg(env *Env, obj jvm.Object, err error) (Parameter, func(), error) {
	if err != nil {
		return Parameter{}, nil, err
	}
	return ObjectParam(obj), func() { env.DeleteLocal(obj) }, nil
}

// String holds a string, descriptor Ljava/lang/String;. Null results read as
// the empty string.
type String string

func (String) Descriptor() sig.Type { return sig.String }

func (v String) Parameter(env *Env) (Parameter, func(), error) {
	obj, err := env.NewString(string(v))
	return localArg(env, obj, err)
}

func (v *String) decode(env *Env) func(jvm.Object) error {
	return func(obj jvm.Object) error {
		if obj == 0 {
			*v = ""
			return nil
		}
		r, err := env.GoString(obj)
		return assign(v, String(r), err)
	}
}

func (v *String) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetObjectField(obj, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *String) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticObjectField(cls, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *String) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallObjectMethod(obj, id, args)
	return readObject(env, r, err, v.decode(env))
}

func (v *String) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticObjectMethod(cls, id, args)
	return readObject(env, r, err, v.decode(env))
}

// Strings holds a string array, descriptor [Ljava/lang/String;.
type Strings []string

func (Strings) Descriptor() sig.Type { return sig.Array(sig.String) }

func (v Strings) Parameter(env *Env) (Parameter, func(), error) {
	obj, err := env.NewStringArray([]string(v))
	return localArg(env, obj, err)
}

func (v *Strings) decode(env *Env) func(jvm.Object) error {
	return func(obj jvm.Object) error {
		if obj == 0 {
			*v = nil
			return nil
		}
		r, err := env.Strings(obj)
		return assign(v, Strings(r), err)
	}
}

func (v *Strings) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetObjectField(obj, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Strings) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticObjectField(cls, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Strings) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallObjectMethod(obj, id, args)
	return readObject(env, r, err, v.decode(env))
}

func (v *Strings) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticObjectMethod(cls, id, args)
	return readObject(env, r, err, v.decode(env))
}

// Bytes holds a byte array, descriptor [B.
type Bytes []byte

func (Bytes) Descriptor() sig.Type { return sig.Array(sig.Byte) }

func (v Bytes) Parameter(env *Env) (Parameter, func(), error) {
	obj, err := env.NewBytes([]byte(v))
	return localArg(env, obj, err)
}

func (v *Bytes) decode(env *Env) func(jvm.Object) error {
	return func(obj jvm.Object) error {
		if obj == 0 {
			*v = nil
			return nil
		}
		r, err := env.Bytes(obj, 0, -1)
		return assign(v, Bytes(r), err)
	}
}

func (v *Bytes) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetObjectField(obj, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Bytes) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticObjectField(cls, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Bytes) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallObjectMethod(obj, id, args)
	return readObject(env, r, err, v.decode(env))
}

func (v *Bytes) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticObjectMethod(cls, id, args)
	return readObject(env, r, err, v.decode(env))
}

type Ints []int32

func (Ints) Descriptor() sig.Type { return sig.Array(sig.Int) }

func (v Ints) Parameter(env *Env) (Parameter, func(), error) {
	obj, err := env.NewInts([]int32(v))
	return localArg(env, obj, err)
}

func (v *Ints) decode(env *Env) func(jvm.Object) error {
	return func(obj jvm.Object) error {
		if obj == 0 {
			*v = nil
			return nil
		}
		r, err := env.Ints(obj, 0, -1)
		return assign(v, Ints(r), err)
	}
}

func (v *Ints) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetObjectField(obj, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Ints) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticObjectField(cls, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Ints) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallObjectMethod(obj, id, args)
	return readObject(env, r, err, v.decode(env))
}

func (v *Ints) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticObjectMethod(cls, id, args)
	return readObject(env, r, err, v.decode(env))
}

type Floats []float32

func (Floats) Descriptor() sig.Type { return sig.Array(sig.Float) }

func (v Floats) Parameter(env *Env) (Parameter, func(), error) {
	obj, err := env.NewFloats([]float32(v))
	return localArg(env, obj, err)
}

func (v *Floats) decode(env *Env) func(jvm.Object) error {
	return func(obj jvm.Object) error {
		if obj == 0 {
			*v = nil
			return nil
		}
		r, err := env.Floats(obj, 0, -1)
		return assign(v, Floats(r), err)
	}
}

func (v *Floats) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetObjectField(obj, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Floats) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticObjectField(cls, id)
	return readObject(env, r, err, v.decode(env))
}

func (v *Floats) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallObjectMethod(obj, id, args)
	return readObject(env, r, err, v.decode(env))
}

func (v *Floats) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticObjectMethod(cls, id, args)
	return readObject(env, r, err, v.decode(env))
}

// Ref is an opaque object reference, descriptor Ljava/lang/Object;. Results
// are local references owned by the caller.
type Ref jvm.Object

func (Ref) Descriptor() sig.Type { return sig.Object }

func (v Ref) Parameter(*Env) (Parameter, func(), error) {
	return ObjectParam(jvm.Object(v)), nil, nil
}

func (v *Ref) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetObjectField(obj, id)
	return assign(v, Ref(r), err)
}

func (v *Ref) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticObjectField(cls, id)
	return assign(v, Ref(r), err)
}

func (v *Ref) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallObjectMethod(obj, id, args)
	return assign(v, Ref(r), err)
}

func (v *Ref) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticObjectMethod(cls, id, args)
	return assign(v, Ref(r), err)
}

// ClassNamer names the class a Typed reference is declared as.
type ClassNamer interface {
	ClassName() string
}

// Typed is an object reference whose descriptor is the class named by C.
// Results are local references owned by the caller.
type Typed[C ClassNamer] jvm.Object

func (Typed[C]) Descriptor() sig.Type {
	var c C
	return sig.Class(c.ClassName())
}

func (v Typed[C]) Parameter(*Env) (Parameter, func(), error) {
	return ObjectParam(jvm.Object(v)), nil, nil
}

func (v *Typed[C]) ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error {
	r, err := env.GetObjectField(obj, id)
	return assign(v, Typed[C](r), err)
}

func (v *Typed[C]) ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error {
	r, err := env.GetStaticObjectField(cls, id)
	return assign(v, Typed[C](r), err)
}

func (v *Typed[C]) ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallObjectMethod(obj, id, args)
	return assign(v, Typed[C](r), err)
}

func (v *Typed[C]) ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error {
	r, err := env.CallStaticObjectMethod(cls, id, args)
	return assign(v, Typed[C](r), err)
}

type contextClass struct{}

func (contextClass) ClassName() string { return "android.content.Context" }

// Context is an android.content.Context reference.
type Context = Typed[contextClass]
