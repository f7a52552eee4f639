package jni

import (
	"strings"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// methodDescriptor builds the descriptor of a method from its result and
// argument types.
func methodDescriptor(ret sig.Type, args []Convertible) string {
	return sig.Method(ret, descriptors(args)...)
}

// objectType returns the descriptor of a class name, accepting array
// descriptors as they are.
func objectType(className string) sig.Type {
	if strings.HasPrefix(className, "[") {
		return sig.Type(sig.BinaryName(className))
	}
	return sig.Class(className)
}

func invokeWith[T any, P readable[T]](env *Env, obj jvm.Object, id jvm.MethodID, args []Convertible) (T, error) {
	var result T
	a, err := marshal(env, args)
	if err != nil {
		return result, err
	}
	defer a.release()

	if err := P(&result).ReadMethod(env, obj, id, a.values); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

func invokeStaticWith[T any, P readable[T]](env *Env, cls jvm.Class, id jvm.MethodID, args []Convertible) (T, error) {
	var result T
	a, err := marshal(env, args)
	if err != nil {
		return result, err
	}
	defer a.release()

	if err := P(&result).ReadStaticMethod(env, cls, id, a.values); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// Call invokes an instance method whose descriptor is derived from the
// result type T and the argument types.
func Call[T any, P readable[T]](env *Env, obj jvm.Object, name string, args ...Convertible) (T, error) {
	var zero T
	id, err := env.MethodID(obj, name, methodDescriptor(P(&zero).Descriptor(), args))
	if err != nil {
		return zero, err
	}
	return invokeWith[T, P](env, obj, id, args)
}

// CallVoid invokes an instance method returning void.
func CallVoid(env *Env, obj jvm.Object, name string, args ...Convertible) error {
	id, err := env.MethodID(obj, name, methodDescriptor(sig.Void, args))
	if err != nil {
		return err
	}
	return callVoidWith(env, obj, id, args)
}

func callVoidWith(env *Env, obj jvm.Object, id jvm.MethodID, args []Convertible) error {
	a, err := marshal(env, args)
	if err != nil {
		return err
	}
	defer a.release()
	return env.CallVoidMethod(obj, id, a.values)
}

// CallObject invokes an instance method returning an object of the named
// class. The result is a local reference owned by the caller.
func CallObject(env *Env, obj jvm.Object, name, retClass string, args ...Convertible) (jvm.Object, error) {
	id, err := env.MethodID(obj, name, methodDescriptor(objectType(retClass), args))
	if err != nil {
		return 0, err
	}
	a, err := marshal(env, args)
	if err != nil {
		return 0, err
	}
	defer a.release()
	return env.CallObjectMethod(obj, id, a.values)
}

// CallStatic invokes a static method of cls.
func CallStatic[T any, P readable[T]](env *Env, cls jvm.Class, name string, args ...Convertible) (T, error) {
	var zero T
	id, err := env.StaticMethodID(cls, name, methodDescriptor(P(&zero).Descriptor(), args))
	if err != nil {
		return zero, err
	}
	return invokeStaticWith[T, P](env, cls, id, args)
}

// CallStaticVoid invokes a static method returning void.
func CallStaticVoid(env *Env, cls jvm.Class, name string, args ...Convertible) error {
	id, err := env.StaticMethodID(cls, name, methodDescriptor(sig.Void, args))
	if err != nil {
		return err
	}
	return callStaticVoidWith(env, cls, id, args)
}

func callStaticVoidWith(env *Env, cls jvm.Class, id jvm.MethodID, args []Convertible) error {
	a, err := marshal(env, args)
	if err != nil {
		return err
	}
	defer a.release()
	return env.CallStaticVoidMethod(cls, id, a.values)
}

// CallStaticObject invokes a static method returning an object of the named
// class.
func CallStaticObject(env *Env, cls jvm.Class, name, retClass string, args ...Convertible) (jvm.Object, error) {
	id, err := env.StaticMethodID(cls, name, methodDescriptor(objectType(retClass), args))
	if err != nil {
		return 0, err
	}
	a, err := marshal(env, args)
	if err != nil {
		return 0, err
	}
	defer a.release()
	return env.CallStaticObjectMethod(cls, id, a.values)
}

// GetField reads an instance field of type T.
func GetField[T any, P readable[T]](env *Env, obj jvm.Object, name string) (T, error) {
	var result T
	id, err := env.objectFieldID(obj, name, P(&result).Descriptor())
	if err != nil {
		return result, err
	}
	if err := P(&result).ReadField(env, obj, id); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// SetField writes an instance field.
func SetField(env *Env, obj jvm.Object, name string, v Convertible) error {
	id, err := env.objectFieldID(obj, name, v.Descriptor())
	if err != nil {
		return err
	}
	return setFieldWith(env, obj, id, v)
}

func setFieldWith(env *Env, obj jvm.Object, id jvm.FieldID, v Convertible) error {
	p, release, err := v.Parameter(env)
	if err != nil {
		return err
	}
	if release != nil {
		defer release()
	}
	return env.SetFieldValue(obj, id, p)
}

// GetStaticField reads a static field of cls.
func GetStaticField[T any, P readable[T]](env *Env, cls jvm.Class, name string) (T, error) {
	var result T
	id, err := env.StaticFieldID(cls, name, P(&result).Descriptor())
	if err != nil {
		return result, err
	}
	if err := P(&result).ReadStaticField(env, cls, id); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// SetStaticField writes a static field of cls.
func SetStaticField(env *Env, cls jvm.Class, name string, v Convertible) error {
	id, err := env.StaticFieldID(cls, name, v.Descriptor())
	if err != nil {
		return err
	}
	p, release, err := v.Parameter(env)
	if err != nil {
		return err
	}
	if release != nil {
		defer release()
	}
	return env.SetStaticFieldValue(cls, id, p)
}

// NewObject constructs an instance of cls. The constructor is resolved
// against cls with a void descriptor built from the arguments.
func NewObject(env *Env, cls jvm.Class, args ...Convertible) (jvm.Object, error) {
	ctor, err := env.ClassMethodID(cls, "<init>", sig.Constructor(descriptors(args)...))
	if err != nil {
		return 0, err
	}
	return newObjectWith(env, cls, ctor, args)
}

func newObjectWith(env *Env, cls jvm.Class, ctor jvm.MethodID, args []Convertible) (jvm.Object, error) {
	a, err := marshal(env, args)
	if err != nil {
		return 0, err
	}
	defer a.release()
	return env.NewObjectWith(cls, ctor, a.values)
}

// New constructs an instance of the named class.
func New(env *Env, className string, args ...Convertible) (jvm.Object, error) {
	cls, release, err := env.class(className)
	if err != nil {
		return 0, err
	}
	defer release()
	return NewObject(env, cls, args...)
}
