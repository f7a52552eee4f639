package jni

import (
	"sync/atomic"

	"github.com/pkg/errors"
	cmap "github.com/orcaman/concurrent-map"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// Binding names a runtime class that Go code constructs instances of.
type Binding struct {
	name string
}

// Bind returns a binding for the named class. Dotted names are accepted.
func Bind(className string) *Binding {
	return &Binding{name: sig.BinaryName(className)}
}

// Name returns the binary name of the bound class.
func (b *Binding) Name() string {
	return b.name
}

// New constructs an instance. Construction is atomic: if any step fails,
// every reference created so far is released.
func (b *Binding) New(env *Env, args ...Convertible) (*Instance, error) {
	cls, release, err := env.class(b.name)
	if err != nil {
		return nil, err
	}
	defer release()

	// Create the class reference owned by the instance
	class, err := env.NewGlobal(cls)
	if err != nil {
		return nil, err
	}

	local, err := NewObject(env, cls, args...)
	if err != nil {
		class.ReleaseWith(env)
		return nil, err
	}
	defer env.DeleteLocal(local)

	ref, err := env.NewGlobal(local)
	if err != nil {
		class.ReleaseWith(env)
		return nil, err
	}

	return newInstance(b.name, class, ref), nil
}

// NewInstance constructs an instance of the named class.
func NewInstance(env *Env, className string, args ...Convertible) (*Instance, error) {
	return Bind(className).New(env, args...)
}

// Instance owns a global reference to a runtime object and to its class.
// Every operation after Release fails with ErrUseAfterRelease.
type Instance struct {
	name     string
	class    *GlobalRef
	ref      *GlobalRef
	members  cmap.ConcurrentMap
	released atomic.Bool
}

func newInstance(name string, class, ref *GlobalRef) *Instance {
	return &Instance{name: name, class: class, ref: ref, members: cmap.New()}
}

// Wrap creates an Instance holding new global references to obj and its
// class. It is used for objects received from the runtime rather than
// constructed by Go code.
func Wrap(env *Env, obj jvm.Object) (*Instance, error) {
	cls, err := env.ObjectClass(obj)
	if err != nil {
		return nil, err
	}
	defer env.DeleteLocal(cls)

	class, err := env.NewGlobal(cls)
	if err != nil {
		return nil, err
	}
	ref, err := env.NewGlobal(obj)
	if err != nil {
		class.ReleaseWith(env)
		return nil, err
	}
	name, err := className(env, cls)
	if err != nil {
		ref.ReleaseWith(env)
		class.ReleaseWith(env)
		return nil, err
	}
	return newInstance(name, class, ref), nil
}

func className(env *Env, cls jvm.Class) (string, error) {
	name, err := Call[String](env, cls, "getName")
	if err != nil {
		return "", err
	}
	return sig.BinaryName(string(name)), nil
}

// Name returns the binary name of the instance's class.
func (o *Instance) Name() string {
	return o.name
}

// Class returns the class handle, or 0 after release.
func (o *Instance) Class() jvm.Class {
	if o.released.Load() {
		return 0
	}
	return o.class.Ref()
}

// Ref returns the object handle, or 0 after release.
func (o *Instance) Ref() jvm.Object {
	if o.released.Load() {
		return 0
	}
	return o.ref.Ref()
}

// Released reports whether Release was called.
func (o *Instance) Released() bool {
	return o.released.Load()
}

// Release deletes both references. Only the first call has an effect.
func (o *Instance) Release() {
	if !o.released.CompareAndSwap(false, true) {
		return
	}
	o.ref.Release()
	o.class.Release()
}

// ReleaseWith releases the instance using an environment the caller
// already holds.
func (o *Instance) ReleaseWith(env *Env) {
	if !o.released.CompareAndSwap(false, true) {
		return
	}
	o.ref.ReleaseWith(env)
	o.class.ReleaseWith(env)
}

func (o *Instance) handles() (jvm.Object, jvm.Class, error) {
	if o.released.Load() {
		return 0, 0, errors.Wrap(ErrUseAfterRelease, o.name)
	}
	return o.ref.Ref(), o.class.Ref(), nil
}

// instanceMember resolves a member against the class the instance holds and
// memoizes the id for the lifetime of the instance. The class is never looked
// up by name, so classes FindClass cannot see still resolve.
func instanceMember[ID jvm.MethodID | jvm.FieldID](o *Instance, kind, name, desc string, resolve func(jvm.Class, string, string) (ID, error)) (ID, error) {
	_, cls, err := o.handles()
	if err != nil {
		return 0, err
	}
	key := memberKey(kind, o.name, name, desc)
	if v, ok := o.members.Get(key); ok {
		return v.(ID), nil
	}
	id, err := resolve(cls, name, desc)
	if err != nil {
		return 0, err
	}
	o.members.Set(key, id)
	return id, nil
}

func (o *Instance) methodID(env *Env, name, desc string) (jvm.MethodID, error) {
	return instanceMember(o, "m", name, desc, env.ClassMethodID)
}

func (o *Instance) staticMethodID(env *Env, name, desc string) (jvm.MethodID, error) {
	return instanceMember(o, "s", name, desc, env.StaticMethodID)
}

func (o *Instance) fieldID(env *Env, name string, typ sig.Type) (jvm.FieldID, error) {
	return instanceMember(o, "f", name, string(typ), func(cls jvm.Class, name, desc string) (jvm.FieldID, error) {
		return env.FieldID(cls, name, sig.Type(desc))
	})
}

// CallVoid invokes an instance method returning void.
func (o *Instance) CallVoid(env *Env, name string, args ...Convertible) error {
	id, err := o.methodID(env, name, methodDescriptor(sig.Void, args))
	if err != nil {
		return err
	}
	return callVoidWith(env, o.ref.Ref(), id, args)
}

// CallObject invokes an instance method returning an object of the named
// class. The result is a local reference owned by the caller.
func (o *Instance) CallObject(env *Env, name, retClass string, args ...Convertible) (jvm.Object, error) {
	id, err := o.methodID(env, name, methodDescriptor(objectType(retClass), args))
	if err != nil {
		return 0, err
	}
	a, err := marshal(env, args)
	if err != nil {
		return 0, err
	}
	defer a.release()
	return env.CallObjectMethod(o.ref.Ref(), id, a.values)
}

// CallStaticVoid invokes a static method of the instance's class.
func (o *Instance) CallStaticVoid(env *Env, name string, args ...Convertible) error {
	id, err := o.staticMethodID(env, name, methodDescriptor(sig.Void, args))
	if err != nil {
		return err
	}
	return callStaticVoidWith(env, o.class.Ref(), id, args)
}

// SetField writes an instance field.
func (o *Instance) SetField(env *Env, name string, v Convertible) error {
	id, err := o.fieldID(env, name, v.Descriptor())
	if err != nil {
		return err
	}
	return setFieldWith(env, o.ref.Ref(), id, v)
}

// Invoke calls an instance method of o returning T.
func Invoke[T any, P readable[T]](env *Env, o *Instance, name string, args ...Convertible) (T, error) {
	var zero T
	id, err := o.methodID(env, name, methodDescriptor(P(&zero).Descriptor(), args))
	if err != nil {
		return zero, err
	}
	return invokeWith[T, P](env, o.ref.Ref(), id, args)
}

// InvokeStatic calls a static method of o's class returning T.
func InvokeStatic[T any, P readable[T]](env *Env, o *Instance, name string, args ...Convertible) (T, error) {
	var zero T
	id, err := o.staticMethodID(env, name, methodDescriptor(P(&zero).Descriptor(), args))
	if err != nil {
		return zero, err
	}
	return invokeStaticWith[T, P](env, o.class.Ref(), id, args)
}

// Field reads an instance field of o.
func Field[T any, P readable[T]](env *Env, o *Instance, name string) (T, error) {
	var result T
	id, err := o.fieldID(env, name, P(&result).Descriptor())
	if err != nil {
		return result, err
	}
	if err := P(&result).ReadField(env, o.ref.Ref(), id); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
