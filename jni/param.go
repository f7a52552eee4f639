package jni

import (
	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// Parameter is one boxed argument slot: the kind of value it carries and its
// bit pattern. Arrays are carried as objects.
type Parameter struct {
	kind  sig.Kind
	value jvm.Value
}

func BoolParam(v bool) Parameter      { return Parameter{sig.KindBoolean, jvm.BooleanValue(v)} }
func ByteParam(v int8) Parameter      { return Parameter{sig.KindByte, jvm.ByteValue(v)} }
func CharParam(v uint16) Parameter    { return Parameter{sig.KindChar, jvm.CharValue(v)} }
func ShortParam(v int16) Parameter    { return Parameter{sig.KindShort, jvm.ShortValue(v)} }
func IntParam(v int32) Parameter      { return Parameter{sig.KindInt, jvm.IntValue(v)} }
func LongParam(v int64) Parameter     { return Parameter{sig.KindLong, jvm.LongValue(v)} }
func FloatParam(v float32) Parameter  { return Parameter{sig.KindFloat, jvm.FloatValue(v)} }
func DoubleParam(v float64) Parameter { return Parameter{sig.KindDouble, jvm.DoubleValue(v)} }
func ObjectParam(v jvm.Object) Parameter {
	return Parameter{sig.KindObject, jvm.ObjectValue(v)}
}

func (p Parameter) Kind() sig.Kind     { return p.kind }
func (p Parameter) Value() jvm.Value   { return p.value }
func (p Parameter) Bool() bool         { return p.value.Boolean() }
func (p Parameter) Byte() int8         { return p.value.Byte() }
func (p Parameter) Char() uint16       { return p.value.Char() }
func (p Parameter) Short() int16       { return p.value.Short() }
func (p Parameter) Int() int32         { return p.value.Int() }
func (p Parameter) Long() int64        { return p.value.Long() }
func (p Parameter) Float() float32     { return p.value.Float() }
func (p Parameter) Double() float64    { return p.value.Double() }
func (p Parameter) Object() jvm.Object { return p.value.Object() }

// Convertible is implemented by Go values that can be passed as arguments.
type Convertible interface {
	// Descriptor is the type descriptor of the argument.
	Descriptor() sig.Type

	// Parameter boxes the value. The returned function, if not nil, releases
	// whatever runtime object was allocated for the argument.
	Parameter(env *Env) (Parameter, func(), error)
}

// Readable is implemented by pointers to Go values that can be produced by a
// field read or a method result.
type Readable interface {
	Descriptor() sig.Type
	ReadField(env *Env, obj jvm.Object, id jvm.FieldID) error
	ReadStaticField(env *Env, cls jvm.Class, id jvm.FieldID) error
	ReadMethod(env *Env, obj jvm.Object, id jvm.MethodID, args []jvm.Value) error
	ReadStaticMethod(env *Env, cls jvm.Class, id jvm.MethodID, args []jvm.Value) error
}

// readable constrains type parameters to values whose pointer is Readable.
type readable[T any] interface {
	*T
	Readable
}

// Raw passes a pre-boxed parameter with an explicit descriptor.
func Raw(desc sig.Type, p Parameter) Convertible {
	return rawArg{desc, p}
}

type rawArg struct {
	desc sig.Type
	p    Parameter
}

func (r rawArg) Descriptor() sig.Type { return r.desc }

func (r rawArg) Parameter(*Env) (Parameter, func(), error) {
	return r.p, nil, nil
}

// arguments holds the boxed form of an argument list.
type arguments struct {
	env      *Env
	values   []jvm.Value
	releases []func()
}

// marshal boxes args. On error every argument boxed so far is released.
func marshal(env *Env, args []Convertible) (*arguments, error) {
	a := &arguments{env: env}
	if len(args) > 0 {
		a.values = make([]jvm.Value, 0, len(args))
	}
	for _, arg := range args {
		if arg == nil {
			a.values = append(a.values, 0)
			continue
		}
		p, release, err := arg.Parameter(env)
		if err != nil {
			a.release()
			return nil, err
		}
		a.values = append(a.values, p.value)
		if release != nil {
			a.releases = append(a.releases, release)
		}
	}
	return a, nil
}

func (a *arguments) release() {
	for _, release := range a.releases {
		release()
	}
	a.releases = nil
}

// descriptors returns the descriptors of args. A nil argument is a null
// java.lang.Object.
func descriptors(args []Convertible) []sig.Type {
	types := make([]sig.Type, len(args))
	for i, arg := range args {
		if arg == nil {
			types[i] = sig.Object
			continue
		}
		types[i] = arg.Descriptor()
	}
	return types
}
