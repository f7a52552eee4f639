package jvmtest

import (
	"fmt"
	"strings"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// MethodFunc implements a method of a fake class. It runs with the runtime
// lock held and must not call back into an Env.
type MethodFunc func(c *Call) Value

// Class is a class defined in the fake runtime.
type Class struct {
	rt      *Runtime
	name    string
	super   *Class
	elem    sig.Type
	methods []*Method
	fields  []*Field
	statics map[string]Value
	natives []jvm.NativeMethod
	mirror  *Object
}

// Method is a method declared on a Class.
type Method struct {
	id        jvm.MethodID
	class     *Class
	name      string
	desc      string
	signature sig.Signature
	static    bool
	impl      MethodFunc
}

// Field is a field declared on a Class.
type Field struct {
	id     jvm.FieldID
	class  *Class
	name   string
	typ    sig.Type
	static bool
}

// Name returns the binary name of the class, e.g. java/lang/String.
func (c *Class) Name() string {
	return c.name
}

// Super returns the superclass, or nil for java/lang/Object.
func (c *Class) Super() *Class {
	return c.super
}

// Method declares an instance method. Declaring the same name and descriptor
// again replaces the implementation.
func (c *Class) Method(name, desc string, fn MethodFunc) *Class {
	c.rt.mu.Lock()
	defer c.rt.mu.Unlock()
	c.declare(name, desc, false, fn)
	return c
}

// StaticMethod declares a static method.
func (c *Class) StaticMethod(name, desc string, fn MethodFunc) *Class {
	c.rt.mu.Lock()
	defer c.rt.mu.Unlock()
	c.declare(name, desc, true, fn)
	return c
}

// Constructor declares a constructor. fn may be nil for a constructor that
// only zeroes fields.
func (c *Class) Constructor(desc string, fn MethodFunc) *Class {
	if fn == nil {
		fn = func(*Call) Value { return Void }
	}
	return c.Method("<init>", desc, fn)
}

// Native declares a method without a Go implementation. It can be the target
// of RegisterNatives; calling it throws UnsatisfiedLinkError.
func (c *Class) Native(name, desc string, static bool) *Class {
	c.rt.mu.Lock()
	defer c.rt.mu.Unlock()
	c.declare(name, desc, static, nil)
	return c
}

// Field declares an instance field.
func (c *Class) Field(name string, typ sig.Type) *Class {
	c.rt.mu.Lock()
	defer c.rt.mu.Unlock()
	c.declareField(name, typ, false)
	return c
}

// StaticField declares a static field with an initial value.
func (c *Class) StaticField(name string, typ sig.Type, v Value) *Class {
	c.rt.mu.Lock()
	defer c.rt.mu.Unlock()
	c.declareField(name, typ, true)
	c.statics[name] = v
	return c
}

// Static returns the current value of a static field.
func (c *Class) Static(name string) Value {
	c.rt.mu.Lock()
	defer c.rt.mu.Unlock()
	return c.statics[name]
}

// Natives returns the methods registered for the class.
func (c *Class) Natives() []jvm.NativeMethod {
	c.rt.mu.Lock()
	defer c.rt.mu.Unlock()
	return append([]jvm.NativeMethod(nil), c.natives...)
}

func (c *Class) declare(name, desc string, static bool, fn MethodFunc) {
	signature, err := sig.ParseMethod(desc)
	if err != nil {
		panic(fmt.Sprintf("jvmtest: %s.%s: %v", c.name, name, err))
	}
	for _, m := range c.methods {
		if m.name == name && m.signature.Equal(signature) {
			m.static = static
			m.impl = fn
			return
		}
	}
	m := &Method{
		id:        jvm.MethodID(len(c.rt.methods) + 1),
		class:     c,
		name:      name,
		desc:      desc,
		signature: signature,
		static:    static,
		impl:      fn,
	}
	c.rt.methods = append(c.rt.methods, m)
	c.methods = append(c.methods, m)
}

func (c *Class) declareField(name string, typ sig.Type, static bool) {
	if !typ.Valid() || typ == sig.Void {
		panic(fmt.Sprintf("jvmtest: %s.%s: invalid field type %q", c.name, name, typ))
	}
	f := &Field{
		id:     jvm.FieldID(len(c.rt.fields) + 1),
		class:  c,
		name:   name,
		typ:    typ,
		static: static,
	}
	c.rt.fields = append(c.rt.fields, f)
	c.fields = append(c.fields, f)
}

// lookupMethod searches c and its superclasses. Constructors are only
// searched on c itself.
func (c *Class) lookupMethod(name string, signature sig.Signature, static bool) *Method {
	for k := c; k != nil; k = k.super {
		for _, m := range k.methods {
			if m.name == name && m.static == static && m.signature.Equal(signature) {
				return m
			}
		}
		if name == "<init>" {
			break
		}
	}
	return nil
}

func (c *Class) lookupField(name string, typ sig.Type, static bool) *Field {
	for k := c; k != nil; k = k.super {
		for _, f := range k.fields {
			if f.name == name && f.typ == typ && f.static == static {
				return f
			}
		}
	}
	return nil
}

func (c *Class) isSubclassOf(sup *Class) bool {
	for k := c; k != nil; k = k.super {
		if k == sup {
			return true
		}
	}
	return false
}

func (c *Class) isArray() bool {
	return strings.HasPrefix(c.name, "[")
}

// Call is the invocation context handed to a MethodFunc.
type Call struct {
	rt     *Runtime
	env    *Env
	This   *Object
	Class  *Class
	Method string
	Args   []Value
	thrown *Object
}

// Throw raises an exception of the named class from the method.
func (c *Call) Throw(className, msg string) Value {
	c.thrown = c.rt.newThrowable(sig.BinaryName(className), msg)
	return Void
}

// NewString creates a string object.
func (c *Call) NewString(s string) *Object {
	return c.rt.newString(s)
}

// New allocates an instance of the named class without running a
// constructor.
func (c *Call) New(className string) *Object {
	k := c.rt.classes[sig.BinaryName(className)]
	if k == nil {
		panic("jvmtest: unknown class " + className)
	}
	return c.rt.newInstance(k)
}

// NewArray creates an array with the given element type and contents.
func (c *Call) NewArray(elem sig.Type, values ...Value) *Object {
	arr := c.rt.newArray(elem, len(values))
	copy(arr.elems, values)
	return arr
}
