package jvmtest

import (
	"fmt"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

type frame struct {
	capacity int
	refs     []jvm.Object
}

// Env is the per-thread environment of a Runtime.
type Env struct {
	rt      *Runtime
	tid     uint64
	daemon  bool
	frames  []*frame
	pending *Object
}

// ThreadID returns the id of the thread the environment belongs to.
func (e *Env) ThreadID() uint64 {
	return e.tid
}

// Daemon reports whether the thread was attached as a daemon.
func (e *Env) Daemon() bool {
	return e.daemon
}

// Locals returns the number of live local references across all frames.
func (e *Env) Locals() int {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	n := 0
	for _, f := range e.frames {
		n += len(f.refs)
	}
	return n
}

// Frames returns the depth of the local frame stack.
func (e *Env) Frames() int {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	return len(e.frames)
}

// Pending returns the pending exception, if any.
func (e *Env) Pending() *Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	return e.pending
}

// enter validates the calling context of an operation that must not run with
// a pending exception. The runtime lock must be held.
func (e *Env) enter(op string) {
	e.enterAny(op)
	if e.pending != nil {
		e.rt.violate("%s called with pending %s", op, e.pending.class.name)
	}
}

// enterAny validates the calling thread only.
func (e *Env) enterAny(op string) {
	if e.frames == nil {
		e.rt.violate("%s called on detached environment", op)
	}
	if e.rt.strict {
		if id := e.rt.threadID(); id != e.tid {
			e.rt.violate("%s called from thread %d on environment of thread %d", op, id, e.tid)
		}
	}
}

func (e *Env) local(o *Object) jvm.Object {
	if o == nil || e.frames == nil {
		return 0
	}
	h := e.rt.handle(o, jvm.LocalRef, e)
	top := e.frames[len(e.frames)-1]
	top.refs = append(top.refs, h)
	return h
}

func (e *Env) resolve(op string, h jvm.Object) *Object {
	if h == 0 {
		return nil
	}
	r, ok := e.rt.refs[h]
	if !ok {
		e.rt.violate("%s: invalid reference %#x", op, uintptr(h))
		return nil
	}
	if r.kind == jvm.LocalRef && r.env != e {
		e.rt.violate("%s: local reference %#x used on another thread", op, uintptr(h))
	}
	return r.obj
}

func (e *Env) resolveClass(op string, h jvm.Class) *Class {
	o := e.resolve(op, h)
	if o == nil || o.mirror == nil {
		e.rt.violate("%s: %#x is not a class", op, uintptr(h))
		return nil
	}
	return o.mirror
}

func (e *Env) throw(className, msg string) {
	e.pending = e.rt.newThrowable(className, msg)
}

// GetVersion implements jvm.Env.
func (e *Env) GetVersion() jvm.Version {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	return e.rt.version
}

// FindClass implements jvm.Env. Only slash separated names resolve.
func (e *Env) FindClass(name string) jvm.Class {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("FindClass")

	e.rt.lookups = append(e.rt.lookups, name)
	if len(name) > 0 && name[0] == '[' {
		if !sig.Type(name).Valid() {
			e.throw("java/lang/NoClassDefFoundError", name)
			return 0
		}
		return e.local(e.rt.arrayClass(sig.Type(name)).mirror)
	}
	k, ok := e.rt.classes[name]
	if !ok {
		e.throw("java/lang/NoClassDefFoundError", name)
		return 0
	}
	return e.local(k.mirror)
}

// GetSuperclass implements jvm.Env.
func (e *Env) GetSuperclass(cls jvm.Class) jvm.Class {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetSuperclass")

	k := e.resolveClass("GetSuperclass", cls)
	if k == nil || k.super == nil {
		return 0
	}
	return e.local(k.super.mirror)
}

// IsAssignableFrom implements jvm.Env.
func (e *Env) IsAssignableFrom(sub, sup jvm.Class) bool {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("IsAssignableFrom")

	a, b := e.resolveClass("IsAssignableFrom", sub), e.resolveClass("IsAssignableFrom", sup)
	if a == nil || b == nil {
		return false
	}
	return a.isSubclassOf(b)
}

// GetObjectClass implements jvm.Env.
func (e *Env) GetObjectClass(obj jvm.Object) jvm.Class {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetObjectClass")

	o := e.resolve("GetObjectClass", obj)
	if o == nil {
		e.rt.violate("GetObjectClass: null object")
		return 0
	}
	return e.local(o.class.mirror)
}

// IsInstanceOf implements jvm.Env.
func (e *Env) IsInstanceOf(obj jvm.Object, cls jvm.Class) bool {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("IsInstanceOf")

	k := e.resolveClass("IsInstanceOf", cls)
	o := e.resolve("IsInstanceOf", obj)
	if o == nil {
		return true
	}
	return k != nil && o.class.isSubclassOf(k)
}

// Throw implements jvm.Env.
func (e *Env) Throw(obj jvm.Throwable) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("Throw")

	o := e.resolve("Throw", obj)
	if o == nil {
		return -1
	}
	e.pending = o
	return 0
}

// ThrowNew implements jvm.Env.
func (e *Env) ThrowNew(cls jvm.Class, msg string) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("ThrowNew")

	k := e.resolveClass("ThrowNew", cls)
	if k == nil {
		return -1
	}
	if !k.isSubclassOf(e.rt.classes["java/lang/Throwable"]) {
		e.rt.violate("ThrowNew: %s is not a throwable class", k.name)
		return -1
	}
	e.pending = e.rt.newThrowable(k.name, msg)
	return 0
}

// ExceptionOccurred implements jvm.Env.
func (e *Env) ExceptionOccurred() jvm.Throwable {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("ExceptionOccurred")
	return e.local(e.pending)
}

// ExceptionDescribe implements jvm.Env. Like HotSpot it clears the pending
// exception.
func (e *Env) ExceptionDescribe() {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("ExceptionDescribe")

	if e.pending == nil {
		return
	}
	text := throwableString(e.pending)
	e.rt.described = append(e.rt.described, text)
	fmt.Fprintf(e.rt.out, "Exception in thread %d %s\n", e.tid, text)
	e.pending = nil
}

// ExceptionClear implements jvm.Env.
func (e *Env) ExceptionClear() {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("ExceptionClear")
	e.pending = nil
}

// ExceptionCheck implements jvm.Env.
func (e *Env) ExceptionCheck() bool {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("ExceptionCheck")
	return e.pending != nil
}

// FatalError implements jvm.Env. The fake records the message and panics.
func (e *Env) FatalError(msg string) {
	e.rt.mu.Lock()
	e.rt.violate("FatalError: %s", msg)
	e.rt.mu.Unlock()
	panic("jvmtest: fatal error: " + msg)
}

// PushLocalFrame implements jvm.Env.
func (e *Env) PushLocalFrame(capacity int32) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("PushLocalFrame")

	if capacity < 0 || capacity > maxCapacity {
		e.throw("java/lang/OutOfMemoryError", "local frame capacity")
		return -1
	}
	e.frames = append(e.frames, &frame{capacity: int(capacity)})
	return 0
}

// PopLocalFrame implements jvm.Env.
func (e *Env) PopLocalFrame(result jvm.Object) jvm.Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("PopLocalFrame")

	if len(e.frames) < 2 {
		e.rt.violate("PopLocalFrame without matching PushLocalFrame")
		return 0
	}
	o := e.resolve("PopLocalFrame", result)
	top := e.frames[len(e.frames)-1]
	for _, h := range top.refs {
		delete(e.rt.refs, h)
	}
	e.frames = e.frames[:len(e.frames)-1]
	return e.local(o)
}

// NewGlobalRef implements jvm.Env.
func (e *Env) NewGlobalRef(obj jvm.Object) jvm.Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("NewGlobalRef")

	o := e.resolve("NewGlobalRef", obj)
	if o == nil {
		return 0
	}
	if e.rt.globalCap >= 0 {
		n := 0
		for _, r := range e.rt.refs {
			if r.kind == jvm.GlobalRef {
				n++
			}
		}
		if n >= e.rt.globalCap {
			return 0
		}
	}
	return e.rt.handle(o, jvm.GlobalRef, nil)
}

func (e *Env) deleteRef(op string, h jvm.Object, kind jvm.RefType) {
	if h == 0 {
		return
	}
	r, ok := e.rt.refs[h]
	if !ok {
		e.rt.violate("%s: invalid or already deleted reference %#x", op, uintptr(h))
		return
	}
	if r.kind != kind {
		e.rt.violate("%s: %#x is a %s reference", op, uintptr(h), r.kind)
		return
	}
	delete(e.rt.refs, h)
	if kind == jvm.LocalRef {
		for _, f := range r.env.frames {
			for i, l := range f.refs {
				if l == h {
					f.refs = append(f.refs[:i], f.refs[i+1:]...)
					return
				}
			}
		}
	}
}

// DeleteGlobalRef implements jvm.Env.
func (e *Env) DeleteGlobalRef(obj jvm.Object) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("DeleteGlobalRef")
	e.deleteRef("DeleteGlobalRef", obj, jvm.GlobalRef)
}

// DeleteLocalRef implements jvm.Env.
func (e *Env) DeleteLocalRef(obj jvm.Object) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("DeleteLocalRef")
	if r, ok := e.rt.refs[obj]; ok && r.kind == jvm.LocalRef && r.env != e {
		e.rt.violate("DeleteLocalRef: %#x belongs to another thread", uintptr(obj))
		return
	}
	e.deleteRef("DeleteLocalRef", obj, jvm.LocalRef)
}

// IsSameObject implements jvm.Env. A cleared weak reference is the same
// object as null.
func (e *Env) IsSameObject(a, b jvm.Object) bool {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("IsSameObject")
	return e.resolve("IsSameObject", a) == e.resolve("IsSameObject", b)
}

// NewLocalRef implements jvm.Env.
func (e *Env) NewLocalRef(obj jvm.Object) jvm.Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("NewLocalRef")
	return e.local(e.resolve("NewLocalRef", obj))
}

// EnsureLocalCapacity implements jvm.Env.
func (e *Env) EnsureLocalCapacity(capacity int32) int32 {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("EnsureLocalCapacity")

	if capacity < 0 || capacity > maxCapacity {
		e.throw("java/lang/OutOfMemoryError", "local capacity")
		return -1
	}
	top := e.frames[len(e.frames)-1]
	if need := len(top.refs) + int(capacity); need > top.capacity {
		top.capacity = need
	}
	return 0
}

// NewWeakGlobalRef implements jvm.Env.
func (e *Env) NewWeakGlobalRef(obj jvm.Object) jvm.Weak {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("NewWeakGlobalRef")

	o := e.resolve("NewWeakGlobalRef", obj)
	if o == nil {
		return 0
	}
	return e.rt.handle(o, jvm.WeakGlobalRef, nil)
}

// DeleteWeakGlobalRef implements jvm.Env.
func (e *Env) DeleteWeakGlobalRef(obj jvm.Weak) {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enterAny("DeleteWeakGlobalRef")
	e.deleteRef("DeleteWeakGlobalRef", obj, jvm.WeakGlobalRef)
}

// GetObjectRefType implements jvm.Env.
func (e *Env) GetObjectRefType(obj jvm.Object) jvm.RefType {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("GetObjectRefType")

	if r, ok := e.rt.refs[obj]; ok {
		return r.kind
	}
	return jvm.InvalidRef
}

// AllocObject implements jvm.Env.
func (e *Env) AllocObject(cls jvm.Class) jvm.Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("AllocObject")

	k := e.resolveClass("AllocObject", cls)
	if k == nil {
		return 0
	}
	return e.local(e.rt.newInstance(k))
}

// NewObjectA implements jvm.Env.
func (e *Env) NewObjectA(cls jvm.Class, ctor jvm.MethodID, args []jvm.Value) jvm.Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter("NewObjectA")

	k := e.resolveClass("NewObjectA", cls)
	m := e.method("NewObjectA", ctor)
	if k == nil || m == nil {
		return 0
	}
	if m.name != "<init>" || m.class != k {
		e.rt.violate("NewObjectA: %s.%s%s is not a constructor of %s", m.class.name, m.name, m.desc, k.name)
		return 0
	}
	o := e.rt.newInstance(k)
	if _, ok := e.run("NewObjectA", m, o, args); !ok {
		return 0
	}
	return e.local(o)
}

func (e *Env) method(op string, id jvm.MethodID) *Method {
	if id == 0 || int(id) > len(e.rt.methods) {
		e.rt.violate("%s: invalid method id %d", op, id)
		return nil
	}
	return e.rt.methods[id-1]
}

func (e *Env) field(op string, id jvm.FieldID) *Field {
	if id == 0 || int(id) > len(e.rt.fields) {
		e.rt.violate("%s: invalid field id %d", op, id)
		return nil
	}
	return e.rt.fields[id-1]
}

// run invokes m with the raw arguments. It reports false if the method threw.
func (e *Env) run(op string, m *Method, this *Object, args []jvm.Value) (Value, bool) {
	if len(args) != len(m.signature.Args) {
		e.rt.violate("%s: %s.%s%s called with %d arguments", op, m.class.name, m.name, m.desc, len(args))
		return Void, false
	}
	values := make([]Value, len(args))
	for i, a := range args {
		if m.signature.Args[i].Kind().IsReference() {
			values[i] = Ref(e.resolve(op, a.Object()))
		} else {
			values[i] = Value{Bits: a}
		}
	}

	if m.impl == nil {
		e.throw("java/lang/UnsatisfiedLinkError", m.class.name+"."+m.name+m.desc)
		return Void, false
	}

	c := &Call{
		rt:     e.rt,
		env:    e,
		This:   this,
		Class:  m.class,
		Method: m.name,
		Args:   values,
	}
	ret := m.impl(c)
	if c.thrown != nil {
		e.pending = c.thrown
		return Void, false
	}
	return ret, true
}

func compatible(want, have sig.Kind) bool {
	if want == sig.KindObject {
		return have.IsReference()
	}
	return want == have
}

// invoke performs a virtual or static call and checks the call kind against
// the method's return type.
func (e *Env) invoke(op string, target jvm.Object, id jvm.MethodID, args []jvm.Value, want sig.Kind, static, virtual bool) Value {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	m := e.method(op, id)
	if m == nil {
		return Void
	}
	if m.static != static {
		e.rt.violate("%s: %s.%s%s static mismatch", op, m.class.name, m.name, m.desc)
		return Void
	}
	if have := m.signature.Return.Kind(); !compatible(want, have) {
		e.rt.violate("%s: %s.%s%s returns %s", op, m.class.name, m.name, m.desc, have)
	}

	var this *Object
	if static {
		if k := e.resolveClass(op, target); k != nil && !k.isSubclassOf(m.class) {
			e.rt.violate("%s: method %s.%s does not belong to %s", op, m.class.name, m.name, k.name)
		}
	} else {
		this = e.resolve(op, target)
		if this == nil {
			e.throw("java/lang/NullPointerException", m.name)
			return Void
		}
		if virtual {
			if override := this.class.lookupMethod(m.name, m.signature, false); override != nil {
				m = override
			}
		}
	}

	ret, ok := e.run(op, m, this, args)
	if !ok {
		return Void
	}
	return ret
}

func (e *Env) objectResult(v Value) jvm.Object {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	return e.local(v.Ref)
}

// CallObjectMethodA implements jvm.Env.
func (e *Env) CallObjectMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) jvm.Object {
	return e.objectResult(e.invoke("CallObjectMethodA", obj, m, args, sig.KindObject, false, true))
}

// CallBooleanMethodA implements jvm.Env.
func (e *Env) CallBooleanMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) bool {
	return e.invoke("CallBooleanMethodA", obj, m, args, sig.KindBoolean, false, true).Bool()
}

// CallByteMethodA implements jvm.Env.
func (e *Env) CallByteMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) int8 {
	return e.invoke("CallByteMethodA", obj, m, args, sig.KindByte, false, true).Byte()
}

// CallCharMethodA implements jvm.Env.
func (e *Env) CallCharMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) uint16 {
	return e.invoke("CallCharMethodA", obj, m, args, sig.KindChar, false, true).Char()
}

// CallShortMethodA implements jvm.Env.
func (e *Env) CallShortMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) int16 {
	return e.invoke("CallShortMethodA", obj, m, args, sig.KindShort, false, true).Short()
}

// CallIntMethodA implements jvm.Env.
func (e *Env) CallIntMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) int32 {
	return e.invoke("CallIntMethodA", obj, m, args, sig.KindInt, false, true).Int()
}

// CallLongMethodA implements jvm.Env.
func (e *Env) CallLongMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) int64 {
	return e.invoke("CallLongMethodA", obj, m, args, sig.KindLong, false, true).Long()
}

// CallFloatMethodA implements jvm.Env.
func (e *Env) CallFloatMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) float32 {
	return e.invoke("CallFloatMethodA", obj, m, args, sig.KindFloat, false, true).Float()
}

// CallDoubleMethodA implements jvm.Env.
func (e *Env) CallDoubleMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) float64 {
	return e.invoke("CallDoubleMethodA", obj, m, args, sig.KindDouble, false, true).Double()
}

// CallVoidMethodA implements jvm.Env.
func (e *Env) CallVoidMethodA(obj jvm.Object, m jvm.MethodID, args []jvm.Value) {
	e.invoke("CallVoidMethodA", obj, m, args, sig.KindVoid, false, true)
}

// CallNonvirtualVoidMethodA implements jvm.Env.
func (e *Env) CallNonvirtualVoidMethodA(obj jvm.Object, cls jvm.Class, m jvm.MethodID, args []jvm.Value) {
	e.invoke("CallNonvirtualVoidMethodA", obj, m, args, sig.KindVoid, false, false)
}

// CallStaticObjectMethodA implements jvm.Env.
func (e *Env) CallStaticObjectMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) jvm.Object {
	return e.objectResult(e.invoke("CallStaticObjectMethodA", cls, m, args, sig.KindObject, true, false))
}

// CallStaticBooleanMethodA implements jvm.Env.
func (e *Env) CallStaticBooleanMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) bool {
	return e.invoke("CallStaticBooleanMethodA", cls, m, args, sig.KindBoolean, true, false).Bool()
}

// CallStaticByteMethodA implements jvm.Env.
func (e *Env) CallStaticByteMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) int8 {
	return e.invoke("CallStaticByteMethodA", cls, m, args, sig.KindByte, true, false).Byte()
}

// CallStaticCharMethodA implements jvm.Env.
func (e *Env) CallStaticCharMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) uint16 {
	return e.invoke("CallStaticCharMethodA", cls, m, args, sig.KindChar, true, false).Char()
}

// CallStaticShortMethodA implements jvm.Env.
func (e *Env) CallStaticShortMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) int16 {
	return e.invoke("CallStaticShortMethodA", cls, m, args, sig.KindShort, true, false).Short()
}

// CallStaticIntMethodA implements jvm.Env.
func (e *Env) CallStaticIntMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) int32 {
	return e.invoke("CallStaticIntMethodA", cls, m, args, sig.KindInt, true, false).Int()
}

// CallStaticLongMethodA implements jvm.Env.
func (e *Env) CallStaticLongMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) int64 {
	return e.invoke("CallStaticLongMethodA", cls, m, args, sig.KindLong, true, false).Long()
}

// CallStaticFloatMethodA implements jvm.Env.
func (e *Env) CallStaticFloatMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) float32 {
	return e.invoke("CallStaticFloatMethodA", cls, m, args, sig.KindFloat, true, false).Float()
}

// CallStaticDoubleMethodA implements jvm.Env.
func (e *Env) CallStaticDoubleMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) float64 {
	return e.invoke("CallStaticDoubleMethodA", cls, m, args, sig.KindDouble, true, false).Double()
}

// CallStaticVoidMethodA implements jvm.Env.
func (e *Env) CallStaticVoidMethodA(cls jvm.Class, m jvm.MethodID, args []jvm.Value) {
	e.invoke("CallStaticVoidMethodA", cls, m, args, sig.KindVoid, true, false)
}

func (e *Env) methodID(op string, cls jvm.Class, name, desc string, static bool) jvm.MethodID {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	k := e.resolveClass(op, cls)
	if k == nil {
		return 0
	}
	signature, err := sig.ParseMethod(desc)
	if err != nil {
		e.throw("java/lang/NoSuchMethodError", name+desc)
		return 0
	}
	m := k.lookupMethod(name, signature, static)
	if m == nil {
		e.throw("java/lang/NoSuchMethodError", name)
		return 0
	}
	return m.id
}

// GetMethodID implements jvm.Env.
func (e *Env) GetMethodID(cls jvm.Class, name, desc string) jvm.MethodID {
	return e.methodID("GetMethodID", cls, name, desc, false)
}

// GetStaticMethodID implements jvm.Env.
func (e *Env) GetStaticMethodID(cls jvm.Class, name, desc string) jvm.MethodID {
	return e.methodID("GetStaticMethodID", cls, name, desc, true)
}

func (e *Env) fieldID(op string, cls jvm.Class, name, desc string, static bool) jvm.FieldID {
	e.rt.mu.Lock()
	defer e.rt.mu.Unlock()
	e.enter(op)

	k := e.resolveClass(op, cls)
	if k == nil {
		return 0
	}
	f := k.lookupField(name, sig.Type(desc), static)
	if f == nil {
		e.throw("java/lang/NoSuchFieldError", name)
		return 0
	}
	return f.id
}

// GetFieldID implements jvm.Env.
func (e *Env) GetFieldID(cls jvm.Class, name, desc string) jvm.FieldID {
	return e.fieldID("GetFieldID", cls, name, desc, false)
}

// GetStaticFieldID implements jvm.Env.
func (e *Env) GetStaticFieldID(cls jvm.Class, name, desc string) jvm.FieldID {
	return e.fieldID("GetStaticFieldID", cls, name, desc, true)
}
