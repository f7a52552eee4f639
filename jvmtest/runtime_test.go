package jvmtest

import (
	"testing"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

func attach(t *testing.T, rt *Runtime) *Env {
	t.Helper()
	env, status := rt.AttachCurrentThread()
	if status != jvm.OK {
		t.Fatalf("attach: %v", status)
	}
	return env.(*Env)
}

func fixedThread(id uint64) Option {
	return WithThreadID(func() uint64 { return id })
}

func TestGetEnv(t *testing.T) {
	rt := New(fixedThread(1), WithVersion(jvm.Version1_6))

	if _, status := rt.GetEnv(jvm.Version1_6); status != jvm.Detached {
		t.Errorf("expected detached, got %v", status)
	}
	attach(t, rt)
	if _, status := rt.GetEnv(jvm.Version1_6); status != jvm.OK {
		t.Errorf("expected ok, got %v", status)
	}
	if _, status := rt.GetEnv(jvm.Version1_8); status != jvm.EVersion {
		t.Errorf("expected version error, got %v", status)
	}
	if status := rt.DetachCurrentThread(); status != jvm.OK {
		t.Errorf("detach: %v", status)
	}
	if len(rt.Attached()) != 0 {
		t.Errorf("expected no attached threads")
	}
}

func TestLocalFrames(t *testing.T) {
	rt := New(fixedThread(1))
	env := attach(t, rt)

	env.PushLocalFrame(4)
	var last jvm.Object
	for i := 0; i < 3; i++ {
		last = env.NewStringUTF([]byte("x"))
	}
	kept := env.PopLocalFrame(last)

	if env.Locals() != 1 {
		t.Errorf("expected 1 local, got %d", env.Locals())
	}
	if env.GetObjectRefType(kept) != jvm.LocalRef {
		t.Errorf("expected kept reference to be local")
	}
	if env.GetObjectRefType(last) != jvm.InvalidRef {
		t.Errorf("expected popped reference to be invalid")
	}
	if v := rt.Violations(); len(v) != 0 {
		t.Errorf("unexpected violations: %v", v)
	}
}

func TestPendingExceptionViolation(t *testing.T) {
	rt := New(fixedThread(1))
	env := attach(t, rt)

	cls := env.FindClass("com/example/Missing")
	if cls != 0 || !env.ExceptionCheck() {
		t.Fatalf("expected NoClassDefFoundError")
	}
	env.FindClass("java/lang/String")
	if len(rt.Violations()) != 1 {
		t.Errorf("expected one violation, got %v", rt.Violations())
	}

	env.ExceptionDescribe()
	if env.ExceptionCheck() {
		t.Errorf("describe must clear the exception")
	}
	described := rt.Described()
	if len(described) != 1 || described[0] != "java.lang.NoClassDefFoundError: com/example/Missing" {
		t.Errorf("unexpected description %v", described)
	}
}

func TestDottedNamesDoNotResolve(t *testing.T) {
	rt := New(fixedThread(1))
	env := attach(t, rt)

	if env.FindClass("java.lang.String") != 0 {
		t.Errorf("dotted name must not resolve")
	}
	env.ExceptionClear()
	if env.FindClass("java/lang/String") == 0 {
		t.Errorf("binary name must resolve")
	}
}

func TestVirtualDispatch(t *testing.T) {
	rt := New(fixedThread(1))
	rt.DefineClass("com.example.Base", "").
		Method("name", "()I", func(*Call) Value { return Int(1) })
	rt.DefineClass("com.example.Derived", "com.example.Base").
		Method("name", "()I", func(*Call) Value { return Int(2) })

	env := attach(t, rt)
	base := env.FindClass("com/example/Base")
	derived := env.FindClass("com/example/Derived")
	mid := env.GetMethodID(base, "name", "()I")

	ctor := env.GetMethodID(derived, "<init>", "()V")
	obj := env.NewObjectA(derived, ctor, nil)

	if r := env.CallIntMethodA(obj, mid, nil); r != 2 {
		t.Errorf("expected override, got %d", r)
	}
	if !env.IsAssignableFrom(derived, base) || env.IsAssignableFrom(base, derived) {
		t.Errorf("unexpected assignability")
	}
}

func TestOverloads(t *testing.T) {
	rt := New(fixedThread(1))
	rt.DefineClass("com.example.Math", "").
		StaticMethod("twice", "(I)I", func(c *Call) Value { return Int(2 * c.Args[0].Int()) }).
		StaticMethod("twice", "(J)J", func(c *Call) Value { return Long(2 * c.Args[0].Long()) }).
		StaticMethod("twice", "(I)I", func(c *Call) Value { return Int(3 * c.Args[0].Int()) })

	env := attach(t, rt)
	cls := env.FindClass("com/example/Math")
	ints := env.GetStaticMethodID(cls, "twice", "(I)I")
	longs := env.GetStaticMethodID(cls, "twice", "(J)J")
	if ints == 0 || longs == 0 || ints == longs {
		t.Fatalf("expected two distinct overloads, got %d and %d", ints, longs)
	}

	if r := env.CallStaticIntMethodA(cls, ints, []jvm.Value{jvm.IntValue(4)}); r != 12 {
		t.Errorf("expected the redeclared body, got %d", r)
	}
	if r := env.CallStaticLongMethodA(cls, longs, []jvm.Value{jvm.LongValue(4)}); r != 8 {
		t.Errorf("expected 8, got %d", r)
	}
	if env.GetStaticMethodID(cls, "twice", "(S)S") != 0 || !env.ExceptionCheck() {
		t.Errorf("expected NoSuchMethodError for a missing overload")
	}
	env.ExceptionClear()
}

func TestWeakReferences(t *testing.T) {
	rt := New(fixedThread(1))
	env := attach(t, rt)

	str := env.NewStringUTF([]byte("gone"))
	weak := env.NewWeakGlobalRef(str)
	rt.GC()
	if env.IsSameObject(weak, 0) {
		t.Fatalf("referent reachable from a local must survive")
	}

	env.DeleteLocalRef(str)
	rt.GC()
	if !env.IsSameObject(weak, 0) {
		t.Errorf("expected weak reference to be cleared")
	}
	if env.NewLocalRef(weak) != 0 {
		t.Errorf("expected null local from cleared weak reference")
	}
}

func TestUTFBuffers(t *testing.T) {
	rt := New(fixedThread(1))
	env := attach(t, rt)

	str := env.NewStringUTF([]byte("héllo"))
	b, chars := env.GetStringUTFChars(str)
	if string(b) != "héllo" || rt.OutstandingChars() != 1 {
		t.Fatalf("unexpected buffer %q", b)
	}
	env.ReleaseStringUTFChars(str, chars)
	if rt.OutstandingChars() != 0 {
		t.Errorf("expected buffer to be released")
	}
	if env.GetStringLength(str) != 5 {
		t.Errorf("expected 5 UTF-16 units, got %d", env.GetStringLength(str))
	}
}

func TestArrayRegions(t *testing.T) {
	rt := New(fixedThread(1))
	env := attach(t, rt)

	arr := env.NewIntArray(3)
	env.SetIntArrayRegion(arr, 0, []int32{1, 2, 3})
	buf := make([]int32, 2)
	env.GetIntArrayRegion(arr, 1, buf)
	if buf[0] != 2 || buf[1] != 3 {
		t.Errorf("unexpected region %v", buf)
	}

	env.GetIntArrayRegion(arr, 2, buf)
	if !env.ExceptionCheck() {
		t.Errorf("expected ArrayIndexOutOfBoundsException")
	}
	env.ExceptionClear()

	strs := env.NewObjectArray(2, env.FindClass("java/lang/String"), 0)
	if o := rt.Resolve(strs); o.Class().Name() != "[Ljava/lang/String;" {
		t.Errorf("unexpected array class %s", o.Class().Name())
	}
}

func TestMonitors(t *testing.T) {
	rt := New(fixedThread(1))
	env := attach(t, rt)

	obj := env.AllocObject(env.FindClass("java/lang/Object"))
	o := rt.Resolve(obj)
	env.MonitorEnter(obj)
	env.MonitorEnter(obj)
	if !env.Holds(o) {
		t.Fatalf("expected monitor to be held")
	}
	env.MonitorExit(obj)
	env.MonitorExit(obj)
	if env.Holds(o) {
		t.Errorf("expected monitor to be released")
	}
	if env.MonitorExit(obj) == 0 || !env.ExceptionCheck() {
		t.Errorf("expected IllegalMonitorStateException")
	}
}

func TestStaticFields(t *testing.T) {
	rt := New(fixedThread(1))
	rt.DefineClass("com.example.Config", "").StaticField("LIMIT", sig.Int, Int(7))

	env := attach(t, rt)
	cls := env.FindClass("com/example/Config")
	fid := env.GetStaticFieldID(cls, "LIMIT", "I")
	if v := env.GetStaticIntField(cls, fid); v != 7 {
		t.Errorf("expected 7, got %d", v)
	}
	env.SetStaticIntField(cls, fid, 9)
	if v := rt.Class("com.example.Config").Static("LIMIT").Int(); v != 9 {
		t.Errorf("expected 9, got %d", v)
	}
}
