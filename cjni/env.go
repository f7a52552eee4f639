//go:build cgo && jni

package cjni

/*
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"omibyte.io/gojni/jvm"
)

// Env implements jvm.Env over a native JNIEnv pointer.
type Env struct {
	env *C.JNIEnv
}

// NewEnv wraps a JNIEnv pointer received from the runtime, for example the
// first argument of a native method.
func NewEnv(ptr unsafe.Pointer) *Env {
	return &Env{env: (*C.JNIEnv)(ptr)}
}

// Pointer returns the native JNIEnv pointer.
func (e *Env) Pointer() unsafe.Pointer {
	return unsafe.Pointer(e.env)
}

// Handles are native pointers the runtime owns. They are carried as integers
// on the Go side and never dereferenced.

func obj(o jvm.Object) C.jobject {
	return C.jobject(unsafe.Pointer(uintptr(o)))
}

func class(c jvm.Class) C.jclass {
	return C.jclass(unsafe.Pointer(uintptr(c)))
}

func method(m jvm.MethodID) C.jmethodID {
	return C.jmethodID(unsafe.Pointer(uintptr(m)))
}

func field(f jvm.FieldID) C.jfieldID {
	return C.jfieldID(unsafe.Pointer(uintptr(f)))
}

func handle(o C.jobject) jvm.Object {
	return jvm.Object(uintptr(unsafe.Pointer(o)))
}

func jbool(b bool) C.jboolean {
	if b {
		return C.JNI_TRUE
	}
	return C.JNI_FALSE
}

// args returns the argument array. jvm.Value has the size and layout of
// jvalue.
func args(a []jvm.Value) *C.jvalue {
	if len(a) == 0 {
		return nil
	}
	return (*C.jvalue)(unsafe.Pointer(&a[0]))
}

func (e *Env) GetVersion() jvm.Version {
	return jvm.Version(C.gojni_GetVersion(e.env))
}

func (e *Env) FindClass(name string) jvm.Class {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return handle(C.jobject(C.gojni_FindClass(e.env, cname)))
}

func (e *Env) GetSuperclass(cls jvm.Class) jvm.Class {
	return handle(C.jobject(C.gojni_GetSuperclass(e.env, class(cls))))
}

func (e *Env) IsAssignableFrom(sub, sup jvm.Class) bool {
	return C.gojni_IsAssignableFrom(e.env, class(sub), class(sup)) != C.JNI_FALSE
}

func (e *Env) GetObjectClass(o jvm.Object) jvm.Class {
	return handle(C.jobject(C.gojni_GetObjectClass(e.env, obj(o))))
}

func (e *Env) IsInstanceOf(o jvm.Object, cls jvm.Class) bool {
	return C.gojni_IsInstanceOf(e.env, obj(o), class(cls)) != C.JNI_FALSE
}

func (e *Env) Throw(thr jvm.Throwable) int32 {
	return int32(C.gojni_Throw(e.env, C.jthrowable(obj(thr))))
}

func (e *Env) ThrowNew(cls jvm.Class, msg string) int32 {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	return int32(C.gojni_ThrowNew(e.env, class(cls), cmsg))
}

func (e *Env) ExceptionOccurred() jvm.Throwable {
	return handle(C.jobject(C.gojni_ExceptionOccurred(e.env)))
}

func (e *Env) ExceptionDescribe() {
	C.gojni_ExceptionDescribe(e.env)
}

func (e *Env) ExceptionClear() {
	C.gojni_ExceptionClear(e.env)
}

func (e *Env) ExceptionCheck() bool {
	return C.gojni_ExceptionCheck(e.env) != C.JNI_FALSE
}

func (e *Env) FatalError(msg string) {
	cmsg := C.CString(msg)
	C.gojni_FatalError(e.env, cmsg)
	// Not reached
	C.free(unsafe.Pointer(cmsg))
}

func (e *Env) PushLocalFrame(capacity int32) int32 {
	return int32(C.gojni_PushLocalFrame(e.env, C.jint(capacity)))
}

func (e *Env) PopLocalFrame(result jvm.Object) jvm.Object {
	return handle(C.gojni_PopLocalFrame(e.env, obj(result)))
}

func (e *Env) NewGlobalRef(o jvm.Object) jvm.Object {
	return handle(C.gojni_NewGlobalRef(e.env, obj(o)))
}

func (e *Env) DeleteGlobalRef(o jvm.Object) {
	C.gojni_DeleteGlobalRef(e.env, obj(o))
}

func (e *Env) DeleteLocalRef(o jvm.Object) {
	C.gojni_DeleteLocalRef(e.env, obj(o))
}

func (e *Env) IsSameObject(a, b jvm.Object) bool {
	return C.gojni_IsSameObject(e.env, obj(a), obj(b)) != C.JNI_FALSE
}

func (e *Env) NewLocalRef(o jvm.Object) jvm.Object {
	return handle(C.gojni_NewLocalRef(e.env, obj(o)))
}

func (e *Env) EnsureLocalCapacity(capacity int32) int32 {
	return int32(C.gojni_EnsureLocalCapacity(e.env, C.jint(capacity)))
}

func (e *Env) NewWeakGlobalRef(o jvm.Object) jvm.Weak {
	return handle(C.jobject(C.gojni_NewWeakGlobalRef(e.env, obj(o))))
}

func (e *Env) DeleteWeakGlobalRef(w jvm.Weak) {
	C.gojni_DeleteWeakGlobalRef(e.env, C.jweak(obj(w)))
}

func (e *Env) GetObjectRefType(o jvm.Object) jvm.RefType {
	return jvm.RefType(C.gojni_GetObjectRefType(e.env, obj(o)))
}

func (e *Env) AllocObject(cls jvm.Class) jvm.Object {
	return handle(C.gojni_AllocObject(e.env, class(cls)))
}

func (e *Env) NewObjectA(cls jvm.Class, ctor jvm.MethodID, a []jvm.Value) jvm.Object {
	return handle(C.gojni_NewObjectA(e.env, class(cls), method(ctor), args(a)))
}

func (e *Env) GetMethodID(cls jvm.Class, name, sig string) jvm.MethodID {
	cname, csig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(csig))
	return jvm.MethodID(uintptr(unsafe.Pointer(C.gojni_GetMethodID(e.env, class(cls), cname, csig))))
}

func (e *Env) GetStaticMethodID(cls jvm.Class, name, sig string) jvm.MethodID {
	cname, csig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(csig))
	return jvm.MethodID(uintptr(unsafe.Pointer(C.gojni_GetStaticMethodID(e.env, class(cls), cname, csig))))
}

func (e *Env) GetFieldID(cls jvm.Class, name, sig string) jvm.FieldID {
	cname, csig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(csig))
	return jvm.FieldID(uintptr(unsafe.Pointer(C.gojni_GetFieldID(e.env, class(cls), cname, csig))))
}

func (e *Env) GetStaticFieldID(cls jvm.Class, name, sig string) jvm.FieldID {
	cname, csig := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(csig))
	return jvm.FieldID(uintptr(unsafe.Pointer(C.gojni_GetStaticFieldID(e.env, class(cls), cname, csig))))
}

// NewStringUTF expects modified UTF-8, which never contains a zero byte.
func (e *Env) NewStringUTF(utf []byte) jvm.String {
	cutf := C.CString(string(utf))
	defer C.free(unsafe.Pointer(cutf))
	return handle(C.jobject(C.gojni_NewStringUTF(e.env, cutf)))
}

func (e *Env) GetStringLength(str jvm.String) int32 {
	return int32(C.gojni_GetStringLength(e.env, C.jstring(obj(str))))
}

func (e *Env) GetStringUTFLength(str jvm.String) int32 {
	return int32(C.gojni_GetStringUTFLength(e.env, C.jstring(obj(str))))
}

func (e *Env) GetStringUTFChars(str jvm.String) ([]byte, jvm.Chars) {
	chars := C.gojni_GetStringUTFChars(e.env, C.jstring(obj(str)))
	if chars == nil {
		return nil, 0
	}
	n := C.gojni_GetStringUTFLength(e.env, C.jstring(obj(str)))
	return C.GoBytes(unsafe.Pointer(chars), C.int(n)), jvm.Chars(uintptr(unsafe.Pointer(chars)))
}

func (e *Env) ReleaseStringUTFChars(str jvm.String, chars jvm.Chars) {
	C.gojni_ReleaseStringUTFChars(e.env, C.jstring(obj(str)), (*C.char)(unsafe.Pointer(uintptr(chars))))
}

func (e *Env) GetArrayLength(arr jvm.Array) int32 {
	return int32(C.gojni_GetArrayLength(e.env, C.jarray(obj(arr))))
}

func (e *Env) NewObjectArray(length int32, elem jvm.Class, init jvm.Object) jvm.Array {
	return handle(C.jobject(C.gojni_NewObjectArray(e.env, C.jsize(length), class(elem), obj(init))))
}

func (e *Env) GetObjectArrayElement(arr jvm.Array, index int32) jvm.Object {
	return handle(C.gojni_GetObjectArrayElement(e.env, C.jobjectArray(obj(arr)), C.jsize(index)))
}

func (e *Env) SetObjectArrayElement(arr jvm.Array, index int32, v jvm.Object) {
	C.gojni_SetObjectArrayElement(e.env, C.jobjectArray(obj(arr)), C.jsize(index), obj(v))
}

// RegisterNatives copies names and signatures into C memory for the
// duration of the call.
func (e *Env) RegisterNatives(cls jvm.Class, methods []jvm.NativeMethod) int32 {
	if len(methods) == 0 {
		return 0
	}

	size := C.size_t(unsafe.Sizeof(C.JNINativeMethod{}))
	table := (*C.JNINativeMethod)(C.malloc(C.size_t(len(methods)) * size))
	defer C.free(unsafe.Pointer(table))

	entries := unsafe.Slice(table, len(methods))
	for i, m := range methods {
		entries[i].name = C.CString(m.Name)
		entries[i].signature = C.CString(m.Signature)
		entries[i].fnPtr = unsafe.Pointer(m.Fn)
	}
	defer func() {
		for i := range entries {
			C.free(unsafe.Pointer(entries[i].name))
			C.free(unsafe.Pointer(entries[i].signature))
		}
	}()

	return int32(C.gojni_RegisterNatives(e.env, class(cls), table, C.jint(len(methods))))
}

func (e *Env) UnregisterNatives(cls jvm.Class) int32 {
	return int32(C.gojni_UnregisterNatives(e.env, class(cls)))
}

func (e *Env) MonitorEnter(o jvm.Object) int32 {
	return int32(C.gojni_MonitorEnter(e.env, obj(o)))
}

func (e *Env) MonitorExit(o jvm.Object) int32 {
	return int32(C.gojni_MonitorExit(e.env, obj(o)))
}

var _ jvm.Env = (*Env)(nil)
