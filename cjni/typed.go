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

func (e *Env) CallObjectMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) jvm.Object {
	return handle(C.gojni_CallObjectMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallBooleanMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) bool {
	return C.gojni_CallBooleanMethodA(e.env, obj(o), method(m), args(a)) != C.JNI_FALSE
}

func (e *Env) CallByteMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) int8 {
	return int8(C.gojni_CallByteMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallCharMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) uint16 {
	return uint16(C.gojni_CallCharMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallShortMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) int16 {
	return int16(C.gojni_CallShortMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallIntMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) int32 {
	return int32(C.gojni_CallIntMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallLongMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) int64 {
	return int64(C.gojni_CallLongMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallFloatMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) float32 {
	return float32(C.gojni_CallFloatMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallDoubleMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) float64 {
	return float64(C.gojni_CallDoubleMethodA(e.env, obj(o), method(m), args(a)))
}

func (e *Env) CallVoidMethodA(o jvm.Object, m jvm.MethodID, a []jvm.Value) {
	C.gojni_CallVoidMethodA(e.env, obj(o), method(m), args(a))
}

func (e *Env) CallNonvirtualVoidMethodA(o jvm.Object, cls jvm.Class, m jvm.MethodID, a []jvm.Value) {
	C.gojni_CallNonvirtualVoidMethodA(e.env, obj(o), class(cls), method(m), args(a))
}

func (e *Env) CallStaticObjectMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) jvm.Object {
	return handle(C.gojni_CallStaticObjectMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticBooleanMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) bool {
	return C.gojni_CallStaticBooleanMethodA(e.env, class(cls), method(m), args(a)) != C.JNI_FALSE
}

func (e *Env) CallStaticByteMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) int8 {
	return int8(C.gojni_CallStaticByteMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticCharMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) uint16 {
	return uint16(C.gojni_CallStaticCharMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticShortMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) int16 {
	return int16(C.gojni_CallStaticShortMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticIntMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) int32 {
	return int32(C.gojni_CallStaticIntMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticLongMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) int64 {
	return int64(C.gojni_CallStaticLongMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticFloatMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) float32 {
	return float32(C.gojni_CallStaticFloatMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticDoubleMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) float64 {
	return float64(C.gojni_CallStaticDoubleMethodA(e.env, class(cls), method(m), args(a)))
}

func (e *Env) CallStaticVoidMethodA(cls jvm.Class, m jvm.MethodID, a []jvm.Value) {
	C.gojni_CallStaticVoidMethodA(e.env, class(cls), method(m), args(a))
}

func (e *Env) GetObjectField(o jvm.Object, f jvm.FieldID) jvm.Object {
	return handle(C.gojni_GetObjectField(e.env, obj(o), field(f)))
}

func (e *Env) SetObjectField(o jvm.Object, f jvm.FieldID, v jvm.Object) {
	C.gojni_SetObjectField(e.env, obj(o), field(f), obj(v))
}

func (e *Env) GetBooleanField(o jvm.Object, f jvm.FieldID) bool {
	return C.gojni_GetBooleanField(e.env, obj(o), field(f)) != C.JNI_FALSE
}

func (e *Env) SetBooleanField(o jvm.Object, f jvm.FieldID, v bool) {
	C.gojni_SetBooleanField(e.env, obj(o), field(f), jbool(v))
}

func (e *Env) GetByteField(o jvm.Object, f jvm.FieldID) int8 {
	return int8(C.gojni_GetByteField(e.env, obj(o), field(f)))
}

func (e *Env) SetByteField(o jvm.Object, f jvm.FieldID, v int8) {
	C.gojni_SetByteField(e.env, obj(o), field(f), C.jbyte(v))
}

func (e *Env) GetCharField(o jvm.Object, f jvm.FieldID) uint16 {
	return uint16(C.gojni_GetCharField(e.env, obj(o), field(f)))
}

func (e *Env) SetCharField(o jvm.Object, f jvm.FieldID, v uint16) {
	C.gojni_SetCharField(e.env, obj(o), field(f), C.jchar(v))
}

func (e *Env) GetShortField(o jvm.Object, f jvm.FieldID) int16 {
	return int16(C.gojni_GetShortField(e.env, obj(o), field(f)))
}

func (e *Env) SetShortField(o jvm.Object, f jvm.FieldID, v int16) {
	C.gojni_SetShortField(e.env, obj(o), field(f), C.jshort(v))
}

func (e *Env) GetIntField(o jvm.Object, f jvm.FieldID) int32 {
	return int32(C.gojni_GetIntField(e.env, obj(o), field(f)))
}

func (e *Env) SetIntField(o jvm.Object, f jvm.FieldID, v int32) {
	C.gojni_SetIntField(e.env, obj(o), field(f), C.jint(v))
}

func (e *Env) GetLongField(o jvm.Object, f jvm.FieldID) int64 {
	return int64(C.gojni_GetLongField(e.env, obj(o), field(f)))
}

func (e *Env) SetLongField(o jvm.Object, f jvm.FieldID, v int64) {
	C.gojni_SetLongField(e.env, obj(o), field(f), C.jlong(v))
}

func (e *Env) GetFloatField(o jvm.Object, f jvm.FieldID) float32 {
	return float32(C.gojni_GetFloatField(e.env, obj(o), field(f)))
}

func (e *Env) SetFloatField(o jvm.Object, f jvm.FieldID, v float32) {
	C.gojni_SetFloatField(e.env, obj(o), field(f), C.jfloat(v))
}

func (e *Env) GetDoubleField(o jvm.Object, f jvm.FieldID) float64 {
	return float64(C.gojni_GetDoubleField(e.env, obj(o), field(f)))
}

func (e *Env) SetDoubleField(o jvm.Object, f jvm.FieldID, v float64) {
	C.gojni_SetDoubleField(e.env, obj(o), field(f), C.jdouble(v))
}

func (e *Env) GetStaticObjectField(cls jvm.Class, f jvm.FieldID) jvm.Object {
	return handle(C.gojni_GetStaticObjectField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticObjectField(cls jvm.Class, f jvm.FieldID, v jvm.Object) {
	C.gojni_SetStaticObjectField(e.env, class(cls), field(f), obj(v))
}

func (e *Env) GetStaticBooleanField(cls jvm.Class, f jvm.FieldID) bool {
	return C.gojni_GetStaticBooleanField(e.env, class(cls), field(f)) != C.JNI_FALSE
}

func (e *Env) SetStaticBooleanField(cls jvm.Class, f jvm.FieldID, v bool) {
	C.gojni_SetStaticBooleanField(e.env, class(cls), field(f), jbool(v))
}

func (e *Env) GetStaticByteField(cls jvm.Class, f jvm.FieldID) int8 {
	return int8(C.gojni_GetStaticByteField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticByteField(cls jvm.Class, f jvm.FieldID, v int8) {
	C.gojni_SetStaticByteField(e.env, class(cls), field(f), C.jbyte(v))
}

func (e *Env) GetStaticCharField(cls jvm.Class, f jvm.FieldID) uint16 {
	return uint16(C.gojni_GetStaticCharField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticCharField(cls jvm.Class, f jvm.FieldID, v uint16) {
	C.gojni_SetStaticCharField(e.env, class(cls), field(f), C.jchar(v))
}

func (e *Env) GetStaticShortField(cls jvm.Class, f jvm.FieldID) int16 {
	return int16(C.gojni_GetStaticShortField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticShortField(cls jvm.Class, f jvm.FieldID, v int16) {
	C.gojni_SetStaticShortField(e.env, class(cls), field(f), C.jshort(v))
}

func (e *Env) GetStaticIntField(cls jvm.Class, f jvm.FieldID) int32 {
	return int32(C.gojni_GetStaticIntField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticIntField(cls jvm.Class, f jvm.FieldID, v int32) {
	C.gojni_SetStaticIntField(e.env, class(cls), field(f), C.jint(v))
}

func (e *Env) GetStaticLongField(cls jvm.Class, f jvm.FieldID) int64 {
	return int64(C.gojni_GetStaticLongField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticLongField(cls jvm.Class, f jvm.FieldID, v int64) {
	C.gojni_SetStaticLongField(e.env, class(cls), field(f), C.jlong(v))
}

func (e *Env) GetStaticFloatField(cls jvm.Class, f jvm.FieldID) float32 {
	return float32(C.gojni_GetStaticFloatField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticFloatField(cls jvm.Class, f jvm.FieldID, v float32) {
	C.gojni_SetStaticFloatField(e.env, class(cls), field(f), C.jfloat(v))
}

func (e *Env) GetStaticDoubleField(cls jvm.Class, f jvm.FieldID) float64 {
	return float64(C.gojni_GetStaticDoubleField(e.env, class(cls), field(f)))
}

func (e *Env) SetStaticDoubleField(cls jvm.Class, f jvm.FieldID, v float64) {
	C.gojni_SetStaticDoubleField(e.env, class(cls), field(f), C.jdouble(v))
}

func (e *Env) NewBooleanArray(n int32) jvm.Array {
	return handle(C.jobject(C.gojni_NewBooleanArray(e.env, C.jsize(n))))
}

func (e *Env) NewByteArray(n int32) jvm.Array {
	return handle(C.jobject(C.gojni_NewByteArray(e.env, C.jsize(n))))
}

func (e *Env) NewIntArray(n int32) jvm.Array {
	return handle(C.jobject(C.gojni_NewIntArray(e.env, C.jsize(n))))
}

func (e *Env) NewLongArray(n int32) jvm.Array {
	return handle(C.jobject(C.gojni_NewLongArray(e.env, C.jsize(n))))
}

func (e *Env) NewFloatArray(n int32) jvm.Array {
	return handle(C.jobject(C.gojni_NewFloatArray(e.env, C.jsize(n))))
}

func (e *Env) NewDoubleArray(n int32) jvm.Array {
	return handle(C.jobject(C.gojni_NewDoubleArray(e.env, C.jsize(n))))
}

func (e *Env) GetBooleanArrayRegion(arr jvm.Array, start int32, buf []bool) {
	if len(buf) == 0 {
		return
	}
	tmp := make([]C.jboolean, len(buf))
	C.gojni_GetBooleanArrayRegion(e.env, C.jbooleanArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), &tmp[0])
	for i, b := range tmp {
		buf[i] = b != C.JNI_FALSE
	}
}

func (e *Env) SetBooleanArrayRegion(arr jvm.Array, start int32, buf []bool) {
	if len(buf) == 0 {
		return
	}
	tmp := make([]C.jboolean, len(buf))
	for i, b := range buf {
		tmp[i] = jbool(b)
	}
	C.gojni_SetBooleanArrayRegion(e.env, C.jbooleanArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), &tmp[0])
}

func (e *Env) GetByteArrayRegion(arr jvm.Array, start int32, buf []int8) {
	if len(buf) > 0 {
		C.gojni_GetByteArrayRegion(e.env, C.jbyteArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jbyte)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) SetByteArrayRegion(arr jvm.Array, start int32, buf []int8) {
	if len(buf) > 0 {
		C.gojni_SetByteArrayRegion(e.env, C.jbyteArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jbyte)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) GetIntArrayRegion(arr jvm.Array, start int32, buf []int32) {
	if len(buf) > 0 {
		C.gojni_GetIntArrayRegion(e.env, C.jintArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jint)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) SetIntArrayRegion(arr jvm.Array, start int32, buf []int32) {
	if len(buf) > 0 {
		C.gojni_SetIntArrayRegion(e.env, C.jintArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jint)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) GetLongArrayRegion(arr jvm.Array, start int32, buf []int64) {
	if len(buf) > 0 {
		C.gojni_GetLongArrayRegion(e.env, C.jlongArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jlong)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) SetLongArrayRegion(arr jvm.Array, start int32, buf []int64) {
	if len(buf) > 0 {
		C.gojni_SetLongArrayRegion(e.env, C.jlongArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jlong)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) GetFloatArrayRegion(arr jvm.Array, start int32, buf []float32) {
	if len(buf) > 0 {
		C.gojni_GetFloatArrayRegion(e.env, C.jfloatArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jfloat)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) SetFloatArrayRegion(arr jvm.Array, start int32, buf []float32) {
	if len(buf) > 0 {
		C.gojni_SetFloatArrayRegion(e.env, C.jfloatArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jfloat)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) GetDoubleArrayRegion(arr jvm.Array, start int32, buf []float64) {
	if len(buf) > 0 {
		C.gojni_GetDoubleArrayRegion(e.env, C.jdoubleArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jdouble)(unsafe.Pointer(&buf[0])))
	}
}

func (e *Env) SetDoubleArrayRegion(arr jvm.Array, start int32, buf []float64) {
	if len(buf) > 0 {
		C.gojni_SetDoubleArrayRegion(e.env, C.jdoubleArray(obj(arr)), C.jsize(start), C.jsize(len(buf)), (*C.jdouble)(unsafe.Pointer(&buf[0])))
	}
}
