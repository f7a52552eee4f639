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

// VM implements jvm.VM over a native JavaVM pointer.
type VM struct {
	vm *C.JavaVM
}

// NewVM wraps a JavaVM pointer, for example the one passed to JNI_OnLoad. A
// null pointer yields a nil *VM, which jni.NewAccessor rejects.
func NewVM(ptr unsafe.Pointer) *VM {
	if ptr == nil {
		return nil
	}
	return &VM{vm: (*C.JavaVM)(ptr)}
}

// Pointer returns the native JavaVM pointer.
func (v *VM) Pointer() unsafe.Pointer {
	return unsafe.Pointer(v.vm)
}

func (v *VM) GetEnv(version jvm.Version) (jvm.Env, jvm.Status) {
	var env *C.JNIEnv
	status := jvm.Status(C.gojni_GetEnv(v.vm, &env, C.jint(version)))
	if status != jvm.OK {
		return nil, status
	}
	return &Env{env: env}, status
}

func (v *VM) AttachCurrentThread() (jvm.Env, jvm.Status) {
	var env *C.JNIEnv
	status := jvm.Status(C.gojni_AttachCurrentThread(v.vm, &env))
	if status != jvm.OK {
		return nil, status
	}
	return &Env{env: env}, status
}

func (v *VM) AttachCurrentThreadAsDaemon() (jvm.Env, jvm.Status) {
	var env *C.JNIEnv
	status := jvm.Status(C.gojni_AttachCurrentThreadAsDaemon(v.vm, &env))
	if status != jvm.OK {
		return nil, status
	}
	return &Env{env: env}, status
}

func (v *VM) DetachCurrentThread() jvm.Status {
	return jvm.Status(C.gojni_DetachCurrentThread(v.vm))
}

var _ jvm.VM = (*VM)(nil)
