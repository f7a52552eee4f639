//go:build cgo && jni

package cjni

/*
#include <jni.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"omibyte.io/gojni/jni"
)

// Hook runs once the accessor is installed, typically to register natives
// or to warm the class cache.
type Hook func(acc *jni.Accessor) error

var (
	hooksMu sync.Mutex
	hooks   []Hook
)

// OnLoad registers a hook run by JNI_OnLoad. It must be called from an init
// function.
func OnLoad(hook Hook) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = append(hooks, hook)
}

func load(vm unsafe.Pointer) (opts jni.Options, version int32, err error) {
	opts = jni.DefaultOptions()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during load: %v", r)
		}
	}()

	if vm == nil {
		return opts, 0, jni.ErrNilVM
	}
	if opts, err = jni.OptionsFromEnv(); err != nil {
		return jni.DefaultOptions(), 0, err
	}
	v, err := jni.Load(NewVM(vm), opts)
	if err != nil {
		return opts, 0, err
	}

	acc, err := jni.Default()
	if err != nil {
		return opts, 0, err
	}

	hooksMu.Lock()
	defer hooksMu.Unlock()
	for _, hook := range hooks {
		if err := hook(acc); err != nil {
			jni.Unload()
			return opts, 0, err
		}
	}
	return opts, int32(v), nil
}

// JNI_OnLoad installs the process-wide accessor. A failed load terminates the
// process through Options.Abort.
//
//export JNI_OnLoad
func JNI_OnLoad(vm *C.JavaVM, reserved unsafe.Pointer) C.jint {
	opts, version, err := load(unsafe.Pointer(vm))
	if err != nil {
		opts.Abort(fmt.Errorf("load failed: %w", err))
		return C.JNI_ERR
	}
	return C.jint(version)
}

//export JNI_OnUnload
func JNI_OnUnload(vm *C.JavaVM, reserved unsafe.Pointer) {
	jni.Unload()
}
