// Package jni is a thin, safe binding layer over the raw native interface of a
// managed runtime. It acquires per-thread environments, manages reference
// lifetimes, marshals Go values to and from the runtime's argument slots and
// dispatches method calls with a mandatory pending-exception check after
// every call that can raise.
package jni

import (
	"reflect"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"omibyte.io/gojni/internal/osthread"
	"omibyte.io/gojni/jvm"
)

// Accessor yields the environment of the calling thread, attaching the
// thread to the runtime when needed.
type Accessor struct {
	vm      jvm.VM
	opts    Options
	log     *zap.Logger
	classes *ClassCache
}

func NewAccessor(vm jvm.VM, opts Options) (*Accessor, error) {
	if isNil(vm) {
		return nil, ErrNilVM
	}
	if opts.Version == 0 {
		opts.Version = jvm.Version1_6
	}
	if opts.FrameCapacity <= 0 {
		opts.FrameCapacity = DefaultOptions().FrameCapacity
	}

	a := &Accessor{
		vm:   vm,
		opts: opts,
		log:  opts.logger(),
	}
	if opts.Fatal == nil {
		a.opts.Fatal = func(err error) {
			exit(a.log, err)
		}
	}
	if !opts.DisableClassCache {
		a.classes = newClassCache(a, opts.MemberCacheSize)
	}
	return a, nil
}

// isNil reports whether vm is nil or wraps a nil pointer, such as a backend
// built from a null native handle.
func isNil(vm jvm.VM) bool {
	if vm == nil {
		return true
	}
	v := reflect.ValueOf(vm)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Options returns the options the accessor was created with.
func (a *Accessor) Options() Options {
	return a.opts
}

// Classes returns the class cache, or nil when caching is disabled.
func (a *Accessor) Classes() *ClassCache {
	return a.classes
}

// Current returns the environment of the calling thread. Detached threads
// are attached and stay attached until Detach is called. The caller must keep
// the goroutine locked to its OS thread while it uses the environment.
func (a *Accessor) Current() (*Env, error) {
	raw, status := a.vm.GetEnv(a.opts.Version)
	switch status {
	case jvm.OK:
	case jvm.Detached:
		if a.opts.AttachAsDaemon {
			raw, status = a.vm.AttachCurrentThreadAsDaemon()
		} else {
			raw, status = a.vm.AttachCurrentThread()
		}
		if status != jvm.OK || raw == nil {
			return nil, errors.Wrapf(ErrThreadAttachFailed, "status %d (%s)", status, status)
		}
		a.log.Debug("attached thread", zap.String("category", "thread"), zap.Uint64("thread", osthread.ID()), zap.Bool("daemon", a.opts.AttachAsDaemon))
	case jvm.EVersion:
		return nil, errors.Wrapf(ErrUnsupportedInterfaceVersion, "version %s", versionString(a.opts.Version))
	default:
		return nil, errors.Wrapf(ErrEnvironmentUnavailable, "status %d (%s)", status, status)
	}
	return &Env{
		raw:    raw,
		acc:    a,
		thread: osthread.ID(),
	}, nil
}

// Do runs fn on the calling goroutine's OS thread with that thread's
// environment. A local frame is pushed around fn so every local reference fn
// creates is released when it returns. An unsupported interface version is
// fatal.
func (a *Accessor) Do(fn func(env *Env) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	env, err := a.Current()
	if err != nil {
		if errors.Is(err, ErrUnsupportedInterfaceVersion) {
			a.opts.Fatal(err)
		}
		return err
	}

	if err := env.PushLocalFrame(a.opts.FrameCapacity); err != nil {
		return err
	}
	defer func() {
		env.popFrame()
		env.raw.PopLocalFrame(0)
	}()

	return fn(env)
}

// Detach detaches the calling thread. It must run on the thread being
// detached, with no frames of that thread's environment still in use.
func (a *Accessor) Detach() error {
	if status := a.vm.DetachCurrentThread(); status != jvm.OK {
		return errors.Wrapf(ErrOperationFailed, "detach: status %d (%s)", status, status)
	}
	a.log.Debug("detached thread", zap.String("category", "thread"), zap.Uint64("thread", osthread.ID()))
	return nil
}

// Close releases every cached class.
func (a *Accessor) Close() {
	if a.classes != nil {
		a.classes.Purge()
	}
}

var (
	loadMu sync.Mutex
	loaded *Accessor
)

// Load sets the process-wide accessor. It is called once when the native
// library is loaded and returns the interface version the library needs.
func Load(vm jvm.VM, opts Options) (jvm.Version, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if loaded != nil {
		return 0, ErrAlreadyLoaded
	}
	a, err := NewAccessor(vm, opts)
	if err != nil {
		return 0, err
	}
	loaded = a
	a.log.Info("runtime loaded", zap.String("category", "thread"), zap.String("version", versionString(a.opts.Version)))
	return a.opts.Version, nil
}

// Default returns the process-wide accessor.
func Default() (*Accessor, error) {
	loadMu.Lock()
	defer loadMu.Unlock()
	if loaded == nil {
		return nil, ErrNotLoaded
	}
	return loaded, nil
}

// Unload releases the cached classes of the process-wide accessor and clears
// it. It is called when the runtime unloads the native library.
func Unload() {
	loadMu.Lock()
	defer loadMu.Unlock()
	if loaded == nil {
		return
	}
	loaded.Close()
	loaded.log.Info("runtime unloaded", zap.String("category", "thread"))
	loaded = nil
}

// IsMainThread reports whether the caller runs on the process main thread.
// Callers must hold runtime.LockOSThread for the answer to stay meaningful.
func IsMainThread() bool {
	return osthread.IsMain()
}
