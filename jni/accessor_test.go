package jni

import (
	"errors"
	"runtime"
	"testing"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/jvmtest"
)

func TestNewAccessorNilVM(t *testing.T) {
	var typed *jvmtest.Runtime
	tests := []struct {
		name string
		vm   jvm.VM
	}{
		{"nil", nil},
		{"nil pointer", typed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewAccessor(test.vm, testOptions()); !errors.Is(err, ErrNilVM) {
				t.Errorf("expected ErrNilVM, got %v", err)
			}
		})
	}
}

func TestLoadNilVM(t *testing.T) {
	t.Cleanup(Unload)

	var typed *jvmtest.Runtime
	if _, err := Load(typed, testOptions()); !errors.Is(err, ErrNilVM) {
		t.Errorf("expected ErrNilVM, got %v", err)
	}
	if _, err := Default(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected nothing to be loaded, got %v", err)
	}
}

func TestAbort(t *testing.T) {
	var reported error
	opts := testOptions()
	opts.Fatal = func(err error) {
		reported = err
	}
	opts.Abort(ErrNilVM)
	if !errors.Is(reported, ErrNilVM) {
		t.Errorf("expected the error to reach Fatal, got %v", reported)
	}
}

func TestDoAttachesOnce(t *testing.T) {
	rt, acc := setup(t)

	for i := 0; i < 3; i++ {
		run(t, acc, func(env *Env) {
			if env.Version() != jvm.Version1_8 {
				t.Errorf("unexpected version %#x", env.Version())
			}
		})
	}
	if rt.Attaches() != 1 {
		t.Errorf("expected exactly one attach, got %d", rt.Attaches())
	}
}

func TestDoAttachesAsDaemon(t *testing.T) {
	_, acc := setup(t, func(opts *Options) {
		opts.AttachAsDaemon = true
	})
	run(t, acc, func(env *Env) {
		if !fake(env).Daemon() {
			t.Errorf("expected daemon thread")
		}
	})
}

func TestDoReleasesLocals(t *testing.T) {
	rt, acc := setup(t)

	var thread *jvmtest.Env
	run(t, acc, func(env *Env) {
		thread = fake(env)
		for i := 0; i < 5; i++ {
			if _, err := env.NewString("local"); err != nil {
				t.Fatal(err)
			}
		}
		if thread.Locals() != 5 {
			t.Errorf("expected 5 locals, got %d", thread.Locals())
		}
	})

	if thread.Locals() != 0 {
		t.Errorf("expected locals to be released, got %d", thread.Locals())
	}
	if thread.Frames() != 1 {
		t.Errorf("expected only the base frame, got %d", thread.Frames())
	}
	noViolations(t, rt)
}

func TestAttachFailure(t *testing.T) {
	rt, acc := setup(t)
	rt.FailAttach(jvm.ENoMem)

	err := acc.Do(func(*Env) error { return nil })
	if !errors.Is(err, ErrThreadAttachFailed) {
		t.Errorf("expected ErrThreadAttachFailed, got %v", err)
	}
}

func TestUnsupportedVersionIsFatal(t *testing.T) {
	rt := jvmtest.New(jvmtest.WithVersion(jvm.Version1_4))

	var fatal error
	opts := testOptions()
	opts.Fatal = func(err error) {
		fatal = err
	}
	acc, err := NewAccessor(rt, opts)
	if err != nil {
		t.Fatal(err)
	}

	called := false
	err = acc.Do(func(*Env) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrUnsupportedInterfaceVersion) || !errors.Is(fatal, ErrUnsupportedInterfaceVersion) {
		t.Errorf("expected fatal version error, got %v and %v", err, fatal)
	}
	if called {
		t.Errorf("fn must not run without an environment")
	}
}

func TestDetach(t *testing.T) {
	rt, acc := setup(t)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	run(t, acc, func(*Env) {})
	if len(rt.Attached()) != 1 {
		t.Fatalf("expected one attached thread, got %v", rt.Attached())
	}
	if err := acc.Detach(); err != nil {
		t.Fatal(err)
	}
	if len(rt.Attached()) != 0 {
		t.Errorf("expected no attached threads, got %v", rt.Attached())
	}
	if err := acc.Detach(); !errors.Is(err, ErrOperationFailed) {
		t.Errorf("expected detaching twice to fail, got %v", err)
	}

	run(t, acc, func(*Env) {})
	if rt.Attaches() != 2 {
		t.Errorf("expected the thread to attach again, got %d attaches", rt.Attaches())
	}
}

func TestCheckThread(t *testing.T) {
	_, acc := setup(t, func(opts *Options) {
		opts.CheckThread = true
	})

	run(t, acc, func(env *Env) {
		other := *env
		other.thread++

		defer func() {
			if r := recover(); r != ErrWrongThread {
				t.Errorf("expected ErrWrongThread panic, got %v", r)
			}
		}()
		other.Version()
	})
}

func TestLoad(t *testing.T) {
	rt := jvmtest.New()
	t.Cleanup(Unload)

	if _, err := Default(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}

	version, err := Load(rt, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if version != jvm.Version1_6 {
		t.Errorf("expected version 1.6, got %#x", version)
	}
	if _, err := Load(rt, testOptions()); !errors.Is(err, ErrAlreadyLoaded) {
		t.Errorf("expected ErrAlreadyLoaded, got %v", err)
	}

	acc, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	run(t, acc, func(env *Env) {
		if _, err := acc.Classes().Class(env, "java.lang.String"); err != nil {
			t.Fatal(err)
		}
	})

	Unload()
	if rt.Count(jvm.GlobalRef) != 0 {
		t.Errorf("expected cached classes to be released")
	}
	if _, err := Default(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded after unload, got %v", err)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("GOJNI_VERSION", "1.8")
	t.Setenv("GOJNI_VERBOSITY", "debug")
	t.Setenv("GOJNI_FRAME_CAPACITY", "64")
	t.Setenv("GOJNI_CHECK_THREAD", "true")
	t.Setenv("GOJNI_DISABLE_CLASS_CACHE", "1")

	opts, err := OptionsFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Version != jvm.Version1_8 || opts.Verbosity != Debug || opts.FrameCapacity != 64 {
		t.Errorf("unexpected options %+v", opts)
	}
	if !opts.CheckThread || !opts.DisableClassCache || opts.PreserveExceptions {
		t.Errorf("unexpected flags %+v", opts)
	}

	t.Setenv("GOJNI_FRAME_CAPACITY", "lots")
	if _, err := OptionsFromEnv(); err == nil {
		t.Errorf("expected error for malformed capacity")
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in       string
		expected jvm.Version
		fail     bool
	}{
		{"1.6", jvm.Version1_6, false},
		{"1.8", jvm.Version1_8, false},
		{"9", jvm.Version9, false},
		{"10", jvm.Version10, false},
		{"", 0, true},
		{"x.1", 0, true},
		{"0.1", 0, true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			v, err := ParseVersion(test.in)
			if (err != nil) != test.fail {
				t.Fatalf("unexpected error %v", err)
			}
			if v != test.expected {
				t.Errorf("expected %#x, got %#x", test.expected, v)
			}
		})
	}
}
