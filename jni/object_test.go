package jni

import (
	"errors"
	"testing"

	"omibyte.io/gojni/jvm"
)

func TestInstanceCounter(t *testing.T) {
	rt, acc := setup(t)
	defineCounter(rt)

	counter := Bind("com.example.Counter")
	if counter.Name() != "com/example/Counter" {
		t.Errorf("unexpected binding name %s", counter.Name())
	}

	var inst *Instance
	run(t, acc, func(env *Env) {
		var err error
		if inst, err = counter.New(env); err != nil {
			t.Fatal(err)
		}
	})

	// The instance is usable from later frames
	for _, expected := range []Int{1, 2} {
		run(t, acc, func(env *Env) {
			n, err := Invoke[Int](env, inst, "increment")
			if err != nil {
				t.Fatal(err)
			}
			if n != expected {
				t.Errorf("expected %d, got %d", expected, n)
			}
		})
	}

	run(t, acc, func(env *Env) {
		if err := inst.CallVoid(env, "add", Int(10)); err != nil {
			t.Fatal(err)
		}
		if n, err := Field[Int](env, inst, "count"); err != nil || n != 12 {
			t.Errorf("expected 12, got %d (%v)", n, err)
		}
		if err := inst.SetField(env, "count", Int(0)); err != nil {
			t.Fatal(err)
		}
		if n, err := InvokeStatic[Int](env, inst, "echo", Int(3)); err != nil || n != 3 {
			t.Errorf("expected 3, got %d (%v)", n, err)
		}
		if err := inst.CallStaticVoid(env, "missing"); !errors.Is(err, ErrMethodNotFound) {
			t.Errorf("expected ErrMethodNotFound, got %v", err)
		}

		other, err := inst.CallObject(env, "toString", "java.lang.String")
		if err != nil {
			t.Fatal(err)
		}
		env.DeleteLocal(other)
	})

	// Class cache, instance class and instance object
	if n := rt.Count(jvm.GlobalRef); n != 3 {
		t.Errorf("expected 3 global references, got %d", n)
	}

	inst.Release()
	inst.Release()
	if !inst.Released() || inst.Ref() != 0 || inst.Class() != 0 {
		t.Errorf("expected the instance to be released")
	}
	if n := rt.Count(jvm.GlobalRef); n != 1 {
		t.Errorf("expected only the cached class to remain, got %d", n)
	}

	run(t, acc, func(env *Env) {
		if _, err := Invoke[Int](env, inst, "increment"); !errors.Is(err, ErrUseAfterRelease) {
			t.Errorf("expected ErrUseAfterRelease, got %v", err)
		}
		if err := inst.CallVoid(env, "add", Int(1)); !errors.Is(err, ErrUseAfterRelease) {
			t.Errorf("expected ErrUseAfterRelease, got %v", err)
		}
		if _, err := Field[Int](env, inst, "count"); !errors.Is(err, ErrUseAfterRelease) {
			t.Errorf("expected ErrUseAfterRelease, got %v", err)
		}
	})

	acc.Close()
	noViolations(t, rt)
}

func TestInstanceConstructionFailure(t *testing.T) {
	rt, acc := setup(t)
	defineCounter(rt)

	run(t, acc, func(env *Env) {
		if _, err := NewInstance(env, "com.example.Counter", Int(1)); !errors.Is(err, ErrMethodNotFound) {
			t.Errorf("expected ErrMethodNotFound, got %v", err)
		}
		if _, err := NewInstance(env, "com.example.Missing"); !errors.Is(err, ErrClassNotFound) {
			t.Errorf("expected ErrClassNotFound, got %v", err)
		}
	})

	// Only the cached class survives a failed construction
	if n := rt.Count(jvm.GlobalRef); n != 1 {
		t.Errorf("expected 1 global reference, got %d", n)
	}
	acc.Close()
	noViolations(t, rt)
}

func TestWrap(t *testing.T) {
	rt, acc := setup(t, func(opts *Options) {
		opts.DisableClassCache = true
	})
	defineCounter(rt)

	run(t, acc, func(env *Env) {
		cls, err := env.FindClass("com.example.Counter")
		if err != nil {
			t.Fatal(err)
		}
		obj, err := CallStaticObject(env, cls, "create", "com.example.Counter", Int(5))
		if err != nil {
			t.Fatal(err)
		}

		inst, err := Wrap(env, obj)
		if err != nil {
			t.Fatal(err)
		}
		defer inst.ReleaseWith(env)

		if inst.Name() != "com/example/Counter" {
			t.Errorf("unexpected class name %s", inst.Name())
		}
		if n, err := Invoke[Int](env, inst, "increment"); err != nil || n != 6 {
			t.Errorf("expected 6, got %d (%v)", n, err)
		}
	})

	if n := rt.Count(jvm.GlobalRef); n != 0 {
		t.Errorf("expected no global references, got %d", n)
	}
	noViolations(t, rt)
}

func TestWrapResolvesAgainstHeldClass(t *testing.T) {
	rt, acc := setup(t)
	defineCounter(rt)

	run(t, acc, func(env *Env) {
		cls, err := env.FindClass("com.example.Counter")
		if err != nil {
			t.Fatal(err)
		}
		obj, err := CallStaticObject(env, cls, "create", "com.example.Counter", Int(1))
		if err != nil {
			t.Fatal(err)
		}
		inst, err := Wrap(env, obj)
		if err != nil {
			t.Fatal(err)
		}
		defer inst.ReleaseWith(env)

		acc.Classes().Purge()
		before := len(rt.Lookups())

		if n, err := Invoke[Int](env, inst, "increment"); err != nil || n != 2 {
			t.Errorf("expected 2, got %d (%v)", n, err)
		}
		if err := inst.CallVoid(env, "add", Int(3)); err != nil {
			t.Fatal(err)
		}
		if n, err := Field[Int](env, inst, "count"); err != nil || n != 5 {
			t.Errorf("expected 5, got %d (%v)", n, err)
		}
		if n, err := InvokeStatic[Int](env, inst, "echo", Int(7)); err != nil || n != 7 {
			t.Errorf("expected 7, got %d (%v)", n, err)
		}
		// Memoized ids are reused
		if n, err := Invoke[Int](env, inst, "increment"); err != nil || n != 6 {
			t.Errorf("expected 6, got %d (%v)", n, err)
		}

		if lookups := rt.Lookups()[before:]; len(lookups) != 0 {
			t.Errorf("expected no class lookups by name, got %v", lookups)
		}
		if n := acc.Classes().Len(); n != 0 {
			t.Errorf("expected the class cache to stay empty, got %d", n)
		}
	})
	noViolations(t, rt)
}
