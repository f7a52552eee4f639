package jni

import (
	"errors"
	"testing"

	"omibyte.io/gojni/jvm"
)

func TestGlobalRefLifecycle(t *testing.T) {
	rt, acc := setup(t)

	var g *GlobalRef
	run(t, acc, func(env *Env) {
		str, err := env.NewString("pinned")
		if err != nil {
			t.Fatal(err)
		}
		if g, err = env.NewGlobal(str); err != nil {
			t.Fatal(err)
		}
		if env.RefType(g.Ref()) != jvm.GlobalRef {
			t.Errorf("expected a global reference, got %s", env.RefType(g.Ref()))
		}
	})

	// The global outlives the frame its local was created in
	if rt.Count(jvm.GlobalRef) != 1 {
		t.Fatalf("expected one global reference, got %d", rt.Count(jvm.GlobalRef))
	}
	run(t, acc, func(env *Env) {
		s, err := env.GoString(g.Ref())
		if err != nil {
			t.Fatal(err)
		}
		if s != "pinned" {
			t.Errorf("expected %q, got %q", "pinned", s)
		}
	})

	g.Release()
	g.Release()
	if !g.Released() || g.Ref() != 0 {
		t.Errorf("expected the reference to be released")
	}
	if rt.Count(jvm.GlobalRef) != 0 {
		t.Errorf("expected no global references, got %d", rt.Count(jvm.GlobalRef))
	}
	noViolations(t, rt)
}

func TestNewGlobalFailure(t *testing.T) {
	rt, acc := setup(t)

	run(t, acc, func(env *Env) {
		if _, err := env.NewGlobal(0); !errors.Is(err, ErrReferenceCreationFailed) {
			t.Errorf("expected ErrReferenceCreationFailed for null, got %v", err)
		}

		rt.LimitGlobals(0)
		str, err := env.NewString("x")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := env.NewGlobal(str); !errors.Is(err, ErrReferenceCreationFailed) {
			t.Errorf("expected ErrReferenceCreationFailed at the limit, got %v", err)
		}
		if env.ExceptionCheck() {
			t.Errorf("expected no pending exception")
		}
	})
	noViolations(t, rt)
}

func TestWeakRef(t *testing.T) {
	rt, acc := setup(t)

	run(t, acc, func(env *Env) {
		kept, err := env.NewString("kept")
		if err != nil {
			t.Fatal(err)
		}
		dropped, err := env.NewString("dropped")
		if err != nil {
			t.Fatal(err)
		}

		keptWeak, err := env.NewWeak(kept)
		if err != nil {
			t.Fatal(err)
		}
		defer keptWeak.Release()
		droppedWeak, err := env.NewWeak(dropped)
		if err != nil {
			t.Fatal(err)
		}
		defer droppedWeak.Release()

		env.DeleteLocal(dropped)
		rt.GC()

		if keptWeak.Collected(env) {
			t.Errorf("expected a referent with a local to survive")
		}
		if local, ok := keptWeak.Get(env); !ok || !env.IsSameObject(local, kept) {
			t.Errorf("expected the weak reference to resolve")
		}
		if !droppedWeak.Collected(env) {
			t.Errorf("expected an unreferenced referent to be collected")
		}
		if _, ok := droppedWeak.Get(env); ok {
			t.Errorf("expected Get to fail after collection")
		}
	})

	if rt.Count(jvm.WeakGlobalRef) != 0 {
		t.Errorf("expected weak references to be released")
	}
	noViolations(t, rt)
}

func TestWithLocalFrame(t *testing.T) {
	tests := []struct {
		name   string
		fail   bool
		panics bool
	}{
		{"success", false, false},
		{"error", true, false},
		{"panic", false, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rt, acc := setup(t)

			run(t, acc, func(env *Env) {
				before := fake(env).Locals()
				frames := fake(env).Frames()

				var result jvm.Object
				var err error
				func() {
					defer func() {
						if r := recover(); (r != nil) != test.panics {
							t.Errorf("unexpected panic state %v", r)
						}
					}()
					result, err = env.WithLocalFrame(4, func() (jvm.Object, error) {
						for i := 0; i < 3; i++ {
							if _, err := env.NewString("scratch"); err != nil {
								return 0, err
							}
						}
						keep, err := env.NewString("result")
						if err != nil {
							return 0, err
						}
						if test.panics {
							panic("boom")
						}
						if test.fail {
							return keep, ErrOperationFailed
						}
						return keep, nil
					})
				}()

				if fake(env).Frames() != frames {
					t.Errorf("expected the frame to be popped")
				}

				switch {
				case test.panics:
					if fake(env).Locals() != before {
						t.Errorf("expected no surviving locals, got %d", fake(env).Locals()-before)
					}
				case test.fail:
					if !errors.Is(err, ErrOperationFailed) || result != 0 {
						t.Errorf("expected the error without a result, got %v, %v", result, err)
					}
					if fake(env).Locals() != before {
						t.Errorf("expected no surviving locals, got %d", fake(env).Locals()-before)
					}
				default:
					if err != nil {
						t.Fatal(err)
					}
					if fake(env).Locals() != before+1 {
						t.Errorf("expected only the result to survive, got %d", fake(env).Locals()-before)
					}
					s, err := env.GoString(result)
					if err != nil || s != "result" {
						t.Errorf("expected %q, got %q (%v)", "result", s, err)
					}
				}
			})
			noViolations(t, rt)
		})
	}
}

func TestLocalHelpers(t *testing.T) {
	rt, acc := setup(t)

	run(t, acc, func(env *Env) {
		if local, err := env.NewLocal(0); err != nil || !local.IsNull() {
			t.Errorf("expected a null local for null, got %v, %v", local, err)
		}
		if !env.IsNull(0) {
			t.Errorf("expected 0 to be null")
		}
		env.DeleteLocal(0)

		str, err := env.NewString("s")
		if err != nil {
			t.Fatal(err)
		}
		local, err := env.NewLocal(str)
		if err != nil {
			t.Fatal(err)
		}
		dup := local.Ref()
		if dup == str || !env.IsSameObject(dup, str) {
			t.Errorf("expected a distinct handle to the same object")
		}
		if env.RefType(dup) != jvm.LocalRef {
			t.Errorf("expected a local reference, got %s", env.RefType(dup))
		}
		if err := env.EnsureLocalCapacity(32); err != nil {
			t.Error(err)
		}

		cls, err := env.FindClass("java.lang.String")
		if err != nil {
			t.Fatal(err)
		}
		defer env.DeleteLocal(cls)
		if !env.IsInstanceOf(str, cls) {
			t.Errorf("expected a string to be an instance of String")
		}
	})
	noViolations(t, rt)
}

func TestLocalScope(t *testing.T) {
	rt, acc := setup(t)

	var escaped Local
	run(t, acc, func(env *Env) {
		str, err := env.NewString("s")
		if err != nil {
			t.Fatal(err)
		}
		outer, err := env.NewLocal(str)
		if err != nil {
			t.Fatal(err)
		}

		var inner Local
		if _, err := env.WithLocalFrame(4, func() (jvm.Object, error) {
			if inner, err = env.NewLocal(str); err != nil {
				return 0, err
			}
			if !inner.Live(env) || !outer.Live(env) {
				t.Errorf("expected both locals to be live inside the frame")
			}
			return 0, nil
		}); err != nil {
			t.Fatal(err)
		}

		// A later frame at the same depth does not revive the popped one
		if err := env.PushLocalFrame(4); err != nil {
			t.Fatal(err)
		}
		if _, err := inner.In(env); !errors.Is(err, ErrUseAfterRelease) {
			t.Errorf("expected ErrUseAfterRelease, got %v", err)
		}
		env.PopLocalFrame(0)

		if obj, err := outer.In(env); err != nil || obj != outer.Ref() {
			t.Errorf("expected the outer local, got %v, %v", obj, err)
		}
		g, err := outer.Global()
		if err != nil {
			t.Fatal(err)
		}
		g.Release()
		outer.Delete()
		inner.Delete()
		escaped = outer
	})

	run(t, acc, func(env *Env) {
		if _, err := escaped.In(env); !errors.Is(err, ErrWrongThread) {
			t.Errorf("expected ErrWrongThread, got %v", err)
		}
		if _, err := (Local{}).In(env); !errors.Is(err, ErrNullReference) {
			t.Errorf("expected ErrNullReference, got %v", err)
		}
	})
	if _, err := escaped.Global(); !errors.Is(err, ErrUseAfterRelease) {
		t.Errorf("expected ErrUseAfterRelease, got %v", err)
	}
	noViolations(t, rt)
}
