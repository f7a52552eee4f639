package jni

import (
	"errors"
	"sync"
	"testing"

	"omibyte.io/gojni/jvm"
)

func TestClassCache(t *testing.T) {
	rt, acc := setup(t)
	defineCounter(rt)

	run(t, acc, func(env *Env) {
		first, err := acc.Classes().Class(env, "com.example.Counter")
		if err != nil {
			t.Fatal(err)
		}
		second, err := acc.Classes().Class(env, "com/example/Counter")
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Errorf("expected the same cached handle")
		}
		if env.RefType(first) != jvm.GlobalRef {
			t.Errorf("expected a global reference, got %s", env.RefType(first))
		}
		if _, err := acc.Classes().Class(env, "com.example.Missing"); !errors.Is(err, ErrClassNotFound) {
			t.Errorf("expected ErrClassNotFound, got %v", err)
		}
	})

	if n := len(rt.Lookups()); n != 2 {
		t.Errorf("expected 2 lookups, got %d", n)
	}
	if acc.Classes().Len() != 1 {
		t.Errorf("expected 1 cached class, got %d", acc.Classes().Len())
	}

	acc.Close()
	if acc.Classes().Len() != 0 || rt.Count(jvm.GlobalRef) != 0 {
		t.Errorf("expected the cache to be purged")
	}
	noViolations(t, rt)
}

func TestClassCacheConcurrent(t *testing.T) {
	rt, acc := setup(t)
	defineCounter(rt)

	const workers = 8
	handles := make([]jvm.Class, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = acc.Do(func(env *Env) error {
				cls, err := acc.Classes().Class(env, "com.example.Counter")
				handles[i] = cls
				return err
			})
		}(i)
	}
	wg.Wait()

	for i := range errs {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		if handles[i] != handles[0] {
			t.Errorf("worker %d got a different handle", i)
		}
	}
	if rt.Count(jvm.GlobalRef) != 1 {
		t.Errorf("expected losing workers to release their globals, got %d", rt.Count(jvm.GlobalRef))
	}

	acc.Close()
	noViolations(t, rt)
}

func TestMemberCache(t *testing.T) {
	rt, acc := setup(t)
	defineCounter(rt)

	run(t, acc, func(env *Env) {
		cache := acc.Classes()

		first, err := cache.MethodID(env, "com.example.Counter", "increment", "()I")
		if err != nil {
			t.Fatal(err)
		}
		second, err := cache.MethodID(env, "com/example/Counter", "increment", "()I")
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Errorf("expected the memoized id")
		}

		if _, err := cache.StaticMethodID(env, "com.example.Counter", "echo", "(I)I"); err != nil {
			t.Error(err)
		}
		if _, err := cache.FieldID(env, "com.example.Counter", "count", "I"); err != nil {
			t.Error(err)
		}
		if _, err := cache.StaticFieldID(env, "com.example.Counter", "count", "I"); !errors.Is(err, ErrFieldNotFound) {
			t.Errorf("expected ErrFieldNotFound, got %v", err)
		}
		if _, err := cache.MethodID(env, "com.example.Counter", "increment", "()J"); !errors.Is(err, ErrMethodNotFound) {
			t.Errorf("expected ErrMethodNotFound, got %v", err)
		}
	})

	if n := len(rt.Lookups()); n != 1 {
		t.Errorf("expected a single class lookup, got %d", n)
	}
	acc.Close()
	noViolations(t, rt)
}

func TestMemberKey(t *testing.T) {
	tests := []struct {
		kind, class, name, desc string
		expected                string
	}{
		{"m", "a/B", "run", "()V", "m:a/B.run()V"},
		{"f", "a/B", "count", "I", "f:a/B.countI"},
		{"s", "a/B", "run", "()V", "s:a/B.run()V"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			if k := memberKey(test.kind, test.class, test.name, test.desc); k != test.expected {
				t.Errorf("expected %s, got %s", test.expected, k)
			}
		})
	}
}

func TestDisabledClassCache(t *testing.T) {
	rt, acc := setup(t, func(opts *Options) {
		opts.DisableClassCache = true
	})
	defineCounter(rt)

	if acc.Classes() != nil {
		t.Fatalf("expected no class cache")
	}
	run(t, acc, func(env *Env) {
		for i := 0; i < 2; i++ {
			if _, err := New(env, "com.example.Counter"); err != nil {
				t.Fatal(err)
			}
		}
	})
	if n := len(rt.Lookups()); n != 2 {
		t.Errorf("expected a lookup per construction, got %d", n)
	}
	if rt.Count(jvm.GlobalRef) != 0 {
		t.Errorf("expected no global references, got %d", rt.Count(jvm.GlobalRef))
	}
	noViolations(t, rt)
}
