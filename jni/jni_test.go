package jni

import (
	"testing"

	"go.uber.org/zap"

	"omibyte.io/gojni/jvmtest"
	"omibyte.io/gojni/sig"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Logger = zap.NewNop()
	opts.Fatal = func(err error) {
		panic(err)
	}
	return opts
}

func setup(t *testing.T, configure ...func(opts *Options)) (*jvmtest.Runtime, *Accessor) {
	t.Helper()
	rt := jvmtest.New()
	opts := testOptions()
	for _, c := range configure {
		c(&opts)
	}
	acc, err := NewAccessor(rt, opts)
	if err != nil {
		t.Fatal(err)
	}
	return rt, acc
}

func run(t *testing.T, acc *Accessor, fn func(env *Env)) {
	t.Helper()
	err := acc.Do(func(env *Env) error {
		fn(env)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func fake(env *Env) *jvmtest.Env {
	return env.Raw().(*jvmtest.Env)
}

func noViolations(t *testing.T, rt *jvmtest.Runtime) {
	t.Helper()
	for _, v := range rt.Violations() {
		t.Errorf("violation: %s", v)
	}
}

func defineCounter(rt *jvmtest.Runtime) {
	rt.DefineClass("com.example.Counter", "").
		Field("count", sig.Int).
		Method("increment", "()I", func(c *jvmtest.Call) jvmtest.Value {
			n := c.This.Get("count").Int() + 1
			c.This.Set("count", jvmtest.Int(n))
			return jvmtest.Int(n)
		}).
		Method("add", "(I)V", func(c *jvmtest.Call) jvmtest.Value {
			c.This.Set("count", jvmtest.Int(c.This.Get("count").Int()+c.Args[0].Int()))
			return jvmtest.Void
		}).
		Method("fail", "()V", func(c *jvmtest.Call) jvmtest.Value {
			return c.Throw("java.lang.IllegalStateException", "boom")
		}).
		StaticMethod("create", "(I)Lcom/example/Counter;", func(c *jvmtest.Call) jvmtest.Value {
			o := c.New("com.example.Counter")
			o.Set("count", c.Args[0])
			return jvmtest.Ref(o)
		}).
		StaticMethod("echo", "(I)I", func(c *jvmtest.Call) jvmtest.Value {
			return c.Args[0]
		}).
		StaticMethod("join", "(Ljava/lang/String;Ljava/lang/String;)Ljava/lang/String;", func(c *jvmtest.Call) jvmtest.Value {
			return jvmtest.Ref(c.NewString(c.Args[0].Ref.Text() + c.Args[1].Ref.Text()))
		}).
		StaticMethod("names", "()[Ljava/lang/String;", func(c *jvmtest.Call) jvmtest.Value {
			return jvmtest.Ref(c.NewArray(sig.String,
				jvmtest.Ref(c.NewString("x")),
				jvmtest.Ref(c.NewString("yy"))))
		})
}
