package jvmtest

import (
	"fmt"

	"omibyte.io/gojni/sig"
)

var throwables = []struct{ name, super string }{
	{"java/lang/Exception", "java/lang/Throwable"},
	{"java/lang/Error", "java/lang/Throwable"},
	{"java/lang/RuntimeException", "java/lang/Exception"},
	{"java/lang/IllegalStateException", "java/lang/RuntimeException"},
	{"java/lang/IllegalArgumentException", "java/lang/RuntimeException"},
	{"java/lang/NullPointerException", "java/lang/RuntimeException"},
	{"java/lang/ArithmeticException", "java/lang/RuntimeException"},
	{"java/lang/IndexOutOfBoundsException", "java/lang/RuntimeException"},
	{"java/lang/ArrayIndexOutOfBoundsException", "java/lang/IndexOutOfBoundsException"},
	{"java/lang/NegativeArraySizeException", "java/lang/RuntimeException"},
	{"java/lang/IllegalMonitorStateException", "java/lang/RuntimeException"},
	{"java/lang/LinkageError", "java/lang/Error"},
	{"java/lang/NoClassDefFoundError", "java/lang/LinkageError"},
	{"java/lang/UnsatisfiedLinkError", "java/lang/LinkageError"},
	{"java/lang/IncompatibleClassChangeError", "java/lang/LinkageError"},
	{"java/lang/NoSuchMethodError", "java/lang/IncompatibleClassChangeError"},
	{"java/lang/NoSuchFieldError", "java/lang/IncompatibleClassChangeError"},
	{"java/lang/VirtualMachineError", "java/lang/Error"},
	{"java/lang/OutOfMemoryError", "java/lang/VirtualMachineError"},
}

func (rt *Runtime) bootstrap() {
	object := rt.define("java/lang/Object", nil)
	class := rt.define("java/lang/Class", object)
	for _, k := range rt.classes {
		k.mirror.class = class
	}
	str := rt.define("java/lang/String", object)
	throwable := rt.define("java/lang/Throwable", object)
	for _, t := range throwables {
		rt.define(t.name, rt.classes[t.super])
	}

	object.declare("<init>", "()V", false, func(*Call) Value { return Void })
	object.declare("toString", "()Ljava/lang/String;", false, func(c *Call) Value {
		return Ref(c.NewString(fmt.Sprintf("%s@%p", sig.DisplayName(c.This.class.name), c.This)))
	})
	object.declare("hashCode", "()I", false, func(c *Call) Value {
		return Int(int32(len(c.This.class.name)))
	})
	object.declare("equals", "(Ljava/lang/Object;)Z", false, func(c *Call) Value {
		return Bool(c.This == c.Args[0].Ref)
	})
	object.declare("getClass", "()Ljava/lang/Class;", false, func(c *Call) Value {
		return Ref(c.This.class.mirror)
	})

	class.declare("getName", "()Ljava/lang/String;", false, func(c *Call) Value {
		return Ref(c.NewString(sig.DisplayName(c.This.mirror.name)))
	})

	str.declare("<init>", "()V", false, func(*Call) Value { return Void })
	str.declare("length", "()I", false, func(c *Call) Value {
		return Int(int32(len([]rune(c.This.text))))
	})
	str.declare("toString", "()Ljava/lang/String;", false, func(c *Call) Value {
		return Ref(c.This)
	})
	str.declare("equals", "(Ljava/lang/Object;)Z", false, func(c *Call) Value {
		other := c.Args[0].Ref
		return Bool(other != nil && other.isString() && other.text == c.This.text)
	})

	throwable.declareField("message", sig.String, false)
	throwable.declare("<init>", "()V", false, func(*Call) Value { return Void })
	throwable.declare("<init>", "(Ljava/lang/String;)V", false, func(c *Call) Value {
		c.This.Set("message", c.Args[0])
		return Void
	})
	throwable.declare("getMessage", "()Ljava/lang/String;", false, func(c *Call) Value {
		return c.This.Get("message")
	})
	throwable.declare("toString", "()Ljava/lang/String;", false, func(c *Call) Value {
		return Ref(c.NewString(throwableString(c.This)))
	})
	for _, t := range throwables {
		k := rt.classes[t.name]
		k.declare("<init>", "()V", false, func(*Call) Value { return Void })
		k.declare("<init>", "(Ljava/lang/String;)V", false, func(c *Call) Value {
			c.This.Set("message", c.Args[0])
			return Void
		})
	}
}

func throwableString(o *Object) string {
	name := sig.DisplayName(o.class.name)
	if msg := o.fields["message"].Ref; msg != nil {
		return name + ": " + msg.text
	}
	return name
}
