package jni

import (
	"github.com/pkg/errors"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// Callback is a void method bound to a specific receiver. The method ID is
// resolved once and the receiver is held as a global reference, so a
// callback can be stored and invoked later from any attached thread.
type Callback struct {
	target *GlobalRef
	id     jvm.MethodID
	name   string
	sig    sig.Signature
}

// NewCallback binds the void method name with descriptor desc on obj.
func (e *Env) NewCallback(obj jvm.Object, name, desc string) (*Callback, error) {
	s, err := sig.ParseMethod(desc)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidParameter, err.Error())
	}
	if s.Return != sig.Void {
		return nil, errors.Wrapf(ErrInvalidParameter, "callback %s%s must return void", name, desc)
	}

	id, err := e.MethodID(obj, name, desc)
	if err != nil {
		return nil, err
	}
	target, err := e.NewGlobal(obj)
	if err != nil {
		return nil, err
	}
	return &Callback{target: target, id: id, name: name, sig: s}, nil
}

// Name returns the bound method name.
func (c *Callback) Name() string { return c.name }

// Signature returns the parsed method descriptor.
func (c *Callback) Signature() sig.Signature { return c.sig }

// Apply invokes the callback with pre-boxed parameters. Each parameter must
// match the kind of the corresponding declared argument.
func (c *Callback) Apply(env *Env, params []Parameter) error {
	obj, err := c.receiver()
	if err != nil {
		return err
	}
	if len(params) != len(c.sig.Args) {
		return errors.Wrapf(ErrInvalidParameter, "%s expects %d arguments, got %d", c.name, len(c.sig.Args), len(params))
	}

	values := make([]jvm.Value, len(params))
	for i, p := range params {
		want := c.sig.Args[i].Kind()
		if p.Kind() != want && !(p.Kind().IsReference() && want.IsReference()) {
			return errors.Wrapf(ErrInvalidParameter, "%s argument %d: expected %s, got %s", c.name, i, want, p.Kind())
		}
		values[i] = p.Value()
	}
	return env.CallVoidMethod(obj, c.id, values)
}

// Call invokes the callback with Go arguments.
func (c *Callback) Call(env *Env, args ...Convertible) error {
	obj, err := c.receiver()
	if err != nil {
		return err
	}
	if len(args) != len(c.sig.Args) {
		return errors.Wrapf(ErrInvalidParameter, "%s expects %d arguments, got %d", c.name, len(c.sig.Args), len(args))
	}
	return callVoidWith(env, obj, c.id, args)
}

// Release deletes the receiver reference. Only the first call has an effect.
func (c *Callback) Release() {
	c.target.Release()
}

// Released reports whether Release has been called.
func (c *Callback) Released() bool {
	return c.target.Released()
}

func (c *Callback) receiver() (jvm.Object, error) {
	if c.target.Released() {
		return 0, errors.Wrapf(ErrUseAfterRelease, "callback %s", c.name)
	}
	return c.target.Ref(), nil
}
