// Package jvmtest is an in-memory runtime implementing jvm.VM and jvm.Env. It
// models classes with Go-implemented methods, the local, global and weak
// reference tables, local frames, pending exceptions, thread attachment and
// UTF buffers, and records every contract violation it observes so tests can
// assert the binding layer used the raw interface correctly.
package jvmtest

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"omibyte.io/gojni/internal/osthread"
	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

const (
	handleBase  = 0x1000
	handleAlign = 8

	// baseFrameCapacity is the capacity of the frame every thread starts with.
	baseFrameCapacity = 16

	// maxCapacity bounds frame requests. Larger requests fail with
	// OutOfMemoryError.
	maxCapacity = 1 << 16
)

type ref struct {
	obj  *Object
	kind jvm.RefType
	env  *Env
}

// Runtime is a fake VM. The zero value is not usable; create one with New.
type Runtime struct {
	mu sync.Mutex

	version     jvm.Version
	threadID    func() uint64
	out         io.Writer
	strict      bool
	attachFault jvm.Status

	threads map[uint64]*Env
	attaches int
	detaches int

	classes map[string]*Class
	methods []*Method
	fields  []*Field

	refs       map[jvm.Object]*ref
	nextHandle uintptr
	globalCap  int

	chars     map[jvm.Chars]*Object
	nextChars uintptr
	utfFault  func(s string) bool

	lookups    []string
	violations []string
	described  []string
}

// Option configures a Runtime.
type Option func(rt *Runtime)

// WithVersion sets the highest interface version GetEnv accepts.
func WithVersion(v jvm.Version) Option {
	return func(rt *Runtime) {
		rt.version = v
	}
}

// WithThreadID replaces the function identifying the calling thread.
func WithThreadID(fn func() uint64) Option {
	return func(rt *Runtime) {
		rt.threadID = fn
	}
}

// WithOutput sets the writer ExceptionDescribe prints to.
func WithOutput(w io.Writer) Option {
	return func(rt *Runtime) {
		rt.out = w
	}
}

// WithStrictThreads records a violation whenever an Env is used from a thread
// other than the one it was attached on.
func WithStrictThreads() Option {
	return func(rt *Runtime) {
		rt.strict = true
	}
}

// New creates a runtime with the core classes defined.
func New(options ...Option) *Runtime {
	rt := &Runtime{
		version:    jvm.Version1_8,
		threadID:   osthread.ID,
		out:        io.Discard,
		threads:    map[uint64]*Env{},
		classes:    map[string]*Class{},
		refs:       map[jvm.Object]*ref{},
		nextHandle: handleBase,
		chars:      map[jvm.Chars]*Object{},
		nextChars:  handleBase,
		globalCap:  -1,
	}
	for _, option := range options {
		option(rt)
	}
	rt.bootstrap()
	return rt
}

// DefineClass defines a class. An empty super means java/lang/Object.
func (rt *Runtime) DefineClass(name, super string) *Class {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if super == "" {
		super = "java/lang/Object"
	}
	parent := rt.classes[sig.BinaryName(super)]
	if parent == nil {
		panic("jvmtest: unknown superclass " + super)
	}
	if k, ok := rt.classes[sig.BinaryName(name)]; ok {
		return k
	}
	k := rt.define(sig.BinaryName(name), parent)
	k.declare("<init>", "()V", false, func(*Call) Value { return Void })
	return k
}

// Class returns a defined class or nil.
func (rt *Runtime) Class(name string) *Class {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.classes[sig.BinaryName(name)]
}

func (rt *Runtime) define(name string, super *Class) *Class {
	if k, ok := rt.classes[name]; ok {
		return k
	}
	k := &Class{
		rt:      rt,
		name:    name,
		super:   super,
		statics: map[string]Value{},
	}
	k.mirror = &Object{mirror: k}
	if cls, ok := rt.classes["java/lang/Class"]; ok {
		k.mirror.class = cls
	}
	rt.classes[name] = k
	return k
}

// arrayClass returns the class of arrays with the given descriptor.
func (rt *Runtime) arrayClass(desc sig.Type) *Class {
	name := string(desc)
	if k, ok := rt.classes[name]; ok {
		return k
	}
	k := rt.define(name, rt.classes["java/lang/Object"])
	k.elem = desc.Elem()
	return k
}

func (rt *Runtime) newInstance(k *Class) *Object {
	o := &Object{class: k, fields: map[string]Value{}}
	for c := k; c != nil; c = c.super {
		for _, f := range c.fields {
			if !f.static {
				if _, ok := o.fields[f.name]; !ok {
					o.fields[f.name] = Value{}
				}
			}
		}
	}
	return o
}

func (rt *Runtime) newString(s string) *Object {
	return &Object{class: rt.classes["java/lang/String"], text: s}
}

func (rt *Runtime) newArray(elem sig.Type, n int) *Object {
	return &Object{class: rt.arrayClass(sig.Array(elem)), elems: make([]Value, n)}
}

func (rt *Runtime) newThrowable(name, msg string) *Object {
	k := rt.classes[name]
	if k == nil {
		k = rt.classes["java/lang/RuntimeException"]
		msg = name + ": " + msg
	}
	o := rt.newInstance(k)
	if msg != "" {
		o.fields["message"] = Ref(rt.newString(msg))
	}
	return o
}

func (rt *Runtime) handle(o *Object, kind jvm.RefType, env *Env) jvm.Object {
	h := jvm.Object(rt.nextHandle)
	rt.nextHandle += handleAlign
	rt.refs[h] = &ref{obj: o, kind: kind, env: env}
	return h
}

func (rt *Runtime) violate(format string, args ...any) {
	rt.violations = append(rt.violations, fmt.Sprintf(format, args...))
}

// NewGlobal creates a global reference to o for use by tests.
func (rt *Runtime) NewGlobal(o *Object) jvm.Object {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if o == nil {
		return 0
	}
	return rt.handle(o, jvm.GlobalRef, nil)
}

// NewString creates a string object for use by tests.
func (rt *Runtime) NewString(s string) *Object {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.newString(s)
}

// NewInstance allocates an instance of the named class without running a
// constructor.
func (rt *Runtime) NewInstance(className string) *Object {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	k := rt.classes[sig.BinaryName(className)]
	if k == nil {
		panic("jvmtest: unknown class " + className)
	}
	return rt.newInstance(k)
}

// NewArray creates an array object for use by tests.
func (rt *Runtime) NewArray(elem sig.Type, values ...Value) *Object {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	arr := rt.newArray(elem, len(values))
	copy(arr.elems, values)
	return arr
}

// Resolve returns the object a handle refers to, or nil.
func (rt *Runtime) Resolve(h jvm.Object) *Object {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if r, ok := rt.refs[h]; ok {
		return r.obj
	}
	return nil
}

// LimitGlobals makes NewGlobalRef fail once n global references are live. A
// negative n removes the limit.
func (rt *Runtime) LimitGlobals(n int) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.globalCap = n
}

// FailAttach makes AttachCurrentThread fail with the given status. OK
// restores normal behaviour.
func (rt *Runtime) FailAttach(status jvm.Status) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.attachFault = status
}

// FailUTF installs a predicate that makes GetStringUTFChars fail with
// OutOfMemoryError for matching strings.
func (rt *Runtime) FailUTF(fn func(s string) bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.utfFault = fn
}

// Count returns the number of live references of the given kind.
func (rt *Runtime) Count(kind jvm.RefType) int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	n := 0
	for _, r := range rt.refs {
		if r.kind == kind {
			n++
		}
	}
	return n
}

// OutstandingChars returns the number of UTF buffers not yet released.
func (rt *Runtime) OutstandingChars() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.chars)
}

// Lookups returns every name passed to FindClass, in order.
func (rt *Runtime) Lookups() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.lookups...)
}

// Violations returns every misuse of the interface observed so far.
func (rt *Runtime) Violations() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.violations...)
}

// Described returns the exceptions printed by ExceptionDescribe.
func (rt *Runtime) Described() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.described...)
}

// Attached returns the ids of the attached threads.
func (rt *Runtime) Attached() []uint64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	ids := maps.Keys(rt.threads)
	slices.Sort(ids)
	return ids
}

// Attaches returns how many times a thread was attached.
func (rt *Runtime) Attaches() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.attaches
}

// GC clears every weak reference whose referent is not reachable from a
// local reference, a global reference, a static field or a pending exception.
func (rt *Runtime) GC() {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	marked := map[*Object]bool{}
	var mark func(o *Object)
	mark = func(o *Object) {
		if o == nil || marked[o] {
			return
		}
		marked[o] = true
		for _, v := range o.fields {
			mark(v.Ref)
		}
		for _, v := range o.elems {
			mark(v.Ref)
		}
	}

	for _, r := range rt.refs {
		if r.kind == jvm.LocalRef || r.kind == jvm.GlobalRef {
			mark(r.obj)
		}
	}
	for _, k := range rt.classes {
		mark(k.mirror)
		for _, v := range k.statics {
			mark(v.Ref)
		}
	}
	for _, env := range rt.threads {
		mark(env.pending)
	}

	for _, r := range rt.refs {
		if r.kind == jvm.WeakGlobalRef && !marked[r.obj] {
			r.obj = nil
		}
	}
}

// Thread returns the environment of an attached thread, or nil.
func (rt *Runtime) Thread(id uint64) *Env {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.threads[id]
}

// GetEnv implements jvm.VM.
func (rt *Runtime) GetEnv(version jvm.Version) (jvm.Env, jvm.Status) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if version < jvm.Version1_1 || version > rt.version {
		return nil, jvm.EVersion
	}
	env, ok := rt.threads[rt.threadID()]
	if !ok {
		return nil, jvm.Detached
	}
	return env, jvm.OK
}

// AttachCurrentThread implements jvm.VM.
func (rt *Runtime) AttachCurrentThread() (jvm.Env, jvm.Status) {
	return rt.attach(false)
}

// AttachCurrentThreadAsDaemon implements jvm.VM.
func (rt *Runtime) AttachCurrentThreadAsDaemon() (jvm.Env, jvm.Status) {
	return rt.attach(true)
}

func (rt *Runtime) attach(daemon bool) (jvm.Env, jvm.Status) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.attachFault != jvm.OK {
		return nil, rt.attachFault
	}

	id := rt.threadID()
	if env, ok := rt.threads[id]; ok {
		return env, jvm.OK
	}
	env := &Env{
		rt:     rt,
		tid:    id,
		daemon: daemon,
		frames: []*frame{{capacity: baseFrameCapacity}},
	}
	rt.threads[id] = env
	rt.attaches++
	return env, jvm.OK
}

// DetachCurrentThread implements jvm.VM.
func (rt *Runtime) DetachCurrentThread() jvm.Status {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	id := rt.threadID()
	env, ok := rt.threads[id]
	if !ok {
		return jvm.Detached
	}
	for _, f := range env.frames {
		for _, h := range f.refs {
			delete(rt.refs, h)
		}
	}
	env.frames = nil
	delete(rt.threads, id)
	rt.detaches++
	return jvm.OK
}
