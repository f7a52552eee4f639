package jvmtest

import (
	"sync"

	"omibyte.io/gojni/jvm"
)

// Value is one runtime value as seen by method implementations. Primitive
// values live in Bits; references live in Ref.
type Value struct {
	Bits jvm.Value
	Ref  *Object
}

var Void = Value{}

func Bool(v bool) Value      { return Value{Bits: jvm.BooleanValue(v)} }
func Byte(v int8) Value      { return Value{Bits: jvm.ByteValue(v)} }
func Char(v uint16) Value    { return Value{Bits: jvm.CharValue(v)} }
func Short(v int16) Value    { return Value{Bits: jvm.ShortValue(v)} }
func Int(v int32) Value      { return Value{Bits: jvm.IntValue(v)} }
func Long(v int64) Value     { return Value{Bits: jvm.LongValue(v)} }
func Float(v float32) Value  { return Value{Bits: jvm.FloatValue(v)} }
func Double(v float64) Value { return Value{Bits: jvm.DoubleValue(v)} }
func Ref(o *Object) Value    { return Value{Ref: o} }

func (v Value) Bool() bool      { return v.Bits.Boolean() }
func (v Value) Byte() int8      { return v.Bits.Byte() }
func (v Value) Char() uint16    { return v.Bits.Char() }
func (v Value) Short() int16    { return v.Bits.Short() }
func (v Value) Int() int32      { return v.Bits.Int() }
func (v Value) Long() int64     { return v.Bits.Long() }
func (v Value) Float() float32  { return v.Bits.Float() }
func (v Value) Double() float64 { return v.Bits.Double() }

// Object is a heap object of the fake runtime. Strings, arrays and class
// mirrors are objects as well.
type Object struct {
	class  *Class
	fields map[string]Value
	text   string
	elems  []Value
	mirror *Class

	mon monitor
}

// Class returns the runtime class of o.
func (o *Object) Class() *Class {
	return o.class
}

// Get returns the value of an instance field.
func (o *Object) Get(name string) Value {
	return o.fields[name]
}

// Set stores an instance field.
func (o *Object) Set(name string, v Value) {
	if o.fields == nil {
		o.fields = map[string]Value{}
	}
	o.fields[name] = v
}

// Text returns the contents of a string object.
func (o *Object) Text() string {
	return o.text
}

// Len returns the length of an array object.
func (o *Object) Len() int {
	return len(o.elems)
}

// Elem returns an array element.
func (o *Object) Elem(i int) Value {
	return o.elems[i]
}

// Mirror returns the class this object represents if o is a class object.
func (o *Object) Mirror() *Class {
	return o.mirror
}

func (o *Object) isString() bool {
	return o.class != nil && o.class.name == "java/lang/String"
}

// monitor is a reentrant lock owned by a thread id.
type monitor struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner uint64
	count int
}

func (m *monitor) enter(tid uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cond == nil {
		m.cond = sync.NewCond(&m.mu)
	}
	for m.count > 0 && m.owner != tid {
		m.cond.Wait()
	}
	m.owner = tid
	m.count++
}

func (m *monitor) exit(tid uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count == 0 || m.owner != tid {
		return false
	}
	m.count--
	if m.count == 0 {
		m.owner = 0
		if m.cond != nil {
			m.cond.Broadcast()
		}
	}
	return true
}

func (m *monitor) held() (uint64, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.owner, m.count
}
