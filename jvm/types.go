// Package jvm describes the raw native interface of a managed runtime: the
// process-wide VM handle and the per-thread environment function table. Every
// method maps onto exactly one slot of the runtime's interface table and carries
// no policy of its own; exception checks, reference ownership and marshaling are
// layered on top by package jni.
package jvm

import "math"

// Handles are opaque to native code. Zero is the null reference.
type (
	Object    uintptr
	Class     = Object
	String    = Object
	Array     = Object
	Throwable = Object
	Weak      = Object
)

type (
	MethodID uintptr
	FieldID  uintptr
)

// Chars identifies a UTF buffer handed out by GetStringUTFChars. It must be
// returned with ReleaseStringUTFChars.
type Chars uintptr

// Version is an interface version number such as 0x00010006 for 1.6.
type Version int32

const (
	Version1_1 Version = 0x00010001
	Version1_2 Version = 0x00010002
	Version1_4 Version = 0x00010004
	Version1_6 Version = 0x00010006
	Version1_8 Version = 0x00010008
	Version9   Version = 0x00090000
	Version10  Version = 0x000a0000
)

func (v Version) Major() int { return int(v >> 16) }
func (v Version) Minor() int { return int(v & 0xFFFF) }

// Status is the return code of VM-level operations.
type Status int32

const (
	OK       Status = 0
	Err      Status = -1
	Detached Status = -2
	EVersion Status = -3
	ENoMem   Status = -4
	EExist   Status = -5
	EInval   Status = -6
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Err:
		return "unknown error"
	case Detached:
		return "thread detached"
	case EVersion:
		return "unsupported version"
	case ENoMem:
		return "out of memory"
	case EExist:
		return "already created"
	case EInval:
		return "invalid arguments"
	default:
		return "unknown status"
	}
}

// RefType is the result of GetObjectRefType.
type RefType int32

const (
	InvalidRef RefType = iota
	LocalRef
	GlobalRef
	WeakGlobalRef
)

func (t RefType) String() string {
	switch t {
	case LocalRef:
		return "local"
	case GlobalRef:
		return "global"
	case WeakGlobalRef:
		return "weak global"
	default:
		return "invalid"
	}
}

// Value is the bit pattern of one argument slot. It shares the memory layout
// of the runtime's argument union on little-endian targets: every member
// starts at offset zero and occupies the low bytes.
type Value uint64

func BooleanValue(b bool) Value {
	if b {
		return 1
	}
	return 0
}

func ByteValue(v int8) Value      { return Value(uint8(v)) }
func CharValue(v uint16) Value    { return Value(v) }
func ShortValue(v int16) Value    { return Value(uint16(v)) }
func IntValue(v int32) Value      { return Value(uint32(v)) }
func LongValue(v int64) Value     { return Value(uint64(v)) }
func FloatValue(v float32) Value  { return Value(math.Float32bits(v)) }
func DoubleValue(v float64) Value { return Value(math.Float64bits(v)) }
func ObjectValue(v Object) Value  { return Value(v) }

func (v Value) Boolean() bool   { return uint8(v) != 0 }
func (v Value) Byte() int8      { return int8(uint8(v)) }
func (v Value) Char() uint16    { return uint16(v) }
func (v Value) Short() int16    { return int16(uint16(v)) }
func (v Value) Int() int32      { return int32(uint32(v)) }
func (v Value) Long() int64     { return int64(v) }
func (v Value) Float() float32  { return math.Float32frombits(uint32(v)) }
func (v Value) Double() float64 { return math.Float64frombits(uint64(v)) }
func (v Value) Object() Object  { return Object(v) }

// NativeMethod describes one entry passed to RegisterNatives. Fn is the
// address of a C-callable function.
type NativeMethod struct {
	Name      string
	Signature string
	Fn        uintptr
}
