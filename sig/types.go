package sig

import (
	"errors"
	"strings"
)

var (
	ErrMalformedDescriptor = errors.New("malformed type descriptor")
)

// Kind classifies a descriptor by the storage slot the runtime uses for it.
type Kind int

const (
	KindInvalid Kind = iota
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindVoid
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "byte"
	case KindChar:
		return "char"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindVoid:
		return "void"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// IsReference reports whether values of this kind are passed as object handles.
func (k Kind) IsReference() bool {
	return k == KindObject || k == KindArray
}

// Type is a single field descriptor such as "I", "Ljava/lang/String;" or "[[B".
type Type string

const (
	Boolean Type = "Z"
	Byte    Type = "B"
	Char    Type = "C"
	Short   Type = "S"
	Int     Type = "I"
	Long    Type = "J"
	Float   Type = "F"
	Double  Type = "D"
	Void    Type = "V"
)

var (
	Object    = Class("java.lang.Object")
	String    = Class("java.lang.String")
	ClassType = Class("java.lang.Class")
	Throwable = Class("java.lang.Throwable")
)

// Class returns the object descriptor for a class. Dotted names are normalized.
func Class(name string) Type {
	return Type("L" + BinaryName(name) + ";")
}

// Array returns the descriptor for an array with the given element type.
func Array(elem Type) Type {
	return "[" + elem
}

// ArrayOf nests Array dims times.
func ArrayOf(elem Type, dims int) Type {
	return Type(strings.Repeat("[", dims)) + elem
}

// BinaryName converts a fully qualified class name into the runtime's internal form.
func BinaryName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// DisplayName converts an internal class name back into its dotted form.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func (t Type) String() string {
	return string(t)
}

// Kind returns the kind of the outermost type in t.
func (t Type) Kind() Kind {
	if len(t) == 0 {
		return KindInvalid
	}
	switch t[0] {
	case 'Z':
		return KindBoolean
	case 'B':
		return KindByte
	case 'C':
		return KindChar
	case 'S':
		return KindShort
	case 'I':
		return KindInt
	case 'J':
		return KindLong
	case 'F':
		return KindFloat
	case 'D':
		return KindDouble
	case 'V':
		return KindVoid
	case 'L':
		return KindObject
	case '[':
		return KindArray
	default:
		return KindInvalid
	}
}

func (t Type) IsPrimitive() bool {
	switch t.Kind() {
	case KindObject, KindArray, KindInvalid:
		return false
	default:
		return true
	}
}

// Elem returns the element type of an array descriptor, or "" if t is not an array.
func (t Type) Elem() Type {
	if t.Kind() != KindArray {
		return ""
	}
	return t[1:]
}

// ClassName returns the internal class name of an object descriptor. Array
// descriptors are returned as-is, which is the form FindClass expects for them.
func (t Type) ClassName() string {
	switch t.Kind() {
	case KindObject:
		return string(t[1 : len(t)-1])
	case KindArray:
		return string(t)
	default:
		return ""
	}
}

// Valid reports whether t is exactly one well-formed field descriptor.
func (t Type) Valid() bool {
	n, err := scan(string(t), 0, true)
	return err == nil && n == len(t)
}
