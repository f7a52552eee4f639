package sig

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Method builds a method descriptor from a return type and argument types.
// A zero return type is encoded as void.
func Method(ret Type, args ...Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, arg := range args {
		b.WriteString(string(arg))
	}
	b.WriteByte(')')
	if len(ret) == 0 {
		ret = Void
	}
	b.WriteString(string(ret))
	return b.String()
}

// MethodOf builds a method descriptor from an argument list and an optional
// return type. A nil return type means void.
func MethodOf(args []Type, ret *Type) string {
	if ret == nil {
		return Method(Void, args...)
	}
	return Method(*ret, args...)
}

// Constructor builds the descriptor of an "<init>" method. Constructors always return void.
func Constructor(args ...Type) string {
	return Method(Void, args...)
}

// Signature is a decoded method descriptor.
type Signature struct {
	Args   []Type
	Return Type
}

func (s Signature) String() string {
	return Method(s.Return, s.Args...)
}

// Equal reports whether both signatures encode the same descriptor.
func (s Signature) Equal(other Signature) bool {
	return s.Return == other.Return && slices.Equal(s.Args, other.Args)
}

// ParseMethod decodes a method descriptor such as "(ILjava/lang/String;)V".
func ParseMethod(desc string) (Signature, error) {
	if len(desc) < 3 || desc[0] != '(' {
		return Signature{}, fmt.Errorf("%w: %q", ErrMalformedDescriptor, desc)
	}

	var sig Signature
	pos := 1
	for pos < len(desc) && desc[pos] != ')' {
		end, err := scan(desc, pos, false)
		if err != nil {
			return Signature{}, fmt.Errorf("%w: %q", err, desc)
		}
		sig.Args = append(sig.Args, Type(desc[pos:end]))
		pos = end
	}

	if pos >= len(desc) {
		return Signature{}, fmt.Errorf("%w: %q is missing ')'", ErrMalformedDescriptor, desc)
	}

	// Skip the closing parenthesis and decode exactly one return type
	pos++
	end, err := scan(desc, pos, true)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %q", err, desc)
	}
	if end != len(desc) {
		return Signature{}, fmt.Errorf("%w: trailing data in %q", ErrMalformedDescriptor, desc)
	}
	sig.Return = Type(desc[pos:end])
	return sig, nil
}

// Parse decodes a single field descriptor.
func Parse(desc string) (Type, error) {
	end, err := scan(desc, 0, false)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, desc)
	}
	if end != len(desc) {
		return "", fmt.Errorf("%w: trailing data in %q", ErrMalformedDescriptor, desc)
	}
	return Type(desc), nil
}

// scan returns the end offset of the descriptor starting at pos.
func scan(desc string, pos int, allowVoid bool) (int, error) {
	if pos >= len(desc) {
		return pos, ErrMalformedDescriptor
	}

	switch desc[pos] {
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		return pos + 1, nil
	case 'V':
		if !allowVoid {
			return pos, ErrMalformedDescriptor
		}
		return pos + 1, nil
	case 'L':
		semi := strings.IndexByte(desc[pos:], ';')
		if semi <= 1 {
			return pos, ErrMalformedDescriptor
		}
		name := desc[pos+1 : pos+semi]
		if strings.ContainsAny(name, ".[()") {
			return pos, ErrMalformedDescriptor
		}
		return pos + semi + 1, nil
	case '[':
		// Void is never a legal array element
		return scan(desc, pos+1, false)
	default:
		return pos, ErrMalformedDescriptor
	}
}
