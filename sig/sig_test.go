package sig

import (
	"errors"
	"testing"
)

func TestMethod(t *testing.T) {
	tests := []struct {
		name     string
		ret      Type
		args     []Type
		expected string
	}{
		{"noArgsVoid", "", nil, "()V"},
		{"explicitVoid", Void, nil, "()V"},
		{"intReturn", Int, nil, "()I"},
		{"twoInts", Void, []Type{Int, Int}, "(II)V"},
		{"mixed", Boolean, []Type{Long, String, Double}, "(JLjava/lang/String;D)Z"},
		{"arrays", Array(String), []Type{Array(Byte), ArrayOf(Int, 2)}, "([B[[I)[Ljava/lang/String;"},
		{"context", Void, []Type{Class("android.content.Context")}, "(Landroid/content/Context;)V"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if actual := Method(test.ret, test.args...); actual != test.expected {
				t.Errorf("expected %q, got %q", test.expected, actual)
			}
		})
	}
}

func TestMethodIsConcatenation(t *testing.T) {
	alphabet := []Type{Boolean, Byte, Char, Short, Int, Long, Float, Double, Object, Array(Int)}
	for i := range alphabet {
		args := alphabet[:i]
		expected := "("
		for _, arg := range args {
			expected += string(arg)
		}
		expected += ")" + string(Long)
		if actual := Method(Long, args...); actual != expected {
			t.Errorf("expected %q, got %q", expected, actual)
		}
	}
}

func TestMethodOf(t *testing.T) {
	ret := Class("java.util.List")
	if actual := MethodOf([]Type{Int}, &ret); actual != "(I)Ljava/util/List;" {
		t.Errorf("unexpected descriptor %q", actual)
	}
	if actual := MethodOf(nil, nil); actual != "()V" {
		t.Errorf("unexpected descriptor %q", actual)
	}
}

func TestSignatureEqual(t *testing.T) {
	base := Signature{Args: []Type{Int, String}, Return: Void}
	tests := []struct {
		name     string
		other    Signature
		expected bool
	}{
		{"same", Signature{Args: []Type{Int, String}, Return: Void}, true},
		{"return", Signature{Args: []Type{Int, String}, Return: Int}, false},
		{"order", Signature{Args: []Type{String, Int}, Return: Void}, false},
		{"arity", Signature{Args: []Type{Int}, Return: Void}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if eq := base.Equal(test.other); eq != test.expected {
				t.Errorf("expected %v, got %v", test.expected, eq)
			}
		})
	}
}

func TestConstructor(t *testing.T) {
	if actual := Constructor(Int, String); actual != "(ILjava/lang/String;)V" {
		t.Errorf("unexpected constructor descriptor %q", actual)
	}
}

func TestBinaryName(t *testing.T) {
	tests := map[string]string{
		"java.lang.String":       "java/lang/String",
		"java/lang/String":       "java/lang/String",
		"com.example.Counter":    "com/example/Counter",
		"Outer$Inner":            "Outer$Inner",
		"a.b.c.Outer$Inner.More": "a/b/c/Outer$Inner/More",
	}
	for in, expected := range tests {
		if actual := BinaryName(in); actual != expected {
			t.Errorf("BinaryName(%q): expected %q, got %q", in, expected, actual)
		}
	}

	if actual := DisplayName("java/lang/String"); actual != "java.lang.String" {
		t.Errorf("unexpected display name %q", actual)
	}
}

func TestTypeKind(t *testing.T) {
	tests := []struct {
		typ       Type
		kind      Kind
		primitive bool
	}{
		{Boolean, KindBoolean, true},
		{Char, KindChar, true},
		{Long, KindLong, true},
		{Void, KindVoid, true},
		{String, KindObject, false},
		{Array(Float), KindArray, false},
		{"", KindInvalid, false},
		{"Q", KindInvalid, false},
	}
	for _, test := range tests {
		if kind := test.typ.Kind(); kind != test.kind {
			t.Errorf("%q: expected kind %v, got %v", test.typ, test.kind, kind)
		}
		if p := test.typ.IsPrimitive(); p != test.primitive {
			t.Errorf("%q: expected primitive=%v", test.typ, test.primitive)
		}
	}

	if elem := ArrayOf(Int, 2).Elem(); elem != "[I" {
		t.Errorf("unexpected element %q", elem)
	}
	if name := String.ClassName(); name != "java/lang/String" {
		t.Errorf("unexpected class name %q", name)
	}
	if name := Array(String).ClassName(); name != "[Ljava/lang/String;" {
		t.Errorf("unexpected array class name %q", name)
	}
}

func TestParseMethod(t *testing.T) {
	sig, err := ParseMethod("(I[JLjava/lang/String;[[Lcom/example/Counter;)Z")
	if err != nil {
		t.Fatal(err)
	}

	expected := Signature{
		Args:   []Type{Int, Array(Long), String, ArrayOf(Class("com.example.Counter"), 2)},
		Return: Boolean,
	}
	if !sig.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, sig)
	}
	if sig.String() != "(I[JLjava/lang/String;[[Lcom/example/Counter;)Z" {
		t.Errorf("round trip mismatch: %s", sig)
	}
}

func TestParseMethodMalformed(t *testing.T) {
	for _, desc := range []string{
		"",
		"()",
		"I)V",
		"(I",
		"(V)V",
		"(Ljava/lang/String)V",
		"(L;)V",
		"(Ljava.lang.String;)V",
		"()VV",
		"([V)V",
		"(Q)V",
	} {
		if _, err := ParseMethod(desc); !errors.Is(err, ErrMalformedDescriptor) {
			t.Errorf("%q: expected ErrMalformedDescriptor, got %v", desc, err)
		}
	}
}

func TestParse(t *testing.T) {
	if typ, err := Parse("[Ljava/lang/Object;"); err != nil || typ != Array(Object) {
		t.Errorf("unexpected result %q, %v", typ, err)
	}
	if _, err := Parse("V"); !errors.Is(err, ErrMalformedDescriptor) {
		t.Errorf("void must not parse as a field type, got %v", err)
	}
	if _, err := Parse("II"); !errors.Is(err, ErrMalformedDescriptor) {
		t.Errorf("trailing data must be rejected, got %v", err)
	}
	if !Class("x.Y").Valid() || Type("Lx.Y;").Valid() {
		t.Error("Valid disagrees with Parse")
	}
}
