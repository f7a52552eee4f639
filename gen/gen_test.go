package gen

import (
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	m, err := Load("testdata/shapes.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if m.Package != "shapes" || len(m.Classes) != 2 {
		t.Fatalf("unexpected manifest %+v", m)
	}

	circle := m.Classes[0]
	if circle.Name != "com/example/shapes/Circle" || circle.Go != "Circle" {
		t.Errorf("unexpected class names %s, %s", circle.Name, circle.Go)
	}
	if circle.Extends != "com/example/shapes/Shape" {
		t.Errorf("expected a normalized superclass, got %s", circle.Extends)
	}
	if circle.Methods[0].Go != "Radius" {
		t.Errorf("expected the default Go name Radius, got %s", circle.Methods[0].Go)
	}

	shape := m.Classes[1]
	if shape.Constructors[0].Go != "NewShape" || shape.Constructors[1].Go != "NewShape2" {
		t.Errorf("unexpected constructor names %s, %s", shape.Constructors[0].Go, shape.Constructors[1].Go)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		expected error
	}{
		{
			name:     "package",
			manifest: "package: not-a-name",
			expected: ErrInvalidManifest,
		},
		{
			name:     "yaml",
			manifest: "package: [",
			expected: ErrInvalidManifest,
		},
		{
			name: "unknown type",
			manifest: `package: p
classes:
  - name: a.A
    methods:
      - name: run
        args: [integer]`,
			expected: ErrUnknownType,
		},
		{
			name: "unsupported array",
			manifest: `package: p
classes:
  - name: a.A
    fields:
      - name: values
        type: "[]long"`,
			expected: ErrUnsupportedType,
		},
		{
			name: "void argument",
			manifest: `package: p
classes:
  - name: a.A
    methods:
      - name: run
        args: [void]`,
			expected: ErrUnsupportedType,
		},
		{
			name: "duplicate class",
			manifest: `package: p
classes:
  - name: a.A
  - name: b.A`,
			expected: ErrDuplicateName,
		},
		{
			name: "overload",
			manifest: `package: p
classes:
  - name: a.A
    methods:
      - name: run
      - name: run
        args: [int]`,
			expected: ErrDuplicateName,
		},
		{
			name: "promoted name",
			manifest: `package: p
classes:
  - name: a.A
    methods:
      - name: release`,
			expected: ErrDuplicateName,
		},
		{
			name: "field setter",
			manifest: `package: p
classes:
  - name: a.A
    methods:
      - name: setCount
        args: [int]
    fields:
      - name: count
        type: int`,
			expected: ErrDuplicateName,
		},
		{
			name: "unknown superclass",
			manifest: `package: p
classes:
  - name: a.A
    extends: a.Missing`,
			expected: ErrUnknownSuperclass,
		},
		{
			name: "cycle",
			manifest: `package: p
classes:
  - name: a.A
    extends: a.B
  - name: a.B
    extends: a.A`,
			expected: ErrCycle,
		},
		{
			name: "self",
			manifest: `package: p
classes:
  - name: a.A
    extends: a.A`,
			expected: ErrCycle,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Parse([]byte(test.manifest)); !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	m, err := Parse([]byte(`package: p
classes:
  - name: a.C
    extends: a.B
  - name: a.Other
  - name: a.B
    extends: a.A
  - name: a.A`))
	if err != nil {
		t.Fatal(err)
	}

	classes, err := order(m)
	if err != nil {
		t.Fatal(err)
	}
	position := map[string]int{}
	for i, c := range classes {
		position[c.Go] = i
	}
	if position["A"] > position["B"] || position["B"] > position["C"] {
		t.Errorf("expected superclasses first, got %v", position)
	}
	if len(classes) != 4 {
		t.Errorf("expected 4 classes, got %d", len(classes))
	}

	// The order does not depend on map iteration
	again, err := order(m)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(classes, again); diff != "" {
		t.Errorf("unstable order (-first +second):\n%s", diff)
	}
}

func TestGenerate(t *testing.T) {
	m, err := Load("testdata/shapes.yaml")
	if err != nil {
		t.Fatal(err)
	}
	src, err := Generate(m, "shapes.go")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.ParseFile(token.NewFileSet(), "shapes.go", src, parser.AllErrors); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}

	out := string(src)
	expected := []string{
		"// Code generated by jnigen. DO NOT EDIT.",
		"package shapes",
		`const ShapeClass = "com/example/shapes/Shape"`,
		"type ShapeRef = jni.Typed[comExampleShapesShapeClass]",
		"type javaUtilListClass struct{}",
		`func (javaUtilListClass) ClassName() string { return "java/util/List" }`,
		"func NewShape(env *jni.Env) (*Shape, error)",
		"func NewShape2(env *jni.Env, arg0 jni.String) (*Shape, error)",
		"func NewCircle(env *jni.Env, arg0 jni.Double) (*Circle, error)",
		"return &Circle{Shape: &Shape{Instance: inst}}, nil",
		`return jni.Invoke[jni.Double](env, o.Instance, "area")`,
		`return jni.Invoke[jni.String](env, o.Instance, "getName")`,
		`return jni.Invoke[jni.Strings](env, o.Instance, "tags")`,
		"func (o *Shape) Neighbours(env *jni.Env, arg0 jni.Typed[javaUtilListClass]) (jni.Typed[javaUtilListClass], error)",
		`return o.Instance.CallVoid(env, "scale", arg0)`,
		"func CircleUnit(env *jni.Env) (CircleRef, error)",
		`return jni.CallStatic[CircleRef](env, cls, "unit")`,
		"func CircleUnitRadius(env *jni.Env) (jni.Double, error)",
		"func SetCircleUnitRadius(env *jni.Env, v jni.Double) error",
		`return jni.Field[jni.Long](env, o.Instance, "id")`,
		`return o.Instance.SetField(env, "id", v)`,
		"// Neighbours calls neighbours(Ljava/util/List;)Ljava/util/List;.",
	}
	for _, e := range expected {
		if !strings.Contains(out, e) {
			t.Errorf("missing %q in generated code:\n%s", e, out)
		}
	}

	// The superclass wrapper is declared before the subclass wrapper
	if strings.Index(out, "type Shape struct") > strings.Index(out, "type Circle struct") {
		t.Errorf("expected Shape to be declared before Circle")
	}
}

func TestDescriptor(t *testing.T) {
	tests := []struct {
		returns  string
		args     []string
		expected string
		fail     bool
	}{
		{"", nil, "()V", false},
		{"int", []string{"string", "boolean"}, "(Ljava/lang/String;Z)I", false},
		{"java.util.List", []string{"[]byte", "long"}, "([BJ)Ljava/util/List;", false},
		{"void", []string{"object", "android.content.Context"}, "(Ljava/lang/Object;Landroid/content/Context;)V", false},
		{"int", []string{"void"}, "", true},
		{"integer", nil, "", true},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			desc, err := Descriptor(test.returns, test.args...)
			if (err != nil) != test.fail {
				t.Fatalf("unexpected error %v", err)
			}
			if desc != test.expected {
				t.Errorf("expected %s, got %s", test.expected, desc)
			}
		})
	}
}

func TestNamerName(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"java/util/List", "javaUtilListClass"},
		{"java/util/Map$Entry", "javaUtilMapEntryClass"},
		{"a/b_c/D", "aBCDClass"},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			if n := namerName(test.in); n != test.expected {
				t.Errorf("expected %s, got %s", test.expected, n)
			}
		})
	}
}
