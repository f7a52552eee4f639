package gen

import (
	"fmt"
	"strings"

	"omibyte.io/gojni/sig"
)

// typeRef is a resolved type spelling.
type typeRef struct {
	desc   sig.Type
	goType string

	// namer is the unexported ClassNamer type of a class outside the manifest.
	namer string
	class *Class
}

func (t typeRef) void() bool {
	return t.desc == sig.Void
}

var builtinTypes = map[string]typeRef{
	"boolean":  {desc: sig.Boolean, goType: "jni.Bool"},
	"byte":     {desc: sig.Byte, goType: "jni.Byte"},
	"char":     {desc: sig.Char, goType: "jni.Char"},
	"short":    {desc: sig.Short, goType: "jni.Short"},
	"int":      {desc: sig.Int, goType: "jni.Int"},
	"long":     {desc: sig.Long, goType: "jni.Long"},
	"float":    {desc: sig.Float, goType: "jni.Float"},
	"double":   {desc: sig.Double, goType: "jni.Double"},
	"void":     {desc: sig.Void},
	"string":   {desc: sig.String, goType: "jni.String"},
	"object":   {desc: sig.Object, goType: "jni.Ref"},
	"[]string": {desc: sig.Array(sig.String), goType: "jni.Strings"},
	"[]byte":   {desc: sig.Array(sig.Byte), goType: "jni.Bytes"},
	"[]int":    {desc: sig.Array(sig.Int), goType: "jni.Ints"},
	"[]float":  {desc: sig.Array(sig.Float), goType: "jni.Floats"},
}

type resolver struct {
	classes map[string]*Class
}

func newResolver(m *Manifest) *resolver {
	r := &resolver{classes: map[string]*Class{}}
	for i := range m.Classes {
		r.classes[sig.BinaryName(m.Classes[i].Name)] = &m.Classes[i]
	}
	return r
}

// resolve maps a type spelling to its descriptor and Go type. Class names
// must be fully qualified.
func (r *resolver) resolve(spelling string, allowVoid bool) (typeRef, error) {
	spelling = strings.TrimSpace(spelling)
	if t, ok := builtinTypes[spelling]; ok {
		if t.void() && !allowVoid {
			return typeRef{}, fmt.Errorf("%w: void is only valid as a result", ErrUnsupportedType)
		}
		return t, nil
	}
	if strings.HasPrefix(spelling, "[]") {
		return typeRef{}, fmt.Errorf("%w: %s", ErrUnsupportedType, spelling)
	}
	if !strings.ContainsAny(spelling, "./") {
		return typeRef{}, fmt.Errorf("%w: %q", ErrUnknownType, spelling)
	}

	binary := sig.BinaryName(spelling)
	if c, ok := r.classes[binary]; ok {
		return typeRef{desc: sig.Class(binary), goType: c.Go + "Ref", class: c}, nil
	}
	namer := namerName(binary)
	return typeRef{
		desc:   sig.Class(binary),
		goType: "jni.Typed[" + namer + "]",
		namer:  namer,
	}, nil
}

// namerName derives an unexported type name from a binary class name, for
// example javaUtilListClass for java/util/List.
func namerName(binary string) string {
	var b strings.Builder
	upper := false
	for _, r := range binary {
		switch {
		case r == '/' || r == '$' || r == '_':
			upper = true
		case upper:
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString("Class")
	return b.String()
}

// Descriptor returns the method descriptor for the given type spellings. An
// empty result spelling means void.
func Descriptor(returns string, args ...string) (string, error) {
	r := &resolver{classes: map[string]*Class{}}
	types := make([]sig.Type, 0, len(args))
	for _, a := range args {
		t, err := r.resolve(a, false)
		if err != nil {
			return "", err
		}
		types = append(types, t.desc)
	}
	ret := sig.Void
	if returns != "" {
		t, err := r.resolve(returns, true)
		if err != nil {
			return "", err
		}
		ret = t.desc
	}
	return sig.Method(ret, types...), nil
}
