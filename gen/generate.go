package gen

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"

	"omibyte.io/gojni/sig"
)

// Generate writes the wrappers of every manifest class into one Go source
// file. The manifest must have been validated.
func Generate(m *Manifest, filename string) ([]byte, error) {
	classes, err := order(m)
	if err != nil {
		return nil, err
	}
	g := &generator{resolver: newResolver(m), namers: map[string]string{}}

	var body strings.Builder
	for _, c := range classes {
		if err := g.writeClass(&body, c); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
	}

	// Write the preamble
	var w strings.Builder
	fmt.Fprintln(&w, "// Code generated by jnigen. DO NOT EDIT.")
	fmt.Fprintln(&w)
	fmt.Fprintf(&w, "package %s\n\n", m.Package)
	fmt.Fprintln(&w, "import (")
	fmt.Fprintln(&w, `"omibyte.io/gojni/jni"`)
	fmt.Fprintln(&w, `"omibyte.io/gojni/jvm"`)
	fmt.Fprintln(&w, ")")
	fmt.Fprintln(&w)

	// Class namers for types outside the manifest
	names := make([]string, 0, len(g.namers))
	for name := range g.namers {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(&w, "type %s struct{}\n\n", name)
		fmt.Fprintf(&w, "func (%s) ClassName() string { return %q }\n\n", name, g.namers[name])
	}
	w.WriteString(body.String())

	// Format the final output
	src, err := imports.Process(filename, []byte(w.String()), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("error formatting %s: %v", filename, err)
	}
	return src, nil
}

type generator struct {
	*resolver
	namers map[string]string
}

type param struct {
	name string
	typ  typeRef
}

func (g *generator) resolve(spelling string, allowVoid bool) (typeRef, error) {
	t, err := g.resolver.resolve(spelling, allowVoid)
	if err == nil && t.namer != "" {
		g.namers[t.namer] = t.desc.ClassName()
	}
	return t, err
}

func (g *generator) params(args []string) ([]param, error) {
	params := make([]param, len(args))
	for i, a := range args {
		t, err := g.resolve(a, false)
		if err != nil {
			return nil, err
		}
		params[i] = param{name: fmt.Sprintf("arg%d", i), typ: t}
	}
	return params, nil
}

func (g *generator) result(returns string) (typeRef, error) {
	if returns == "" {
		returns = "void"
	}
	return g.resolve(returns, true)
}

// signature formats the parameter list, starting with the environment.
func signature(params []param) string {
	parts := []string{"env *jni.Env"}
	for _, p := range params {
		parts = append(parts, p.name+" "+p.typ.goType)
	}
	return strings.Join(parts, ", ")
}

// callArgs formats the trailing arguments of a call, including the leading
// comma when there are any.
func callArgs(params []param) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteString(", ")
		b.WriteString(p.name)
	}
	return b.String()
}

func descriptors(params []param) []sig.Type {
	types := make([]sig.Type, len(params))
	for i, p := range params {
		types[i] = p.typ.desc
	}
	return types
}

// wrap formats the composite literal that wraps inst in c and its
// superclasses.
func (g *generator) wrap(c *Class, inst string) string {
	chain := g.chain(c)
	expr := inst
	field := "Instance"
	for i := len(chain) - 1; i >= 0; i-- {
		expr = fmt.Sprintf("&%s{%s: %s}", chain[i].Go, field, expr)
		field = chain[i].Go
	}
	return expr
}

func (g *generator) writeClass(w *strings.Builder, c *Class) error {
	display := sig.DisplayName(c.Name)
	namer := namerName(c.Name)

	fmt.Fprintf(w, "// %sClass is the binary name of %s.\n", c.Go, display)
	fmt.Fprintf(w, "const %sClass = %q\n\n", c.Go, c.Name)
	fmt.Fprintf(w, "type %s struct{}\n\n", namer)
	fmt.Fprintf(w, "func (%s) ClassName() string { return %sClass }\n\n", namer, c.Go)
	fmt.Fprintf(w, "// %sRef is a reference to a %s.\n", c.Go, display)
	fmt.Fprintf(w, "type %sRef = jni.Typed[%s]\n\n", c.Go, namer)

	// Create the wrapper type
	embedded := "*jni.Instance"
	if c.Extends != "" {
		embedded = "*" + g.classes[c.Extends].Go
	}
	fmt.Fprintf(w, "// %s wraps an instance of %s.\n", c.Go, display)
	fmt.Fprintf(w, "type %s struct {\n%s\n}\n\n", c.Go, embedded)

	fmt.Fprintf(w, "// Wrap%s creates a %s holding new global references to obj.\n", c.Go, c.Go)
	fmt.Fprintf(w, "func Wrap%s(env *jni.Env, obj jvm.Object) (*%s, error) {\n", c.Go, c.Go)
	fmt.Fprintln(w, "inst, err := jni.Wrap(env, obj)")
	fmt.Fprintln(w, "if err != nil {\nreturn nil, err\n}")
	fmt.Fprintf(w, "return %s, nil\n}\n\n", g.wrap(c, "inst"))

	for _, ctor := range c.Constructors {
		params, err := g.params(ctor.Args)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "// %s constructs a %s with the %s constructor.\n", ctor.Go, display, sig.Constructor(descriptors(params)...))
		fmt.Fprintf(w, "func %s(%s) (*%s, error) {\n", ctor.Go, signature(params), c.Go)
		fmt.Fprintf(w, "inst, err := jni.NewInstance(env, %sClass%s)\n", c.Go, callArgs(params))
		fmt.Fprintln(w, "if err != nil {\nreturn nil, err\n}")
		fmt.Fprintf(w, "return %s, nil\n}\n\n", g.wrap(c, "inst"))
	}

	for _, meth := range c.Methods {
		if err := g.writeMethod(w, c, meth); err != nil {
			return err
		}
	}
	for _, f := range c.Fields {
		if err := g.writeField(w, c, f); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) writeMethod(w *strings.Builder, c *Class, meth Method) error {
	params, err := g.params(meth.Args)
	if err != nil {
		return err
	}
	ret, err := g.result(meth.Returns)
	if err != nil {
		return err
	}
	desc := sig.Method(ret.desc, descriptors(params)...)

	results := "error"
	if !ret.void() {
		results = "(" + ret.goType + ", error)"
	}

	if !meth.Static {
		fmt.Fprintf(w, "// %s calls %s%s.\n", meth.Go, meth.Name, desc)
		fmt.Fprintf(w, "func (o *%s) %s(%s) %s {\n", c.Go, meth.Go, signature(params), results)
		if ret.void() {
			fmt.Fprintf(w, "return o.Instance.CallVoid(env, %q%s)\n}\n\n", meth.Name, callArgs(params))
		} else {
			fmt.Fprintf(w, "return jni.Invoke[%s](env, o.Instance, %q%s)\n}\n\n", ret.goType, meth.Name, callArgs(params))
		}
		return nil
	}

	fmt.Fprintf(w, "// %s%s calls the static method %s%s.\n", c.Go, meth.Go, meth.Name, desc)
	fmt.Fprintf(w, "func %s%s(%s) %s {\n", c.Go, meth.Go, signature(params), results)
	writeFindClass(w, c, ret)
	if ret.void() {
		fmt.Fprintf(w, "return jni.CallStaticVoid(env, cls, %q%s)\n}\n\n", meth.Name, callArgs(params))
	} else {
		fmt.Fprintf(w, "return jni.CallStatic[%s](env, cls, %q%s)\n}\n\n", ret.goType, meth.Name, callArgs(params))
	}
	return nil
}

func (g *generator) writeField(w *strings.Builder, c *Class, f Field) error {
	t, err := g.resolve(f.Type, false)
	if err != nil {
		return err
	}

	if !f.Static {
		fmt.Fprintf(w, "// %s reads the field %s.\n", f.Go, f.Name)
		fmt.Fprintf(w, "func (o *%s) %s(env *jni.Env) (%s, error) {\n", c.Go, f.Go, t.goType)
		fmt.Fprintf(w, "return jni.Field[%s](env, o.Instance, %q)\n}\n\n", t.goType, f.Name)
		fmt.Fprintf(w, "// Set%s writes the field %s.\n", f.Go, f.Name)
		fmt.Fprintf(w, "func (o *%s) Set%s(env *jni.Env, v %s) error {\n", c.Go, f.Go, t.goType)
		fmt.Fprintf(w, "return o.Instance.SetField(env, %q, v)\n}\n\n", f.Name)
		return nil
	}

	fmt.Fprintf(w, "// %s%s reads the static field %s.\n", c.Go, f.Go, f.Name)
	fmt.Fprintf(w, "func %s%s(env *jni.Env) (%s, error) {\n", c.Go, f.Go, t.goType)
	writeFindClass(w, c, t)
	fmt.Fprintf(w, "return jni.GetStaticField[%s](env, cls, %q)\n}\n\n", t.goType, f.Name)

	fmt.Fprintf(w, "// Set%s%s writes the static field %s.\n", c.Go, f.Go, f.Name)
	fmt.Fprintf(w, "func Set%s%s(env *jni.Env, v %s) error {\n", c.Go, f.Go, t.goType)
	writeFindClass(w, c, typeRef{desc: sig.Void})
	fmt.Fprintf(w, "return jni.SetStaticField(env, cls, %q, v)\n}\n\n", f.Name)
	return nil
}

// writeFindClass resolves the class into cls, returning the zero value of
// ret on failure.
func writeFindClass(w *strings.Builder, c *Class, ret typeRef) {
	fmt.Fprintf(w, "cls, err := env.FindClass(%sClass)\n", c.Go)
	if ret.void() {
		fmt.Fprintln(w, "if err != nil {\nreturn err\n}")
	} else {
		fmt.Fprintf(w, "if err != nil {\nvar zero %s\nreturn zero, err\n}\n", ret.goType)
	}
	fmt.Fprintln(w, "defer env.DeleteLocal(cls)")
}
