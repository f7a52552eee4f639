// Package gen generates Go wrappers for runtime classes from a YAML manifest.
//
// A manifest lists classes with their constructors, methods and fields:
//
//	package: counter
//	classes:
//	  - name: com.example.Counter
//	    constructors:
//	      - args: [int]
//	    methods:
//	      - name: increment
//	        returns: int
//	    fields:
//	      - name: count
//	        type: int
//
// Every class becomes a struct embedding *jni.Instance, or the wrapper of its
// superclass when extends names another manifest class.
package gen

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"omibyte.io/gojni/sig"
)

var (
	ErrInvalidManifest   = errors.New("invalid manifest")
	ErrUnknownType       = errors.New("unknown type")
	ErrUnsupportedType   = errors.New("unsupported type")
	ErrDuplicateName     = errors.New("duplicate name")
	ErrUnknownSuperclass = errors.New("unknown superclass")
	ErrCycle             = errors.New("superclass cycle")
)

type Manifest struct {
	Package string  `yaml:"package"`
	Classes []Class `yaml:"classes"`
}

type Class struct {
	Name         string        `yaml:"name"`
	Go           string        `yaml:"go"`
	Extends      string        `yaml:"extends"`
	Constructors []Constructor `yaml:"constructors"`
	Methods      []Method      `yaml:"methods"`
	Fields       []Field       `yaml:"fields"`
}

type Constructor struct {
	Go   string   `yaml:"go"`
	Args []string `yaml:"args"`
}

type Method struct {
	Name    string   `yaml:"name"`
	Go      string   `yaml:"go"`
	Args    []string `yaml:"args"`
	Returns string   `yaml:"returns"`
	Static  bool     `yaml:"static"`
}

type Field struct {
	Name   string `yaml:"name"`
	Go     string `yaml:"go"`
	Type   string `yaml:"type"`
	Static bool   `yaml:"static"`
}

// Parse decodes and validates a manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Validate fills in default Go names and checks the manifest for unknown
// types, name collisions and superclass cycles.
func (m *Manifest) Validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("%w: package name %q", ErrInvalidManifest, m.Package)
	}

	names := map[string]bool{}
	for i := range m.Classes {
		c := &m.Classes[i]
		if c.Name == "" {
			return fmt.Errorf("%w: class %d has no name", ErrInvalidManifest, i)
		}
		c.Name = sig.BinaryName(c.Name)
		if c.Go == "" {
			c.Go = simpleName(c.Name)
		}
		if !token.IsIdentifier(c.Go) || !token.IsExported(c.Go) {
			return fmt.Errorf("%w: %q is not an exported identifier", ErrInvalidManifest, c.Go)
		}
		if names[c.Go] {
			return fmt.Errorf("%w: class %s", ErrDuplicateName, c.Go)
		}
		names[c.Go] = true
	}

	r := newResolver(m)
	for i := range m.Classes {
		if err := r.validateClass(&m.Classes[i], names); err != nil {
			return fmt.Errorf("%s: %w", m.Classes[i].Name, err)
		}
	}

	_, err := order(m)
	return err
}

// reserved are the methods and fields promoted from *jni.Instance.
var reserved = []string{
	"Instance", "Name", "Class", "Ref", "Released", "Release", "ReleaseWith",
	"CallVoid", "CallObject", "CallStaticVoid", "SetField",
}

func (r *resolver) validateClass(c *Class, packageNames map[string]bool) error {
	if c.Extends != "" {
		c.Extends = sig.BinaryName(c.Extends)
		if _, ok := r.classes[c.Extends]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSuperclass, c.Extends)
		}
	}

	members := map[string]bool{}
	for _, name := range reserved {
		members[name] = true
	}
	if c.Extends != "" {
		// The embedded superclass wrapper
		members[r.classes[c.Extends].Go] = true
	}
	member := func(name string) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%w: %q is not an exported identifier", ErrInvalidManifest, name)
		}
		if members[name] {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateName, c.Go, name)
		}
		members[name] = true
		return nil
	}
	topLevel := func(name string) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%w: %q is not an exported identifier", ErrInvalidManifest, name)
		}
		if packageNames[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		packageNames[name] = true
		return nil
	}

	for _, name := range []string{c.Go + "Class", c.Go + "Ref", "Wrap" + c.Go} {
		if err := topLevel(name); err != nil {
			return err
		}
	}

	for i := range c.Constructors {
		ctor := &c.Constructors[i]
		if ctor.Go == "" {
			ctor.Go = "New" + c.Go
			if i > 0 {
				ctor.Go = fmt.Sprintf("New%s%d", c.Go, i+1)
			}
		}
		if err := r.args(ctor.Args); err != nil {
			return err
		}
		if err := topLevel(ctor.Go); err != nil {
			return err
		}
	}

	for i := range c.Methods {
		meth := &c.Methods[i]
		if meth.Name == "" {
			return fmt.Errorf("%w: method %d has no name", ErrInvalidManifest, i)
		}
		if meth.Go == "" {
			meth.Go = exported(meth.Name)
		}
		if err := r.args(meth.Args); err != nil {
			return err
		}
		if meth.Returns != "" {
			if _, err := r.resolve(meth.Returns, true); err != nil {
				return err
			}
		}
		if meth.Static {
			if err := topLevel(c.Go + meth.Go); err != nil {
				return err
			}
		} else if err := member(meth.Go); err != nil {
			return err
		}
	}

	for i := range c.Fields {
		f := &c.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidManifest, i)
		}
		if f.Go == "" {
			f.Go = exported(f.Name)
		}
		if _, err := r.resolve(f.Type, false); err != nil {
			return err
		}
		if f.Static {
			if err := topLevel(c.Go + f.Go); err != nil {
				return err
			}
			if err := topLevel("Set" + c.Go + f.Go); err != nil {
				return err
			}
			continue
		}
		if err := member(f.Go); err != nil {
			return err
		}
		if err := member("Set" + f.Go); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) args(args []string) error {
	for _, a := range args {
		if _, err := r.resolve(a, false); err != nil {
			return err
		}
	}
	return nil
}

// simpleName returns the last segment of a binary class name, with nested
// class separators removed.
func simpleName(binary string) string {
	name := binary[strings.LastIndexByte(binary, '/')+1:]
	return strings.ReplaceAll(name, "$", "")
}

func exported(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
