package gen

import (
	"fmt"

	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"
)

type classNode struct {
	id    int64
	class *Class
}

func (n classNode) ID() int64 {
	return n.id
}

// order sorts the manifest classes so every superclass precedes its
// subclasses. Ties are broken by manifest position, so the result is stable.
func order(m *Manifest) ([]*Class, error) {
	graph := multi.NewDirectedGraph()
	nodes := map[string]classNode{}
	for i := range m.Classes {
		n := classNode{id: int64(i), class: &m.Classes[i]}
		nodes[m.Classes[i].Name] = n
		graph.AddNode(n)
	}

	// Add an edge from each superclass to its subclasses
	for i := range m.Classes {
		c := &m.Classes[i]
		if c.Extends == "" {
			continue
		}
		if c.Extends == c.Name {
			return nil, fmt.Errorf("%w: %s extends itself", ErrCycle, c.Name)
		}
		super, ok := nodes[c.Extends]
		if !ok {
			return nil, fmt.Errorf("%s: %w: %s", c.Name, ErrUnknownSuperclass, c.Extends)
		}
		graph.SetLine(graph.NewLine(super, nodes[c.Name]))
	}

	sorted, err := topo.SortStabilized(graph, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycle, err)
	}

	classes := make([]*Class, len(sorted))
	for i, n := range sorted {
		classes[i] = n.(classNode).class
	}
	return classes, nil
}

// chain returns c followed by its superclasses.
func (r *resolver) chain(c *Class) []*Class {
	var chain []*Class
	for c != nil {
		chain = append(chain, c)
		c = r.classes[c.Extends]
	}
	return chain
}
