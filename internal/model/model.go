package model

import (
	"fmt"
	"strings"

	"github.com/mwhelan/semview-mcp/pkg/types"
)

// Model is one immutable semantic-model snapshot: the classes of a
// compiled program with their declarations and linearizations.
type Model struct {
	Name     string
	Compiler string

	classes map[string]*types.Class
	order   []*types.Class // snapshot order, for deterministic listing
}

// Classes returns all classes in snapshot order
func (m *Model) Classes() []*types.Class {
	return m.order
}

// Class looks up a class by name
func (m *Model) Class(name string) (*types.Class, bool) {
	c, ok := m.classes[name]
	return c, ok
}

// ResolveType turns a client-supplied type spelling into a resolved type.
// "Buffer" resolves to the nominal class type, "Buffer.type" to the
// singleton type of that class.
func (m *Model) ResolveType(spelling string) (types.Type, error) {
	name := spelling
	singleton := false
	if strings.HasSuffix(spelling, ".type") {
		name = strings.TrimSuffix(spelling, ".type")
		singleton = true
	}

	cls, ok := m.classes[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q in model %q", spelling, m.Name)
	}

	if singleton {
		return types.SingletonType{Of: cls}, nil
	}
	return types.ClassType{Class: cls}, nil
}

// Widen reduces a precise type to its nominal upper-bound class
func (m *Model) Widen(t types.Type) *types.Class {
	switch tt := t.(type) {
	case types.ClassType:
		return tt.Class
	case types.SingletonType:
		return tt.Of
	default:
		return nil
	}
}

// BaseClasses returns the linearized ancestor sequence stored with the
// class, most-derived first
func (m *Model) BaseClasses(c *types.Class) []*types.Class {
	if c == nil {
		return nil
	}
	return c.Linearization
}

// Declarations returns the entities declared directly in a class
func (m *Model) Declarations(c *types.Class) []*types.Entity {
	if c == nil {
		return nil
	}
	return c.Decls
}

// Alternatives expands an entity into one denotation per overload
// alternative, as seen through the given base class
func (m *Model) Alternatives(e *types.Entity, via *types.Class) []types.Denotation {
	if e == nil {
		return nil
	}
	dens := make([]types.Denotation, 0, len(e.Signatures))
	for _, sig := range e.Signatures {
		dens = append(dens, types.Denotation{Entity: e, Via: via, Signature: sig})
	}
	return dens
}

// IsAccessibleFrom implements the accessibility oracle. Non-private
// entities are accessible from any site; private entities only from the
// owning class or a class inheriting from it.
func (m *Model) IsAccessibleFrom(e *types.Entity, site *types.Class) bool {
	if e == nil {
		return false
	}
	if !e.IsPrivate {
		return true
	}
	if site == nil || e.Owner == nil {
		return false
	}
	if site == e.Owner {
		return true
	}
	for _, base := range site.Linearization {
		if base == e.Owner {
			return true
		}
	}
	return false
}

// FindDenotations returns every unfiltered denotation named name visible
// on a type, in hierarchy order. Used to re-materialize an occurrence for
// the standalone validity check.
func (m *Model) FindDenotations(t types.Type, name string) []types.Denotation {
	cls := m.Widen(t)
	if cls == nil {
		return nil
	}

	var out []types.Denotation
	for _, base := range cls.Linearization {
		for _, e := range base.Decls {
			if e.Name == name {
				out = append(out, m.Alternatives(e, base)...)
			}
		}
	}
	return out
}
