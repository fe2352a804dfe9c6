package member

import "github.com/mwhelan/semview-mcp/pkg/types"

// Collector walks a type's linearized base-class sequence and enumerates
// the members that pass a filter policy. It holds no mutable state and is
// safe for concurrent use against an unchanging model snapshot.
type Collector struct {
	provider Provider
	oracle   Oracle
}

// New creates a new Collector instance
func New(provider Provider, oracle Oracle) *Collector {
	return &Collector{
		provider: provider,
		oracle:   oracle,
	}
}

// CollectSymbols enumerates the entities visible on a type, deduplicated
// by entity identity. Used by the suggestion engine, which ranks candidate
// names itself; first-seen hierarchy order is preserved for determinism
// but carries no meaning for callers.
func (c *Collector) CollectSymbols(t types.Type, pol Policy) []*types.Entity {
	cls := c.provider.Widen(t)
	if cls == nil {
		return nil
	}

	var out []*types.Entity
	seen := make(map[*types.Entity]struct{})

	for _, base := range c.provider.BaseClasses(cls) {
		for _, e := range c.provider.Declarations(base) {
			if _, dup := seen[e]; dup {
				continue
			}
			if Included(e, pol, c.oracle) {
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}
	}

	return out
}

// CollectDenotations enumerates every signature occurrence visible on a
// type, in traversal order: most-derived base class first, declaration
// order within a class, overload alternatives in model order. Used by the
// completion engine.
//
// No cross-base-class deduplication is performed: an entity reachable
// through two base classes with distinct occurrence objects appears for
// each, since the completion engine needs every signature variant (e.g.
// overrides with covariant return types) for its own merging logic.
func (c *Collector) CollectDenotations(t types.Type, pol Policy) []types.Denotation {
	cls := c.provider.Widen(t)
	if cls == nil {
		return nil
	}

	var out []types.Denotation

	for _, base := range c.provider.BaseClasses(cls) {
		for _, e := range c.provider.Declarations(base) {
			if !Included(e, pol, c.oracle) {
				continue
			}
			out = append(out, c.provider.Alternatives(e, base)...)
		}
	}

	return out
}
