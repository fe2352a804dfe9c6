package member

import "github.com/mwhelan/semview-mcp/pkg/types"

// Policy describes which declared entities qualify for collection.
// It is a value object; the zero value is the default policy: term
// members only, private, synthetic and constructor entities excluded,
// no accessibility filtering.
type Policy struct {
	// WantTypes selects type-level members instead of term-level ones
	WantTypes bool

	// Applied is true when the caller's syntactic context is followed by
	// an argument list, making non-module class declarations eligible as
	// constructor-proxy candidates
	Applied bool

	IncludePrivate      bool
	IncludeSynthetic    bool
	IncludeConstructors bool

	// CheckAccess enables accessibility filtering against CallSite.
	// A nil CallSite is the "no type" sentinel: accessibility filtering
	// is skipped even when CheckAccess is set.
	CheckAccess bool
	CallSite    *types.Class
}

// Provider supplies the semantic-model queries the collector depends on.
// Implementations are owned by the type system; the collector only reads.
type Provider interface {
	// Widen reduces a precise type to its nominal upper-bound class.
	// A nil result means the type has no class shape to enumerate.
	Widen(t types.Type) *types.Class

	// BaseClasses returns the already-linearized, duplicate-free ancestor
	// sequence of a class, most-derived first, including the class itself
	BaseClasses(c *types.Class) []*types.Class

	// Declarations returns the entities declared directly in a class, in
	// declaration order
	Declarations(c *types.Class) []*types.Entity

	// Alternatives expands an entity into its signature occurrences as
	// seen through the given base class, one per overload alternative
	Alternatives(e *types.Entity, via *types.Class) []types.Denotation
}

// Oracle decides whether an entity is visible from a call-site class.
type Oracle interface {
	IsAccessibleFrom(e *types.Entity, site *types.Class) bool
}
