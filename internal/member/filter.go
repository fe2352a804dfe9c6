package member

import "github.com/mwhelan/semview-mcp/pkg/types"

// Included reports whether an entity qualifies under the policy.
// Cheapest checks run first; all operands are side-effect-free, so the
// order carries no observable behavior.
func Included(e *types.Entity, pol Policy, oracle Oracle) bool {
	if e == nil {
		return false
	}

	if !kindMatches(e, pol.WantTypes, pol.Applied) {
		return false
	}

	if !pol.IncludeConstructors && e.IsConstructor {
		return false
	}

	if !pol.IncludeSynthetic && e.IsSynthetic {
		return false
	}

	if !pol.IncludePrivate && e.IsPrivate {
		return false
	}

	// A nil call site is the "no type" sentinel and disables the
	// accessibility check regardless of CheckAccess.
	if pol.CheckAccess && pol.CallSite != nil && oracle != nil {
		return oracle.IsAccessibleFrom(e, pol.CallSite)
	}

	return true
}
