package member

import "github.com/mwhelan/semview-mcp/pkg/types"

// IsValidMember re-validates one already-known occurrence without walking
// the hierarchy again, as incremental completion filtering does while the
// user keeps typing.
//
// This check is strictly narrower than the general Policy: synthetic and
// private entities are always excluded, and the applied-position class
// rule never fires, since the occurrence refers to an already-resolved
// member rather than a syntactic call position. Callers reusing result
// sets between the collectors and this check must account for that.
func (c *Collector) IsValidMember(d types.Denotation, wantTypes bool, site *types.Class, checkAccess bool) bool {
	e := d.Entity
	if !e.Exists() {
		return false
	}

	if e.IsConstructor || e.IsSynthetic || e.IsPrivate {
		return false
	}

	if checkAccess && site != nil && c.oracle != nil && !c.oracle.IsAccessibleFrom(e, site) {
		return false
	}

	return kindMatches(e, wantTypes, false)
}
