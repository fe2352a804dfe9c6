package member

import "github.com/mwhelan/semview-mcp/pkg/types"

// kindMatches reports whether an entity's kind matches what the caller is
// looking for. A bare class name is not itself a usable value, but in an
// applied position it denotes an implicit constructor proxy and qualifies
// as a term candidate, unless the class is a module singleton, which is a
// stored term member in its own right.
func kindMatches(e *types.Entity, wantTypes, applied bool) bool {
	if e == nil {
		return false
	}

	if wantTypes {
		return e.Kind == types.KindType
	}

	switch e.Kind {
	case types.KindTerm:
		return true
	case types.KindClass:
		return applied && !e.IsModule
	case types.KindType:
		return false
	default:
		// unknown kind: conservative exclusion
		return false
	}
}
