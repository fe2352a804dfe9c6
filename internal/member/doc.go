// Package member implements member resolution over a compiler semantic
// model: given a resolved type and a filter policy, enumerate the members
// visible on it.
//
// Two consumers share the same traversal but need the result shaped
// differently:
//
//   - a suggestion ("did-you-mean") engine needs candidate entities,
//     deduplicated by identity, for name-distance ranking it performs
//     itself (CollectSymbols)
//   - a completion engine needs every signature occurrence, including all
//     overload alternatives, in hierarchy order (CollectDenotations)
//
// # Basic Usage
//
//	col := member.New(provider, oracle)
//
//	// suggestion candidates
//	entities := col.CollectSymbols(typ, member.Policy{})
//
//	// completion items
//	dens := col.CollectDenotations(typ, member.Policy{Applied: true})
//
//	// incremental re-validation of one known occurrence
//	ok := col.IsValidMember(den, false, siteClass, true)
//
// # Filter Policy
//
// Policy is an immutable configuration value; its zero value is the
// default policy (term members, private/synthetic/constructor entities
// excluded, no accessibility check):
//
//	pol := member.Policy{
//	    WantTypes:      false,
//	    Applied:        true,  // completion position followed by (...)
//	    IncludePrivate: false,
//	    CheckAccess:    true,
//	    CallSite:       siteClass,
//	}
//
// With Applied set, a non-module class declaration qualifies as a term
// candidate even though it is not a stored term member: immediately
// followed by an argument list it denotes an implicit constructor proxy.
//
// # Collaborators
//
// The collector never touches raw inheritance edges or global state. All
// semantic-model access goes through two narrow interfaces supplied at
// construction:
//
//	Provider: widening, base-class sequences, declaration lists,
//	          overload alternatives
//	Oracle:   accessibility of an entity from a call-site class
//
// Both collection modes are pure, synchronous, re-entrant reads: the
// package holds no mutable state of its own and may be called
// concurrently against the same snapshot.
//
// # Error Model
//
// There is no error type here. Every predicate is total: an entity whose
// flags cannot be determined is excluded rather than reported, a nil
// call-site disables accessibility filtering, and an empty base-class
// sequence yields an empty result. Failures inside the collaborators
// propagate unchanged.
package member
