// Package model holds an in-memory semantic model decoded from a compiler
// snapshot export, and implements the collaborator interfaces the member
// collector depends on: type widening, base-class sequences, declaration
// lists, overload alternatives, and the accessibility oracle.
//
// A Model is immutable once decoded. SemView treats it as one analysis
// context: concurrent member queries against the same Model are safe, and
// a recompilation is represented by loading a fresh snapshot, never by
// mutating an existing one.
//
// # Decoding
//
//	m, err := model.Decode(snapshotJSON)
//	if err != nil {
//	    return fmt.Errorf("bad snapshot: %w", err)
//	}
//
//	col := member.New(m, m)
//	entities := col.CollectSymbols(typ, member.Policy{})
//
// Linearizations arrive pre-computed in the snapshot, most-derived first
// with the class itself in front; the model stores them verbatim and never
// re-linearizes.
//
// # Accessibility
//
// The oracle rule is deliberately simple: non-private entities are
// accessible from everywhere; a private entity is accessible only when the
// call site is the owning class or inherits from it (own-body access as
// exported by the compiler).
package model
