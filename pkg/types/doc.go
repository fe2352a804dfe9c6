// Package types provides shared type definitions for the SemView MCP server.
//
// This package defines the domain types used across multiple components of
// SemView: declared entities, classes, resolved types, and member
// denotations. All of them are read-only views over a compiler-exported
// semantic model snapshot; SemView never creates or mutates declarations
// of its own.
//
// # Core Types
//
// Entity represents a named member declaration owned by exactly one
// enclosing class:
//
//	entity := &types.Entity{
//	    Name:       "size",
//	    Kind:       types.KindTerm,
//	    Signatures: []string{"size: Int"},
//	}
//
// Entity identity is pointer identity: two entities are the same member
// iff they are the same *Entity, never merely the same name and signature.
//
// Class represents a class or interface declaration together with its
// directly declared entities (in declaration order) and its already
// linearized ancestor sequence:
//
//	cls := &types.Class{
//	    Name:  "Buffer",
//	    Decls: []*types.Entity{...},
//	}
//
// # Resolved Types
//
// Type is the opaque handle a compiler frontend hands over for a resolved
// type. SemView ships two concrete shapes:
//
//	types.ClassType{Class: cls}     // plain nominal type
//	types.SingletonType{Of: cls}    // precise singleton, widens to Of
//
// Widening a Type to its nominal upper-bound class is the model's job,
// not this package's.
//
// # Denotations
//
// Denotation is one concrete signature binding of an entity as seen
// through a particular base class. Overloaded entities produce one
// Denotation per signature alternative:
//
//	den := types.Denotation{
//	    Entity:    entity,
//	    Via:       baseClass,
//	    Signature: "apply(x: Int): Buffer",
//	}
//
// Denotations are transient: produced on demand during a member query and
// never retained.
//
// # Validation
//
// Entity and Class implement Validate methods used by the snapshot loader
// to reject malformed compiler exports:
//
//	if err := entity.Validate(); err != nil {
//	    return err
//	}
package types
