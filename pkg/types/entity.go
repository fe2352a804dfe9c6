package types

import "errors"

// EntityKind represents the kind of a declared entity
type EntityKind string

const (
	// KindTerm is a term-level value member (val, def, field)
	KindTerm EntityKind = "term"
	// KindType is a type-level declaration (type member, type alias)
	KindType EntityKind = "type"
	// KindClass is a class or interface declaration
	KindClass EntityKind = "class"
)

// Entity represents a named member declaration owned by one enclosing class.
//
// Identity is pointer identity: the deduplicating collector keys its result
// set on *Entity, so the same declaration reached through two base classes
// of a diamond hierarchy appears once.
type Entity struct {
	// Identification
	Name string
	Kind EntityKind

	// Owner is the class that directly declares this entity
	Owner *Class

	// Origin flags
	IsSynthetic   bool // compiler-generated, not written by the user
	IsPrivate     bool
	IsConstructor bool
	IsModule      bool // module / companion-object singleton

	// Signatures holds one rendered signature per overload alternative.
	// At least one for a well-formed entity.
	Signatures []string

	// Removed is set when a recompilation pass drops the declaration,
	// invalidating any denotations still held by a client.
	Removed bool
}

// Exists reports whether the entity is still a live declaration.
// Safe to call on a nil receiver.
func (e *Entity) Exists() bool {
	return e != nil && !e.Removed
}

// ValidateKind checks if the entity kind is valid
func (e *Entity) ValidateKind() error {
	switch e.Kind {
	case KindTerm, KindType, KindClass:
		return nil
	default:
		return ErrInvalidEntityKind
	}
}

// Validate performs comprehensive validation of the entity
func (e *Entity) Validate() error {
	if e.Name == "" {
		return ErrMissingEntityName
	}

	if err := e.ValidateKind(); err != nil {
		return err
	}

	if len(e.Signatures) == 0 {
		return ErrMissingSignature
	}

	// Only class declarations can be module singletons
	if e.IsModule && e.Kind != KindClass {
		return errors.New("only class declarations can carry the module flag")
	}

	// Constructors are term-level by construction
	if e.IsConstructor && e.Kind != KindTerm {
		return errors.New("constructors must be term-level entities")
	}

	return nil
}
