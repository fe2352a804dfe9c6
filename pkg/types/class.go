package types

// Class represents a class or interface declaration in the semantic model.
type Class struct {
	Name string

	// IsModule marks a module / companion-object singleton declaration
	IsModule bool

	// Decls are the entities declared directly in this class, in
	// declaration order. Inherited members are not repeated here.
	Decls []*Entity

	// Linearization is the already-linearized, duplicate-free base-class
	// sequence for this class, most-derived first and including the class
	// itself. It is supplied by the exporting compiler and never
	// recomputed or re-sorted here.
	Linearization []*Class
}

// Validate checks structural invariants of a class declaration
func (c *Class) Validate() error {
	if c.Name == "" {
		return ErrMissingClassName
	}

	seen := make(map[*Class]struct{}, len(c.Linearization))
	for _, base := range c.Linearization {
		if base == nil {
			return ErrBrokenLinearization
		}
		if _, dup := seen[base]; dup {
			return ErrBrokenLinearization
		}
		seen[base] = struct{}{}
	}

	return nil
}

// Type is a resolved type as handed over by a compiler frontend.
// Implementations are value shapes; widening a Type to its nominal
// upper-bound class is the semantic model's responsibility.
type Type interface {
	String() string
}

// ClassType is a plain nominal class type
type ClassType struct {
	Class *Class
}

func (t ClassType) String() string {
	if t.Class == nil {
		return "<notype>"
	}
	return t.Class.Name
}

// SingletonType is a precise singleton type (e.g. a module's type or an
// `x.type`). It widens to the nominal type of Of.
type SingletonType struct {
	Of *Class
}

func (t SingletonType) String() string {
	if t.Of == nil {
		return "<notype>"
	}
	return t.Of.Name + ".type"
}
