package types

// Denotation represents one concrete signature binding of a declared
// entity as seen through a specific base class of the queried type.
// An overloaded entity yields one denotation per signature alternative.
type Denotation struct {
	Entity *Entity

	// Via is the base class through which the member was reached during
	// hierarchy traversal
	Via *Class

	// Signature is the rendered signature of this alternative
	Signature string
}

// Validate checks if the denotation is well formed
func (d *Denotation) Validate() error {
	if d.Entity == nil {
		return ErrMissingEntity
	}

	if d.Via == nil {
		return ErrMissingViaClass
	}

	if d.Signature == "" {
		return ErrMissingSignature
	}

	return nil
}
