package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mwhelan/semview-mcp/pkg/types"
)

// Snapshot decode errors
var (
	ErrEmptySnapshot  = errors.New("snapshot contains no classes")
	ErrMissingName    = errors.New("snapshot name is required")
	ErrDuplicateClass = errors.New("duplicate class name")
	ErrUnknownBase    = errors.New("linearization references unknown class")
)

// Snapshot is the wire form of a compiler semantic-model export
type Snapshot struct {
	Name     string          `json:"name"`
	Compiler string          `json:"compiler,omitempty"`
	Classes  []SnapshotClass `json:"classes"`
}

// SnapshotClass is one class declaration in a snapshot
type SnapshotClass struct {
	Name   string `json:"name"`
	Module bool   `json:"module,omitempty"`

	// Linearization is the pre-linearized base-class name sequence,
	// most-derived first. When omitted it defaults to the class alone.
	Linearization []string `json:"linearization,omitempty"`

	Decls []SnapshotDecl `json:"decls,omitempty"`
}

// SnapshotDecl is one directly-declared entity in a snapshot class
type SnapshotDecl struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Private     bool     `json:"private,omitempty"`
	Synthetic   bool     `json:"synthetic,omitempty"`
	Constructor bool     `json:"constructor,omitempty"`
	Module      bool     `json:"module,omitempty"`
	Signatures  []string `json:"signatures"`
}

// Decode parses and validates a snapshot export, producing an immutable
// semantic model
func Decode(data []byte) (*Model, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return Build(&snap)
}

// Build assembles a Model from an already-parsed snapshot
func Build(snap *Snapshot) (*Model, error) {
	if snap.Name == "" {
		return nil, ErrMissingName
	}
	if len(snap.Classes) == 0 {
		return nil, ErrEmptySnapshot
	}

	m := &Model{
		Name:     snap.Name,
		Compiler: snap.Compiler,
		classes:  make(map[string]*types.Class, len(snap.Classes)),
		order:    make([]*types.Class, 0, len(snap.Classes)),
	}

	// First pass: create all classes so linearizations can resolve
	// forward references.
	for _, sc := range snap.Classes {
		if sc.Name == "" {
			return nil, types.ErrMissingClassName
		}
		if _, dup := m.classes[sc.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, sc.Name)
		}
		cls := &types.Class{Name: sc.Name, IsModule: sc.Module}
		m.classes[sc.Name] = cls
		m.order = append(m.order, cls)
	}

	// Second pass: wire declarations and linearizations.
	for _, sc := range snap.Classes {
		cls := m.classes[sc.Name]

		for _, sd := range sc.Decls {
			entity := &types.Entity{
				Name:          sd.Name,
				Kind:          types.EntityKind(sd.Kind),
				Owner:         cls,
				IsPrivate:     sd.Private,
				IsSynthetic:   sd.Synthetic,
				IsConstructor: sd.Constructor,
				IsModule:      sd.Module,
				Signatures:    sd.Signatures,
			}
			if err := entity.Validate(); err != nil {
				return nil, fmt.Errorf("class %s, decl %q: %w", sc.Name, sd.Name, err)
			}
			cls.Decls = append(cls.Decls, entity)
		}

		if len(sc.Linearization) == 0 {
			cls.Linearization = []*types.Class{cls}
		} else {
			cls.Linearization = make([]*types.Class, 0, len(sc.Linearization))
			for _, baseName := range sc.Linearization {
				base, ok := m.classes[baseName]
				if !ok {
					return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownBase, sc.Name, baseName)
				}
				cls.Linearization = append(cls.Linearization, base)
			}
		}

		if err := cls.Validate(); err != nil {
			return nil, fmt.Errorf("class %s: %w", sc.Name, err)
		}
	}

	return m, nil
}

// Encode renders a Model back into its wire form. Used when persisting a
// decoded snapshot and by tests asserting round-trip stability.
func (m *Model) Encode() *Snapshot {
	snap := &Snapshot{
		Name:     m.Name,
		Compiler: m.Compiler,
		Classes:  make([]SnapshotClass, 0, len(m.order)),
	}

	for _, cls := range m.order {
		sc := SnapshotClass{
			Name:   cls.Name,
			Module: cls.IsModule,
		}
		for _, base := range cls.Linearization {
			sc.Linearization = append(sc.Linearization, base.Name)
		}
		for _, e := range cls.Decls {
			sc.Decls = append(sc.Decls, SnapshotDecl{
				Name:        e.Name,
				Kind:        string(e.Kind),
				Private:     e.IsPrivate,
				Synthetic:   e.IsSynthetic,
				Constructor: e.IsConstructor,
				Module:      e.IsModule,
				Signatures:  e.Signatures,
			})
		}
		snap.Classes = append(snap.Classes, sc)
	}

	return snap
}
