package member

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhelan/semview-mcp/pkg/types"
)

func den(e *types.Entity, via *types.Class) types.Denotation {
	return types.Denotation{Entity: e, Via: via, Signature: e.Signatures[0]}
}

func TestIsValidMember(t *testing.T) {
	fx := newFixture()

	tests := []struct {
		name      string
		den       types.Denotation
		wantTypes bool
		want      bool
	}{
		{"plain term member", den(fx.x, fx.t), false, true},
		{"overloaded term member", den(fx.f, fx.a), false, true},
		{"type member under term query", den(fx.ty, fx.b), false, false},
		{"type member under type query", den(fx.ty, fx.b), true, true},
		{"term member under type query", den(fx.x, fx.t), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fx.collector.IsValidMember(tt.den, tt.wantTypes, nil, false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidMember_AlwaysExcludesSyntheticAndPrivate(t *testing.T) {
	fx := newFixture()

	synth := &types.Entity{Name: "hash$impl", Kind: types.KindTerm, Owner: fx.t, IsSynthetic: true, Signatures: []string{"hash$impl: Int"}}

	// the equivalent Policy would admit both with the include flags set;
	// the standalone check never does
	assert.False(t, fx.collector.IsValidMember(den(fx.y, fx.b), false, nil, false))
	assert.False(t, fx.collector.IsValidMember(den(synth, fx.t), false, nil, false))

	assert.True(t, Included(fx.y, Policy{IncludePrivate: true}, allowAll))
	assert.True(t, Included(synth, Policy{IncludeSynthetic: true}, allowAll))
}

func TestIsValidMember_ExcludesConstructors(t *testing.T) {
	fx := newFixture()

	ctor := &types.Entity{Name: "<init>", Kind: types.KindTerm, Owner: fx.t, IsConstructor: true, Signatures: []string{"<init>(): T"}}

	assert.False(t, fx.collector.IsValidMember(den(ctor, fx.t), false, nil, false))
}

func TestIsValidMember_RemovedEntity(t *testing.T) {
	fx := newFixture()

	d := den(fx.x, fx.t)
	assert.True(t, fx.collector.IsValidMember(d, false, nil, false))

	// a recompilation pass invalidates the declaration
	fx.x.Removed = true
	assert.False(t, fx.collector.IsValidMember(d, false, nil, false))

	assert.False(t, fx.collector.IsValidMember(types.Denotation{}, false, nil, false))
}

func TestIsValidMember_AppliedRuleNeverFires(t *testing.T) {
	fx := newFixture()

	inner := &types.Entity{Name: "Inner", Kind: types.KindClass, Owner: fx.t, Signatures: []string{"class Inner"}}

	// class declarations qualify as applied-position constructor proxies
	// for the collectors, never for the standalone check
	assert.True(t, Included(inner, Policy{Applied: true}, allowAll))
	assert.False(t, fx.collector.IsValidMember(den(inner, fx.t), false, nil, false))
}

func TestIsValidMember_Accessibility(t *testing.T) {
	fx := newFixture()
	site := &types.Class{Name: "Elsewhere"}

	denying := New(testModel{}, oracleFunc(func(e *types.Entity, s *types.Class) bool {
		return e != fx.x
	}))

	assert.False(t, denying.IsValidMember(den(fx.x, fx.t), false, site, true))
	assert.True(t, denying.IsValidMember(den(fx.f, fx.a), false, site, true))

	// check disabled or no site: oracle not consulted
	assert.True(t, denying.IsValidMember(den(fx.x, fx.t), false, site, false))
	assert.True(t, denying.IsValidMember(den(fx.x, fx.t), false, nil, true))
}
