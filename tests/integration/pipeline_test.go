package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mwhelan/semview-mcp/internal/loader"
	"github.com/mwhelan/semview-mcp/internal/member"
	"github.com/mwhelan/semview-mcp/internal/model"
	"github.com/mwhelan/semview-mcp/internal/storage"
	"github.com/mwhelan/semview-mcp/pkg/types"
)

const fixtureModel = "collections@4f2a91c"

// PipelineTestSuite exercises the full import path: snapshot files through
// the loader into SQLite and back out as a queryable model.
type PipelineTestSuite struct {
	suite.Suite
	store       storage.Store
	loader      *loader.Loader
	fixturesDir string
	ctx         context.Context
}

// SetupSuite runs once before all tests
func (s *PipelineTestSuite) SetupSuite() {
	s.ctx = context.Background()

	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.fixturesDir = filepath.Join(filepath.Dir(wd), "testdata", "fixtures")

	_, err = os.Stat(s.fixturesDir)
	s.Require().NoError(err, "fixtures directory should exist")
}

// SetupTest runs before each test
func (s *PipelineTestSuite) SetupTest() {
	store, err := storage.NewSQLiteStore(filepath.Join(s.T().TempDir(), "semview.db"))
	s.Require().NoError(err)
	s.store = store
	s.loader = loader.New(s.store)
}

// TearDownTest runs after each test
func (s *PipelineTestSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *PipelineTestSuite) fixture(name string) string {
	return filepath.Join(s.fixturesDir, name)
}

func (s *PipelineTestSuite) importFixture() *model.Model {
	stats, err := s.loader.LoadAll(s.ctx, []string{s.fixture("collections.json")}, &loader.Config{Workers: 2})
	s.Require().NoError(err)
	s.Require().Equal(1, stats.SnapshotsLoaded)
	s.Require().Equal(0, stats.SnapshotsFailed)

	m, err := s.store.LoadModel(s.ctx, fixtureModel)
	s.Require().NoError(err)
	return m
}

// TestImportSnapshot tests loading a snapshot file into storage
func (s *PipelineTestSuite) TestImportSnapshot() {
	stats, err := s.loader.LoadAll(s.ctx, []string{s.fixture("collections.json")}, &loader.Config{Workers: 2})
	s.Require().NoError(err)

	s.Equal(1, stats.SnapshotsLoaded)
	s.Equal(6, stats.ClassesLoaded)
	s.Equal(16, stats.EntitiesLoaded)
	s.False(stats.Duration <= 0)

	snap, err := s.store.GetSnapshot(s.ctx, fixtureModel)
	s.Require().NoError(err)
	s.Equal(fixtureModel, snap.Name)
	s.Equal("kestrelc 1.4.0", snap.Compiler)
	s.NotEmpty(snap.UID)

	snaps, err := s.store.ListSnapshots(s.ctx)
	s.Require().NoError(err)
	s.Len(snaps, 1)
}

// TestReimportRequiresReplace tests duplicate snapshot handling
func (s *PipelineTestSuite) TestReimportRequiresReplace() {
	paths := []string{s.fixture("collections.json")}

	stats, err := s.loader.LoadAll(s.ctx, paths, &loader.Config{})
	s.Require().NoError(err)
	s.Equal(1, stats.SnapshotsLoaded)

	// Second import without replace fails per file, not fatally
	stats, err = s.loader.LoadAll(s.ctx, paths, &loader.Config{})
	s.Require().NoError(err)
	s.Equal(0, stats.SnapshotsLoaded)
	s.Equal(1, stats.SnapshotsFailed)
	s.NotEmpty(stats.ErrorMessages)

	stats, err = s.loader.LoadAll(s.ctx, paths, &loader.Config{Replace: true})
	s.Require().NoError(err)
	s.Equal(1, stats.SnapshotsLoaded)

	snaps, err := s.store.ListSnapshots(s.ctx)
	s.Require().NoError(err)
	s.Len(snaps, 1, "replace must not accumulate snapshots")
}

// TestRoundTripPreservesHierarchy tests that a reloaded model keeps
// linearization order and declaration identity
func (s *PipelineTestSuite) TestRoundTripPreservesHierarchy() {
	m := s.importFixture()

	buf, ok := m.Class("ArrayBuffer")
	s.Require().True(ok)
	s.Require().Len(buf.Linearization, 4)
	s.Same(buf, buf.Linearization[0], "linearization head is the class itself")

	names := make([]string, 0, 4)
	for _, base := range buf.Linearization {
		names = append(names, base.Name)
	}
	s.Equal([]string{"ArrayBuffer", "Growable", "Iterable", "Any"}, names)

	for _, decl := range buf.Decls {
		s.Same(buf, decl.Owner, "decl owner must point back at the class")
	}

	mod, ok := m.Class("ArrayBuffer$")
	s.Require().True(ok)
	s.True(mod.IsModule)
}

// TestCollectSymbols tests identity-set collection over the stored model
func (s *PipelineTestSuite) TestCollectSymbols() {
	m := s.importFixture()
	col := member.New(m, m)

	typ, err := m.ResolveType("ArrayBuffer")
	s.Require().NoError(err)

	names := func(es []*types.Entity) []string {
		out := make([]string, 0, len(es))
		for _, e := range es {
			out = append(out, e.Name)
		}
		return out
	}

	// Default policy: public terms from the whole linearization. The two
	// add declarations are distinct entities, so both survive the dedup.
	got := names(col.CollectSymbols(typ, member.Policy{}))
	s.Equal([]string{"apply", "add", "add", "iterator", "toString", "hashCode"}, got)

	got = names(col.CollectSymbols(typ, member.Policy{IncludePrivate: true}))
	s.Contains(got, "ensureCapacity")
	s.Contains(got, "clone")
	s.Len(got, 8)

	got = names(col.CollectSymbols(typ, member.Policy{WantTypes: true}))
	s.Equal([]string{"Elem", "Elem"}, got, "shadowing is not the collector's concern")

	got = names(col.CollectSymbols(typ, member.Policy{Applied: true}))
	s.Contains(got, "View")
	s.Len(got, 7)

	got = names(col.CollectSymbols(typ, member.Policy{IncludeConstructors: true}))
	s.Contains(got, "<init>")

	got = names(col.CollectSymbols(typ, member.Policy{IncludeSynthetic: true}))
	s.Contains(got, "$outer")
}

// TestCollectDenotations tests occurrence-sequence collection
func (s *PipelineTestSuite) TestCollectDenotations() {
	m := s.importFixture()
	col := member.New(m, m)

	typ, err := m.ResolveType("ArrayBuffer")
	s.Require().NoError(err)

	dens := col.CollectDenotations(typ, member.Policy{})
	s.Len(dens, 7, "overloads expand to one denotation each")

	s.Equal("apply", dens[0].Entity.Name)
	s.Equal("add(x: Elem): Unit", dens[1].Signature)
	s.Equal("add(xs: Iterable): Unit", dens[2].Signature)
	s.Equal("ArrayBuffer", dens[1].Via.Name)
	s.Equal("Growable", dens[3].Via.Name, "inherited add keeps its base as via")

	symbols := col.CollectSymbols(typ, member.Policy{})
	s.GreaterOrEqual(len(dens), len(symbols))
}

// TestModuleMembers tests collection on a module class
func (s *PipelineTestSuite) TestModuleMembers() {
	m := s.importFixture()
	col := member.New(m, m)

	typ, err := m.ResolveType("ArrayBuffer$")
	s.Require().NoError(err)

	entities := col.CollectSymbols(typ, member.Policy{})
	s.Len(entities, 4, "empty, from, plus the Any terms")

	// Applied never offers a module class as a constructor proxy
	entities = col.CollectSymbols(typ, member.Policy{Applied: true})
	s.Len(entities, 4)
}

// TestAccessibilityFiltering tests the oracle hookup end to end
func (s *PipelineTestSuite) TestAccessibilityFiltering() {
	m := s.importFixture()
	col := member.New(m, m)

	typ, err := m.ResolveType("ArrayBuffer")
	s.Require().NoError(err)
	client, ok := m.Class("Client")
	s.Require().True(ok)

	pol := member.Policy{
		IncludePrivate: true,
		CheckAccess:    true,
		CallSite:       client,
	}
	entities := col.CollectSymbols(typ, pol)

	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	// Any is in Client's linearization so clone stays visible,
	// Growable is not so ensureCapacity does not.
	s.Contains(names, "clone")
	s.NotContains(names, "ensureCapacity")

	// A nil call site disables the check entirely
	pol.CallSite = nil
	entities = col.CollectSymbols(typ, pol)
	s.Len(entities, 8)
}

// TestValidateMembers tests the standalone validity check over stored data
func (s *PipelineTestSuite) TestValidateMembers() {
	m := s.importFixture()
	col := member.New(m, m)

	typ, err := m.ResolveType("ArrayBuffer")
	s.Require().NoError(err)

	valid := func(name string, wantTypes bool) bool {
		for _, d := range m.FindDenotations(typ, name) {
			if col.IsValidMember(d, wantTypes, nil, false) {
				return true
			}
		}
		return false
	}

	s.True(valid("add", false))
	s.True(valid("toString", false))
	s.True(valid("Elem", true))
	s.False(valid("Elem", false), "a type member is not a term")
	s.False(valid("ensureCapacity", false), "private is never valid here")
	s.False(valid("$outer", false))
	s.False(valid("<init>", false))
	s.False(valid("View", false), "class decls need an applied position, which validity never grants")
	s.False(valid("missing", false))
}

// TestDeleteSnapshot tests removal and the resulting lookup failure
func (s *PipelineTestSuite) TestDeleteSnapshot() {
	s.importFixture()

	s.Require().NoError(s.store.DeleteSnapshot(s.ctx, fixtureModel))

	_, err := s.store.LoadModel(s.ctx, fixtureModel)
	s.True(errors.Is(err, storage.ErrNotFound))

	err = s.store.DeleteSnapshot(s.ctx, fixtureModel)
	s.True(errors.Is(err, storage.ErrNotFound))
}

// TestPipelineTestSuite runs the test suite
func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
