package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// newTestStore opens a store over a fresh temp directory with silent
// collaborators.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.Config{
		DataDir:     t.TempDir(),
		CompanyCode: "A001",
	}
	s, err := Open(cfg, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesSchemaAndSeedsReferenceData(t *testing.T) {
	s := newTestStore(t)

	for _, rt := range types.RecordTypes {
		codes, err := s.Reference().ListByType(rt)
		require.NoError(t, err)
		assert.NotEmpty(t, codes, "record type %s should be seeded", rt)
	}

	// Spot check a known seed row.
	name, err := s.Reference().Resolve(types.RecordTypeProvince, "01001")
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestOpen_ReopenPreservesData(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{DataDir: dir, CompanyCode: "A001"}

	s, err := Open(cfg, Options{})
	require.NoError(t, err)
	code, err := s.Owners().Create(types.Owner{Name: "Reopen Test"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(cfg, Options{})
	require.NoError(t, err)
	defer s2.Close()

	owner, err := s2.Owners().Get(code)
	require.NoError(t, err)
	assert.Equal(t, "Reopen Test", owner.Name)

	// Seeding is idempotent across reopens.
	provinces, err := s2.Reference().ListByType(types.RecordTypeProvince)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, p := range provinces {
		assert.False(t, seen[p.Code], "duplicate seed row %s", p.Code)
		seen[p.Code] = true
	}
}

func TestOpen_RejectsInvalidCompanyCode(t *testing.T) {
	_, err := Open(types.Config{DataDir: t.TempDir(), CompanyCode: "toolong"}, Options{})
	require.Error(t, err)

	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)
}
