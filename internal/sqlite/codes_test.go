package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/pkg/types"
)

func TestRandomCode(t *testing.T) {
	for _, n := range []int{4, 8} {
		code := randomCode(n)
		assert.Len(t, code, n)
		for _, r := range code {
			isUpper := r >= 'A' && r <= 'Z'
			isDigit := r >= '0' && r <= '9'
			assert.True(t, isUpper || isDigit, "unexpected rune %q in %s", r, code)
		}
	}
}

func TestRandomCode_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[randomCode(types.OwnerCodeLength)] = true
	}
	// Collisions in 100 draws from a 36^4 space would be suspicious.
	assert.Greater(t, len(seen), 90)
}

func TestGenerateOwnerCodeLocked_AvoidsExisting(t *testing.T) {
	s := newTestStore(t)

	code, err := s.Owners().Create(types.Owner{Name: "Taken"})
	require.NoError(t, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < 20; i++ {
		next, err := s.generateOwnerCodeLocked()
		require.NoError(t, err)
		assert.NotEqual(t, code, next)
	}
}

func TestIsUniqueViolation_RecognizesDriverError(t *testing.T) {
	s := newTestStore(t)

	code, err := s.Owners().Create(types.Owner{Name: "First"})
	require.NoError(t, err)

	// Re-insert the same code directly, the collision the generator
	// normally prevents.
	_, err = s.db.Exec(
		`INSERT INTO owners (owner_code, name, phone, note, created_at, updated_at)
         VALUES (?, 'Second', '', '', ?, ?)`,
		code, nowString(), nowString(),
	)
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	// Unrelated failures are not classified as collisions.
	_, err = s.db.Exec("INSERT INTO no_such_table (x) VALUES (1)")
	require.Error(t, err)
	assert.False(t, isUniqueViolation(err))
	assert.False(t, isUniqueViolation(nil))
}

func TestGeneratePropertyCodeLocked_CarriesPrefix(t *testing.T) {
	s := newTestStore(t)

	s.mu.Lock()
	defer s.mu.Unlock()
	code, err := s.generatePropertyCodeLocked("Z999")
	require.NoError(t, err)
	assert.Len(t, code, types.PropertyCodeLength)
	assert.Equal(t, "Z999", code[:types.CompanyCodeLength])
}
