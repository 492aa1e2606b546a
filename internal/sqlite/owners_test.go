package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/pkg/types"
)

func TestOwnerCreate_GeneratesFourCharCode(t *testing.T) {
	s := newTestStore(t)

	code, err := s.Owners().Create(types.Owner{Name: "Ali Hassan", Phone: "07801234567"})
	require.NoError(t, err)
	assert.Len(t, code, types.OwnerCodeLength)

	owner, err := s.Owners().Get(code)
	require.NoError(t, err)
	assert.Equal(t, code, owner.OwnerCode)
	assert.Equal(t, "Ali Hassan", owner.Name)
	assert.Equal(t, "07801234567", owner.Phone)
	assert.False(t, owner.CreatedAt.IsZero())
}

func TestOwnerCreate_RequiresName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Owners().Create(types.Owner{Phone: "07801234567"})
	require.Error(t, err)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestOwnerCreate_CodesAreUnique(t *testing.T) {
	s := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := s.Owners().Create(types.Owner{Name: "Owner"})
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate owner code %s", code)
		seen[code] = true
	}
}

func TestOwnerUpdate(t *testing.T) {
	s := newTestStore(t)

	code, err := s.Owners().Create(types.Owner{Name: "Before", Phone: "111"})
	require.NoError(t, err)

	err = s.Owners().Update(code, types.Owner{Name: "After", Phone: "222", Note: "updated"})
	require.NoError(t, err)

	owner, err := s.Owners().Get(code)
	require.NoError(t, err)
	assert.Equal(t, "After", owner.Name)
	assert.Equal(t, "222", owner.Phone)
	assert.Equal(t, "updated", owner.Note)
	assert.Equal(t, code, owner.OwnerCode)
}

func TestOwnerUpdate_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Owners().Update("ZZZZ", types.Owner{Name: "Ghost"})
	var nf *types.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "owner", nf.Entity)
}

func TestOwnerDelete(t *testing.T) {
	s := newTestStore(t)

	code, err := s.Owners().Create(types.Owner{Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, s.Owners().Delete(code))

	_, err = s.Owners().Get(code)
	var nf *types.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestOwnerDelete_BlockedWhileReferenced(t *testing.T) {
	s := newTestStore(t)

	ownerCode, err := s.Owners().Create(types.Owner{Name: "Referenced"})
	require.NoError(t, err)

	_, err = s.Properties().Create(types.Property{
		PropertyType: "03001",
		Area:         100,
		Address:      "somewhere",
		OwnerCode:    ownerCode,
	})
	require.NoError(t, err)

	err = s.Owners().Delete(ownerCode)
	var cerr *types.ConstraintError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "owner", cerr.Entity)
	assert.Equal(t, ownerCode, cerr.Code)

	// Still there.
	_, err = s.Owners().Get(ownerCode)
	assert.NoError(t, err)
}

func TestOwnerList_OrderedByName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		_, err := s.Owners().Create(types.Owner{Name: name})
		require.NoError(t, err)
	}

	owners, err := s.Owners().List()
	require.NoError(t, err)
	require.Len(t, owners, 3)
	assert.Equal(t, "Alpha", owners[0].Name)
	assert.Equal(t, "Bravo", owners[1].Name)
	assert.Equal(t, "Charlie", owners[2].Name)
}
