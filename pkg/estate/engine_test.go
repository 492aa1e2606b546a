package estate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/pkg/types"
)

func openTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := Open(types.Config{DataDir: t.TempDir(), CompanyCode: "A001"}, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })
	return eng
}

// TestEngine_OwnerPropertyLifecycle runs the canonical desk workflow end to
// end: register an owner, record a property against them, then tear both
// down in the only order the referential guard allows.
func TestEngine_OwnerPropertyLifecycle(t *testing.T) {
	eng := openTestEngine(t)

	ownerCode, err := eng.Owners.Create(types.Owner{Name: "Ali Hassan", Phone: "07801234567"})
	require.NoError(t, err)
	assert.Len(t, ownerCode, types.OwnerCodeLength)

	propCode, err := eng.Properties.Create(types.Property{
		PropertyType: "03001",
		Area:         145.75,
		Bedrooms:     3,
		ProvinceCode: "01001",
		Address:      "Hay Al-Jamia, street 14",
		OwnerCode:    ownerCode,
	})
	require.NoError(t, err)
	assert.Len(t, propCode, types.PropertyCodeLength)
	assert.True(t, strings.HasPrefix(propCode, "A001"))

	prop, err := eng.Properties.Get(propCode)
	require.NoError(t, err)
	assert.Equal(t, "Ali Hassan", prop.OwnerName)

	// Deleting the owner first is blocked while the property references it.
	err = eng.Owners.Delete(ownerCode)
	var cerr *types.ConstraintError
	require.ErrorAs(t, err, &cerr)

	// Property first, then the owner goes through.
	require.NoError(t, eng.Properties.Delete(propCode))
	require.NoError(t, eng.Owners.Delete(ownerCode))

	stats, err := eng.Statistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOwners)
	assert.Zero(t, stats.TotalProperties)
}

func TestEngine_MutationsLandInActivityLog(t *testing.T) {
	eng := openTestEngine(t)

	ownerCode, err := eng.Owners.Create(types.Owner{Name: "Tracked"})
	require.NoError(t, err)

	records, err := eng.Activity.ListRecent(0)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, types.ActionCreateOwner, records[0].ActionType)
	assert.Equal(t, ownerCode, records[0].EntityCode)
}

func TestEngine_SearchSeesStoreWrites(t *testing.T) {
	eng := openTestEngine(t)

	code, err := eng.Properties.Create(types.Property{
		PropertyType: "03001",
		Area:         200,
		Address:      "searchable place",
	})
	require.NoError(t, err)

	props, err := eng.Search.Search(types.SearchCriteria{FreeText: "searchable"})
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, code, props[0].PropertyCode)
}

func TestEngine_BackupRestoreThroughTheFacade(t *testing.T) {
	eng := openTestEngine(t)

	ownerCode, err := eng.Owners.Create(types.Owner{Name: "Snapshotted"})
	require.NoError(t, err)

	path, err := eng.Backups.CreateFullBackup()
	require.NoError(t, err)

	require.NoError(t, eng.Owners.Delete(ownerCode))
	require.NoError(t, eng.Backups.Restore(path))

	owner, err := eng.Owners.Get(ownerCode)
	require.NoError(t, err)
	assert.Equal(t, "Snapshotted", owner.Name)
}

func TestEngine_ExportProperties(t *testing.T) {
	eng := openTestEngine(t)

	_, err := eng.Properties.Create(types.Property{
		PropertyType: "03001",
		Area:         120,
		Address:      "exported address",
	})
	require.NoError(t, err)

	records, err := eng.Properties.List(types.PropertyFilter{})
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := eng.ExportProperties(dir, records, types.ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exported address")
}

func TestEngine_ConfigAppliesDefaults(t *testing.T) {
	dataDir := t.TempDir()
	eng, err := Open(types.Config{DataDir: dataDir}, Options{})
	require.NoError(t, err)
	defer eng.Close()

	cfg := eng.Config()
	assert.Equal(t, types.DefaultCompanyCode, cfg.CompanyCode)
	assert.Equal(t, filepath.Join(dataDir, "photos"), filepath.Clean(cfg.StorageRoot))
	assert.Equal(t, filepath.Join(dataDir, "backups"), filepath.Clean(cfg.BackupDir))
}
