package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultDataDirName, cfg.DataDir)
	assert.Equal(t, DefaultCompanyCode, cfg.CompanyCode)
	assert.Equal(t, DefaultDataDirName+"/photos", cfg.StorageRoot)
	assert.Equal(t, DefaultDataDirName+"/backups", cfg.BackupDir)
}

func TestConfigWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		DataDir:     "/data",
		StorageRoot: "/photos",
		CompanyCode: "Z999",
		BackupDir:   "/backups",
	}.WithDefaults()
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, "/photos", cfg.StorageRoot)
	assert.Equal(t, "Z999", cfg.CompanyCode)
	assert.Equal(t, "/backups", cfg.BackupDir)
}

func TestConfigWithDefaults_StorageFollowsDataDir(t *testing.T) {
	cfg := Config{DataDir: "/srv/estate"}.WithDefaults()
	assert.Equal(t, "/srv/estate/photos", cfg.StorageRoot)
	assert.Equal(t, "/srv/estate/backups", cfg.BackupDir)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{CompanyCode: "A001"}
	assert.NoError(t, valid.Validate())

	cases := map[string]string{
		"too short":     "A1",
		"too long":      "A0001",
		"empty":         "",
		"non-alnum":     "A_01",
		"with space":    "A 01",
	}
	for name, code := range cases {
		t.Run(name, func(t *testing.T) {
			err := Config{CompanyCode: code}.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "company_code", verr.Field)
		})
	}
}

func TestRecordTypeValid(t *testing.T) {
	for _, rt := range RecordTypes {
		assert.True(t, rt.Valid(), "record type %s", rt)
	}
	assert.False(t, RecordType("07").Valid())
	assert.False(t, RecordType("").Valid())
	assert.False(t, RecordType("province").Valid())
}

func TestSearchCriteriaIsEmpty(t *testing.T) {
	assert.True(t, SearchCriteria{}.IsEmpty())
	assert.False(t, SearchCriteria{PropertyType: "03001"}.IsEmpty())

	corner := false
	assert.False(t, SearchCriteria{IsCorner: &corner}.IsEmpty())
}
