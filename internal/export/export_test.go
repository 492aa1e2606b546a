package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/pkg/types"
)

func sampleProperties() []types.Property {
	return []types.Property{
		{
			PropertyCode: "A0011XYZ",
			CompanyCode:  "A001",
			PropertyType: "03001",
			Area:         145.75,
			Bedrooms:     3,
			Bathrooms:    2,
			IsCorner:     true,
			ProvinceCode: "01001",
			Address:      "Hay Al-Jamia, street 14",
			OwnerCode:    "AB12",
			OwnerName:    "Ali Hassan",
		},
		{
			PropertyCode: "A0012ABC",
			CompanyCode:  "A001",
			PropertyType: "03002",
			Area:         90,
			Address:      "City center, with \"quotes\" and, commas",
		},
	}
}

func TestProperties_CSV(t *testing.T) {
	dir := t.TempDir()

	path, err := Properties(dir, sampleProperties(), types.ExportFormatCSV)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])

	first := rows[1]
	assert.Equal(t, "A0011XYZ", first[0])
	assert.Equal(t, "145.75", first[5])
	assert.Equal(t, "true", first[11])
	assert.Equal(t, "Ali Hassan", first[17])

	// Quoting survives the round trip.
	assert.Equal(t, `City center, with "quotes" and, commas`, rows[2][15])
}

func TestProperties_JSON(t *testing.T) {
	dir := t.TempDir()

	path, err := Properties(dir, sampleProperties(), types.ExportFormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []types.Property
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "A0011XYZ", decoded[0].PropertyCode)
	assert.Equal(t, 145.75, decoded[0].Area)
}

func TestProperties_EmptyJSONIsAnArray(t *testing.T) {
	dir := t.TempDir()

	path, err := Properties(dir, nil, types.ExportFormatJSON)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestProperties_EmptyCSVKeepsHeader(t *testing.T) {
	dir := t.TempDir()

	path, err := Properties(dir, nil, types.ExportFormatCSV)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}

func TestProperties_UnknownFormat(t *testing.T) {
	_, err := Properties(t.TempDir(), sampleProperties(), "xml")
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "format", verr.Field)
}

func TestProperties_CreatesMissingDir(t *testing.T) {
	dir := t.TempDir() + "/nested/exports"

	path, err := Properties(dir, sampleProperties(), types.ExportFormatCSV)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
