package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/pkg/types"
)

func TestStatistics_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Statistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOwners)
	assert.Zero(t, stats.TotalProperties)
	assert.Zero(t, stats.TotalPhotos)
	assert.Empty(t, stats.PropertiesByType)
}

func TestStatistics_GroupsWithResolvedNames(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Owners().Create(types.Owner{Name: "Counted"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := s.Properties().Create(types.Property{
			PropertyType: "03001",
			Area:         100,
			ProvinceCode: "01001",
			Address:      "grouped address",
		})
		require.NoError(t, err)
	}
	_, err = s.Properties().Create(types.Property{
		PropertyType: "03002",
		Area:         100,
		Address:      "other address",
	})
	require.NoError(t, err)

	stats, err := s.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOwners)
	assert.Equal(t, 3, stats.TotalProperties)

	require.Len(t, stats.PropertiesByType, 2)
	// Ordered by count descending.
	assert.Equal(t, "03001", stats.PropertiesByType[0].Code)
	assert.Equal(t, 2, stats.PropertiesByType[0].Count)
	assert.NotEmpty(t, stats.PropertiesByType[0].Name)

	// Properties without a province do not contribute an empty bucket.
	require.Len(t, stats.PropertiesByProvince, 1)
	assert.Equal(t, "01001", stats.PropertiesByProvince[0].Code)
}

func TestStatistics_CountsPhotos(t *testing.T) {
	s := newTestStore(t)
	code := createTestProperty(t, s)

	_, err := s.Photos().Add(code, writeTempPhoto(t), "")
	require.NoError(t, err)

	stats, err := s.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPhotos)
}
