package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/pkg/types"
)

func seedSearchFixtures(t *testing.T, s *Store) (house, flat, land string) {
	t.Helper()

	ownerCode, err := s.Owners().Create(types.Owner{Name: "Sara Mahmoud"})
	require.NoError(t, err)

	house, err = s.Properties().Create(types.Property{
		PropertyType: "03001",
		Area:         250,
		Bedrooms:     4,
		Bathrooms:    2,
		YearBuilt:    2015,
		IsCorner:     true,
		ProvinceCode: "01001",
		OfferType:    "06001",
		Address:      "Hay Al-Jamia, street 14",
		OwnerCode:    ownerCode,
		Description:  "spacious family house",
	})
	require.NoError(t, err)

	flat, err = s.Properties().Create(types.Property{
		PropertyType: "03002",
		Area:         90,
		Bedrooms:     2,
		Bathrooms:    1,
		YearBuilt:    2020,
		ProvinceCode: "01002",
		OfferType:    "06002",
		Address:      "City center tower, floor 5",
	})
	require.NoError(t, err)

	land, err = s.Properties().Create(types.Property{
		PropertyType: "03003",
		Area:         600,
		ProvinceCode: "01001",
		OfferType:    "06001",
		Address:      "industrial district, plot 9",
	})
	require.NoError(t, err)

	return house, flat, land
}

func searchCodes(t *testing.T, s *Store, c types.SearchCriteria) []string {
	t.Helper()
	props, err := s.Search().Search(c)
	require.NoError(t, err)
	codes := make([]string, 0, len(props))
	for _, p := range props {
		codes = append(codes, p.PropertyCode)
	}
	return codes
}

func TestSearch_EmptyCriteriaReturnsEverything(t *testing.T) {
	s := newTestStore(t)
	seedSearchFixtures(t, s)

	assert.True(t, types.SearchCriteria{}.IsEmpty())
	codes := searchCodes(t, s, types.SearchCriteria{})
	assert.Len(t, codes, 3)
}

func TestSearch_ExactMatchFilters(t *testing.T) {
	s := newTestStore(t)
	house, _, land := seedSearchFixtures(t, s)

	codes := searchCodes(t, s, types.SearchCriteria{ProvinceCode: "01001"})
	assert.ElementsMatch(t, []string{house, land}, codes)

	codes = searchCodes(t, s, types.SearchCriteria{PropertyType: "03002"})
	assert.Len(t, codes, 1)
}

func TestSearch_EachCriterionNarrows(t *testing.T) {
	s := newTestStore(t)
	house, _, _ := seedSearchFixtures(t, s)

	c := types.SearchCriteria{ProvinceCode: "01001"}
	first := searchCodes(t, s, c)

	minBeds := 3
	c.MinBedrooms = &minBeds
	second := searchCodes(t, s, c)
	assert.LessOrEqual(t, len(second), len(first))
	assert.Equal(t, []string{house}, second)
}

func TestSearch_AreaRange(t *testing.T) {
	s := newTestStore(t)
	house, _, _ := seedSearchFixtures(t, s)

	min, max := 100.0, 300.0
	codes := searchCodes(t, s, types.SearchCriteria{MinArea: &min, MaxArea: &max})
	assert.Equal(t, []string{house}, codes)

	// One-sided range leaves the other bound open.
	codes = searchCodes(t, s, types.SearchCriteria{MinArea: &min})
	assert.Len(t, codes, 2)
}

func TestSearch_YearRange(t *testing.T) {
	s := newTestStore(t)
	_, flat, _ := seedSearchFixtures(t, s)

	from := 2018
	codes := searchCodes(t, s, types.SearchCriteria{YearFrom: &from})
	assert.Equal(t, []string{flat}, codes)
}

func TestSearch_CornerFlag(t *testing.T) {
	s := newTestStore(t)
	house, _, _ := seedSearchFixtures(t, s)

	corner := true
	codes := searchCodes(t, s, types.SearchCriteria{IsCorner: &corner})
	assert.Equal(t, []string{house}, codes)

	corner = false
	codes = searchCodes(t, s, types.SearchCriteria{IsCorner: &corner})
	assert.Len(t, codes, 2)
}

func TestSearch_OwnerNameSubstring(t *testing.T) {
	s := newTestStore(t)
	house, _, _ := seedSearchFixtures(t, s)

	codes := searchCodes(t, s, types.SearchCriteria{OwnerName: "Mahmoud"})
	assert.Equal(t, []string{house}, codes)

	codes = searchCodes(t, s, types.SearchCriteria{OwnerName: "nobody"})
	assert.Empty(t, codes)
}

func TestSearch_FreeText(t *testing.T) {
	s := newTestStore(t)
	house, flat, _ := seedSearchFixtures(t, s)

	// Matches address.
	codes := searchCodes(t, s, types.SearchCriteria{FreeText: "tower"})
	assert.Equal(t, []string{flat}, codes)

	// Matches description.
	codes = searchCodes(t, s, types.SearchCriteria{FreeText: "family house"})
	assert.Equal(t, []string{house}, codes)

	// Matches owner name.
	codes = searchCodes(t, s, types.SearchCriteria{FreeText: "Sara"})
	assert.Equal(t, []string{house}, codes)

	// Matches property code.
	codes = searchCodes(t, s, types.SearchCriteria{FreeText: house})
	assert.Equal(t, []string{house}, codes)
}

func TestSearch_ResultsOrderedByCode(t *testing.T) {
	s := newTestStore(t)
	seedSearchFixtures(t, s)

	props, err := s.Search().Search(types.SearchCriteria{})
	require.NoError(t, err)
	for i := 1; i < len(props); i++ {
		assert.Less(t, props[i-1].PropertyCode, props[i].PropertyCode)
	}
}
