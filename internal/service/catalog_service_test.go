package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/service"
)

func TestBuildCatalogIndex(t *testing.T) {
	idx := testCatalog()

	assert.Equal(t, 7, idx.TotalLandmarks)
	assert.Len(t, idx.CountriesByID, 4)
	assert.Equal(t, 3, idx.CountryTotal(2))
	assert.Equal(t, 0, idx.CountryTotal(999))
}

func TestBuildCatalogIndex_SkipsInvalidContinent(t *testing.T) {
	countries := []model.Country{
		{ID: 1, Code: "FR", Name: "France", Continent: model.ContinentEurope},
		{ID: 2, Code: "XX", Name: "Atlantis", Continent: "atlantis"},
	}
	landmarks := []model.Landmark{
		{ID: 1, Name: "Eiffel Tower", CountryID: 1, Category: model.CategoryOfficial, PointValue: 10},
		{ID: 2, Name: "Sunken Palace", CountryID: 2, Category: model.CategoryPremium, PointValue: 25},
	}

	idx := service.BuildCatalogIndex(countries, landmarks)

	// 非法大洲的国家连同其地标整体不进索引
	assert.Len(t, idx.CountriesByID, 1)
	assert.Equal(t, 1, idx.TotalLandmarks)
}

func TestBuildCatalogIndex_SkipsOrphanLandmarks(t *testing.T) {
	countries := testCountries()
	landmarks := append(testLandmarks(),
		model.Landmark{ID: 99, Name: "Nowhere Arch", CountryID: 42, Category: model.CategoryOfficial, PointValue: 10})

	idx := service.BuildCatalogIndex(countries, landmarks)
	assert.Equal(t, 7, idx.TotalLandmarks)
	_, ok := idx.LandmarksByID[99]
	assert.False(t, ok)
}

func TestBuildCatalogIndex_ExcludesCountriesWithoutLandmarks(t *testing.T) {
	countries := append(testCountries(),
		model.Country{ID: 5, Code: "MC", Name: "Monaco", Continent: model.ContinentEurope})

	idx := service.BuildCatalogIndex(countries, testLandmarks())

	for _, c := range idx.CountriesByContinent[model.ContinentEurope] {
		assert.NotEqual(t, uint(5), c.ID, "没有地标的国家不应参与进度分母")
	}
}

func TestBuildCatalogIndex_StableContinentOrder(t *testing.T) {
	first := testCatalog()
	for i := 0; i < 5; i++ {
		again := testCatalog()
		assert.Equal(t, first.CountriesByContinent, again.CountriesByContinent)
	}
}

func TestParseContinent(t *testing.T) {
	c, ok := model.ParseContinent("  Europe ")
	require.True(t, ok)
	assert.Equal(t, model.ContinentEurope, c)

	_, ok = model.ParseContinent("pangaea")
	assert.False(t, ok)
}
