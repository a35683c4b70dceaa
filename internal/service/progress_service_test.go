package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/service"
)

func TestComputeProgress_NoVisits(t *testing.T) {
	snap := service.ComputeProgress(testCatalog(), nil)

	assert.Equal(t, 0, snap.Overall.Visited)
	assert.Equal(t, 7, snap.Overall.Total)
	assert.Equal(t, 0, snap.Overall.Percentage)
	assert.Equal(t, 0, snap.CountriesCompleted)
	assert.Equal(t, 0, snap.ContinentsCompleted)
}

func TestComputeProgress_DuplicateLandmarkCountsOnce(t *testing.T) {
	visits := []model.Visit{
		landmarkVisit(1, 10, day(1)),
		landmarkVisit(1, 10, day(2)),
		landmarkVisit(1, 10, day(3)),
	}

	snap := service.ComputeProgress(testCatalog(), visits)
	assert.Equal(t, 1, snap.Overall.Visited)
}

func TestComputeProgress_UnknownLandmarkExcluded(t *testing.T) {
	visits := []model.Visit{
		landmarkVisit(1, 10, day(1)),
		landmarkVisit(999, 10, day(2)), // 目录里不存在
	}

	snap := service.ComputeProgress(testCatalog(), visits)
	assert.Equal(t, 1, snap.Overall.Visited)
	assert.Equal(t, 7, snap.Overall.Total)
}

func TestComputeProgress_PercentageRounding(t *testing.T) {
	tests := []struct {
		name    string
		visited []uint
		country uint
		want    int
	}{
		{"one of three rounds down", []uint{3}, 2, 33},
		{"two of three rounds up", []uint{3, 4}, 2, 67},
		{"half rounds up", []uint{1}, 1, 50},
		{"complete", []uint{1, 2}, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visits []model.Visit
			for _, id := range tt.visited {
				visits = append(visits, landmarkVisit(id, 10, day(1)))
			}

			snap := service.ComputeProgress(testCatalog(), visits)
			got := findCountry(t, snap, tt.country)
			assert.Equal(t, tt.want, got.Percentage)
		})
	}
}

func TestComputeProgress_CompletionCounts(t *testing.T) {
	// 集齐法国（欧洲未满）和埃及（非洲全满）
	visits := []model.Visit{
		landmarkVisit(1, 10, day(1)),
		landmarkVisit(2, 25, day(2)),
		landmarkVisit(7, 25, day(3)),
	}

	snap := service.ComputeProgress(testCatalog(), visits)
	assert.Equal(t, 2, snap.CountriesCompleted)
	assert.Equal(t, 1, snap.ContinentsCompleted)
}

func TestComputeProgress_CountryVisitDoesNotExpand(t *testing.T) {
	visits := []model.Visit{countryVisit(2, day(1))}

	snap := service.ComputeProgress(testCatalog(), visits)
	assert.Equal(t, 0, snap.Overall.Visited, "国家级打卡不应把地标置为已访问")

	japan := findCountry(t, snap, 2)
	assert.True(t, japan.CountryVisit)
	assert.Equal(t, 0, japan.Visited)
}

func TestComputeProgress_DeletionCorrectsDownward(t *testing.T) {
	idx := testCatalog()
	before := service.ComputeProgress(idx, []model.Visit{
		landmarkVisit(1, 10, day(1)),
		landmarkVisit(2, 25, day(2)),
	})
	require.Equal(t, 1, before.CountriesCompleted)

	// 全量重算，删掉一条后完成度随之回落
	after := service.ComputeProgress(idx, []model.Visit{
		landmarkVisit(1, 10, day(1)),
	})
	assert.Equal(t, 0, after.CountriesCompleted)
	assert.Equal(t, 1, after.Overall.Visited)
}

func TestTopContinent(t *testing.T) {
	t.Run("no visits returns nil", func(t *testing.T) {
		snap := service.ComputeProgress(testCatalog(), nil)
		assert.Nil(t, service.TopContinent(snap))
	})

	t.Run("highest percentage wins", func(t *testing.T) {
		snap := service.ComputeProgress(testCatalog(), []model.Visit{
			landmarkVisit(1, 10, day(1)), // europe 1/3
			landmarkVisit(7, 25, day(2)), // africa 1/1
		})
		top := service.TopContinent(snap)
		require.NotNil(t, top)
		assert.Equal(t, model.ContinentAfrica, top.Code)
	})

	t.Run("tie broken by visited count", func(t *testing.T) {
		snap := service.ComputeProgress(testCatalog(), []model.Visit{
			landmarkVisit(1, 10, day(1)), // europe 1/3
			landmarkVisit(3, 10, day(2)), // asia 1/3
			landmarkVisit(4, 10, day(3)),
		})
		// asia 2/3 领先 europe 1/3
		top := service.TopContinent(snap)
		require.NotNil(t, top)
		assert.Equal(t, model.ContinentAsia, top.Code)
	})
}

func findCountry(t *testing.T, snap service.ProgressSnapshot, countryID uint) service.CountryProgress {
	t.Helper()
	for _, c := range snap.Continents {
		for _, country := range c.Countries {
			if country.CountryID == countryID {
				return country
			}
		}
	}
	t.Fatalf("country %d not in snapshot", countryID)
	return service.CountryProgress{}
}
