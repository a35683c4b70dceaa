package service_test

import (
	"time"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/service"
)

// Fixture catalog:
//
//	europe: France (Eiffel Tower 10, Louvre 25), Italy (Colosseum 10)
//	asia:   Japan (Mount Fuji 10, Kinkaku-ji 10, Skytree 25)
//	africa: Egypt (Great Pyramid 25)
func testCountries() []model.Country {
	return []model.Country{
		{ID: 1, Code: "FR", Name: "France", Continent: model.ContinentEurope},
		{ID: 2, Code: "JP", Name: "Japan", Continent: model.ContinentAsia},
		{ID: 3, Code: "IT", Name: "Italy", Continent: model.ContinentEurope},
		{ID: 4, Code: "EG", Name: "Egypt", Continent: model.ContinentAfrica},
	}
}

func testLandmarks() []model.Landmark {
	return []model.Landmark{
		{ID: 1, Name: "Eiffel Tower", CountryID: 1, Continent: model.ContinentEurope, Category: model.CategoryOfficial, PointValue: 10},
		{ID: 2, Name: "Louvre", CountryID: 1, Continent: model.ContinentEurope, Category: model.CategoryPremium, PointValue: 25},
		{ID: 3, Name: "Mount Fuji", CountryID: 2, Continent: model.ContinentAsia, Category: model.CategoryOfficial, PointValue: 10},
		{ID: 4, Name: "Kinkaku-ji", CountryID: 2, Continent: model.ContinentAsia, Category: model.CategoryOfficial, PointValue: 10},
		{ID: 5, Name: "Tokyo Skytree", CountryID: 2, Continent: model.ContinentAsia, Category: model.CategoryPremium, PointValue: 25},
		{ID: 6, Name: "Colosseum", CountryID: 3, Continent: model.ContinentEurope, Category: model.CategoryOfficial, PointValue: 10},
		{ID: 7, Name: "Great Pyramid", CountryID: 4, Continent: model.ContinentAfrica, Category: model.CategoryPremium, PointValue: 25},
	}
}

func testCatalog() *service.CatalogIndex {
	return service.BuildCatalogIndex(testCountries(), testLandmarks())
}

func landmarkVisit(landmarkID uint, points int, visitedAt time.Time) model.Visit {
	id := landmarkID
	return model.Visit{
		UserID:       1,
		LandmarkID:   &id,
		CountryID:    0,
		Source:       model.VisitSourceLandmark,
		VisitedAt:    visitedAt,
		PointsEarned: points,
	}
}

func countryVisit(countryID uint, visitedAt time.Time) model.Visit {
	return model.Visit{
		UserID:    1,
		CountryID: countryID,
		Source:    model.VisitSourceCountry,
		VisitedAt: visitedAt,
	}
}

func day(n int) time.Time {
	return time.Date(2026, 8, n, 12, 0, 0, 0, time.UTC)
}
