package service

import (
	"wanderlist_backend/internal/model"
)

// LevelProgress 某一地理层级的进度
// swagger:model LevelProgress
type LevelProgress struct {
	Visited    int `json:"visited"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// CountryProgress 单个国家的进度
type CountryProgress struct {
	CountryID uint            `json:"countryId"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Continent model.Continent `json:"continent"`
	LevelProgress
	CountryVisit bool `json:"countryVisit"` // 是否有国家级打卡，独立记录，不展开到地标
}

// ContinentProgress 单个大洲的进度
type ContinentProgress struct {
	model.ContinentInfo
	LevelProgress
	Countries []CountryProgress `json:"countries"`
}

// ProgressSnapshot 按需重算的只读进度模型，不作为事实来源存储
// swagger:model ProgressSnapshot
type ProgressSnapshot struct {
	Overall             LevelProgress       `json:"overall"`
	Continents          []ContinentProgress `json:"continents"`
	CountriesCompleted  int                 `json:"countriesCompleted"`
	ContinentsCompleted int                 `json:"continentsCompleted"`
}

// roundPercent 四舍五入取整，避免浮点展示抖动
func roundPercent(visited, total int) int {
	if total <= 0 {
		return 0
	}
	return (visited*200 + total) / (total * 2)
}

// ComputeProgress 由目录和打卡账本推导进度快照
// 同一地标的重复打卡只计一次；账本里目录查不到的地标不进分母；
// 国家级打卡独立记录，不把国家内的地标置为已访问
func ComputeProgress(idx *CatalogIndex, visits []model.Visit) ProgressSnapshot {
	visitedLandmarks := make(map[uint]bool)
	countryVisits := make(map[uint]bool)

	for _, v := range visits {
		if v.LandmarkID != nil {
			if _, ok := idx.LandmarksByID[*v.LandmarkID]; ok {
				visitedLandmarks[*v.LandmarkID] = true
			}
			continue
		}
		if v.Source == model.VisitSourceCountry {
			countryVisits[v.CountryID] = true
		}
	}

	snap := ProgressSnapshot{}

	for _, continent := range model.AllContinents() {
		countries := idx.CountriesByContinent[continent]
		if len(countries) == 0 {
			continue
		}

		cp := ContinentProgress{
			ContinentInfo: continent.Info(),
			Countries:     make([]CountryProgress, 0, len(countries)),
		}

		for _, country := range countries {
			visited := 0
			for _, lm := range idx.LandmarksByCountry[country.ID] {
				if visitedLandmarks[lm.ID] {
					visited++
				}
			}
			total := idx.CountryTotal(country.ID)

			progress := CountryProgress{
				CountryID:    country.ID,
				Code:         country.Code,
				Name:         country.Name,
				Continent:    continent,
				CountryVisit: countryVisits[country.ID],
				LevelProgress: LevelProgress{
					Visited:    visited,
					Total:      total,
					Percentage: roundPercent(visited, total),
				},
			}
			cp.Countries = append(cp.Countries, progress)

			cp.Visited += visited
			cp.Total += total
			if visited == total {
				snap.CountriesCompleted++
			}
		}

		cp.Percentage = roundPercent(cp.Visited, cp.Total)
		if cp.Visited == cp.Total {
			snap.ContinentsCompleted++
		}

		snap.Overall.Visited += cp.Visited
		snap.Overall.Total += cp.Total
		snap.Continents = append(snap.Continents, cp)
	}

	snap.Overall.Percentage = roundPercent(snap.Overall.Visited, snap.Overall.Total)
	return snap
}

// TopContinent 进度最高的大洲，百分比相同时取已访问数更多者
// 各端统一从这里取值，避免每个页面各算一遍
func TopContinent(snap ProgressSnapshot) *ContinentProgress {
	var top *ContinentProgress
	for i := range snap.Continents {
		c := &snap.Continents[i]
		if c.Visited == 0 {
			continue
		}
		if top == nil ||
			c.Percentage > top.Percentage ||
			(c.Percentage == top.Percentage && c.Visited > top.Visited) {
			top = c
		}
	}
	return top
}
