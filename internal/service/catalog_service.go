package service

import (
	"sync/atomic"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/repository"
	"wanderlist_backend/pkg/logger"

	"go.uber.org/zap"
)

// CatalogIndex 目录的内存索引，构建后只读
// 一次计算内目录视为静态，刷新通过整体替换指针完成
type CatalogIndex struct {
	LandmarksByID        map[uint]model.Landmark
	LandmarksByCountry   map[uint][]model.Landmark
	CountriesByID        map[uint]model.Country
	CountriesByContinent map[model.Continent][]model.Country
	TotalLandmarks       int
}

// BuildCatalogIndex 构建目录索引
// 没有地标的国家和没有国家的大洲不进入分母，属于非法大洲或未知国家的地标跳过
func BuildCatalogIndex(countries []model.Country, landmarks []model.Landmark) *CatalogIndex {
	idx := &CatalogIndex{
		LandmarksByID:        make(map[uint]model.Landmark, len(landmarks)),
		LandmarksByCountry:   make(map[uint][]model.Landmark),
		CountriesByID:        make(map[uint]model.Country, len(countries)),
		CountriesByContinent: make(map[model.Continent][]model.Country),
	}

	for _, c := range countries {
		if !c.Continent.Valid() {
			continue
		}
		idx.CountriesByID[c.ID] = c
	}

	for _, lm := range landmarks {
		if _, ok := idx.CountriesByID[lm.CountryID]; !ok {
			continue
		}
		idx.LandmarksByID[lm.ID] = lm
		idx.LandmarksByCountry[lm.CountryID] = append(idx.LandmarksByCountry[lm.CountryID], lm)
		idx.TotalLandmarks++
	}

	// 只有持有地标的国家参与进度分母；按入参顺序保证输出稳定
	for _, c := range countries {
		if _, ok := idx.CountriesByID[c.ID]; !ok {
			continue
		}
		if len(idx.LandmarksByCountry[c.ID]) == 0 {
			continue
		}
		idx.CountriesByContinent[c.Continent] = append(idx.CountriesByContinent[c.Continent], c)
	}

	return idx
}

// CountryTotal 国家的地标总数
func (idx *CatalogIndex) CountryTotal(countryID uint) int {
	return len(idx.LandmarksByCountry[countryID])
}

type CatalogService struct {
	CatalogRepo *repository.CatalogRepository
	index       atomic.Value // *CatalogIndex
}

func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	s := &CatalogService{CatalogRepo: catalogRepo}
	s.index.Store(BuildCatalogIndex(nil, nil))
	return s
}

// Reload 从数据库重建索引并原子替换
// 进行中的计算继续使用旧索引，符合"一次计算内目录静态"的约定
func (s *CatalogService) Reload() error {
	countries, err := s.CatalogRepo.FindAllCountries()
	if err != nil {
		return err
	}
	landmarks, err := s.CatalogRepo.FindAllLandmarks()
	if err != nil {
		return err
	}

	idx := BuildCatalogIndex(countries, landmarks)
	s.index.Store(idx)

	logger.Log.Info("catalog index reloaded",
		zap.Int("countries", len(idx.CountriesByID)),
		zap.Int("landmarks", idx.TotalLandmarks))
	return nil
}

// Index 当前目录索引快照
func (s *CatalogService) Index() *CatalogIndex {
	return s.index.Load().(*CatalogIndex)
}

// ContinentSummary 大洲目录概览
type ContinentSummary struct {
	model.ContinentInfo
	Countries int `json:"countries"`
	Landmarks int `json:"landmarks"`
}

func (s *CatalogService) ListContinents() []ContinentSummary {
	idx := s.Index()
	summaries := make([]ContinentSummary, 0, len(model.AllContinents()))
	for _, continent := range model.AllContinents() {
		countries := idx.CountriesByContinent[continent]
		if len(countries) == 0 {
			continue
		}
		landmarks := 0
		for _, c := range countries {
			landmarks += idx.CountryTotal(c.ID)
		}
		summaries = append(summaries, ContinentSummary{
			ContinentInfo: continent.Info(),
			Countries:     len(countries),
			Landmarks:     landmarks,
		})
	}
	return summaries
}

func (s *CatalogService) ListCountries(continent model.Continent) []model.Country {
	idx := s.Index()
	countries := idx.CountriesByContinent[continent]
	result := make([]model.Country, len(countries))
	copy(result, countries)
	return result
}

func (s *CatalogService) ListLandmarks(countryID uint) []model.Landmark {
	idx := s.Index()
	landmarks := idx.LandmarksByCountry[countryID]
	result := make([]model.Landmark, len(landmarks))
	copy(result, landmarks)
	return result
}
