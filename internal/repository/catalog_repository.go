package repository

import (
	"fmt"

	"wanderlist_backend/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) FindAllCountries() ([]model.Country, error) {
	var countries []model.Country
	err := r.DB.Order("id").Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CatalogRepository) FindAllLandmarks() ([]model.Landmark, error) {
	var landmarks []model.Landmark
	err := r.DB.Order("id").Find(&landmarks).Error
	if err != nil {
		return nil, err
	}
	return landmarks, nil
}

// LandmarkImport 导入文件中的地标条目
// 文件里用国家代码定位所属国家，数据库主键在同步时解析
type LandmarkImport struct {
	CountryCode string
	Landmark    model.Landmark
}

// PlanCountrySync 按国家代码对齐新旧国家列表
// 已有国家保留主键只更新字段，代码不在导入中的行列为待删除
func PlanCountrySync(existing, incoming []model.Country) (upserts []model.Country, stale []uint) {
	byCode := make(map[string]model.Country, len(existing))
	for _, c := range existing {
		byCode[c.Code] = c
	}

	seen := make(map[string]bool, len(incoming))
	for _, c := range incoming {
		if old, ok := byCode[c.Code]; ok {
			c.ID = old.ID
		}
		seen[c.Code] = true
		upserts = append(upserts, c)
	}

	for _, c := range existing {
		if !seen[c.Code] {
			stale = append(stale, c.ID)
		}
	}
	return upserts, stale
}

// PlanLandmarkSync 按 (国家, 名称) 对齐新旧地标列表
// 重导入时文件顺序变化不影响既有地标的主键，历史打卡的引用保持指向同一地标
func PlanLandmarkSync(existing, incoming []model.Landmark) (upserts []model.Landmark, stale []uint) {
	type landmarkKey struct {
		countryID uint
		name      string
	}

	byKey := make(map[landmarkKey]model.Landmark, len(existing))
	for _, lm := range existing {
		byKey[landmarkKey{lm.CountryID, lm.Name}] = lm
	}

	seen := make(map[landmarkKey]bool, len(incoming))
	for _, lm := range incoming {
		k := landmarkKey{lm.CountryID, lm.Name}
		if old, ok := byKey[k]; ok {
			lm.ID = old.ID
		}
		seen[k] = true
		upserts = append(upserts, lm)
	}

	for _, lm := range existing {
		if !seen[landmarkKey{lm.CountryID, lm.Name}] {
			stale = append(stale, lm.ID)
		}
	}
	return upserts, stale
}

// Sync 把导入的目录合并进数据库
// 按自然标识对齐已有行，从不重排主键；导入中消失的地标按缺失处理，
// 引用它的历史打卡保留但不再参与进度
func (r *CatalogRepository) Sync(countries []model.Country, landmarks []LandmarkImport) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existingCountries []model.Country
		if err := tx.Find(&existingCountries).Error; err != nil {
			return err
		}

		countryUpserts, staleCountries := PlanCountrySync(existingCountries, countries)
		for i := range countryUpserts {
			if err := tx.Save(&countryUpserts[i]).Error; err != nil {
				return err
			}
		}

		byCode := make(map[string]model.Country, len(countryUpserts))
		for _, c := range countryUpserts {
			byCode[c.Code] = c
		}

		incoming := make([]model.Landmark, 0, len(landmarks))
		for _, imp := range landmarks {
			country, ok := byCode[imp.CountryCode]
			if !ok {
				return fmt.Errorf("landmark %q references unknown country %q", imp.Landmark.Name, imp.CountryCode)
			}
			lm := imp.Landmark
			lm.CountryID = country.ID
			lm.Continent = country.Continent
			incoming = append(incoming, lm)
		}

		var existingLandmarks []model.Landmark
		if err := tx.Find(&existingLandmarks).Error; err != nil {
			return err
		}

		landmarkUpserts, staleLandmarks := PlanLandmarkSync(existingLandmarks, incoming)
		for i := range landmarkUpserts {
			if err := tx.Save(&landmarkUpserts[i]).Error; err != nil {
				return err
			}
		}

		if len(staleLandmarks) > 0 {
			if err := tx.Delete(&model.Landmark{}, staleLandmarks).Error; err != nil {
				return err
			}
		}
		if len(staleCountries) > 0 {
			if err := tx.Delete(&model.Country{}, staleCountries).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
