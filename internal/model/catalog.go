package model

type LandmarkCategory string

const (
	CategoryOfficial LandmarkCategory = "official"
	CategoryPremium  LandmarkCategory = "premium"
)

// 地标分值固定：官方 10 分，高级 25 分
const (
	PointsOfficial = 10
	PointsPremium  = 25
)

func (c LandmarkCategory) PointValue() int {
	if c == CategoryPremium {
		return PointsPremium
	}
	return PointsOfficial
}

// Country 目录国家条目，重导入时按 code 对齐
// swagger:model Country
type Country struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"size:2;unique;not null" json:"code"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Continent Continent `gorm:"size:20;index;not null" json:"continent"`
}

func (Country) TableName() string {
	return "countries"
}

// Landmark 目录地标条目
// (country_id, name) 是重导入时对齐已有行的自然标识，主键在目录生命周期内不变
// swagger:model Landmark
type Landmark struct {
	ID         uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string           `gorm:"size:150;uniqueIndex:idx_country_landmark,priority:2;not null" json:"name"`
	CountryID  uint             `gorm:"uniqueIndex:idx_country_landmark,priority:1;type:bigint unsigned;not null" json:"countryId"`
	Continent  Continent        `gorm:"size:20;index;not null" json:"continent"`
	Category   LandmarkCategory `gorm:"type:enum('official','premium');default:'official'" json:"category"`
	PointValue int              `gorm:"not null" json:"pointValue"`
	Latitude   *float64         `json:"latitude,omitempty"`
	Longitude  *float64         `json:"longitude,omitempty"`
}

func (Landmark) TableName() string {
	return "landmarks"
}
