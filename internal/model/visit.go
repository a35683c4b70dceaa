package model

import "time"

type VisitSource string

const (
	VisitSourceLandmark VisitSource = "landmark"
	VisitSourceCountry  VisitSource = "country"
	VisitSourceCustom   VisitSource = "custom"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

// Visit 用户的打卡记录
// PointsEarned 在创建时从目录快照，目录后续改分不影响历史记录
// swagger:model Visit
type Visit struct {
	UUIDBase
	UserID       uint        `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	LandmarkID   *uint       `gorm:"index;type:bigint unsigned" json:"landmarkId,omitempty"`
	CountryID    uint        `gorm:"index;type:bigint unsigned" json:"countryId"`
	Source       VisitSource `gorm:"type:enum('landmark','country','custom');default:'landmark'" json:"source"`
	Title        string      `gorm:"size:150" json:"title,omitempty"` // 自定义打卡的名称
	VisitedAt    time.Time   `gorm:"index;not null" json:"visitedAt"`
	PointsEarned int         `gorm:"default:0" json:"pointsEarned"`
	HasPhoto     bool        `gorm:"default:false" json:"hasPhoto"`
	Visibility   Visibility  `gorm:"type:enum('public','friends','private');default:'public'" json:"visibility"`
}

func (Visit) TableName() string {
	return "visits"
}
