package model

import "time"

type BadgeCategory string

const (
	BadgeCategoryVisits    BadgeCategory = "visits"
	BadgeCategoryCountries BadgeCategory = "countries"
	BadgeCategoryPoints    BadgeCategory = "points"
	BadgeCategoryFriends   BadgeCategory = "friends"
	BadgeCategoryStreak    BadgeCategory = "streak"
)

// BadgeDefinition 徽章定义表，迁移时种子固定规则
// swagger:model BadgeDefinition
type BadgeDefinition struct {
	ID       uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Code     string        `gorm:"size:50;unique;not null" json:"code"`
	Category BadgeCategory `gorm:"size:20;index;not null" json:"category"`
	Target   int           `gorm:"not null" json:"target"`
	Name     string        `gorm:"size:100;not null" json:"name"`
	Icon     string        `gorm:"size:255" json:"icon"`
}

func (BadgeDefinition) TableName() string {
	return "badge_definitions"
}

// UserBadge 用户已获得的徽章，只增不删
// (user_id, badge_code) 唯一索引保证并发重算下至多授予一次
type UserBadge struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_badge;type:bigint unsigned;not null" json:"userId"`
	BadgeCode string    `gorm:"uniqueIndex:idx_user_badge;size:50;not null" json:"badgeCode"`
	EarnedAt  time.Time `gorm:"not null" json:"earnedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
