package repository

import (
	"wanderlist_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindDefinitions() ([]model.BadgeDefinition, error) {
	var defs []model.BadgeDefinition
	err := r.DB.Order("category, target").Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}

func (r *BadgeRepository) FindEarnedByUser(userID uint) ([]model.UserBadge, error) {
	var badges []model.UserBadge
	err := r.DB.Where("user_id = ?", userID).Order("earned_at").Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *BadgeRepository) FindEarnedCodes(userID uint) (map[string]bool, error) {
	badges, err := r.FindEarnedByUser(userID)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]bool, len(badges))
	for _, b := range badges {
		codes[b.BadgeCode] = true
	}
	return codes, nil
}

func (r *BadgeRepository) HasBadge(userID uint, code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.UserBadge{}).
		Where("user_id = ? AND badge_code = ?", userID, code).
		Count(&count).Error
	return count > 0, err
}

// Award 幂等授予：并发重算同时判定新获得时，
// (user_id, badge_code) 唯一索引让后到的插入静默落空
func (r *BadgeRepository) Award(badge *model.UserBadge) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(badge).Error
}
