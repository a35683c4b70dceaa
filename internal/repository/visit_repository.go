package repository

import (
	"time"

	"wanderlist_backend/internal/model"

	"gorm.io/gorm"
)

type VisitRepository struct {
	DB *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{DB: db}
}

func (r *VisitRepository) Create(visit *model.Visit) error {
	return r.DB.Create(visit).Error
}

// ListByUser 读取用户的完整打卡账本
// 引擎的一次重算只消费这一次快照读，保证各计算器看到一致的数据
func (r *VisitRepository) ListByUser(userID uint) ([]model.Visit, error) {
	var visits []model.Visit
	err := r.DB.Where("user_id = ?", userID).Order("visited_at").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *VisitRepository) FindByIDAndUser(visitID string, userID uint) (*model.Visit, error) {
	var visit model.Visit
	err := r.DB.Where("id = ? AND user_id = ?", visitID, userID).First(&visit).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// ExistsForLandmark 同一地标的重复打卡在创建时拒绝
func (r *VisitRepository) ExistsForLandmark(userID, landmarkID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Visit{}).
		Where("user_id = ? AND landmark_id = ?", userID, landmarkID).
		Count(&count).Error
	return count > 0, err
}

// Delete 软删除，派生数据在下一次重算中自行修正
func (r *VisitRepository) Delete(visit *model.Visit) error {
	return r.DB.Delete(visit).Error
}

// UserEligiblePoints 排行榜聚合行：仅带照片凭证的打卡计入
type UserEligiblePoints struct {
	UserID    uint      `json:"userId"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

// EligiblePointsByUser 读取时聚合全量用户的排行榜积分，不落库
func (r *VisitRepository) EligiblePointsByUser() ([]UserEligiblePoints, error) {
	var rows []UserEligiblePoints
	err := r.DB.Table("visits").
		Select("users.id AS user_id, users.name, users.avatar, users.created_at, COALESCE(SUM(visits.points_earned), 0) AS points").
		Joins("JOIN users ON users.id = visits.user_id").
		Where("visits.has_photo = ? AND visits.deleted_at IS NULL", true).
		Group("users.id, users.name, users.avatar, users.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
