package repository

import (
	"time"

	"wanderlist_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// Touch 更新活跃时间，用户行不存在时用令牌身份补建
// 账号由外部认证服务管理，这里只维护引擎需要的投影行
func (r *UserRepository) Touch(userID uint, email, name string) error {
	res := r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return r.Create(&model.User{
		BaseModel: model.BaseModel{ID: userID},
		Name:      name,
		Email:     email,
		LastSeen:  time.Now(),
	})
}

// UpdateFriendCount 由社交服务的同步任务调用
func (r *UserRepository) UpdateFriendCount(userID uint, count int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("friend_count", count).
		Error
}
