package model

import (
	"time"
)

// User 用户基本信息
// 账号注册/登录由外部用户服务负责，这里只保存引擎需要的字段：
// CreatedAt 用于排行榜同分时的确定性排序，FriendCount 由社交服务异步同步
// swagger:model User
type User struct {
	BaseModel
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       string    `gorm:"size:100;unique;not null" json:"email"`
	Avatar      string    `gorm:"size:255" json:"avatar"`
	FriendCount *int      `json:"friendCount,omitempty"` // nil 表示社交服务尚未同步
	LastSeen    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
