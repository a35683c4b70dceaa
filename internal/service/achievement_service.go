package service

import (
	"time"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/repository"
	"wanderlist_backend/pkg/logger"
	"wanderlist_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Metrics 徽章规则评估用的一致性指标快照
// 所有规则类别针对同一份快照独立评估，类别之间没有顺序依赖
type Metrics struct {
	TotalVisits        int
	CountriesCompleted int
	TotalPoints        int
	LongestStreak      int
	FriendCount        *int // nil 表示社交服务未提供，跳过好友类规则
}

// metricFor 取出规则类别对应的指标值，第二个返回值为该指标是否可用
func metricFor(category model.BadgeCategory, m Metrics) (int, bool) {
	switch category {
	case model.BadgeCategoryVisits:
		return m.TotalVisits, true
	case model.BadgeCategoryCountries:
		return m.CountriesCompleted, true
	case model.BadgeCategoryPoints:
		return m.TotalPoints, true
	case model.BadgeCategoryStreak:
		return m.LongestStreak, true
	case model.BadgeCategoryFriends:
		if m.FriendCount == nil {
			return 0, false
		}
		return *m.FriendCount, true
	}
	return 0, false
}

// EvaluateBadges 筛出达标且尚未持有的徽章定义
// 先查已获得记录再产出，保证相同输入跑第二遍结果为空
func EvaluateBadges(defs []model.BadgeDefinition, m Metrics, earned map[string]bool) []model.BadgeDefinition {
	var newly []model.BadgeDefinition
	for _, def := range defs {
		if earned[def.Code] {
			continue
		}
		value, ok := metricFor(def.Category, m)
		if !ok {
			continue
		}
		if value >= def.Target {
			newly = append(newly, def)
		}
	}
	return newly
}

type AchievementService struct {
	BadgeRepo *repository.BadgeRepository
}

func NewAchievementService(badgeRepo *repository.BadgeRepository) *AchievementService {
	return &AchievementService{BadgeRepo: badgeRepo}
}

// Evaluate 评估并持久化新获得的徽章，返回本次新增的记录
// 徽章只增不删：之后删除打卡使指标回落也不收回已授予的徽章
func (s *AchievementService) Evaluate(userID uint, m Metrics) ([]model.UserBadge, error) {
	defs, err := s.BadgeRepo.FindDefinitions()
	if err != nil {
		return nil, err
	}

	earned, err := s.BadgeRepo.FindEarnedCodes(userID)
	if err != nil {
		return nil, err
	}

	if m.FriendCount == nil {
		logger.Log.Warn("friend count unavailable, skipping friend badge rules",
			zap.Uint("user_id", userID))
	}

	newly := EvaluateBadges(defs, m, earned)
	now := time.Now()

	awarded := make([]model.UserBadge, 0, len(newly))
	for _, def := range newly {
		badge := model.UserBadge{
			UserID:    userID,
			BadgeCode: def.Code,
			EarnedAt:  now,
		}
		if err := s.BadgeRepo.Award(&badge); err != nil {
			return awarded, err
		}
		monitoring.BadgesAwarded.WithLabelValues(string(def.Category)).Inc()
		awarded = append(awarded, badge)
	}

	return awarded, nil
}

// EarnedBadges 用户已获得的徽章连同定义
type EarnedBadge struct {
	model.BadgeDefinition
	EarnedAt time.Time `json:"earnedAt"`
}

func (s *AchievementService) EarnedBadges(userID uint) ([]EarnedBadge, error) {
	defs, err := s.BadgeRepo.FindDefinitions()
	if err != nil {
		return nil, err
	}
	defsByCode := make(map[string]model.BadgeDefinition, len(defs))
	for _, def := range defs {
		defsByCode[def.Code] = def
	}

	earned, err := s.BadgeRepo.FindEarnedByUser(userID)
	if err != nil {
		return nil, err
	}

	badges := make([]EarnedBadge, 0, len(earned))
	for _, e := range earned {
		def, ok := defsByCode[e.BadgeCode]
		if !ok {
			// 定义表被改动过的历史记录，保留原始 code
			def = model.BadgeDefinition{Code: e.BadgeCode}
		}
		badges = append(badges, EarnedBadge{BadgeDefinition: def, EarnedAt: e.EarnedAt})
	}
	return badges, nil
}

func (s *AchievementService) Definitions() ([]model.BadgeDefinition, error) {
	return s.BadgeRepo.FindDefinitions()
}
