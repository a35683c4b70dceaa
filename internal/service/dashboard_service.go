package service

import (
	"context"
	"time"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/repository"
	"wanderlist_backend/pkg/logger"
	"wanderlist_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// UserSnapshot 一次重算产出的全部派生指标
// 各计算器消费同一次账本快照读，互相之间看到一致的数据
type UserSnapshot struct {
	Progress    ProgressSnapshot `json:"progress"`
	Points      PointsBreakdown  `json:"points"`
	Streak      StreakState      `json:"streak"`
	TotalVisits int              `json:"totalVisits"`
}

// RecomputeResult 重算结果，含本次新授予的徽章
type RecomputeResult struct {
	Snapshot  UserSnapshot      `json:"snapshot"`
	NewBadges []model.UserBadge `json:"newBadges"`
}

// MilestoneView 下一个打卡数里程碑
type MilestoneView struct {
	Code      string `json:"code"`
	Target    int    `json:"target"`
	Remaining int    `json:"remaining"`
}

// DashboardView 各端展示用的汇总视图
// 下一里程碑、最佳大洲这类派生值统一在这里算一遍，页面只做消费
// swagger:model DashboardView
type DashboardView struct {
	Progress      ProgressSnapshot   `json:"progress"`
	Points        PointsBreakdown    `json:"points"`
	Streak        StreakState        `json:"streak"`
	TotalVisits   int                `json:"totalVisits"`
	Rank          int                `json:"rank"` // 0 表示未上榜
	Badges        []EarnedBadge      `json:"badges"`
	NextMilestone *MilestoneView     `json:"nextMilestone,omitempty"`
	TopContinent  *ContinentProgress `json:"topContinent,omitempty"`
}

// DashboardService 引擎编排：一次账本快照读喂给全部计算器
type DashboardService struct {
	VisitRepo   *repository.VisitRepository
	UserRepo    *repository.UserRepository
	Catalog     *CatalogService
	Achievement *AchievementService
	Leaderboard *LeaderboardService
}

func NewDashboardService(
	visitRepo *repository.VisitRepository,
	userRepo *repository.UserRepository,
	catalog *CatalogService,
	achievement *AchievementService,
	leaderboard *LeaderboardService,
) *DashboardService {
	return &DashboardService{
		VisitRepo:   visitRepo,
		UserRepo:    userRepo,
		Catalog:     catalog,
		Achievement: achievement,
		Leaderboard: leaderboard,
	}
}

// Snapshot 无副作用的全量重算，零打卡用户得到全零快照
func (s *DashboardService) Snapshot(userID uint) (*UserSnapshot, error) {
	visits, err := s.VisitRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	idx := s.Catalog.Index()
	progress := ComputeProgress(idx, visits)
	points := ComputePoints(visits, progress)
	streak := ComputeStreaks(visits, time.Now())

	return &UserSnapshot{
		Progress:    progress,
		Points:      points,
		Streak:      streak,
		TotalVisits: len(visits),
	}, nil
}

// Recompute 重算并评估徽章，打卡写入后必须走这里
// 而不是对派生数据做增量加减
func (s *DashboardService) Recompute(userID uint, trigger string) (*RecomputeResult, error) {
	start := time.Now()
	defer func() {
		monitoring.RecomputeDuration.Observe(time.Since(start).Seconds())
	}()
	monitoring.RecomputeCounter.WithLabelValues(trigger).Inc()

	snapshot, err := s.Snapshot(userID)
	if err != nil {
		return nil, err
	}

	metrics := Metrics{
		TotalVisits:        snapshot.TotalVisits,
		CountriesCompleted: snapshot.Progress.CountriesCompleted,
		TotalPoints:        snapshot.Points.Total,
		LongestStreak:      snapshot.Streak.LongestStreak,
	}

	// 好友数由社交服务同步到用户行，取不到时只跳过好友类规则
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		logger.Log.Warn("user lookup failed during recompute, friend badges skipped",
			zap.Uint("user_id", userID), zap.Error(err))
	} else {
		metrics.FriendCount = user.FriendCount
	}

	newBadges, err := s.Achievement.Evaluate(userID, metrics)
	if err != nil {
		return nil, err
	}

	return &RecomputeResult{
		Snapshot:  *snapshot,
		NewBadges: newBadges,
	}, nil
}

// NextVisitMilestone 打卡数里程碑中第一个还没达到的
func NextVisitMilestone(defs []model.BadgeDefinition, totalVisits int) *MilestoneView {
	var next *MilestoneView
	for _, def := range defs {
		if def.Category != model.BadgeCategoryVisits {
			continue
		}
		if def.Target <= totalVisits {
			continue
		}
		if next == nil || def.Target < next.Target {
			next = &MilestoneView{
				Code:      def.Code,
				Target:    def.Target,
				Remaining: def.Target - totalVisits,
			}
		}
	}
	return next
}

// Dashboard 汇总视图，读路径，无副作用
func (s *DashboardService) Dashboard(ctx context.Context, userID uint) (*DashboardView, error) {
	snapshot, err := s.Snapshot(userID)
	if err != nil {
		return nil, err
	}

	badges, err := s.Achievement.EarnedBadges(userID)
	if err != nil {
		return nil, err
	}

	rank, err := s.Leaderboard.RankFor(ctx, userID)
	if err != nil {
		// 排行榜取不到不该拖垮整个看板
		logger.Log.Warn("rank unavailable for dashboard", zap.Uint("user_id", userID), zap.Error(err))
		rank = 0
	}

	defs, err := s.Achievement.Definitions()
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Progress:      snapshot.Progress,
		Points:        snapshot.Points,
		Streak:        snapshot.Streak,
		TotalVisits:   snapshot.TotalVisits,
		Rank:          rank,
		Badges:        badges,
		NextMilestone: NextVisitMilestone(defs, snapshot.TotalVisits),
		TopContinent:  TopContinent(snapshot.Progress),
	}, nil
}
