package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"wanderlist_backend/internal/repository"
	"wanderlist_backend/internal/util"
	"wanderlist_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LeaderboardEntry 排行榜条目
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Points int    `json:"points"`
}

// RankUsers 对聚合行做确定性排序并编号
// 只计带照片凭证的积分；同分按注册时间早者在前，再按用户 ID，
// 任何两次计算的顺序完全一致
func RankUsers(rows []repository.UserEligiblePoints) []LeaderboardEntry {
	sorted := make([]repository.UserEligiblePoints, len(rows))
	copy(sorted, rows)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, row := range sorted {
		entries[i] = LeaderboardEntry{
			Rank:   i + 1,
			UserID: row.UserID,
			Name:   row.Name,
			Avatar: row.Avatar,
			Points: row.Points,
		}
	}
	return entries
}

// LeaderboardService 排名是读取时对全量用户的聚合计算，
// 不落库为每用户的可变状态，只做短 TTL 的 Redis 缓存
type LeaderboardService struct {
	VisitRepo *repository.VisitRepository
	Redis     *redis.Client
	CacheTTL  time.Duration
}

func NewLeaderboardService(visitRepo *repository.VisitRepository, rdb *redis.Client, cacheTTL time.Duration) *LeaderboardService {
	return &LeaderboardService{
		VisitRepo: visitRepo,
		Redis:     rdb,
		CacheTTL:  cacheTTL,
	}
}

// Compute 完整排行榜，经过缓存
func (s *LeaderboardService) Compute(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, util.LeaderboardCacheKey).Bytes()
		if err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		}
	}

	rows, err := s.VisitRepo.EligiblePointsByUser()
	if err != nil {
		return nil, err
	}
	entries := RankUsers(rows)

	if s.Redis != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			if err := s.Redis.Set(ctx, util.LeaderboardCacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache leaderboard", zap.Error(err))
			}
		}
	}

	return entries, nil
}

// Top 排行榜前 limit 名
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	entries, err := s.Compute(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// RankFor 某个用户的名次，没有合格积分时返回 0（未上榜）
func (s *LeaderboardService) RankFor(ctx context.Context, userID uint) (int, error) {
	entries, err := s.Compute(ctx)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if e.UserID == userID {
			return e.Rank, nil
		}
	}
	return 0, nil
}

// Invalidate 打卡写入后让缓存过期，下一次读取得到新榜
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, util.LeaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate leaderboard cache", zap.Error(err))
	}
}
