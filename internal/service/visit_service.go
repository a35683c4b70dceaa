package service

import (
	"context"
	"errors"
	"time"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/repository"
	"wanderlist_backend/internal/util"

	"gorm.io/gorm"
)

// VisitRequest 打卡请求
// swagger:model VisitRequest
type VisitRequest struct {
	LandmarkID *uint            `json:"landmarkId"`
	CountryID  *uint            `json:"countryId"`
	Title      string           `json:"title"`
	VisitedAt  *time.Time       `json:"visitedAt"` // 缺省为当前时间，允许补记过去日期
	HasPhoto   bool             `json:"hasPhoto"`
	Visibility model.Visibility `json:"visibility"`
}

type VisitService struct {
	VisitRepo *repository.VisitRepository
	Catalog   *CatalogService
	Dashboard *DashboardService
}

func NewVisitService(visitRepo *repository.VisitRepository, catalog *CatalogService, dashboard *DashboardService) *VisitService {
	return &VisitService{
		VisitRepo: visitRepo,
		Catalog:   catalog,
		Dashboard: dashboard,
	}
}

func (s *VisitService) ListVisits(userID uint) ([]model.Visit, error) {
	return s.VisitRepo.ListByUser(userID)
}

// CreateVisit 记录打卡并触发全量重算
// 地标打卡在创建时把目录分值快照进记录，之后目录改分不回溯
func (s *VisitService) CreateVisit(ctx context.Context, userID uint, req VisitRequest) (*model.Visit, *RecomputeResult, error) {
	visitedAt := time.Now()
	if req.VisitedAt != nil {
		visitedAt = *req.VisitedAt
	}
	if visitedAt.After(time.Now()) {
		return nil, nil, util.ErrVisitInFuture
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}

	visit := &model.Visit{
		UserID:     userID,
		VisitedAt:  visitedAt,
		HasPhoto:   req.HasPhoto,
		Visibility: visibility,
	}

	idx := s.Catalog.Index()

	switch {
	case req.LandmarkID != nil:
		lm, ok := idx.LandmarksByID[*req.LandmarkID]
		if !ok {
			return nil, nil, util.ErrLandmarkNotFound
		}
		exists, err := s.VisitRepo.ExistsForLandmark(userID, lm.ID)
		if err != nil {
			return nil, nil, err
		}
		if exists {
			return nil, nil, util.ErrAlreadyVisited
		}
		visit.Source = model.VisitSourceLandmark
		visit.LandmarkID = &lm.ID
		visit.CountryID = lm.CountryID
		visit.PointsEarned = lm.PointValue

	case req.CountryID != nil:
		if _, ok := idx.CountriesByID[*req.CountryID]; !ok {
			return nil, nil, util.ErrCountryNotFound
		}
		visit.Source = model.VisitSourceCountry
		visit.CountryID = *req.CountryID

	case req.Title != "":
		visit.Source = model.VisitSourceCustom
		visit.Title = req.Title

	default:
		return nil, nil, util.ErrInvalidVisitInput
	}

	if err := s.VisitRepo.Create(visit); err != nil {
		return nil, nil, err
	}

	s.Dashboard.Leaderboard.Invalidate(ctx)

	result, err := s.Dashboard.Recompute(userID, "visit_create")
	if err != nil {
		return visit, nil, err
	}
	return visit, result, nil
}

// visitLookupErr 只把"记录不存在"折叠成未找到，数据库故障原样上抛
func visitLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrVisitNotFound
	}
	return err
}

// DeleteVisit 删除打卡并触发全量重算
// 完成奖励随之消失，但已授予的徽章不收回
func (s *VisitService) DeleteVisit(ctx context.Context, userID uint, visitID string) (*RecomputeResult, error) {
	visit, err := s.VisitRepo.FindByIDAndUser(visitID, userID)
	if err != nil {
		return nil, visitLookupErr(err)
	}

	if err := s.VisitRepo.Delete(visit); err != nil {
		return nil, err
	}

	s.Dashboard.Leaderboard.Invalidate(ctx)

	return s.Dashboard.Recompute(userID, "visit_delete")
}
