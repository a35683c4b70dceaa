package service

import (
	"wanderlist_backend/internal/model"
)

// 完成奖励额度来自产品文案：集齐一国 +50，集齐一洲 +200
const (
	CountryCompletionBonus   = 50
	ContinentCompletionBonus = 200
)

// PointsBreakdown 积分构成
// swagger:model PointsBreakdown
type PointsBreakdown struct {
	VisitPoints    int `json:"visitPoints"`
	CountryBonus   int `json:"countryBonus"`
	ContinentBonus int `json:"continentBonus"`
	Total          int `json:"total"`
}

// ComputePoints 打卡积分直接累加每条记录创建时快照的分值，
// 目录后续改分或条目消失都不影响历史记录。
// 完成奖励每次由当前进度快照推导而不是记账，
// 删除打卡导致完成度丢失时奖励随之消失。
func ComputePoints(visits []model.Visit, snap ProgressSnapshot) PointsBreakdown {
	b := PointsBreakdown{}

	for _, v := range visits {
		b.VisitPoints += v.PointsEarned
	}

	b.CountryBonus = snap.CountriesCompleted * CountryCompletionBonus
	b.ContinentBonus = snap.ContinentsCompleted * ContinentCompletionBonus
	b.Total = b.VisitPoints + b.CountryBonus + b.ContinentBonus
	return b
}
