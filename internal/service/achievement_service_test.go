package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/service"
)

func testBadgeDefs() []model.BadgeDefinition {
	return []model.BadgeDefinition{
		{Code: "visits_10", Category: model.BadgeCategoryVisits, Target: 10},
		{Code: "visits_25", Category: model.BadgeCategoryVisits, Target: 25},
		{Code: "countries_1", Category: model.BadgeCategoryCountries, Target: 1},
		{Code: "points_100", Category: model.BadgeCategoryPoints, Target: 100},
		{Code: "friends_5", Category: model.BadgeCategoryFriends, Target: 5},
		{Code: "streak_7", Category: model.BadgeCategoryStreak, Target: 7},
	}
}

func badgeCodes(defs []model.BadgeDefinition) []string {
	codes := make([]string, 0, len(defs))
	for _, def := range defs {
		codes = append(codes, def.Code)
	}
	return codes
}

func TestEvaluateBadges_ThresholdCrossing(t *testing.T) {
	defs := testBadgeDefs()

	// 第 9 次打卡不触发
	newly := service.EvaluateBadges(defs, service.Metrics{TotalVisits: 9}, nil)
	assert.Empty(t, newly)

	// 第 10 次恰好触发 visits_10，且只触发它
	newly = service.EvaluateBadges(defs, service.Metrics{TotalVisits: 10}, nil)
	assert.Equal(t, []string{"visits_10"}, badgeCodes(newly))
}

func TestEvaluateBadges_SecondRunIsEmpty(t *testing.T) {
	defs := testBadgeDefs()
	m := service.Metrics{TotalVisits: 12, CountriesCompleted: 1}

	first := service.EvaluateBadges(defs, m, nil)
	require.ElementsMatch(t, []string{"visits_10", "countries_1"}, badgeCodes(first))

	earned := make(map[string]bool)
	for _, def := range first {
		earned[def.Code] = true
	}

	second := service.EvaluateBadges(defs, m, earned)
	assert.Empty(t, second, "相同输入跑第二遍不应重复授予")
}

func TestEvaluateBadges_NilFriendCountSkipsOnlyFriendRules(t *testing.T) {
	defs := testBadgeDefs()
	m := service.Metrics{
		TotalVisits:   10,
		FriendCount:   nil,
		LongestStreak: 7,
	}

	newly := service.EvaluateBadges(defs, m, nil)
	assert.ElementsMatch(t, []string{"visits_10", "streak_7"}, badgeCodes(newly))
}

func TestEvaluateBadges_FriendCountPresent(t *testing.T) {
	friends := 6
	newly := service.EvaluateBadges(testBadgeDefs(), service.Metrics{FriendCount: &friends}, nil)
	assert.Equal(t, []string{"friends_5"}, badgeCodes(newly))
}

func TestEvaluateBadges_MultipleCategoriesAtOnce(t *testing.T) {
	m := service.Metrics{
		TotalVisits:        25,
		CountriesCompleted: 1,
		TotalPoints:        150,
	}

	newly := service.EvaluateBadges(testBadgeDefs(), m, nil)
	assert.ElementsMatch(t,
		[]string{"visits_10", "visits_25", "countries_1", "points_100"},
		badgeCodes(newly))
}

func TestEvaluateBadges_MetricDropDoesNotRevoke(t *testing.T) {
	defs := testBadgeDefs()
	earned := map[string]bool{"countries_1": true}

	// 指标回落到 0，已获得的 countries_1 不出现在待授予里，也没有任何收回机制
	newly := service.EvaluateBadges(defs, service.Metrics{CountriesCompleted: 0}, earned)
	assert.Empty(t, newly)
}

func TestNextVisitMilestone(t *testing.T) {
	defs := testBadgeDefs()

	next := service.NextVisitMilestone(defs, 12)
	require.NotNil(t, next)
	assert.Equal(t, "visits_25", next.Code)
	assert.Equal(t, 13, next.Remaining)

	assert.Nil(t, service.NextVisitMilestone(defs, 25), "全部达成后没有下一个里程碑")
}
