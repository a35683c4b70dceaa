package service

import (
	"sort"
	"time"

	"wanderlist_backend/internal/model"
)

// StreakState 连续打卡状态
// swagger:model StreakState
type StreakState struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// dateOnly 按 UTC 归一到日历日。打卡日统一以 UTC 计算
func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreaks 对去重排序后的打卡日全量重算连续天数
// 补记或删除历史日期会改变序列中间的连续段，
// 所以这里从不做"今天打了卡就 +1"式的增量维护
// 当前连续段必须收在今天或昨天，否则计 0（昨天打过、今天还没打仍算在续）
func ComputeStreaks(visits []model.Visit, today time.Time) StreakState {
	if len(visits) == 0 {
		return StreakState{}
	}

	daySet := make(map[time.Time]bool, len(visits))
	for _, v := range visits {
		daySet[dateOnly(v.VisitedAt)] = true
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	state := StreakState{}
	runLength := 0
	var runEnd time.Time

	for i, d := range days {
		if i > 0 && d.Sub(days[i-1]) == 24*time.Hour {
			runLength++
		} else {
			runLength = 1
		}
		runEnd = d
		if runLength > state.LongestStreak {
			state.LongestStreak = runLength
		}
	}

	// 最后一段就是可能的当前连续段
	t := dateOnly(today)
	if runEnd.Equal(t) || runEnd.Equal(t.Add(-24*time.Hour)) {
		state.CurrentStreak = runLength
	}

	return state
}
