package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlist_backend/internal/repository"
	"wanderlist_backend/internal/service"
)

func TestRankUsers_OrdersByPointsDescending(t *testing.T) {
	rows := []repository.UserEligiblePoints{
		{UserID: 1, Name: "alice", Points: 50},
		{UserID: 2, Name: "bob", Points: 120},
		{UserID: 3, Name: "carol", Points: 80},
	}

	entries := service.RankUsers(rows)
	require.Len(t, entries, 3)
	assert.Equal(t, uint(2), entries[0].UserID)
	assert.Equal(t, uint(3), entries[1].UserID)
	assert.Equal(t, uint(1), entries[2].UserID)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestRankUsers_TieBrokenByRegistrationThenID(t *testing.T) {
	earlier := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(48 * time.Hour)

	rows := []repository.UserEligiblePoints{
		{UserID: 7, Name: "late", Points: 100, CreatedAt: later},
		{UserID: 9, Name: "early", Points: 100, CreatedAt: earlier},
		{UserID: 3, Name: "same-time", Points: 100, CreatedAt: earlier},
	}

	entries := service.RankUsers(rows)
	// 同分先比注册时间，再比用户 ID
	assert.Equal(t, uint(3), entries[0].UserID)
	assert.Equal(t, uint(9), entries[1].UserID)
	assert.Equal(t, uint(7), entries[2].UserID)
}

func TestRankUsers_Deterministic(t *testing.T) {
	rows := []repository.UserEligiblePoints{
		{UserID: 5, Points: 30, CreatedAt: time.Unix(100, 0)},
		{UserID: 2, Points: 30, CreatedAt: time.Unix(100, 0)},
		{UserID: 8, Points: 70, CreatedAt: time.Unix(200, 0)},
	}

	first := service.RankUsers(rows)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, service.RankUsers(rows))
	}
}

func TestRankUsers_DoesNotMutateInput(t *testing.T) {
	rows := []repository.UserEligiblePoints{
		{UserID: 1, Points: 10},
		{UserID: 2, Points: 99},
	}

	service.RankUsers(rows)
	assert.Equal(t, uint(1), rows[0].UserID)
}

func TestRankUsers_Empty(t *testing.T) {
	assert.Empty(t, service.RankUsers(nil))
}
