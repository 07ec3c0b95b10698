package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMineKillRepository_CountByMap_Empty(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewMineKillRepository(pool)

	n, err := repo.CountByMap(context.Background(), "fenced")
	require.NoError(t, err)
	assert.Zero(t, n)

	recent, err := repo.Recent(context.Background(), "fenced", 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestMineKillRepository_SaveBatch(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewMineKillRepository(pool)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	rows := []MineKillRow{
		{MapName: "fenced", Victim: "Deuce", KillNumber: 1, KilledAt: base},
		{MapName: "fenced", Victim: "Hero", KillNumber: 2, KilledAt: base.Add(time.Second)},
		{MapName: "plain", Victim: "Deuce", KillNumber: 1, KilledAt: base.Add(2 * time.Second)},
	}
	require.NoError(t, repo.SaveBatch(ctx, rows))
	require.NoError(t, repo.SaveBatch(ctx, nil))

	n, err := repo.CountByMap(ctx, "fenced")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recent, err := repo.Recent(ctx, "fenced", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Hero", recent[0].Victim)
	assert.Equal(t, int32(2), recent[0].KillNumber)
	assert.True(t, recent[0].KilledAt.Equal(rows[1].KilledAt))
	assert.Equal(t, "Deuce", recent[1].Victim)

	recent, err = repo.Recent(ctx, "fenced", 1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
