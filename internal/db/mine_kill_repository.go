package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MineKillRow represents a row from mine_kills.
type MineKillRow struct {
	MapName    string
	Victim     string
	KillNumber int32 // per-map mine kill counter at the time of death
	KilledAt   time.Time
}

// MineKillRepository stores the mine kill log.
type MineKillRepository struct {
	pool *pgxpool.Pool
}

// NewMineKillRepository creates a new MineKillRepository.
func NewMineKillRepository(pool *pgxpool.Pool) *MineKillRepository {
	return &MineKillRepository{pool: pool}
}

// SaveBatch inserts rows with a single COPY.
func (r *MineKillRepository) SaveBatch(ctx context.Context, rows []MineKillRow) error {
	if len(rows) == 0 {
		return nil
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"mine_kills"},
		[]string{"map_name", "victim", "kill_number", "killed_at"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{row.MapName, row.Victim, row.KillNumber, row.KilledAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy mine_kills (%d rows): %w", len(rows), err)
	}
	return nil
}

// CountByMap returns how many mine kills were logged on mapName.
func (r *MineKillRepository) CountByMap(ctx context.Context, mapName string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM mine_kills WHERE map_name = $1`, mapName,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count mine_kills for %s: %w", mapName, err)
	}
	return n, nil
}

// Recent returns up to limit most recent kills on mapName, newest first.
func (r *MineKillRepository) Recent(ctx context.Context, mapName string, limit int) ([]MineKillRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT map_name, victim, kill_number, killed_at
		 FROM mine_kills WHERE map_name = $1
		 ORDER BY killed_at DESC, id DESC LIMIT $2`,
		mapName, limit)
	if err != nil {
		return nil, fmt.Errorf("query mine_kills for %s: %w", mapName, err)
	}
	defer rows.Close()

	var result []MineKillRow
	for rows.Next() {
		var row MineKillRow
		if err := rows.Scan(&row.MapName, &row.Victim, &row.KillNumber, &row.KilledAt); err != nil {
			return nil, fmt.Errorf("scan mine_kills: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
