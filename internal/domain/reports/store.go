package reports

import (
	"context"

	"evalx/internal/platform/querier"
)

type LeaderboardEntry struct {
	Name         string `json:"name"`
	RankLabel    string `json:"rankLabel"`
	RankPosition int    `json:"rankPosition"`
}

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// KPIs returns the global metric map; KPI rows are not manager-scoped.
func (s *Store) KPIs(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, "SELECT metric, value FROM kpis")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kpis := map[string]int{}
	for rows.Next() {
		var metric string
		var value int
		if err := rows.Scan(&metric, &value); err != nil {
			return nil, err
		}
		kpis[metric] = value
	}
	return kpis, rows.Err()
}

func (s *Store) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_name, rank_label, rank_position
    FROM leaderboard
    ORDER BY rank_position ASC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var entry LeaderboardEntry
		if err := rows.Scan(&entry.Name, &entry.RankLabel, &entry.RankPosition); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
