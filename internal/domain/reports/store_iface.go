package reports

import "context"

type StoreAPI interface {
	KPIs(ctx context.Context) (map[string]int, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}
