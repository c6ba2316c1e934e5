package reports

import "context"

type Overview struct {
	KPIs        map[string]int     `json:"kpis"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) KPIs(ctx context.Context) (map[string]int, error) {
	kpis, err := s.Store.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	if kpis == nil {
		kpis = map[string]int{}
	}
	return kpis, nil
}

func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	entries, err := s.Store.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	return entries, nil
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	kpis, err := s.KPIs(ctx)
	if err != nil {
		return Overview{}, err
	}
	entries, err := s.Leaderboard(ctx)
	if err != nil {
		return Overview{}, err
	}
	return Overview{KPIs: kpis, Leaderboard: entries}, nil
}
