package manager

import (
	"context"
	"math"
	"sort"
)

const topEmployeeLimit = 5

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Charts fetches the three chart series independently. A manager with no
// rows in a series gets an empty list there, never null.
func (s *Service) Charts(ctx context.Context, managerID int) (Charts, error) {
	teamScores, err := s.TeamScores(ctx, managerID)
	if err != nil {
		return Charts{}, err
	}
	skills, err := s.SkillDistribution(ctx, managerID)
	if err != nil {
		return Charts{}, err
	}
	radar, err := s.RadarMetrics(ctx, managerID)
	if err != nil {
		return Charts{}, err
	}
	return Charts{TeamScores: teamScores, SkillDistribution: skills, RadarMetrics: radar}, nil
}

func (s *Service) TeamScores(ctx context.Context, managerID int) ([]TeamScore, error) {
	scores, err := s.Store.TeamScores(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		scores = []TeamScore{}
	}
	return scores, nil
}

func (s *Service) SkillDistribution(ctx context.Context, managerID int) ([]ChartPoint, error) {
	points, err := s.Store.SkillDistribution(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []ChartPoint{}
	}
	return points, nil
}

func (s *Service) RadarMetrics(ctx context.Context, managerID int) ([]ChartPoint, error) {
	points, err := s.Store.RadarMetrics(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []ChartPoint{}
	}
	return points, nil
}

func (s *Service) ListTeam(ctx context.Context, managerID int) ([]TeamMember, error) {
	members, err := s.Store.ListTeam(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []TeamMember{}
	}
	return members, nil
}

func (s *Service) TopEmployees(ctx context.Context, managerID int) ([]TopEmployee, error) {
	employees, err := s.Store.TeamRatings(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return rankTopEmployees(employees, topEmployeeLimit), nil
}

// rankTopEmployees orders a team by score, substituting the rounded average
// of the three metric columns when no explicit rating has been recorded yet.
func rankTopEmployees(employees []TopEmployee, limit int) []TopEmployee {
	ranked := make([]TopEmployee, len(employees))
	copy(ranked, employees)
	for i := range ranked {
		if ranked[i].Score == 0 {
			ranked[i].Score = metricAverage(ranked[i])
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func metricAverage(e TopEmployee) int {
	return int(math.Round(float64(e.Productivity+e.Teamwork+e.Creativity) / 3))
}

func (s *Service) CreateEvaluation(ctx context.Context, managerID int, eval NewEvaluation) (int, error) {
	return s.Store.CreateEvaluation(ctx, managerID, eval)
}
