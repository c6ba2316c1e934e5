package manager

import "context"

type StoreAPI interface {
	TeamScores(ctx context.Context, managerID int) ([]TeamScore, error)
	SkillDistribution(ctx context.Context, managerID int) ([]ChartPoint, error)
	RadarMetrics(ctx context.Context, managerID int) ([]ChartPoint, error)
	ListTeam(ctx context.Context, managerID int) ([]TeamMember, error)
	TeamRatings(ctx context.Context, managerID int) ([]TopEmployee, error)
	CreateEvaluation(ctx context.Context, managerID int, eval NewEvaluation) (int, error)
}
