package manager

import (
	"context"

	"evalx/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) TeamScores(ctx context.Context, managerID int) ([]TeamScore, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_name, score
    FROM team_scores
    WHERE manager_id = $1
    ORDER BY score DESC
  `, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []TeamScore
	for rows.Next() {
		var score TeamScore
		if err := rows.Scan(&score.Name, &score.Score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func (s *Store) SkillDistribution(ctx context.Context, managerID int) ([]ChartPoint, error) {
	return s.chartPoints(ctx, `
    SELECT label, value
    FROM skill_distribution
    WHERE manager_id = $1
  `, managerID)
}

func (s *Store) RadarMetrics(ctx context.Context, managerID int) ([]ChartPoint, error) {
	return s.chartPoints(ctx, `
    SELECT metric, value
    FROM radar_metrics
    WHERE manager_id = $1
  `, managerID)
}

func (s *Store) chartPoints(ctx context.Context, query string, managerID int) ([]ChartPoint, error) {
	rows, err := s.DB.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []ChartPoint
	for rows.Next() {
		var point ChartPoint
		if err := rows.Scan(&point.Label, &point.Value); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}

func (s *Store) ListTeam(ctx context.Context, managerID int) ([]TeamMember, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, title, COALESCE(avatar, ''),
           COALESCE(productivity, 0), COALESCE(teamwork, 0), COALESCE(creativity, 0)
    FROM employees
    WHERE manager_id = $1
    ORDER BY name
  `, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []TeamMember
	for rows.Next() {
		var member TeamMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Title, &member.Avatar,
			&member.Productivity, &member.Teamwork, &member.Creativity); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (s *Store) TeamRatings(ctx context.Context, managerID int) ([]TopEmployee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, title, COALESCE(avatar, ''),
           COALESCE(average_rating, 0),
           COALESCE(productivity, 0), COALESCE(teamwork, 0), COALESCE(creativity, 0)
    FROM employees
    WHERE manager_id = $1
  `, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []TopEmployee
	for rows.Next() {
		var e TopEmployee
		var rating float64
		if err := rows.Scan(&e.ID, &e.Name, &e.Title, &e.Avatar, &rating,
			&e.Productivity, &e.Teamwork, &e.Creativity); err != nil {
			return nil, err
		}
		e.Score = int(rating)
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) CreateEvaluation(ctx context.Context, managerID int, eval NewEvaluation) (int, error) {
	var id int
	err := s.DB.QueryRow(ctx, `
    INSERT INTO evaluations (employee_id, manager_id, category, productivity, teamwork, creativity, accuracy, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, eval.EmployeeID, managerID, eval.Category, eval.Productivity, eval.Teamwork, eval.Creativity, eval.Accuracy, nullIfEmpty(eval.Notes)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
