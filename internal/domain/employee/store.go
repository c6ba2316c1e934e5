package employee

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"evalx/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// GetProfile returns (nil, nil) for an unknown employee id.
func (s *Store) GetProfile(ctx context.Context, employeeID int) (*Profile, error) {
	var p Profile
	err := s.DB.QueryRow(ctx, `
    SELECT e.id, e.name, e.title, e.email,
           COALESCE(e.phone, ''), COALESCE(e.address, ''), COALESCE(e.department, ''),
           COALESCE(e.avatar, ''), e.working_status, m.name,
           COALESCE(e.years_experience, 0), COALESCE(e.projects_completed, 0),
           COALESCE(e.average_rating, 0), COALESCE(e.productivity, 0),
           COALESCE(e.teamwork, 0), COALESCE(e.creativity, 0)
    FROM employees e
    LEFT JOIN managers m ON m.id = e.manager_id
    WHERE e.id = $1
  `, employeeID).Scan(
		&p.ID, &p.Name, &p.Title, &p.Email,
		&p.Phone, &p.Address, &p.Department,
		&p.Avatar, &p.WorkingStatus, &p.Manager,
		&p.YearsExperience, &p.ProjectsCompleted,
		&p.AverageRating, &p.Productivity,
		&p.Teamwork, &p.Creativity,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListTasks(ctx context.Context, employeeID int) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, description, completed
    FROM tasks
    WHERE employee_id = $1
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.Description, &task.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) ListAchievements(ctx context.Context, employeeID int) ([]Achievement, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, COALESCE(description, ''), COALESCE(badge_type, ''), COALESCE(icon, '')
    FROM achievements
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.BadgeType, &a.Icon); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (s *Store) ListReviews(ctx context.Context, employeeID int) ([]Review, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, period, reviewer, score, COALESCE(summary, ''), highlights
    FROM reviews
    WHERE employee_id = $1
    ORDER BY id DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		var highlights *string
		if err := rows.Scan(&review.ID, &review.Period, &review.Reviewer, &review.Score, &review.Summary, &highlights); err != nil {
			return nil, err
		}
		review.Highlights = splitHighlights(highlights)
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// splitHighlights decodes the comma-delimited highlights column. NULL or
// empty input decodes to an empty list, never nil-as-null in responses.
func splitHighlights(stored *string) []string {
	if stored == nil || strings.TrimSpace(*stored) == "" {
		return []string{}
	}
	parts := strings.Split(*stored, ",")
	highlights := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			highlights = append(highlights, trimmed)
		}
	}
	return highlights
}

func (s *Store) ListNotifications(ctx context.Context, employeeID int) ([]Notification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, COALESCE(body, ''), COALESCE(icon, ''), created_at
    FROM notifications
    WHERE employee_id = $1
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Icon, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (s *Store) List(ctx context.Context) ([]DirectoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, email, COALESCE(phone, ''), title, COALESCE(department, ''),
           COALESCE(address, ''), working_status,
           COALESCE(productivity, 0), COALESCE(teamwork, 0), COALESCE(creativity, 0),
           COALESCE(avatar, '')
    FROM employees
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []DirectoryEntry
	for rows.Next() {
		var e DirectoryEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Title, &e.Department,
			&e.Address, &e.WorkingStatus, &e.Productivity, &e.Teamwork, &e.Creativity, &e.Avatar); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetOverviewProfile(ctx context.Context, employeeID int) (*OverviewProfile, error) {
	var p OverviewProfile
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, title, COALESCE(avatar, ''),
           COALESCE(productivity, 0), COALESCE(teamwork, 0), COALESCE(creativity, 0)
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&p.ID, &p.Name, &p.Title, &p.Avatar, &p.Productivity, &p.Teamwork, &p.Creativity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) RecentTasks(ctx context.Context, employeeID, limit int) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, description, completed
    FROM tasks
    WHERE employee_id = $1
    ORDER BY created_at DESC
    LIMIT $2
  `, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.Description, &task.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) LatestReview(ctx context.Context, employeeID int) (*ReviewSummary, error) {
	var summary ReviewSummary
	err := s.DB.QueryRow(ctx, `
    SELECT id, score, period
    FROM reviews
    WHERE employee_id = $1
    ORDER BY id DESC
    LIMIT 1
  `, employeeID).Scan(&summary.ID, &summary.Score, &summary.Period)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Store) CreateTask(ctx context.Context, employeeID int, description string) (Task, error) {
	task := Task{Description: description}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (employee_id, description, completed)
    VALUES ($1,$2,false)
    RETURNING id
  `, employeeID, description).Scan(&task.ID)
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

// UpdateTaskStatus is an unconditional write: updating a task id that does
// not exist affects zero rows and is not an error.
func (s *Store) UpdateTaskStatus(ctx context.Context, taskID int, completed bool) error {
	_, err := s.DB.Exec(ctx, "UPDATE tasks SET completed = $1 WHERE id = $2", completed, taskID)
	return err
}
