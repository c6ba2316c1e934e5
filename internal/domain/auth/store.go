package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"evalx/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// FindManagerByEmail returns (nil, nil) when no manager matches. Ordinary
// absence is not an error; callers fold it into the generic credential check.
func (s *Store) FindManagerByEmail(ctx context.Context, email string) (*Manager, error) {
	var m Manager
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, password, title, COALESCE(avatar, ''), COALESCE(department, '')
    FROM managers
    WHERE email = $1
  `, email).Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Title, &m.Avatar, &m.Department)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.Role = RoleManager
	return &m, nil
}

func (s *Store) FindEmployeeByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, manager_id, name, email, password, title, COALESCE(avatar, ''), COALESCE(department, ''), working_status
    FROM employees
    WHERE email = $1
  `, email).Scan(&e.ID, &e.ManagerID, &e.Name, &e.Email, &e.PasswordHash, &e.Title, &e.Avatar, &e.Department, &e.WorkingStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Role = RoleEmployee
	return &e, nil
}

func (s *Store) FindManagerByID(ctx context.Context, id int) (*Manager, error) {
	var m Manager
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, password, title, COALESCE(avatar, ''), COALESCE(department, '')
    FROM managers
    WHERE id = $1
  `, id).Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Title, &m.Avatar, &m.Department)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.Role = RoleManager
	return &m, nil
}

func (s *Store) FindEmployeeByID(ctx context.Context, id int) (*Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, manager_id, name, email, password, title, COALESCE(avatar, ''), COALESCE(department, ''), working_status
    FROM employees
    WHERE id = $1
  `, id).Scan(&e.ID, &e.ManagerID, &e.Name, &e.Email, &e.PasswordHash, &e.Title, &e.Avatar, &e.Department, &e.WorkingStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Role = RoleEmployee
	return &e, nil
}

func (s *Store) InsertManager(ctx context.Context, record NewManager) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    INSERT INTO managers (name, email, password, title, avatar, department)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, record.Name, record.Email, record.PasswordHash, record.Title, record.Avatar, record.Department)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) InsertEmployee(ctx context.Context, record NewEmployee) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    INSERT INTO employees (manager_id, name, email, password, title, avatar, department, working_status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,true)
  `, record.ManagerID, record.Name, record.Email, record.PasswordHash, record.Title, record.Avatar, record.Department)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListManagerSummaries(ctx context.Context) ([]ManagerSummary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(department, '')
    FROM managers
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []ManagerSummary
	for rows.Next() {
		var summary ManagerSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Department); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// EmailInUse checks both account tables; registration enforces one account
// per email across roles. The unique constraints remain the backstop for
// concurrent registrations.
func (s *Store) EmailInUse(ctx context.Context, email string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT (SELECT COUNT(1) FROM managers WHERE email = $1)
         + (SELECT COUNT(1) FROM employees WHERE email = $1)
  `, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
