package employee

import "context"

type StoreAPI interface {
	GetProfile(ctx context.Context, employeeID int) (*Profile, error)
	ListTasks(ctx context.Context, employeeID int) ([]Task, error)
	ListAchievements(ctx context.Context, employeeID int) ([]Achievement, error)
	ListReviews(ctx context.Context, employeeID int) ([]Review, error)
	ListNotifications(ctx context.Context, employeeID int) ([]Notification, error)
	List(ctx context.Context) ([]DirectoryEntry, error)
	GetOverviewProfile(ctx context.Context, employeeID int) (*OverviewProfile, error)
	RecentTasks(ctx context.Context, employeeID, limit int) ([]Task, error)
	LatestReview(ctx context.Context, employeeID int) (*ReviewSummary, error)
	CreateTask(ctx context.Context, employeeID int, description string) (Task, error)
	UpdateTaskStatus(ctx context.Context, taskID int, completed bool) error
}
