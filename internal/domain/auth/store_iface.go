package auth

import "context"

type StoreAPI interface {
	FindManagerByEmail(ctx context.Context, email string) (*Manager, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
	FindManagerByID(ctx context.Context, id int) (*Manager, error)
	FindEmployeeByID(ctx context.Context, id int) (*Employee, error)
	InsertManager(ctx context.Context, record NewManager) (bool, error)
	InsertEmployee(ctx context.Context, record NewEmployee) (bool, error)
	ListManagerSummaries(ctx context.Context) ([]ManagerSummary, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
}
