package employee

import "context"

const recentTaskLimit = 5

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Bundle assembles the aggregated profile view. An unknown employee id is
// not an error: the bundle carries a nil profile and empty sections, and the
// caller decides what that means.
func (s *Service) Bundle(ctx context.Context, employeeID int) (Bundle, error) {
	profile, err := s.Store.GetProfile(ctx, employeeID)
	if err != nil {
		return Bundle{}, err
	}

	tasks, err := s.Store.ListTasks(ctx, employeeID)
	if err != nil {
		return Bundle{}, err
	}
	achievements, err := s.Store.ListAchievements(ctx, employeeID)
	if err != nil {
		return Bundle{}, err
	}
	reviews, err := s.Store.ListReviews(ctx, employeeID)
	if err != nil {
		return Bundle{}, err
	}
	notifications, err := s.Store.ListNotifications(ctx, employeeID)
	if err != nil {
		return Bundle{}, err
	}

	if tasks == nil {
		tasks = []Task{}
	}
	if achievements == nil {
		achievements = []Achievement{}
	}
	if reviews == nil {
		reviews = []Review{}
	}
	if notifications == nil {
		notifications = []Notification{}
	}

	return Bundle{
		Profile:       profile,
		Tasks:         tasks,
		Achievements:  achievements,
		Reviews:       reviews,
		Notifications: notifications,
	}, nil
}

func (s *Service) Overview(ctx context.Context, employeeID int) (Overview, error) {
	profile, err := s.Store.GetOverviewProfile(ctx, employeeID)
	if err != nil {
		return Overview{}, err
	}

	tasks, err := s.Store.RecentTasks(ctx, employeeID, recentTaskLimit)
	if err != nil {
		return Overview{}, err
	}
	if tasks == nil {
		tasks = []Task{}
	}

	latest, err := s.Store.LatestReview(ctx, employeeID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{Profile: profile, RecentTasks: tasks, LatestReview: latest}, nil
}

func (s *Service) List(ctx context.Context) ([]DirectoryEntry, error) {
	entries, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []DirectoryEntry{}
	}
	return entries, nil
}

func (s *Service) CreateTask(ctx context.Context, employeeID int, description string) (Task, error) {
	return s.Store.CreateTask(ctx, employeeID, description)
}

func (s *Service) UpdateTaskStatus(ctx context.Context, taskID int, completed bool) error {
	return s.Store.UpdateTaskStatus(ctx, taskID, completed)
}
