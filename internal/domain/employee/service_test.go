package employee

import (
	"context"
	"testing"
)

type fakeStore struct {
	profile         *Profile
	tasks           []Task
	achievements    []Achievement
	reviews         []Review
	notifications   []Notification
	directory       []DirectoryEntry
	overviewProfile *OverviewProfile
	recentTasks     []Task
	recentLimit     int
	latestReview    *ReviewSummary
}

func (f *fakeStore) GetProfile(ctx context.Context, employeeID int) (*Profile, error) {
	return f.profile, nil
}

func (f *fakeStore) ListTasks(ctx context.Context, employeeID int) ([]Task, error) {
	return f.tasks, nil
}

func (f *fakeStore) ListAchievements(ctx context.Context, employeeID int) ([]Achievement, error) {
	return f.achievements, nil
}

func (f *fakeStore) ListReviews(ctx context.Context, employeeID int) ([]Review, error) {
	return f.reviews, nil
}

func (f *fakeStore) ListNotifications(ctx context.Context, employeeID int) ([]Notification, error) {
	return f.notifications, nil
}

func (f *fakeStore) List(ctx context.Context) ([]DirectoryEntry, error) {
	return f.directory, nil
}

func (f *fakeStore) GetOverviewProfile(ctx context.Context, employeeID int) (*OverviewProfile, error) {
	return f.overviewProfile, nil
}

func (f *fakeStore) RecentTasks(ctx context.Context, employeeID, limit int) ([]Task, error) {
	f.recentLimit = limit
	return f.recentTasks, nil
}

func (f *fakeStore) LatestReview(ctx context.Context, employeeID int) (*ReviewSummary, error) {
	return f.latestReview, nil
}

func (f *fakeStore) CreateTask(ctx context.Context, employeeID int, description string) (Task, error) {
	return Task{ID: 1, Description: description}, nil
}

func (f *fakeStore) UpdateTaskStatus(ctx context.Context, taskID int, completed bool) error {
	return nil
}

func TestBundleUnknownEmployee(t *testing.T) {
	service := NewService(&fakeStore{})

	bundle, err := service.Bundle(context.Background(), 999)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	if bundle.Profile != nil {
		t.Fatalf("profile = %+v, want nil", bundle.Profile)
	}
	if bundle.Tasks == nil || len(bundle.Tasks) != 0 {
		t.Fatalf("tasks = %v, want empty non-nil slice", bundle.Tasks)
	}
	if bundle.Achievements == nil || len(bundle.Achievements) != 0 {
		t.Fatalf("achievements = %v, want empty non-nil slice", bundle.Achievements)
	}
	if bundle.Reviews == nil || len(bundle.Reviews) != 0 {
		t.Fatalf("reviews = %v, want empty non-nil slice", bundle.Reviews)
	}
	if bundle.Notifications == nil || len(bundle.Notifications) != 0 {
		t.Fatalf("notifications = %v, want empty non-nil slice", bundle.Notifications)
	}
}

func TestBundlePopulated(t *testing.T) {
	store := &fakeStore{
		profile: &Profile{ID: 3, Name: "Dana"},
		tasks:   []Task{{ID: 1, Description: "Ship release"}},
		reviews: []Review{{ID: 2, Score: 88, Highlights: []string{"Leadership"}}},
	}
	service := NewService(store)

	bundle, err := service.Bundle(context.Background(), 3)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	if bundle.Profile == nil || bundle.Profile.Name != "Dana" {
		t.Fatalf("profile = %+v, want Dana", bundle.Profile)
	}
	if len(bundle.Tasks) != 1 || bundle.Tasks[0].Description != "Ship release" {
		t.Fatalf("tasks = %v", bundle.Tasks)
	}
	if len(bundle.Reviews) != 1 || bundle.Reviews[0].Score != 88 {
		t.Fatalf("reviews = %v", bundle.Reviews)
	}
}

func TestOverviewRecentTaskLimit(t *testing.T) {
	store := &fakeStore{
		overviewProfile: &OverviewProfile{ID: 3, Name: "Dana"},
	}
	service := NewService(store)

	overview, err := service.Overview(context.Background(), 3)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if store.recentLimit != recentTaskLimit {
		t.Fatalf("recent task limit = %d, want %d", store.recentLimit, recentTaskLimit)
	}
	if overview.RecentTasks == nil || len(overview.RecentTasks) != 0 {
		t.Fatalf("recentTasks = %v, want empty non-nil slice", overview.RecentTasks)
	}
	if overview.LatestReview != nil {
		t.Fatalf("latestReview = %+v, want nil", overview.LatestReview)
	}
}

func TestListNormalizesNil(t *testing.T) {
	service := NewService(&fakeStore{})

	entries, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("entries = %v, want empty non-nil slice", entries)
	}
}
