package employee

import "time"

// Profile is the full profile card for one employee. Manager is the joined
// manager name and stays null when the manager reference is unset or
// dangling.
type Profile struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Title             string  `json:"title"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	Department        string  `json:"department"`
	Avatar            string  `json:"avatar"`
	WorkingStatus     bool    `json:"workingStatus"`
	Manager           *string `json:"manager"`
	YearsExperience   float64 `json:"yearsExperience"`
	ProjectsCompleted int     `json:"projectsCompleted"`
	AverageRating     float64 `json:"averageRating"`
	Productivity      int     `json:"productivity"`
	Teamwork          int     `json:"teamwork"`
	Creativity        int     `json:"creativity"`
}

type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	BadgeType   string `json:"badgeType"`
	Icon        string `json:"icon"`
}

type Review struct {
	ID         int      `json:"id"`
	Period     string   `json:"period"`
	Reviewer   string   `json:"reviewer"`
	Score      int      `json:"score"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

// Bundle is the aggregated profile view. Profile is nil for an unknown
// employee; the list sections are always present and never null.
type Bundle struct {
	Profile       *Profile       `json:"profile"`
	Tasks         []Task         `json:"tasks"`
	Achievements  []Achievement  `json:"achievements"`
	Reviews       []Review       `json:"reviews"`
	Notifications []Notification `json:"notifications"`
}

type OverviewProfile struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Avatar       string `json:"avatar"`
	Productivity int    `json:"productivity"`
	Teamwork     int    `json:"teamwork"`
	Creativity   int    `json:"creativity"`
}

type ReviewSummary struct {
	ID     int    `json:"id"`
	Score  int    `json:"score"`
	Period string `json:"period"`
}

type Overview struct {
	Profile      *OverviewProfile `json:"profile"`
	RecentTasks  []Task           `json:"recentTasks"`
	LatestReview *ReviewSummary   `json:"latestReview"`
}

type DirectoryEntry struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Title         string `json:"title"`
	Department    string `json:"department"`
	Address       string `json:"address"`
	WorkingStatus bool   `json:"workingStatus"`
	Productivity  int    `json:"productivity"`
	Teamwork      int    `json:"teamwork"`
	Creativity    int    `json:"creativity"`
	Avatar        string `json:"avatar"`
}
