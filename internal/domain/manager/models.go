package manager

// TeamScore is one bar of the team-scores chart.
type TeamScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ChartPoint is a labelled value shared by the skill-distribution and radar
// chart series.
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Charts bundles the three independently queried series for one manager.
// The series are unrelated in cardinality; each is empty when no rows exist.
type Charts struct {
	TeamScores        []TeamScore  `json:"teamScores"`
	SkillDistribution []ChartPoint `json:"skillDistribution"`
	RadarMetrics      []ChartPoint `json:"radarMetrics"`
}

type TeamMember struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Avatar       string `json:"avatar"`
	Productivity int    `json:"productivity"`
	Teamwork     int    `json:"teamwork"`
	Creativity   int    `json:"creativity"`
}

type TopEmployee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Avatar       string `json:"avatar"`
	Score        int    `json:"score"`
	Productivity int    `json:"productivity"`
	Teamwork     int    `json:"teamwork"`
	Creativity   int    `json:"creativity"`
}

type NewEvaluation struct {
	EmployeeID   int    `json:"employeeId"`
	Category     string `json:"category"`
	Productivity *int   `json:"productivity"`
	Teamwork     *int   `json:"teamwork"`
	Creativity   *int   `json:"creativity"`
	Accuracy     *int   `json:"accuracy"`
	Notes        string `json:"notes"`
}
