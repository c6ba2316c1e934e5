package auth

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Manager and Employee are the two disjoint account variants. The password
// hash never leaves the process: both types exclude it from JSON.
type Manager struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Title        string `json:"title"`
	Avatar       string `json:"avatar"`
	Department   string `json:"department"`
	Role         string `json:"role"`
}

type Employee struct {
	ID            int    `json:"id"`
	ManagerID     *int   `json:"managerId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PasswordHash  string `json:"-"`
	Title         string `json:"title"`
	Avatar        string `json:"avatar"`
	Department    string `json:"department"`
	WorkingStatus bool   `json:"workingStatus"`
	Role          string `json:"role"`
}

type ManagerSummary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type NewManager struct {
	Name         string
	Email        string
	PasswordHash string
	Title        string
	Avatar       string
	Department   string
}

type NewEmployee struct {
	ManagerID    int
	Name         string
	Email        string
	PasswordHash string
	Title        string
	Avatar       string
	Department   string
}
