package user

import "strings"

type Role string

const (
	RoleAdmin    Role = "admin"    // Unrestricted access to every collection
	RoleManager  Role = "manager"  // Own department only
	RoleEmployee Role = "employee" // Own records only
)

// roleRanks orders the closed role set. Unknown roles rank 0 and fail
// every hierarchical check.
var roleRanks = map[Role]int{
	RoleEmployee: 1,
	RoleManager:  2,
	RoleAdmin:    3,
}

// ParseRole normalizes a role string received from the upstream API.
// The backend stores roles lowercase but older payloads carried mixed case.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Rank returns the role's position in the hierarchy, 0 for unknown roles.
func (r Role) Rank() int {
	return roleRanks[r]
}

// Known reports whether the role belongs to the closed enumeration.
func (r Role) Known() bool {
	return r.Rank() > 0
}

// Profile is the identity the upstream API returns at login. It is
// immutable for the lifetime of the session; only re-login or an explicit
// re-fetch replaces it.
type Profile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         Role   `json:"role"`
	EmployeeID   string `json:"employeeId,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
}

func (p Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Email
	}
	return name
}

// IsAdmin checks if the user has the admin role
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsManager checks if the user is manager or admin
func (p Profile) IsManager() bool {
	return p.Role == RoleManager || p.Role == RoleAdmin
}
