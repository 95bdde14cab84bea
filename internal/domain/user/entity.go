package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can view and refresh team salaries
	RoleEmployee Role = "employee" // Regular employee
	RolePending  Role = "pending"  // Still in onboarding
)

// IsManager checks if role is manager or owner
func (r Role) IsManager() bool {
	return r == RoleManager || r == RoleOwner
}

// Principal is the caller identified by the access token
type Principal struct {
	UserID string
	Role   Role
}

// CanRead reports whether the principal may read data belonging to userID
func (p Principal) CanRead(userID string) bool {
	return p.UserID == userID || p.Role.IsManager()
}
