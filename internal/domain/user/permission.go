package user

import "slices"

type Permission string

const (
	PermissionSalaryViewOwn     Permission = "salary.view_own"
	PermissionSalaryViewAll     Permission = "salary.view_all"
	PermissionSalarySync        Permission = "salary.sync"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionSalaryViewOwn,
		PermissionSalaryViewAll,
		PermissionSalarySync,
		PermissionAttendanceViewOwn,
	},
	RoleManager: {
		PermissionSalaryViewOwn,
		PermissionSalaryViewAll,
		PermissionSalarySync,
		PermissionAttendanceViewOwn,
	},
	RoleEmployee: {
		PermissionSalaryViewOwn,
		PermissionAttendanceViewOwn,
	},
	RolePending: {
		// Pending role has no permissions
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	return slices.Contains(RolePermissions[role], permission)
}
