package constants

import "fmt"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Role error templates
const (
	ErrOnlyStaffCanAccess  = "❌ Only instructors or admins may access %s."
	ErrOnlyAdminsCanAccess = "❌ Only admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleInstructor,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleInstructor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
