package constants

import "fmt"

// Role yang dikenal aplikasi
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyModeratorsCanAccess = "❌ Hanya moderator atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorModerator(feature string) string {
	return fmt.Sprintf(ErrOnlyModeratorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleModerator,
		RoleAdmin,
	}

	ModeratorAndAbove = []string{
		RoleModerator,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
