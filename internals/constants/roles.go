package constants

// Role user pada platform. Hanya dua level: pembaca biasa dan admin.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur ini."
)

var AllRoles = []string{
	RoleUser,
	RoleAdmin,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
