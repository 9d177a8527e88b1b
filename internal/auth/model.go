package auth

// Roles recognised by the service. Guests are never stored; a guest session
// is a short-lived token minted without credentials.
const (
	RoleFarmer       = "farmer"
	RoleParavet      = "paravet"
	RoleVeterinarian = "veterinarian"
	RoleAdmin        = "admin"
	RoleGuest        = "guest"
)

// User is the domain entity. Password always holds the bcrypt hash.
type User struct {
	ID       string
	Name     string
	Phone    string
	Role     string
	Village  string
	Password string
}

func registrableRole(role string) bool {
	switch role {
	case RoleFarmer, RoleParavet, RoleVeterinarian, RoleAdmin:
		return true
	}
	return false
}
