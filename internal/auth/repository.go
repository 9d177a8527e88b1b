package auth

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByPhone(phone, role string) (bool, error)
	FindByPhone(phone, role string) (*User, error)
}
