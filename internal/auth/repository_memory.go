package auth

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

// The same phone number may register once per role.
func key(phone, role string) string {
	return phone + "|" + role
}

func (r *InMemoryUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[key(user.Phone, user.Role)] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByPhone(phone, role string) (bool, error) {
	_, exists := r.users[key(phone, role)]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByPhone(phone, role string) (*User, error) {
	user, ok := r.users[key(phone, role)]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}
