package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid phone, password or role")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(name, phone, password, role, village string) (*User, error) {
	if name == "" || phone == "" || password == "" {
		return nil, errors.New("missing required fields")
	}
	if !registrableRole(role) {
		return nil, errors.New("unknown role")
	}

	exists, _ := s.repo.ExistsByPhone(phone, role)
	if exists {
		return nil, errors.New("phone already registered for this role")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Phone:    phone,
		Role:     role,
		Village:  village,
		Password: string(hashedPassword),
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(phone, password, role string) (*User, error) {
	user, err := s.repo.FindByPhone(phone, role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
