package auth

import (
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test Farmer", "9876543210", password, RoleFarmer, "Rampur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users[key("9876543210", RoleFarmer)]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test", "9876543210", "pw", "butcher", ""); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if _, err := service.Register("Test", "9876543210", "pw", RoleGuest, ""); err == nil {
		t.Fatal("guests must not be registrable")
	}
}

func TestRegisterDuplicatePhoneSameRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("First", "9876543210", "pw", RoleFarmer, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("Second", "9876543210", "pw", RoleFarmer, ""); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}

	// Same phone under a different role is a separate account.
	if _, err := service.Register("Second", "9876543210", "pw", RoleParavet, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogin(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test Vet", "9000000001", "Secret@1", RoleVeterinarian, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login("9000000001", "Secret@1", RoleVeterinarian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleVeterinarian {
		t.Errorf("unexpected role %q", user.Role)
	}

	if _, err := service.Login("9000000001", "wrong", RoleVeterinarian); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("9000000001", "Secret@1", RoleFarmer); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong role, got %v", err)
	}
}
