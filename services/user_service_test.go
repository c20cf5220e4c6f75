package services

import (
	"testing"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
)

func newUserService(t *testing.T) (*UserService, func() int64) {
	db := openTestDB(t)
	count := func() int64 {
		var n int64
		db.Model(&entity.User{}).Count(&n)
		return n
	}
	return NewUserService(repository.NewUserRepository(db)), count
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, count := newUserService(t)

	first := entity.User{Email: "alice@example.com", Name: "Alice"}
	exists, err := svc.Register(&first)
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if exists {
		t.Fatal("first register reported the email as taken")
	}

	second := entity.User{Email: "alice@example.com", Name: "Alice Again"}
	exists, err = svc.Register(&second)
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if !exists {
		t.Error("second register did not report the email as taken")
	}
	if n := count(); n != 1 {
		t.Errorf("user rows = %d, want 1", n)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc, count := newUserService(t)

	if _, err := svc.Register(&entity.User{Email: "Alice@Example.com"}); err != nil {
		t.Fatal(err)
	}
	exists, err := svc.Register(&entity.User{Email: "  alice@example.com "})
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("differently-cased duplicate was not detected")
	}
	if n := count(); n != 1 {
		t.Errorf("user rows = %d, want 1", n)
	}
}

func TestIsAdmin(t *testing.T) {
	svc, _ := newUserService(t)

	admin := entity.User{Email: "admin@example.com", Role: "admin"}
	if _, err := svc.Register(&admin); err != nil {
		t.Fatal(err)
	}
	plain := entity.User{Email: "user@example.com"}
	if _, err := svc.Register(&plain); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@example.com", true},
		{"user@example.com", false},
		{"ghost@example.com", false},
	}
	for _, tt := range tests {
		got, err := svc.IsAdmin(tt.email)
		if err != nil {
			t.Fatalf("IsAdmin(%q): %v", tt.email, err)
		}
		if got != tt.want {
			t.Errorf("IsAdmin(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
