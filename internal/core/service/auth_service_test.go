package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func authFixture(t *testing.T) (*AuthService, *stubEmployeeRepo) {
	t.Helper()
	employees := newStubEmployeeRepo()
	employees.employees[1] = &domain.Employee{
		ID:           1,
		Name:         "Asha Verma",
		Email:        "asha@example.com",
		PasswordHash: hashOf(t, "s3cret"),
	}
	admins := &stubAdminRepo{admins: map[string]*domain.Admin{
		"root": {ID: 7, Username: "root", PasswordHash: hashOf(t, "adminpass")},
	}}
	return NewAuthService(employees, admins, "secret", time.Hour), employees
}

func TestAuthService_LoginEmployee_Success(t *testing.T) {
	svc, _ := authFixture(t)

	token, emp, err := svc.LoginEmployee(context.Background(), "asha@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if emp == nil || emp.ID != 1 {
		t.Fatalf("unexpected employee: %+v", emp)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "1" {
		t.Fatalf("expected sub 1, got %v", claims["sub"])
	}
	if claims["role"] != domain.RoleEmployee {
		t.Fatalf("expected role %s, got %v", domain.RoleEmployee, claims["role"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected exp claim, got %v", claims["exp"])
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 || remaining > time.Hour {
		t.Fatalf("expiry outside the 1h window: %v", remaining)
	}
}

func TestAuthService_LoginEmployee_EnumerationSafe(t *testing.T) {
	svc, _ := authFixture(t)

	_, _, errUnknown := svc.LoginEmployee(context.Background(), "ghost@example.com", "whatever")
	_, _, errBadPass := svc.LoginEmployee(context.Background(), "asha@example.com", "wrong")

	if errUnknown != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if errBadPass != domain.ErrInvalidCredentials {
		t.Fatalf("bad password: expected ErrInvalidCredentials, got %v", errBadPass)
	}
	// Same sentinel, so both surface as the same 401 body.
	if errUnknown.Error() != errBadPass.Error() {
		t.Fatalf("messages differ: %q vs %q", errUnknown, errBadPass)
	}
}

func TestAuthService_LoginAdmin_Success(t *testing.T) {
	svc, _ := authFixture(t)

	token, admin, err := svc.LoginAdmin(context.Background(), "root", "adminpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if admin == nil || admin.Username != "root" {
		t.Fatalf("unexpected admin: %+v", admin)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["sub"] != "7" {
		t.Fatalf("expected sub 7, got %v", claims["sub"])
	}
}

func TestAuthService_LoginAdmin_EnumerationSafe(t *testing.T) {
	svc, _ := authFixture(t)

	if _, _, err := svc.LoginAdmin(context.Background(), "nobody", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown admin: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.LoginAdmin(context.Background(), "root", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("bad password: expected ErrInvalidCredentials, got %v", err)
	}
}
