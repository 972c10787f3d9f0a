package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdeck/hr-admin-api/internal/api/metrics"
	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

// AuthService verifies credentials and issues bearer tokens for employees
// and admins.
type AuthService struct {
	employees ports.EmployeeRepository
	admins    ports.AdminRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(employees ports.EmployeeRepository, admins ports.AdminRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{employees: employees, admins: admins, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// LoginEmployee authenticates by email and password. Unknown email and wrong
// password collapse into the same ErrInvalidCredentials so responses cannot
// be used to enumerate accounts.
func (s *AuthService) LoginEmployee(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	emp, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			metrics.LoginsTotal.WithLabelValues(domain.RoleEmployee, "failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleEmployee, "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(emp.ID, domain.RoleEmployee)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleEmployee, "success").Inc()
	return token, emp, nil
}

// LoginAdmin authenticates by username and password, with the same
// enumeration-safe failure behaviour as LoginEmployee.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(admin.ID, domain.RoleAdmin)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "success").Inc()
	return token, admin, nil
}

// generateToken issues an HS256 token carrying the caller id and an explicit
// role claim. Role is a first-class claim rather than being inferred from
// which optional claims happen to be present.
func (s *AuthService) generateToken(id int64, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(id, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
