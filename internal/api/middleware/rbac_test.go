package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

func runRBAC(t *testing.T, role interface{}, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(CtxRole, role)
	}

	handler := RBAC(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	if err := runRBAC(t, domain.RoleAdmin, domain.RoleAdmin); err != nil {
		t.Fatalf("admin refused on admin route: %v", err)
	}
}

func TestRBAC_RejectsOtherRole(t *testing.T) {
	err := runRBAC(t, domain.RoleEmployee, domain.RoleAdmin)
	if code := httpStatus(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	err := runRBAC(t, nil, domain.RoleAdmin)
	if code := httpStatus(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}
