package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "12",
		"role": domain.RoleEmployee,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func runAuth(t *testing.T, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/employee/api/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	if code := httpStatus(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	_, err := runAuth(t, "Bearer not-a-token")
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	_, err := runAuth(t, "Bearer "+signToken(t, testSecret, claims))
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	_, err := runAuth(t, "Bearer "+signToken(t, "other-secret", validClaims()))
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_MissingSubject(t *testing.T) {
	claims := validClaims()
	delete(claims, "sub")
	_, err := runAuth(t, "Bearer "+signToken(t, testSecret, claims))
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_ValidBearerToken(t *testing.T) {
	c, err := runAuth(t, "Bearer "+signToken(t, testSecret, validClaims()))
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if id, _ := c.Get(CtxCallerID).(int64); id != 12 {
		t.Fatalf("caller id not injected: %v", c.Get(CtxCallerID))
	}
	if role, _ := c.Get(CtxRole).(string); role != domain.RoleEmployee {
		t.Fatalf("role not injected: %v", c.Get(CtxRole))
	}
}

func TestAuth_RawTokenWithoutScheme(t *testing.T) {
	c, err := runAuth(t, signToken(t, testSecret, validClaims()))
	if err != nil {
		t.Fatalf("raw token rejected: %v", err)
	}
	if id, _ := c.Get(CtxCallerID).(int64); id != 12 {
		t.Fatalf("caller id not injected: %v", c.Get(CtxCallerID))
	}
}
