package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uint(42),
		"org":  uint(7),
		"role": "admin",
		"name": "Boss",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func runAuth(t *testing.T, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, RequireAuth(testSecret)(next)(c)
}

func TestRequireAuthValidToken(t *testing.T) {
	c, err := runAuth(t, "Bearer "+signToken(t, testSecret, time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if UserID(c) != 42 || OrgID(c) != 7 || Role(c) != "admin" {
		t.Fatalf("claims not stashed: user=%d org=%d role=%q", UserID(c), OrgID(c), Role(c))
	}
}

func TestRequireAuthRejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", time.Hour)},
		{"expired", "Bearer " + signToken(t, testSecret, -time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runAuth(t, tc.header)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 HTTPError, got %v", err)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		wantOK  bool
	}{
		{"admin on admin route", "admin", []string{"admin"}, true},
		{"worker on admin route", "worker", []string{"admin"}, false},
		{"admin on shared route", "admin", []string{"worker", "admin"}, true},
		{"case insensitive", "Admin", []string{"admin"}, true},
		{"no role at all", "", []string{"admin"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.Set("role", tc.role)

			next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			err := RequireRole(tc.allowed...)(next)(c)

			if tc.wantOK && err != nil {
				t.Fatalf("expected pass, got %v", err)
			}
			if !tc.wantOK {
				he, ok := err.(*echo.HTTPError)
				if !ok || he.Code != http.StatusForbidden {
					t.Fatalf("expected 403 HTTPError, got %v", err)
				}
			}
		})
	}
}
