package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/academyhq/academy-admin/internal/utils"
)

const testSecret = "test-secret"

// invoke runs the JWTAuth middleware against one request and returns the
// recorder plus whether the inner handler ran.
func invoke(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, called, c
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec, called, _ := invoke(t, "")
	if called {
		t.Fatal("handler ran without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing bearer token") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestJWTAuthRejectsNonBearerScheme(t *testing.T) {
	rec, called, _ := invoke(t, "Basic dXNlcjpwYXNz")
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	rec, called, _ := invoke(t, "Bearer not.a.jwt")
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid token") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 9, "c@example.com", "coach", 15)
	if err != nil {
		t.Fatal(err)
	}
	rec, called, _ := invoke(t, "Bearer "+tok.Token)
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":   uint64(9),
		"email": "c@example.com",
		"role":  "coach",
		"exp":   time.Now().UTC().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	rec, called, _ := invoke(t, "Bearer "+signed)
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
}

func TestJWTAuthRejectsUnsignedAlgorithm(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uint64(9), "role": "coach",
	})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	rec, called, _ := invoke(t, "Bearer "+signed)
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
}

func TestJWTAuthAcceptsValidTokenAndInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 9, "c@example.com", "coach", 15)
	if err != nil {
		t.Fatal(err)
	}
	rec, called, c := invoke(t, "Bearer "+tok.Token)
	if !called {
		t.Fatal("handler did not run for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got, ok := c.Get("user_id").(float64); !ok || got != 9 {
		t.Errorf("user_id claim = %#v", c.Get("user_id"))
	}
	if c.Get("email") != "c@example.com" || c.Get("role") != "coach" {
		t.Errorf("claims = %v / %v", c.Get("email"), c.Get("role"))
	}
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "parent")

	called := false
	h := RequireRole("coach")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "coach")

	called := false
	h := RequireRole("coach", "staff")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("called=%v status=%d", called, rec.Code)
	}
}
