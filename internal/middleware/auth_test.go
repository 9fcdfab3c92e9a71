package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "tester",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func operatorProtected(secret string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return RequireOperator(secret)(ok)
}

func TestRequireOperator_ValidToken(t *testing.T) {
	handler := operatorProtected("sekret")

	req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "sekret", "operator"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
}

func TestRequireOperator_MissingToken(t *testing.T) {
	handler := operatorProtected("sekret")

	req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestRequireOperator_WrongSecret(t *testing.T) {
	handler := operatorProtected("sekret")

	req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other", "operator"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestRequireOperator_WrongRole(t *testing.T) {
	handler := operatorProtected("sekret")

	req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "sekret", "viewer"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", rec.Code)
	}
}

func TestRequireOperator_EmptySecretDisablesCheck(t *testing.T) {
	handler := operatorProtected("")

	req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected auth disabled with empty secret, got %d", rec.Code)
	}
}
