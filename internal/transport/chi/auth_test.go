package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testJWTSecret = "jwt-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, role string, exp time.Time) string {
	t.Helper()
	claims := AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "editor",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func serveWithAuth(h http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/api/v1/admin/entries", http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware_NoCredentials_PassThrough(t *testing.T) {
	for _, keys := range [][]string{nil, {"", ""}} {
		h := AdminAuthMiddleware(keys, "")(okHandler())
		if rr := serveWithAuth(h, ""); rr.Code != http.StatusOK {
			t.Errorf("keys %q: got %d, want %d", keys, rr.Code, http.StatusOK)
		}
	}
}

func TestAuthMiddleware_MissingHeader_401(t *testing.T) {
	h := AdminAuthMiddleware([]string{"secret"}, "")(okHandler())
	rr := serveWithAuth(h, "")

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != CodeUnauthorized {
		t.Errorf("error code: got %s, want %s", errResp.Code, CodeUnauthorized)
	}
}

func TestAuthMiddleware_APIKeys(t *testing.T) {
	h := AdminAuthMiddleware([]string{"key1", "key2"}, "")(okHandler())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"first key", "Bearer key1", http.StatusOK},
		{"second key", "Bearer key2", http.StatusOK},
		{"wrong key", "Bearer wrong-key", http.StatusUnauthorized},
		{"basic scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rr := serveWithAuth(h, tt.header); rr.Code != tt.want {
				t.Errorf("got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_JWT(t *testing.T) {
	h := AdminAuthMiddleware(nil, testJWTSecret)(okHandler())
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"admin", signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), RoleAdmin, future), http.StatusOK},
		{"non-admin role", signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), "reader", future), http.StatusUnauthorized},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), RoleAdmin, past), http.StatusUnauthorized},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), RoleAdmin, future), http.StatusUnauthorized},
		{"HS512 rejected", signToken(t, jwt.SigningMethodHS512, []byte(testJWTSecret), RoleAdmin, future), http.StatusUnauthorized},
		{"garbage", "not.a.jwt", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rr := serveWithAuth(h, "Bearer "+tt.token); rr.Code != tt.want {
				t.Errorf("got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_KeyOrJWT(t *testing.T) {
	h := AdminAuthMiddleware([]string{"key1"}, testJWTSecret)(okHandler())
	token := signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), RoleAdmin, time.Now().Add(time.Hour))

	for _, header := range []string{"Bearer key1", "Bearer " + token} {
		if rr := serveWithAuth(h, header); rr.Code != http.StatusOK {
			t.Errorf("%s: got %d, want %d", header, rr.Code, http.StatusOK)
		}
	}
}
