package chi

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the JWT role claim granting admin access.
const RoleAdmin = "admin"

// AdminClaims are the JWT claims accepted on admin routes.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuthMiddleware returns a middleware that accepts a Bearer token that is
// either a configured API key or an HS256 JWT signed with jwtSecret carrying
// role=admin. If no keys and no secret are configured, authentication is
// disabled (pass-through).
func AdminAuthMiddleware(apiKeys []string, jwtSecret string) func(http.Handler) http.Handler {
	validKeys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			validKeys = append(validKeys, []byte(k))
		}
	}
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		// Auth disabled, pass everything through
		if len(validKeys) == 0 && len(secret) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, http.StatusUnauthorized, CodeUnauthorized, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					CodeUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			token := auth[len(bearerPrefix):]
			if matchesKey(validKeys, token) {
				next.ServeHTTP(w, r)
				return
			}
			if len(secret) > 0 {
				if err := verifyAdminToken(token, secret); err == nil {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "invalid credentials")
		})
	}
}

func matchesKey(keys [][]byte, token string) bool {
	t := []byte(token)
	for _, k := range keys {
		if subtle.ConstantTimeCompare(k, t) == 1 {
			return true
		}
	}
	return false
}

// verifyAdminToken checks signature, expiry and the admin role.
func verifyAdminToken(token string, secret []byte) error {
	var claims AdminClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	if claims.Role != RoleAdmin {
		return errors.New("token lacks admin role")
	}
	return nil
}
