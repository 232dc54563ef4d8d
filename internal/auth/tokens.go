// Package auth issues and parses admin session tokens. Access control is
// mocked across the system: the role and tenant scope travel in the token and
// are surfaced to handlers, but nothing enforces tenant isolation.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"guest-portal-backend/internal/env"
	"guest-portal-backend/internal/model"
)

const tokenTTL = 12 * time.Hour

// Identity is the parsed session: who is acting and which tenant they may
// act for. TenantID is empty for super admins.
type Identity struct {
	UserID   string
	Email    string
	Role     model.Role
	TenantID string
}

func secret() []byte {
	return []byte(env.MustGet(env.AdminSecretKey))
}

func CreateToken(user model.User, validUntil int64) (string, error) {
	if validUntil == 0 {
		validUntil = time.Now().Add(tokenTTL).Unix()
	}

	claims := jwt.MapClaims{
		"id":       user.ID,
		"email":    user.Email,
		"role":     string(user.Role),
		"tenantId": user.TenantID,
		"exp":      validUntil,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret())
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func ParseToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("unauthorized: %v", err)
	}
	if !token.Valid {
		return Identity{}, fmt.Errorf("token is not valid - unauthorized")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("claims of unauthorized type")
	}

	identity := Identity{
		UserID:   stringClaim(claims, "id"),
		Email:    stringClaim(claims, "email"),
		Role:     model.Role(stringClaim(claims, "role")),
		TenantID: stringClaim(claims, "tenantId"),
	}
	if !identity.Role.Valid() {
		return Identity{}, fmt.Errorf("unknown role in token")
	}
	return identity, nil
}

// IdentityFromAuthorizationHeader parses a "Bearer <token>" header value.
func IdentityFromAuthorizationHeader(header string) (Identity, error) {
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return Identity{}, fmt.Errorf("missing bearer token")
	}
	return ParseToken(token)
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
