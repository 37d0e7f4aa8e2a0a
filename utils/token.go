package utils

import (
	"fmt"
	"time"

	"dispatch-backend/config"

	"github.com/golang-jwt/jwt/v5"
)

// AuthUser is the identity a verified bearer token resolves to.
type AuthUser struct {
	UserID uint
	Role   string
}

// IssueToken signs a bearer token embedding the user id and role, valid for
// the configured TTL (7 days by default).
func IssueToken(cfg *config.Config, userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(cfg.JWT.TTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken verifies signature and expiry and extracts the identity.
func ParseToken(cfg *config.Config, tokenString string) (*AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return nil, fmt.Errorf("userId not found in token")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("role not found in token")
	}

	return &AuthUser{UserID: uint(userID), Role: role}, nil
}
