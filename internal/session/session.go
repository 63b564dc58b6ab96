package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie issued at login.
const CookieName = "emp_session"

var ErrInvalidSession = errors.New("invalid or malformed session")

// Claims is the payload of the signed session cookie: the authenticated
// user's identifier and display name.
type Claims struct {
	UserID int64  `json:"uid"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Mint signs a session token for the given user.
func Mint(secret string, userID int64, name string) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates a session token and returns its claims.
// Any signature or format problem is reported as ErrInvalidSession.
func Parse(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
