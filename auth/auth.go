// Package auth is the boundary to the external identity provider: it only
// verifies the access tokens the provider issues and extracts the user from
// their claims. Registration, login and email verification all happen
// upstream.
package auth

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// User is the authenticated caller as seen by handlers and services.
type User struct {
	ID            string
	Email         string
	EmailVerified bool
	Admin         bool
}

type Verifier struct{ secret []byte }

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

func (v *Verifier) Verify(tokenStr string) (User, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return User{}, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return User{}, ErrInvalidToken
	}
	return User{
		ID:            c.Subject,
		Email:         c.Email,
		EmailVerified: c.EmailVerified,
		Admin:         c.Role == RoleAdmin,
	}, nil
}
