package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// CreateAccessToken mints a token the way the identity provider does. Used by
// tests and local tooling; production tokens come from the provider.
func CreateAccessToken(secret []byte, sub, email, role string, emailVerified bool, ttl time.Duration) (string, error) {
	claims := Claims{
		Email:         email,
		Role:          role,
		EmailVerified: emailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
