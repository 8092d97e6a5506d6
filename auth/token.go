package auth

import (
	"errors"
	"fmt"
	"time"
)

// Claims is the free-form payload a caller asks to be signed.
type Claims map[string]interface{}

// Email returns the "email" claim, or "" when absent.
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}

// Issuer signs claims into a bearer token and verifies tokens it issued.
type Issuer interface {
	Issue(claims Claims) (string, error)
	Verify(token string) (Claims, error)
}

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrReservedClaim = errors.New("exp and iat are set by the issuer")
	ErrEmptySecret   = errors.New("token secret must not be empty")
)

// reservedClaims are stamped by Issue and may not come from the caller.
var reservedClaims = []string{"exp", "iat"}

func (c Claims) checkReserved() error {
	for _, key := range reservedClaims {
		if _, ok := c[key]; ok {
			return fmt.Errorf("%w: payload already has %q", ErrReservedClaim, key)
		}
	}
	return nil
}

// NewIssuer builds the issuer for the configured token format.
func NewIssuer(format string, secret, pasetoKey []byte, ttl time.Duration) (Issuer, error) {
	switch format {
	case "jwt":
		return NewJWTIssuer(secret, ttl)
	case "paseto":
		return NewPasetoIssuer(pasetoKey, ttl)
	}
	return nil, fmt.Errorf("unknown token format %q", format)
}
