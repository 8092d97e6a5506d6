package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

const pasetoFooter = "afElegance"

// PasetoIssuer issues v2.local tokens. Custom claims keep their JSON types;
// iat and exp are RFC 3339 strings as in the PASETO registered claims.
type PasetoIssuer struct {
	key []byte
	ttl time.Duration
	v2  *paseto.V2
}

var _ Issuer = (*PasetoIssuer)(nil)

func NewPasetoIssuer(key []byte, ttl time.Duration) (*PasetoIssuer, error) {
	if len(key) != 32 {
		return nil, errors.New("paseto key must be 32 bytes")
	}
	return &PasetoIssuer{key: key, ttl: ttl, v2: paseto.NewV2()}, nil
}

func (i *PasetoIssuer) Issue(claims Claims) (string, error) {
	if err := claims.checkReserved(); err != nil {
		return "", err
	}
	now := time.Now().UTC()
	payload := make(map[string]interface{}, len(claims)+2)
	for k, v := range claims {
		payload[k] = v
	}
	payload["iat"] = now.Format(time.RFC3339)
	payload["exp"] = now.Add(i.ttl).Format(time.RFC3339)

	token, err := i.v2.Encrypt(i.key, payload, pasetoFooter)
	if err != nil {
		return "", fmt.Errorf("encrypt token: %w", err)
	}
	return token, nil
}

func (i *PasetoIssuer) Verify(token string) (Claims, error) {
	var payload map[string]interface{}
	var footer string
	if err := i.v2.Decrypt(token, i.key, &payload, &footer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if footer != pasetoFooter {
		return nil, fmt.Errorf("%w: unexpected footer", ErrInvalidToken)
	}

	raw, _ := payload["exp"].(string)
	exp, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: missing expiration", ErrInvalidToken)
	}
	if !time.Now().Before(exp) {
		return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}
	return Claims(payload), nil
}
