package identity

import (
	"context"
	"fmt"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/port"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JWTVerifier validates HMAC-signed tokens locally. Used when no
// identity service URL is configured, mostly for development and tests.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// compile-time check: *JWTVerifier must satisfy port.IdentityVerifier
var _ port.IdentityVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
	}
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (db.UUID, error) {
	claims := jwt.MapClaims{}
	tok, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return db.UUID{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return db.UUID{}, ErrInvalidToken
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return db.UUID{}, ErrInvalidToken
	}
	return db.UUID(id), nil
}
