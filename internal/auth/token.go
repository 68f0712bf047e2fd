package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints bearer tokens. Tokens are opaque session keys: the server
// looks them up in the sessions table and never parses them.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// OpaqueIssuer issues 128-bit random tokens, hex encoded.
type OpaqueIssuer struct{}

// NewOpaqueIssuer creates an OpaqueIssuer.
func NewOpaqueIssuer() *OpaqueIssuer {
	return &OpaqueIssuer{}
}

// Issue returns a fresh random token.
func (OpaqueIssuer) Issue(uuid.UUID) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// JWTIssuer issues HS256-signed JWTs for clients that expect that format.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIssuer creates a JWTIssuer. The secret must not be empty.
func NewJWTIssuer(secret string) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt issuer: empty signing secret")
	}
	return &JWTIssuer{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs {sub, time, jti}. jti keeps two tokens issued in the same
// instant for the same user distinct.
func (i *JWTIssuer) Issue(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"time": i.now().Format(time.RFC3339Nano),
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
