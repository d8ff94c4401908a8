// Package session verifies session tokens and tracks revoked ones.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// ErrInvalidToken is returned for malformed, expired or badly signed tokens.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the payload of a session token. Subject carries the open id.
type Claims struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	LoginMethod string `json:"loginMethod,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts the claims to the user fields they assert.
func (c *Claims) Identity() models.UserIdentity {
	id := models.UserIdentity{OpenID: c.Subject}
	if c.Name != "" {
		id.Name = &c.Name
	}
	if c.Email != "" {
		id.Email = &c.Email
	}
	if c.LoginMethod != "" {
		id.LoginMethod = &c.LoginMethod
	}
	return id
}

// Tokens signs and verifies HS256 session tokens.
type Tokens struct {
	secret []byte
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Sign issues a token for id valid for ttl.
func (t *Tokens) Sign(id models.UserIdentity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.OpenID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if id.Name != nil {
		claims.Name = *id.Name
	}
	if id.Email != nil {
		claims.Email = *id.Email
	}
	if id.LoginMethod != nil {
		claims.LoginMethod = *id.LoginMethod
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies raw and returns its claims. Tokens without a subject are rejected.
func (t *Tokens) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
