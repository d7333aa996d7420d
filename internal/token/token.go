// Package token issues and verifies the JWTs used by the admin API:
// bearer access tokens from login, and short-lived single-purpose tokens
// for password reset links.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"skillforge/internal/models"
)

const (
	// AccessTTL is the lifetime of a login token.
	AccessTTL = 24 * time.Hour

	// ResetTTL is the lifetime of a password reset link.
	ResetTTL = time.Hour

	scopeAccess = "access"
	scopeReset  = "reset"
)

// Claims is the JWT payload for both token kinds. Scope distinguishes a
// login token from a reset token; the two are never interchangeable.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Signer creates and verifies HS256 tokens with a shared secret.
type Signer struct {
	secret []byte
}

// NewSigner returns a Signer using the given secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// IssueAccess creates a login token carrying the user's id and role.
func (s *Signer) IssueAccess(user *models.User) (string, error) {
	return s.issue(user.ID, string(user.Role), scopeAccess, AccessTTL)
}

// IssueReset creates a password reset token for the given user.
func (s *Signer) IssueReset(userID uuid.UUID) (string, error) {
	return s.issue(userID, "", scopeReset, ResetTTL)
}

func (s *Signer) issue(userID uuid.UUID, role, scope string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:  role,
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccess parses a login token, returning its claims. Expired,
// malformed, or reset-scoped tokens are rejected.
func (s *Signer) VerifyAccess(raw string) (*Claims, error) {
	return s.verify(raw, scopeAccess)
}

// VerifyReset parses a password reset token.
func (s *Signer) VerifyReset(raw string) (*Claims, error) {
	return s.verify(raw, scopeReset)
}

func (s *Signer) verify(raw, scope string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if claims.Scope != scope {
		return nil, fmt.Errorf("token scope %q not valid here", claims.Scope)
	}
	return claims, nil
}

// UserID returns the subject claim as a UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject: %w", err)
	}
	return id, nil
}
