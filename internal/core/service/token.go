package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openpress/blog-system/internal/core/domain"
)

// TokenManager mints and validates the HS256 bearer tokens used by the
// API. Issuing and verification share one instance so both sides always
// agree on the secret and the pinned algorithm.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token carrying the user id as its subject,
// expiring exactly ttl after issuance.
func (m *TokenManager) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": m.now().Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token and returns the user id it carries.
// Malformed structure, a foreign or altered signature, a non-HS256
// algorithm, and a reached expiry all fail with ErrInvalidToken.
func (m *TokenManager) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}
