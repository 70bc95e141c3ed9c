package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// JWTService issues and verifies HS256-signed identity tokens. Tokens carry
// only the subject and timestamps; the role is looked up at request time so
// it cannot go stale inside an outstanding token.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds a token service around an immutable signing secret.
// Rotating the secret invalidates every outstanding token, which the
// stateless design accepts in exchange for having no session store.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token asserting subject, valid for the configured TTL.
func (s *JWTService) Issue(subject string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify returns the subject of a structurally valid, correctly signed,
// unexpired token. Every failure mode collapses to domain.ErrInvalidToken.
func (s *JWTService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
