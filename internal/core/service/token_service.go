package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fintrack/finance-system/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService signs and verifies the HS256 bearer tokens used for
// stateless authentication. A single symmetric secret covers both issuance
// and validation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token with the subject and a fixed-TTL expiry.
func (s *TokenService) Issue(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Subject extracts the subject from a signature-verified token. Expiry is
// deliberately not checked here: the authentication middleware first resolves
// the subject, then decides validity with IsValid.
func (s *TokenService) Subject(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return "", domain.ErrMalformedToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrMalformedToken
	}
	return sub, nil
}

// IsValid reports whether the token's signature verifies and its expiry has
// not passed. It never returns an error; malformed input is simply invalid.
func (s *TokenService) IsValid(token string) bool {
	parsed, err := jwt.Parse(token, s.keyFunc)
	return err == nil && parsed.Valid
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}
