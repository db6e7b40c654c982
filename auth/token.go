package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller of a request. A zero UserID never
// occurs; absence of identity is modelled by the context helpers, not here.
type Identity struct {
	UserID uint
	Email  string
}

type sessionClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. Tokens are
// stateless: everything needed to verify one is the secret and the clock.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *TokenService) Issue(userID uint, email string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Verify validates the signature and expiry of a token. Any failure —
// malformed input, bad signature, expiry — yields ok == false; callers treat
// that as an anonymous request, not as an error.
func (s *TokenService) Verify(tokenString string) (Identity, bool) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return Identity{}, false
	}

	return Identity{UserID: claims.UserID, Email: claims.Email}, true
}
