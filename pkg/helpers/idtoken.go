package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenVerifier validates bearer credentials issued by the identity
// provider and extracts the verified email claim. It can also mint tokens,
// which the seed command and tests use to act as the provider.
type IDTokenVerifier struct {
	Secret []byte
	TTL    time.Duration
}

var defaultVerifier *IDTokenVerifier

func NewIDTokenVerifier(secret string, ttl time.Duration) *IDTokenVerifier {
	v := &IDTokenVerifier{Secret: []byte(secret), TTL: ttl}
	defaultVerifier = v
	return v
}

// DefaultIDTokenVerifier returns the last constructed verifier (used for
// auto-wiring routes).
func DefaultIDTokenVerifier() *IDTokenVerifier { return defaultVerifier }

// IDClaims is the claim set of a verified identity token.
type IDClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify parses and validates an identity token, returning its claims.
// Any failure (expired, malformed, bad signature) is an error; the caller
// must treat it as an unauthorized credential.
func (v *IDTokenVerifier) Verify(tokenStr string) (*IDClaims, error) {
	claims := &IDClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Email == "" {
		return nil, errors.New("token has no email claim")
	}
	return claims, nil
}

// Issue mints an identity token for email, valid for the configured TTL.
func (v *IDTokenVerifier) Issue(email string) (string, time.Time, error) {
	exp := time.Now().Add(v.TTL)
	claims := &IDClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(v.Secret)
	return s, exp, err
}
