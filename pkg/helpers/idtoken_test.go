package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDToken_IssueVerifyRoundTrip(t *testing.T) {
	v := NewIDTokenVerifier("secret", time.Hour)

	token, exp, err := v.Issue("a@x.com")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIDToken_WrongSecretRejected(t *testing.T) {
	issuer := NewIDTokenVerifier("secret-a", time.Hour)
	token, _, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	v := NewIDTokenVerifier("secret-b", time.Hour)
	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestIDToken_ExpiredRejected(t *testing.T) {
	v := NewIDTokenVerifier("secret", -time.Minute)
	token, _, err := v.Issue("a@x.com")
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestIDToken_MissingEmailClaimRejected(t *testing.T) {
	v := NewIDTokenVerifier("secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tkn.SignedString(v.Secret)
	require.NoError(t, err)

	_, err = v.Verify(s)
	assert.Error(t, err)
}

func TestIDToken_NonHMACSigningRejected(t *testing.T) {
	v := NewIDTokenVerifier("secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodNone, &IDClaims{Email: "a@x.com"})
	s, err := tkn.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(s)
	assert.Error(t, err)
}
