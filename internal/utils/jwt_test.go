package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "voxai-test"
	testSignKey = "test-sign-key"
	testUserID  = "0198c2f3-7c1a-7bbb-9a55-000000000001"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, 7*24*time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", testUserID, time.Hour, testSignKey},
		{"empty user id", testIssuer, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, testUserID, 0, testSignKey},
		{"empty sign key", testIssuer, testUserID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

// TestGenerateJWTToken_ExpiryWindow verifies that the embedded validity
// window is exactly issued_at + duration.
func TestGenerateJWTToken_ExpiryWindow(t *testing.T) {
	const lifetime = 7 * 24 * time.Hour

	token, err := GenerateJWTToken(testIssuer, testUserID, lifetime, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	iat, err := parsed.Claims.GetIssuedAt()
	require.NoError(t, err)
	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)

	assert.Equal(t, lifetime, exp.Sub(iat.Time))
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
}

// TestValidateAndParseJWTToken_WrongKey verifies that a token signed with a
// different key fails signature verification, and that the failure is NOT
// reported as expiry.
func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, "other-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Expired verifies that an expired token with
// a valid signature surfaces jwt.ErrTokenExpired in the wrap chain.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey, testIssuer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Truncated verifies that chopping one
// character off a valid token invalidates it.
func TestValidateAndParseJWTToken_Truncated(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	truncated := token.SignedString[:len(token.SignedString)-1]
	_, err = ValidateAndParseJWTToken(truncated, testSignKey, testIssuer)
	require.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseTokenExpiry(t *testing.T) {
	const lifetime = time.Hour

	token, err := GenerateJWTToken(testIssuer, testUserID, lifetime, testSignKey)
	require.NoError(t, err)

	exp, err := ParseTokenExpiry(token.SignedString)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(lifetime), exp, 5*time.Second)
}

func TestParseTokenExpiry_Garbage(t *testing.T) {
	_, err := ParseTokenExpiry("garbage")
	assert.Error(t, err)
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testUserID, id)
}
