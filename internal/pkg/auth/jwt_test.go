package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooldash/internal/app/models"
)

func testService(ttl time.Duration) *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: ttl, TokenIssuer: "test"})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := models.User{ID: "u1", Email: "admin@school.com", Role: models.RoleSchoolAdmin, SchoolID: "s1"}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user, claims.User())
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(models.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, _, err := testService(-time.Minute).GenerateToken(models.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = testService(time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExpiryOf(t *testing.T) {
	token, _, err := testService(2 * time.Hour).GenerateToken(models.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	exp, err := ExpiryOf(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, 5*time.Second)

	_, err = ExpiryOf("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
