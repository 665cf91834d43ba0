package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestCoachTokenRoundTrip(t *testing.T) {
	tokenString, err := CreateCoachToken()
	assert.Nil(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := ParseToken(tokenString)
	assert.Nil(t, err)
	assert.True(t, token.Valid)

	claims := Claims{}
	claims.FromJWTClaims(token.Claims)
	assert.Equal(t, RoleCoach, claims.Role)
	assert.Nil(t, claims.Valid())
	assert.Greater(t, claims.Exp, time.Now().Unix())
}

func TestParseTokenRejectsTampering(t *testing.T) {
	tokenString, err := CreateCoachToken()
	assert.Nil(t, err)

	_, err = ParseToken(tokenString + "x")
	assert.NotNil(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": RoleCoach,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	forgedString, err := forged.SignedString([]byte("wrong-secret"))
	assert.Nil(t, err)
	_, err = ParseToken(forgedString)
	assert.NotNil(t, err)
}

func TestExpiredClaims(t *testing.T) {
	claims := Claims{Role: RoleCoach, Exp: time.Now().Add(-time.Minute).Unix()}
	assert.NotNil(t, claims.Valid())
}
