package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/token"
)

func testUser() *models.User {
	return &models.User{
		ID:     42,
		Name:   "Ana Souza",
		Email:  "ana@clinica.com",
		Role:   models.RoleAdmin,
		Active: true,
	}
}

func TestIssueAndVerify(t *testing.T) {
	svc := token.NewService("test-secret", 8*time.Hour)

	signed, err := svc.Issue(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	assert.NoError(t, err)

	accountID, err := claims.AccountID()
	assert.NoError(t, err)
	assert.Equal(t, uint(42), accountID)
	assert.Equal(t, "ana@clinica.com", claims.Email)
	assert.Equal(t, "Ana Souza", claims.Name)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := token.NewService("test-secret", -1*time.Hour)

	signed, err := svc.Issue(testUser())
	assert.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := token.NewService("secret-a", 8*time.Hour)
	verifier := token.NewService("secret-b", 8*time.Hour)

	signed, err := issuer.Issue(testUser())
	assert.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := token.NewService("test-secret", 8*time.Hour)

	for _, raw := range []string{"", "abc", "aaa.bbb.ccc"} {
		_, err := svc.Verify(raw)
		assert.Error(t, err)
	}
}

func TestExpirySetFromTTL(t *testing.T) {
	svc := token.NewService("test-secret", 8*time.Hour)

	signed, err := svc.Issue(testUser())
	assert.NoError(t, err)

	claims, err := svc.Verify(signed)
	assert.NoError(t, err)

	gap := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 8*time.Hour, gap)
}

func TestAccountIDNonNumericSubject(t *testing.T) {
	claims := &token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "nao-numerico"},
	}

	_, err := claims.AccountID()
	assert.Error(t, err)
}
