package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

func TestFirebaseAuthenticator(t *testing.T) {
	key := newRSAKey(t)
	authenticator := NewFirebaseAuthenticator(testProjectID, staticKeys{"k1": &key.PublicKey})
	ctx := context.Background()

	t.Run("ValidDefaultsToUser", func(t *testing.T) {
		claims := validClaims("abc")
		claims.PhoneNumber = "+821012345678"

		principal, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k1", claims))
		require.NoError(t, err)
		assert.Equal(t, "abc", principal.SubjectID)
		assert.Equal(t, model.RoleUser, principal.Role)
		assert.Equal(t, pdp_model.IssuerExternalIDP, principal.Issuer)
		assert.False(t, principal.RoleHinted)
		assert.Equal(t, "+821012345678", principal.PhoneNumber)
	})

	t.Run("RoleHint", func(t *testing.T) {
		claims := validClaims("guardian-1")
		claims.Role = "guardian"

		principal, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k1", claims))
		require.NoError(t, err)
		assert.Equal(t, model.RoleGuardian, principal.Role)
		assert.True(t, principal.RoleHinted)
	})

	t.Run("AdminHintIgnored", func(t *testing.T) {
		claims := validClaims("sneaky")
		claims.Role = "admin"

		principal, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k1", claims))
		require.NoError(t, err)
		assert.Equal(t, model.RoleUser, principal.Role)
		assert.False(t, principal.RoleHinted)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := validClaims("abc")
		claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		_, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k1", claims))
		assert.ErrorIs(t, err, mobility_errors.ErrInvalidCredential)
		assert.ErrorIs(t, err, mobility_errors.ErrCredentialExpired)
	})

	t.Run("WrongAudience", func(t *testing.T) {
		claims := validClaims("abc")
		claims.Audience = jwt.ClaimStrings{"another-project"}

		_, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k1", claims))
		assert.ErrorIs(t, err, mobility_errors.ErrInvalidCredential)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		claims := validClaims("abc")
		claims.Issuer = "https://accounts.example.com"

		_, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k1", claims))
		assert.ErrorIs(t, err, mobility_errors.ErrInvalidCredential)
	})

	t.Run("UnknownKid", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k2", validClaims("abc")))
		assert.ErrorIs(t, err, mobility_errors.ErrInvalidCredential)
	})

	t.Run("SignedByAnotherKey", func(t *testing.T) {
		other := newRSAKey(t)
		_, err := authenticator.Authenticate(ctx, signIDToken(t, other, "k1", validClaims("abc")))
		assert.ErrorIs(t, err, mobility_errors.ErrInvalidCredential)
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, signIDToken(t, key, "k1", validClaims("")))
		assert.ErrorIs(t, err, mobility_errors.ErrInvalidCredential)
	})

	t.Run("NotApplicableToHS256", func(t *testing.T) {
		admin, err := NewAdminTokens("admin-secret", time.Hour)
		require.NoError(t, err)
		raw, _, err := admin.Issue("admin01", "label", "code")
		require.NoError(t, err)

		principal, err := authenticator.Authenticate(ctx, raw)
		assert.NoError(t, err)
		assert.Nil(t, principal)
	})
}
