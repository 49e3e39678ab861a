package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

const firebaseIssuerPrefix = "https://securetoken.google.com/"

// FirebaseClaims are the ID token claims the API reads. Role is a custom
// claim set through the Firebase Admin SDK.
type FirebaseClaims struct {
	Role        string `json:"role,omitempty"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	jwt.RegisteredClaims
}

// KeySource resolves a signing key by key id.
type KeySource interface {
	Key(ctx context.Context, kid string) (interface{}, error)
}

// FirebaseAuthenticator verifies Firebase ID tokens (RS256).
type FirebaseAuthenticator struct {
	projectID string
	issuer    string
	keys      KeySource
	now       func() time.Time
}

var _ Authenticator = &FirebaseAuthenticator{}

func NewFirebaseAuthenticator(projectID string, keys KeySource) *FirebaseAuthenticator {
	return &FirebaseAuthenticator{
		projectID: projectID,
		issuer:    firebaseIssuerPrefix + projectID,
		keys:      keys,
		now:       time.Now,
	}
}

func (f *FirebaseAuthenticator) Name() string {
	return string(pdp_model.IssuerExternalIDP)
}

func (f *FirebaseAuthenticator) Authenticate(ctx context.Context, rawToken string) (*pdp_model.Principal, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(rawToken, &FirebaseClaims{})
	if err != nil || unverified.Method.Alg() != jwt.SigningMethodRS256.Alg() {
		return nil, nil
	}

	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return nil, invalid("id token without kid", nil)
	}

	key, err := f.keys.Key(ctx, kid)
	if err != nil {
		if errors.Is(err, mobility_errors.ErrUnknownSigningKey) {
			return nil, invalid("id token", err)
		}
		return nil, err
	}

	claims := &FirebaseClaims{}
	_, err = jwt.ParseWithClaims(rawToken, claims,
		func(*jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(f.issuer),
		jwt.WithAudience(f.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(f.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: id token: %w", mobility_errors.ErrInvalidCredential, mobility_errors.ErrCredentialExpired)
		}
		return nil, invalid("id token", err)
	}

	if claims.Subject == "" || len(claims.Subject) > 128 {
		return nil, invalid("id token subject", nil)
	}

	principal := &pdp_model.Principal{
		SubjectID:   claims.Subject,
		Role:        model.RoleUser,
		Issuer:      pdp_model.IssuerExternalIDP,
		Name:        claims.Name,
		PhoneNumber: claims.PhoneNumber,
	}
	if role, ok := roleHint(claims.Role); ok {
		principal.Role = role
		principal.RoleHinted = true
	}
	return principal, nil
}

// roleHint accepts the non-administrative roles only. Admin authority is
// granted by local admin tokens alone.
func roleHint(claim string) (model.Role, bool) {
	role := model.Role(claim)
	if !role.Valid() || role == model.RoleAdmin {
		return "", false
	}
	return role, true
}
