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

const DefaultAdminTokenTTL = 24 * time.Hour

// AdminClaims are carried by dashboard tokens issued at /admin/login.
type AdminClaims struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	StationCode string `json:"stationCode,omitempty"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// AdminTokens issues and verifies HS256 admin tokens.
type AdminTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ Authenticator = &AdminTokens{}

func NewAdminTokens(secret string, ttl time.Duration) (*AdminTokens, error) {
	if secret == "" {
		return nil, fmt.Errorf("admin token secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultAdminTokenTTL
	}
	return &AdminTokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (a *AdminTokens) Name() string {
	return string(pdp_model.IssuerLocalAdmin)
}

func (a *AdminTokens) TTL() time.Duration {
	return a.ttl
}

// Issue signs a token for an admin account bound to a repair station.
func (a *AdminTokens) Issue(adminID, stationLabel, stationCode string) (string, time.Time, error) {
	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := AdminClaims{
		ID:          adminID,
		Label:       stationLabel,
		StationCode: stationCode,
		Role:        string(model.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, expiresAt, nil
}

func (a *AdminTokens) Authenticate(ctx context.Context, rawToken string) (*pdp_model.Principal, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(rawToken, &AdminClaims{})
	if err != nil || unverified.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, nil
	}

	claims := &AdminClaims{}
	_, err = jwt.ParseWithClaims(rawToken, claims,
		func(*jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: admin token: %w", mobility_errors.ErrInvalidCredential, mobility_errors.ErrCredentialExpired)
		}
		return nil, invalid("admin token", err)
	}

	if claims.Role != string(model.RoleAdmin) || claims.ID == "" {
		return nil, invalid("admin token without admin claims", nil)
	}

	return &pdp_model.Principal{
		SubjectID:    claims.ID,
		Role:         model.RoleAdmin,
		Issuer:       pdp_model.IssuerLocalAdmin,
		Name:         claims.Label,
		StationCode:  claims.StationCode,
		StationLabel: claims.Label,
	}, nil
}
