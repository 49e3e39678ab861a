package model_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

func TestAccessDecisionErr(t *testing.T) {
	allowed := pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnrestricted})
	assert.NoError(t, allowed.Err())
	assert.Empty(t, allowed.DenyReason)

	assert.ErrorIs(t, pdp_model.Deny(pdp_model.DenyNotOwner).Err(), mobility_errors.ErrNotOwner)
	assert.ErrorIs(t, pdp_model.Deny(pdp_model.DenyRoleForbidden).Err(), mobility_errors.ErrRoleForbidden)
	assert.ErrorIs(t, pdp_model.Deny(pdp_model.DenyResourceNotFound).Err(), mobility_errors.ErrResourceNotFound)
	assert.ErrorIs(t, pdp_model.Deny(pdp_model.DenyInvalidCredential).Err(), mobility_errors.ErrInvalidCredential)
}

func TestPrincipalValid(t *testing.T) {
	assert.True(t, (&pdp_model.Principal{Role: model.RoleAdmin, Issuer: pdp_model.IssuerLocalAdmin}).Valid())
	assert.False(t, (&pdp_model.Principal{Role: model.RoleUser, Issuer: pdp_model.IssuerLocalAdmin}).Valid())
	assert.True(t, (&pdp_model.Principal{SubjectID: "abc", Role: model.RoleGuardian, Issuer: pdp_model.IssuerExternalIDP}).Valid())
	assert.False(t, (&pdp_model.Principal{Role: model.RoleUser, Issuer: pdp_model.IssuerExternalIDP}).Valid())
	assert.False(t, (&pdp_model.Principal{SubjectID: "abc", Role: "owner", Issuer: pdp_model.IssuerExternalIDP}).Valid())

	assert.False(t, (&pdp_model.Principal{SubjectID: "abc", Role: model.RoleAdmin, Issuer: pdp_model.IssuerExternalIDP}).Valid())

	var nilPrincipal *pdp_model.Principal
	assert.False(t, nilPrincipal.Valid())
}

func TestPrincipalIsAdmin(t *testing.T) {
	assert.True(t, (&pdp_model.Principal{SubjectID: "admin01", Role: model.RoleAdmin, Issuer: pdp_model.IssuerLocalAdmin}).IsAdmin())
	assert.False(t, (&pdp_model.Principal{SubjectID: "abc", Role: model.RoleAdmin, Issuer: pdp_model.IssuerExternalIDP}).IsAdmin())
	assert.False(t, (&pdp_model.Principal{SubjectID: "abc", Role: model.RoleAdmin}).IsAdmin())
	assert.False(t, (&pdp_model.Principal{SubjectID: "abc", Role: model.RoleUser, Issuer: pdp_model.IssuerExternalIDP}).IsAdmin())

	var nilPrincipal *pdp_model.Principal
	assert.False(t, nilPrincipal.IsAdmin())
}

func TestReasonFor(t *testing.T) {
	assert.Equal(t, pdp_model.DenyNotOwner, pdp_model.ReasonFor(fmt.Errorf("claim: %w", mobility_errors.ErrClaimConflict)))
	assert.Equal(t, pdp_model.DenyInvalidCredential, pdp_model.ReasonFor(fmt.Errorf("%w: %w", mobility_errors.ErrInvalidCredential, mobility_errors.ErrCredentialExpired)))
	assert.Equal(t, pdp_model.DenyResourceNotFound, pdp_model.ReasonFor(mobility_errors.ErrResourceNotFound))
	assert.Empty(t, pdp_model.ReasonFor(mobility_errors.ErrDatabaseOperation))
	assert.Empty(t, pdp_model.ReasonFor(nil))
}
