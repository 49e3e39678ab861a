package model

import (
	"github.com/dev-mohitbeniwal/mobility/model"
)

// Issuer names the trust domain that validated a principal.
type Issuer string

const (
	IssuerExternalIDP Issuer = "external_idp"
	IssuerLocalAdmin  Issuer = "local_admin"
)

// Principal is the authenticated actor for a single request.
type Principal struct {
	SubjectID string     `json:"subjectId"`
	Role      model.Role `json:"role"`
	Issuer    Issuer     `json:"issuer"`

	// RoleHinted is set when Role came from a token claim rather than the
	// default.
	RoleHinted bool `json:"-"`

	Name         string `json:"name,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	StationCode  string `json:"stationCode,omitempty"`
	StationLabel string `json:"stationLabel,omitempty"`
}

// Valid reports whether the principal carries exactly one known role and
// issuer. The admin role and the local admin issuer only appear together.
func (p *Principal) Valid() bool {
	if p == nil || !p.Role.Valid() {
		return false
	}
	switch p.Issuer {
	case IssuerLocalAdmin:
		return p.Role == model.RoleAdmin
	case IssuerExternalIDP:
		return p.SubjectID != "" && p.Role != model.RoleAdmin
	}
	return false
}

// IsAdmin holds only for principals minted from a local admin credential.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Issuer == IssuerLocalAdmin && p.Role == model.RoleAdmin
}
