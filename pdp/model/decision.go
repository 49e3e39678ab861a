package model

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
)

type DenyReason string

const (
	DenyNoCredential      DenyReason = "NO_CREDENTIAL"
	DenyInvalidCredential DenyReason = "INVALID_CREDENTIAL"
	DenyNotOwner          DenyReason = "NOT_OWNER"
	DenyRoleForbidden     DenyReason = "ROLE_FORBIDDEN"
	DenyResourceNotFound  DenyReason = "RESOURCE_NOT_FOUND"
)

// Err maps the reason onto its sentinel error.
func (r DenyReason) Err() error {
	switch r {
	case DenyNoCredential:
		return mobility_errors.ErrNoCredential
	case DenyInvalidCredential:
		return mobility_errors.ErrInvalidCredential
	case DenyNotOwner:
		return mobility_errors.ErrNotOwner
	case DenyRoleForbidden:
		return mobility_errors.ErrRoleForbidden
	case DenyResourceNotFound:
		return mobility_errors.ErrResourceNotFound
	}
	return nil
}

// ReasonFor recovers the deny reason an error stands for. A lost claim race
// counts as NOT_OWNER. Errors that are not denials yield "".
func ReasonFor(err error) DenyReason {
	if err == nil {
		return ""
	}
	if errors.Is(err, mobility_errors.ErrClaimConflict) {
		return DenyNotOwner
	}
	for _, r := range []DenyReason{DenyNoCredential, DenyInvalidCredential, DenyNotOwner, DenyRoleForbidden, DenyResourceNotFound} {
		if errors.Is(err, r.Err()) {
			return r
		}
	}
	return ""
}

type ScopeKind string

const (
	// ScopeUnrestricted applies no owner constraint.
	ScopeUnrestricted ScopeKind = "unrestricted"
	// ScopeOwners restricts to records owned by one of Scope.Owners.
	ScopeOwners ScopeKind = "owners"
	// ScopeUnowned restricts to vehicles without an owner.
	ScopeUnowned ScopeKind = "unowned"
)

type Scope struct {
	Kind   ScopeKind            `json:"kind"`
	Owners []primitive.ObjectID `json:"owners,omitempty"`
}

// Stamp is the identity written onto records a repairer creates.
type Stamp struct {
	StationCode  string `json:"stationCode"`
	StationLabel string `json:"stationLabel"`
	Repairer     string `json:"repairer"`
}

type AccessDecision struct {
	Allowed    bool       `json:"allowed"`
	DenyReason DenyReason `json:"denyReason,omitempty"`
	Scope      *Scope     `json:"scope,omitempty"`
	Stamp      *Stamp     `json:"stamp,omitempty"`

	// Records resolved while deciding, handed back so callers need not
	// repeat the lookups.
	Vehicle *model.Vehicle `json:"-"`
	Subject *model.User    `json:"-"`
}

func Allow(scope Scope) *AccessDecision {
	return &AccessDecision{Allowed: true, Scope: &scope}
}

func Deny(reason DenyReason) *AccessDecision {
	return &AccessDecision{DenyReason: reason}
}

// Err returns nil for an allowed decision and the deny reason's sentinel
// otherwise.
func (d *AccessDecision) Err() error {
	if d == nil {
		return mobility_errors.ErrInternalServer
	}
	if d.Allowed {
		return nil
	}
	return d.DenyReason.Err()
}
