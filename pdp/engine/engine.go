package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/metrics"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

// ResourceStore is the read side of persistence the engine needs. Missing
// records are reported with the matching not-found sentinel error.
type ResourceStore interface {
	FindUserByExternalID(ctx context.Context, externalID string) (*model.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindVehicleByExternalID(ctx context.Context, vehicleID string) (*model.Vehicle, error)
	FindVehicleByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error)
	FindRepairByID(ctx context.Context, id primitive.ObjectID) (*model.Repair, error)
	FindSelfCheckByID(ctx context.Context, id primitive.ObjectID) (*model.SelfCheck, error)
	FindGuardianRelationshipsByGuardianExternalID(ctx context.Context, externalID string) ([]model.GuardianRelationship, error)
	FindRepairStationByExternalID(ctx context.Context, externalID string) (*model.RepairStation, error)
}

// Engine decides access for (principal, resource, operation) triples. It
// keeps no state between calls.
type Engine struct {
	store         ResourceStore
	gate          *RoleGate
	lookupTimeout time.Duration
}

func NewEngine(store ResourceStore, gate *RoleGate, lookupTimeout time.Duration) *Engine {
	return &Engine{store: store, gate: gate, lookupTimeout: lookupTimeout}
}

// target is the resolved resource and the user id that owns it.
type target struct {
	kind    pdp_model.ResourceKind
	vehicle *model.Vehicle
	user    *model.User
	owner   *primitive.ObjectID
}

// Authorize returns a decision for the request. A non-nil error means the
// decision could not be made from the data (infrastructure failure), except
// for lookup timeouts, which come back as a RESOURCE_NOT_FOUND denial
// together with ErrLookupTimeout.
func (e *Engine) Authorize(ctx context.Context, req *pdp_model.AccessRequest) (*pdp_model.AccessDecision, error) {
	start := time.Now()
	decision, err := e.authorize(ctx, req)

	role := "anonymous"
	if req.Principal != nil {
		role = string(req.Principal.Role)
	}
	outcome := "error"
	if decision != nil {
		outcome = "allow"
		if !decision.Allowed {
			outcome = string(decision.DenyReason)
		}
	}
	metrics.RecordDecision(role, string(req.Resource.Kind), string(req.Operation), outcome)
	logger.Debug("Authorization decided",
		zap.String("role", role),
		zap.String("kind", string(req.Resource.Kind)),
		zap.String("resource", req.Resource.ID),
		zap.String("operation", string(req.Operation)),
		zap.String("outcome", outcome),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))

	return decision, err
}

func (e *Engine) authorize(ctx context.Context, req *pdp_model.AccessRequest) (*pdp_model.AccessDecision, error) {
	p := req.Principal
	if p == nil {
		return pdp_model.Deny(pdp_model.DenyNoCredential), nil
	}
	if !p.Valid() {
		return pdp_model.Deny(pdp_model.DenyInvalidCredential), nil
	}

	if e.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.lookupTimeout)
		defer cancel()
	}

	t, err := e.resolveTarget(ctx, req.Resource)
	if err != nil {
		return lookupFailure(err)
	}

	if p.IsAdmin() {
		d := pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnrestricted})
		d.Vehicle = t.vehicle
		return d, nil
	}

	if req.Operation == pdp_model.OperationAdmin {
		return pdp_model.Deny(pdp_model.DenyRoleForbidden), nil
	}

	subject, role, err := e.resolveSubject(ctx, p)
	if err != nil {
		return lookupFailure(err)
	}

	d, err := e.decide(ctx, req, p, role, subject, t)
	if d != nil {
		d.Vehicle = t.vehicle
		d.Subject = subject
	}
	return d, err
}

func (e *Engine) decide(ctx context.Context, req *pdp_model.AccessRequest, p *pdp_model.Principal, role model.Role, subject *model.User, t *target) (*pdp_model.AccessDecision, error) {
	gateKind := req.GateKind()

	if role == model.RoleRepairer {
		if !e.gate.Allowed(role, gateKind, req.Operation) {
			return pdp_model.Deny(pdp_model.DenyRoleForbidden), nil
		}
		d := pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnrestricted})
		if req.Operation == pdp_model.OperationCreate {
			stamp, err := e.repairerStamp(ctx, p, subject)
			if err != nil {
				return lookupFailure(err)
			}
			if stamp == nil {
				return pdp_model.Deny(pdp_model.DenyRoleForbidden), nil
			}
			d.Stamp = stamp
		}
		return d, nil
	}

	if req.Operation == pdp_model.OperationClaim {
		if t.kind != pdp_model.ResourceVehicle || !e.gate.Allowed(role, gateKind, req.Operation) {
			return pdp_model.Deny(pdp_model.DenyRoleForbidden), nil
		}
		if t.owner != nil {
			return pdp_model.Deny(pdp_model.DenyNotOwner), nil
		}
		return pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnowned}), nil
	}

	if t.owner == nil {
		// Unowned vehicles are claimable, and visible to users so they can
		// be claimed, but nobody acts on them as an owner.
		if role == model.RoleUser && req.Operation == pdp_model.OperationRead && t.kind == pdp_model.ResourceVehicle {
			return pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnowned}), nil
		}
		return pdp_model.Deny(pdp_model.DenyNotOwner), nil
	}
	owner := *t.owner

	switch role {
	case model.RoleGuardian:
		dependents, err := e.dependents(ctx, p.SubjectID)
		if err != nil {
			return lookupFailure(err)
		}
		if _, ok := dependents[owner]; !ok {
			return pdp_model.Deny(pdp_model.DenyNotOwner), nil
		}
	case model.RoleUser:
		if subject == nil || subject.ID != owner {
			return pdp_model.Deny(pdp_model.DenyNotOwner), nil
		}
	default:
		return pdp_model.Deny(pdp_model.DenyRoleForbidden), nil
	}

	if !e.gate.Allowed(role, gateKind, req.Operation) {
		return pdp_model.Deny(pdp_model.DenyRoleForbidden), nil
	}
	return pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeOwners, Owners: []primitive.ObjectID{owner}}), nil
}

// AuthorizeList returns the scope a principal may list records of kind in.
// Users see their own records, guardians those of every dependent, and
// repairers and admins everything readable to them.
func (e *Engine) AuthorizeList(ctx context.Context, p *pdp_model.Principal, kind pdp_model.ResourceKind) (*pdp_model.AccessDecision, error) {
	if p == nil {
		return pdp_model.Deny(pdp_model.DenyNoCredential), nil
	}
	if !p.Valid() {
		return pdp_model.Deny(pdp_model.DenyInvalidCredential), nil
	}
	if p.IsAdmin() {
		return pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnrestricted}), nil
	}

	if e.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.lookupTimeout)
		defer cancel()
	}

	subject, role, err := e.resolveSubject(ctx, p)
	if err != nil {
		return lookupFailure(err)
	}
	if !e.gate.Allowed(role, kind, pdp_model.OperationRead) {
		return pdp_model.Deny(pdp_model.DenyRoleForbidden), nil
	}

	var d *pdp_model.AccessDecision
	switch role {
	case model.RoleRepairer:
		d = pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnrestricted})
	case model.RoleGuardian:
		dependents, err := e.dependents(ctx, p.SubjectID)
		if err != nil {
			return lookupFailure(err)
		}
		owners := make([]primitive.ObjectID, 0, len(dependents))
		for id := range dependents {
			owners = append(owners, id)
		}
		d = pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeOwners, Owners: owners})
	default:
		owners := []primitive.ObjectID{}
		if subject != nil {
			owners = append(owners, subject.ID)
		}
		d = pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeOwners, Owners: owners})
	}
	d.Subject = subject
	return d, nil
}

// AuthorizeAdmin gates operations that have no resource to look up.
func (e *Engine) AuthorizeAdmin(p *pdp_model.Principal) *pdp_model.AccessDecision {
	switch {
	case p == nil:
		return pdp_model.Deny(pdp_model.DenyNoCredential)
	case !p.Valid():
		return pdp_model.Deny(pdp_model.DenyInvalidCredential)
	case p.IsAdmin():
		return pdp_model.Allow(pdp_model.Scope{Kind: pdp_model.ScopeUnrestricted})
	}
	return pdp_model.Deny(pdp_model.DenyRoleForbidden)
}

func (e *Engine) resolveTarget(ctx context.Context, ref pdp_model.ResourceRef) (*target, error) {
	switch ref.Kind {
	case pdp_model.ResourceVehicle:
		v, err := e.store.FindVehicleByExternalID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		return vehicleTarget(ref.Kind, v), nil

	case pdp_model.ResourceRepair:
		id, err := primitive.ObjectIDFromHex(ref.ID)
		if err != nil {
			return nil, mobility_errors.ErrRepairNotFound
		}
		r, err := e.store.FindRepairByID(ctx, id)
		if err != nil {
			return nil, err
		}
		v, err := e.store.FindVehicleByID(ctx, r.VehicleID)
		if err != nil {
			return nil, err
		}
		return vehicleTarget(ref.Kind, v), nil

	case pdp_model.ResourceSelfCheck:
		id, err := primitive.ObjectIDFromHex(ref.ID)
		if err != nil {
			return nil, mobility_errors.ErrSelfCheckNotFound
		}
		s, err := e.store.FindSelfCheckByID(ctx, id)
		if err != nil {
			return nil, err
		}
		v, err := e.store.FindVehicleByID(ctx, s.VehicleID)
		if err != nil {
			return nil, err
		}
		return vehicleTarget(ref.Kind, v), nil

	case pdp_model.ResourceUser:
		id, err := primitive.ObjectIDFromHex(ref.ID)
		if err != nil {
			return nil, mobility_errors.ErrUserNotFound
		}
		u, err := e.store.FindUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		owner := u.ID
		return &target{kind: ref.Kind, user: u, owner: &owner}, nil
	}
	return nil, mobility_errors.ErrResourceNotFound
}

func vehicleTarget(kind pdp_model.ResourceKind, v *model.Vehicle) *target {
	t := &target{kind: kind, vehicle: v}
	if v.Owned() {
		owner := *v.OwnerUserID
		t.owner = &owner
	}
	return t
}

// resolveSubject loads the caller's user record and settles the role the
// request is evaluated under. A role carried in the token wins; otherwise
// the stored role applies. A stored admin role is never honoured here.
func (e *Engine) resolveSubject(ctx context.Context, p *pdp_model.Principal) (*model.User, model.Role, error) {
	subject, err := e.store.FindUserByExternalID(ctx, p.SubjectID)
	if err != nil {
		if !errors.Is(err, mobility_errors.ErrUserNotFound) {
			return nil, "", err
		}
		subject = nil
	}

	role := p.Role
	if !p.RoleHinted && subject != nil && subject.Role.Valid() && subject.Role != model.RoleAdmin {
		role = subject.Role
	}
	return subject, role, nil
}

func (e *Engine) dependents(ctx context.Context, guardianExternalID string) (map[primitive.ObjectID]struct{}, error) {
	relationships, err := e.store.FindGuardianRelationshipsByGuardianExternalID(ctx, guardianExternalID)
	if err != nil {
		return nil, err
	}
	set := make(map[primitive.ObjectID]struct{}, len(relationships))
	for _, r := range relationships {
		set[r.UserID] = struct{}{}
	}
	return set, nil
}

// repairerStamp returns nil when the repairer is not bound to a station.
func (e *Engine) repairerStamp(ctx context.Context, p *pdp_model.Principal, subject *model.User) (*pdp_model.Stamp, error) {
	station, err := e.store.FindRepairStationByExternalID(ctx, p.SubjectID)
	if err != nil {
		if errors.Is(err, mobility_errors.ErrRepairStationNotFound) {
			return nil, nil
		}
		return nil, err
	}

	repairer := p.Name
	if repairer == "" && subject != nil {
		repairer = subject.Name
	}
	if repairer == "" {
		repairer = station.Label
	}
	return &pdp_model.Stamp{
		StationCode:  station.Code,
		StationLabel: station.Label,
		Repairer:     repairer,
	}, nil
}

func isNotFound(err error) bool {
	for _, target := range []error{
		mobility_errors.ErrResourceNotFound,
		mobility_errors.ErrVehicleNotFound,
		mobility_errors.ErrRepairNotFound,
		mobility_errors.ErrSelfCheckNotFound,
		mobility_errors.ErrUserNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func lookupFailure(err error) (*pdp_model.AccessDecision, error) {
	switch {
	case isNotFound(err):
		return pdp_model.Deny(pdp_model.DenyResourceNotFound), nil
	case errors.Is(err, context.DeadlineExceeded):
		return pdp_model.Deny(pdp_model.DenyResourceNotFound), fmt.Errorf("%w: %v", mobility_errors.ErrLookupTimeout, err)
	}
	return nil, err
}
