// service/access_guard.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/mobility/audit"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

// AccessGuard runs every service call through the authorization engine and
// records the outcome in the audit log. Denials come back as errors that
// wrap the deny reason's sentinel.
type AccessGuard struct {
	engine *engine.Engine
	audit  audit.Service
}

func NewAccessGuard(e *engine.Engine, auditService audit.Service) *AccessGuard {
	return &AccessGuard{engine: e, audit: auditService}
}

func (g *AccessGuard) Require(ctx context.Context, p *pdp_model.Principal, ref pdp_model.ResourceRef, op pdp_model.Operation) (*pdp_model.AccessDecision, error) {
	return g.authorize(ctx, &pdp_model.AccessRequest{
		Principal: p,
		Resource:  ref,
		Operation: op,
		Timestamp: time.Now().UTC(),
	})
}

// RequireCreate authorizes adding a record of kind creates under ref.
func (g *AccessGuard) RequireCreate(ctx context.Context, p *pdp_model.Principal, ref pdp_model.ResourceRef, creates pdp_model.ResourceKind) (*pdp_model.AccessDecision, error) {
	return g.authorize(ctx, &pdp_model.AccessRequest{
		Principal: p,
		Resource:  ref,
		Operation: pdp_model.OperationCreate,
		Creates:   creates,
		Timestamp: time.Now().UTC(),
	})
}

func (g *AccessGuard) RequireList(ctx context.Context, p *pdp_model.Principal, kind pdp_model.ResourceKind) (*pdp_model.AccessDecision, error) {
	decision, err := g.engine.AuthorizeList(ctx, p, kind)
	return g.settle(ctx, p, pdp_model.ResourceRef{Kind: kind}, pdp_model.OperationRead, decision, err)
}

func (g *AccessGuard) RequireAdmin(ctx context.Context, p *pdp_model.Principal) (*pdp_model.AccessDecision, error) {
	decision := g.engine.AuthorizeAdmin(p)
	return g.settle(ctx, p, pdp_model.ResourceRef{}, pdp_model.OperationAdmin, decision, nil)
}

func (g *AccessGuard) authorize(ctx context.Context, req *pdp_model.AccessRequest) (*pdp_model.AccessDecision, error) {
	decision, err := g.engine.Authorize(ctx, req)
	return g.settle(ctx, req.Principal, req.Resource, req.Operation, decision, err)
}

func (g *AccessGuard) settle(ctx context.Context, p *pdp_model.Principal, ref pdp_model.ResourceRef, op pdp_model.Operation, decision *pdp_model.AccessDecision, err error) (*pdp_model.AccessDecision, error) {
	if decision == nil {
		logger.Error("Authorization failed", zap.Error(err),
			zap.String("kind", string(ref.Kind)),
			zap.String("resource", ref.ID))
		return nil, err
	}

	g.record(ctx, p, ref, op, decision)

	if !decision.Allowed {
		if err != nil {
			return decision, fmt.Errorf("%w: %w", decision.Err(), err)
		}
		return decision, decision.Err()
	}
	return decision, nil
}

func (g *AccessGuard) record(ctx context.Context, p *pdp_model.Principal, ref pdp_model.ResourceRef, op pdp_model.Operation, decision *pdp_model.AccessDecision) {
	if g.audit == nil {
		return
	}
	entry := audit.AuditLog{
		Timestamp:     time.Now().UTC(),
		Action:        string(op),
		ResourceKind:  string(ref.Kind),
		ResourceID:    ref.ID,
		AccessGranted: decision.Allowed,
		DenyReason:    string(decision.DenyReason),
	}
	if p != nil {
		entry.SubjectID = p.SubjectID
		entry.Role = string(p.Role)
		entry.Issuer = string(p.Issuer)
	}
	if err := g.audit.LogAccess(ctx, entry); err != nil {
		logger.Warn("Failed to write authorization audit log", zap.Error(err))
	}
}
