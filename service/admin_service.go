// service/admin_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/mobility/audit"
	"github.com/dev-mohitbeniwal/mobility/auth"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/secret"
)

type IAdminService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	QueryAuditLogs(ctx context.Context, p *pdp_model.Principal, query audit.Query) ([]audit.AuditLog, error)
}

type AdminService struct {
	store        Store
	guard        *AccessGuard
	tokens       *auth.AdminTokens
	hasher       *secret.PasswordHasher
	auditService audit.Service
}

var _ IAdminService = &AdminService{}

func NewAdminService(store Store, guard *AccessGuard, tokens *auth.AdminTokens, hasher *secret.PasswordHasher, auditService audit.Service) *AdminService {
	return &AdminService{
		store:        store,
		guard:        guard,
		tokens:       tokens,
		hasher:       hasher,
		auditService: auditService,
	}
}

// Login checks the password and issues an admin token carrying the
// admin's repair station. Unknown ids and wrong passwords are
// indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if req.LoginID == "" || req.Password == "" {
		return nil, mobility_errors.ErrInvalidLogin
	}

	admin, err := s.store.FindAdminByLoginID(ctx, req.LoginID)
	if errors.Is(err, mobility_errors.ErrAdminNotFound) {
		logger.Warn("Admin login for unknown id", zap.String("loginId", req.LoginID))
		return nil, mobility_errors.ErrInvalidLogin
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(req.Password, admin.PasswordHash) {
		logger.Warn("Admin login with wrong password", zap.String("loginId", req.LoginID))
		return nil, mobility_errors.ErrInvalidLogin
	}

	var stationLabel, stationCode string
	station, err := s.store.FindRepairStationByID(ctx, admin.RepairStationID)
	switch {
	case err == nil:
		stationLabel, stationCode = station.Label, station.Code
	case errors.Is(err, mobility_errors.ErrRepairStationNotFound):
		logger.Warn("Admin is bound to a missing repair station", zap.String("loginId", req.LoginID))
	default:
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(admin.ID.Hex(), stationLabel, stationCode)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin logged in", zap.String("loginId", req.LoginID))
	return &model.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AdminService) QueryAuditLogs(ctx context.Context, p *pdp_model.Principal, query audit.Query) ([]audit.AuditLog, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if s.auditService == nil {
		return []audit.AuditLog{}, nil
	}
	return s.auditService.QueryLogs(ctx, query)
}
