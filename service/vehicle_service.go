// service/vehicle_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/pdp/filter"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/secret"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type IVehicleService interface {
	GetVehicle(ctx context.Context, p *pdp_model.Principal, vehicleID string) (*model.Vehicle, error)
	GetVehicleByQRToken(ctx context.Context, p *pdp_model.Principal, token string) (*model.Vehicle, error)
	ListMyVehicles(ctx context.Context, p *pdp_model.Principal, limit, offset int) ([]*model.Vehicle, error)
	ClaimVehicle(ctx context.Context, p *pdp_model.Principal, vehicleID string, req model.ClaimRequest) (*model.Vehicle, error)
	GenerateVehicle(ctx context.Context, p *pdp_model.Principal, vehicleModel string) (*model.GeneratedVehicle, error)
	ListVehicles(ctx context.Context, p *pdp_model.Principal, limit, offset int) ([]*model.Vehicle, error)
	ListUserVehicles(ctx context.Context, p *pdp_model.Principal, userID string, limit, offset int) ([]*model.Vehicle, error)
}

type VehicleService struct {
	store          Store
	guard          *AccessGuard
	codec          *secret.Codec
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
	now            func() time.Time
}

var _ IVehicleService = &VehicleService{}

func NewVehicleService(store Store, guard *AccessGuard, codec *secret.Codec, validationUtil *util.ValidationUtil, cacheService *util.CacheService, eventBus *util.EventBus) *VehicleService {
	return &VehicleService{
		store:          store,
		guard:          guard,
		codec:          codec,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
		now:            time.Now,
	}
}

func (s *VehicleService) GetVehicle(ctx context.Context, p *pdp_model.Principal, vehicleID string) (*model.Vehicle, error) {
	decision, err := s.guard.Require(ctx, p, pdp_model.Vehicle(vehicleID), pdp_model.OperationRead)
	if err != nil {
		return nil, err
	}
	return decision.Vehicle, nil
}

// GetVehicleByQRToken reads the vehicle a printed QR token points at.
func (s *VehicleService) GetVehicleByQRToken(ctx context.Context, p *pdp_model.Principal, token string) (*model.Vehicle, error) {
	vehicleID, err := s.codec.Decode(token)
	if err != nil {
		logger.Warn("Rejected QR token", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrInvalidVehicleData, err)
	}
	return s.GetVehicle(ctx, p, vehicleID)
}

func (s *VehicleService) ListMyVehicles(ctx context.Context, p *pdp_model.Principal, limit, offset int) ([]*model.Vehicle, error) {
	decision, err := s.guard.RequireList(ctx, p, pdp_model.ResourceVehicle)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, decision, limit, offset)
}

func (s *VehicleService) ListVehicles(ctx context.Context, p *pdp_model.Principal, limit, offset int) ([]*model.Vehicle, error) {
	decision, err := s.guard.RequireAdmin(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, decision, limit, offset)
}

// ListUserVehicles lists the vehicles owned by one user.
func (s *VehicleService) ListUserVehicles(ctx context.Context, p *pdp_model.Principal, userID string, limit, offset int) ([]*model.Vehicle, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, mobility_errors.ErrUserNotFound
	}
	if _, err := s.store.FindUserByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListVehicles(ctx, filter.ForOwner(id), limit, offset)
}

func (s *VehicleService) list(ctx context.Context, decision *pdp_model.AccessDecision, limit, offset int) ([]*model.Vehicle, error) {
	constraint, err := filter.FromDecision(decision)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrInternalServer, err)
	}
	return s.store.ListVehicles(ctx, constraint, limit, offset)
}

// ClaimVehicle makes the caller the owner of an unowned vehicle, creating
// their user record on first use. Only one of several concurrent claims
// succeeds; the rest get ErrClaimConflict and keep no record created here.
func (s *VehicleService) ClaimVehicle(ctx context.Context, p *pdp_model.Principal, vehicleID string, req model.ClaimRequest) (*model.Vehicle, error) {
	if err := s.validationUtil.ValidateClaim(req); err != nil {
		return nil, err
	}

	decision, err := s.guard.Require(ctx, p, pdp_model.Vehicle(vehicleID), pdp_model.OperationClaim)
	if err != nil {
		return nil, err
	}

	if p.IsAdmin() {
		return nil, fmt.Errorf("%w: administrators cannot own vehicles", mobility_errors.ErrInvalidVehicleData)
	}

	owner := decision.Subject
	created := false
	if owner == nil {
		owner, created, err = s.ensureUser(ctx, p, req)
		if err != nil {
			return nil, err
		}
	}

	vehicle, err := s.store.ConditionallySetOwner(ctx, vehicleID, owner.ID, model.VehicleClaim{
		Model:        req.Model,
		PurchasedAt:  req.PurchasedAt,
		RegisteredAt: s.now().UTC(),
	})
	if err != nil {
		if created {
			s.discardUser(ctx, vehicleID, owner)
		}
		return nil, err
	}

	if created {
		s.eventBus.Publish(ctx, util.EventUserRegistered, *owner)
	}

	if err := s.cacheService.DeleteUser(ctx, owner.FirebaseUID); err != nil {
		logger.Warn("Failed to invalidate user cache", zap.Error(err))
	}
	s.eventBus.Publish(ctx, util.EventVehicleClaimed, *vehicle)
	logger.Info("Vehicle claimed",
		zap.String("vehicleId", vehicleID),
		zap.String("userID", owner.ID.Hex()))
	return vehicle, nil
}

// ensureUser reports whether the record was created by this call.
func (s *VehicleService) ensureUser(ctx context.Context, p *pdp_model.Principal, req model.ClaimRequest) (*model.User, bool, error) {
	name := req.Name
	if name == "" {
		name = p.Name
	}
	phone := req.PhoneNumber
	if phone == "" {
		phone = p.PhoneNumber
	}

	user := model.User{
		FirebaseUID: p.SubjectID,
		Name:        name,
		PhoneNumber: phone,
		Role:        model.RoleUser,
	}
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, false, err
	}

	created, err := s.store.CreateUser(ctx, &user)
	if errors.Is(err, mobility_errors.ErrUserConflict) {
		existing, err := s.store.FindUserByExternalID(ctx, p.SubjectID)
		return existing, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// discardUser rolls back a record created for a claim that lost the race.
// A concurrent claim by the same subject may have won with this record, in
// which case it stays.
func (s *VehicleService) discardUser(ctx context.Context, vehicleID string, user *model.User) {
	if v, err := s.store.FindVehicleByExternalID(ctx, vehicleID); err == nil && v.OwnerUserID != nil && *v.OwnerUserID == user.ID {
		return
	}
	if err := s.store.DeleteUser(ctx, user.ID); err != nil {
		logger.Warn("Failed to remove user record after lost claim",
			zap.Error(err),
			zap.String("userID", user.ID.Hex()))
	}
}

// GenerateVehicle issues a new unowned vehicle and the QR token printed on it.
func (s *VehicleService) GenerateVehicle(ctx context.Context, p *pdp_model.Principal, vehicleModel string) (*model.GeneratedVehicle, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}

	vehicle, err := s.store.CreateVehicle(ctx, &model.Vehicle{
		VehicleID: uuid.NewString(),
		Model:     vehicleModel,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Encode(vehicle.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrInternalServer, err)
	}
	logger.Info("Vehicle generated", zap.String("vehicleId", vehicle.VehicleID))
	return &model.GeneratedVehicle{Vehicle: vehicle, QRToken: token}, nil
}
