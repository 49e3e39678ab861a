// service/repair_service.go
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type IRepairService interface {
	CreateRepair(ctx context.Context, p *pdp_model.Principal, vehicleID string, repair model.Repair) (*model.Repair, error)
	GetRepair(ctx context.Context, p *pdp_model.Principal, vehicleID, repairID string) (*model.Repair, error)
	ListRepairs(ctx context.Context, p *pdp_model.Principal, vehicleID string, limit, offset int) ([]*model.Repair, error)
	ListAllRepairs(ctx context.Context, p *pdp_model.Principal, limit, offset int) ([]*model.Repair, error)
}

type RepairService struct {
	store          Store
	guard          *AccessGuard
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IRepairService = &RepairService{}

func NewRepairService(store Store, guard *AccessGuard, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *RepairService {
	return &RepairService{
		store:          store,
		guard:          guard,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// CreateRepair records a repair on a vehicle. The station and repairer
// fields always come from the caller's identity, never from the body.
func (s *RepairService) CreateRepair(ctx context.Context, p *pdp_model.Principal, vehicleID string, repair model.Repair) (*model.Repair, error) {
	decision, err := s.guard.RequireCreate(ctx, p, pdp_model.Vehicle(vehicleID), pdp_model.ResourceRepair)
	if err != nil {
		return nil, err
	}

	repair.VehicleID = decision.Vehicle.ID
	switch {
	case decision.Stamp != nil:
		repair.RepairStationCode = decision.Stamp.StationCode
		repair.RepairStationLabel = decision.Stamp.StationLabel
		repair.Repairer = decision.Stamp.Repairer
	case p.IsAdmin():
		repair.RepairStationCode = p.StationCode
		repair.RepairStationLabel = p.StationLabel
		if repair.Repairer == "" {
			repair.Repairer = p.StationLabel
		}
	}

	if err := s.validationUtil.ValidateRepair(repair); err != nil {
		return nil, err
	}

	created, err := s.store.CreateRepair(ctx, &repair)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, util.EventRepairCreated, *created)
	logger.Info("Repair recorded",
		zap.String("vehicleId", vehicleID),
		zap.String("stationCode", created.RepairStationCode))
	return created, nil
}

func (s *RepairService) GetRepair(ctx context.Context, p *pdp_model.Principal, vehicleID, repairID string) (*model.Repair, error) {
	decision, err := s.guard.Require(ctx, p, pdp_model.Repair(repairID), pdp_model.OperationRead)
	if err != nil {
		return nil, err
	}
	if decision.Vehicle == nil || decision.Vehicle.VehicleID != vehicleID {
		return nil, mobility_errors.ErrRepairNotFound
	}

	id, err := primitive.ObjectIDFromHex(repairID)
	if err != nil {
		return nil, mobility_errors.ErrRepairNotFound
	}
	return s.store.FindRepairByID(ctx, id)
}

func (s *RepairService) ListRepairs(ctx context.Context, p *pdp_model.Principal, vehicleID string, limit, offset int) ([]*model.Repair, error) {
	decision, err := s.guard.Require(ctx, p, pdp_model.Vehicle(vehicleID), pdp_model.OperationRead)
	if err != nil {
		return nil, err
	}
	id := decision.Vehicle.ID
	return s.store.ListRepairs(ctx, &id, limit, offset)
}

func (s *RepairService) ListAllRepairs(ctx context.Context, p *pdp_model.Principal, limit, offset int) ([]*model.Repair, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	return s.store.ListRepairs(ctx, nil, limit, offset)
}
