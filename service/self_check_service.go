// service/self_check_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type ISelfCheckService interface {
	CreateSelfCheck(ctx context.Context, p *pdp_model.Principal, vehicleID string, check model.SelfCheck) (*model.SelfCheck, error)
	GetSelfCheck(ctx context.Context, p *pdp_model.Principal, vehicleID, selfCheckID string) (*model.SelfCheck, error)
	ListSelfChecks(ctx context.Context, p *pdp_model.Principal, vehicleID string, limit, offset int) ([]*model.SelfCheck, error)
	SearchSelfChecks(ctx context.Context, p *pdp_model.Principal, query SelfCheckQuery) ([]*model.SelfCheck, error)
}

// SelfCheckQuery filters the admin self-check listing by calendar day.
// EndDate is inclusive; zero dates are open ends.
type SelfCheckQuery struct {
	StartDate time.Time
	EndDate   time.Time
	VehicleID string
	HasIssues bool
	Limit     int
	Offset    int
}

// SelfCheckCreated is published after a self-check is stored.
type SelfCheckCreated struct {
	SelfCheck model.SelfCheck
	Vehicle   model.Vehicle
}

type SelfCheckService struct {
	store           Store
	guard           *AccessGuard
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ISelfCheckService = &SelfCheckService{}

func NewSelfCheckService(store Store, guard *AccessGuard, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *SelfCheckService {
	service := &SelfCheckService{
		store:           store,
		guard:           guard,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventSelfCheckCreated, service.handleSelfCheckCreated)

	return service
}

func (s *SelfCheckService) CreateSelfCheck(ctx context.Context, p *pdp_model.Principal, vehicleID string, check model.SelfCheck) (*model.SelfCheck, error) {
	decision, err := s.guard.RequireCreate(ctx, p, pdp_model.Vehicle(vehicleID), pdp_model.ResourceSelfCheck)
	if err != nil {
		return nil, err
	}

	vehicle := decision.Vehicle
	if !vehicle.Owned() {
		return nil, fmt.Errorf("%w: vehicle has no owner", mobility_errors.ErrInvalidSelfCheckData)
	}
	check.VehicleID = vehicle.ID
	check.UserID = *vehicle.OwnerUserID

	if err := s.validationUtil.ValidateSelfCheck(check); err != nil {
		return nil, err
	}

	created, err := s.store.CreateSelfCheck(ctx, &check)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventSelfCheckCreated, SelfCheckCreated{SelfCheck: *created, Vehicle: *vehicle})
	return created, nil
}

func (s *SelfCheckService) GetSelfCheck(ctx context.Context, p *pdp_model.Principal, vehicleID, selfCheckID string) (*model.SelfCheck, error) {
	decision, err := s.guard.Require(ctx, p, pdp_model.SelfCheck(selfCheckID), pdp_model.OperationRead)
	if err != nil {
		return nil, err
	}
	if decision.Vehicle == nil || decision.Vehicle.VehicleID != vehicleID {
		return nil, mobility_errors.ErrSelfCheckNotFound
	}

	id, err := primitive.ObjectIDFromHex(selfCheckID)
	if err != nil {
		return nil, mobility_errors.ErrSelfCheckNotFound
	}
	return s.store.FindSelfCheckByID(ctx, id)
}

func (s *SelfCheckService) ListSelfChecks(ctx context.Context, p *pdp_model.Principal, vehicleID string, limit, offset int) ([]*model.SelfCheck, error) {
	decision, err := s.guard.Require(ctx, p, pdp_model.Vehicle(vehicleID), pdp_model.OperationRead)
	if err != nil {
		return nil, err
	}
	return s.store.ListSelfChecks(ctx, decision.Vehicle.ID, limit, offset)
}

func (s *SelfCheckService) SearchSelfChecks(ctx context.Context, p *pdp_model.Principal, query SelfCheckQuery) ([]*model.SelfCheck, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if !query.StartDate.IsZero() && !query.EndDate.IsZero() && query.EndDate.Before(query.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", mobility_errors.ErrInvalidSelfCheckData)
	}

	criteria := model.SelfCheckSearchCriteria{
		From:      query.StartDate,
		HasIssues: query.HasIssues,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}
	if !query.EndDate.IsZero() {
		criteria.Before = query.EndDate.AddDate(0, 0, 1)
	}
	if query.VehicleID != "" {
		vehicle, err := s.store.FindVehicleByExternalID(ctx, query.VehicleID)
		if err != nil {
			return nil, err
		}
		criteria.VehicleID = &vehicle.ID
	}
	return s.store.SearchSelfChecks(ctx, criteria)
}

// handleSelfCheckCreated sends the operator an SMS when a self-check of an
// owner who consented to messages reports symptoms.
func (s *SelfCheckService) handleSelfCheckCreated(ctx context.Context, event util.Event) error {
	created, ok := event.Payload.(SelfCheckCreated)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}

	anomalies := created.SelfCheck.Anomalies()
	if len(anomalies) == 0 {
		return nil
	}

	owner, err := s.store.FindUserByID(ctx, created.SelfCheck.UserID)
	if err != nil {
		return fmt.Errorf("load self-check owner: %w", err)
	}
	if !owner.SMSConsent {
		logger.Debug("Owner has not consented to SMS, skipping anomaly alert",
			zap.String("userID", owner.ID.Hex()))
		return nil
	}

	return s.notificationSvc.NotifySelfCheckAnomalies(ctx, &created.Vehicle, owner, anomalies)
}
