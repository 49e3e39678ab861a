// service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type RegisterRequest struct {
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber"`
	RecipientType string `json:"recipientType"`
	SMSConsent    bool   `json:"smsConsent"`
}

type RoleResponse struct {
	Role       model.Role `json:"role"`
	Registered bool       `json:"registered"`
}

type IUserService interface {
	Register(ctx context.Context, p *pdp_model.Principal, req RegisterRequest) (*model.User, error)
	GetMe(ctx context.Context, p *pdp_model.Principal) (*model.User, error)
	UpdateSMSConsent(ctx context.Context, p *pdp_model.Principal, consent bool) (*model.User, error)
	GetRole(ctx context.Context, p *pdp_model.Principal) (*RoleResponse, error)
	GetUser(ctx context.Context, p *pdp_model.Principal, userID string) (*model.User, error)
	ListUsers(ctx context.Context, p *pdp_model.Principal, criteria model.UserSearchCriteria) ([]*model.User, error)
	UpdateUserRole(ctx context.Context, p *pdp_model.Principal, userID string, role model.Role) (*model.User, error)
	UpdateUserProfile(ctx context.Context, p *pdp_model.Principal, userID string, update model.UserProfileUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, p *pdp_model.Principal, userID string) error
	AssignGuardian(ctx context.Context, p *pdp_model.Principal, userID, guardianExternalID string) (*model.GuardianRelationship, error)
}

type UserService struct {
	store          Store
	guard          *AccessGuard
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

func NewUserService(store Store, guard *AccessGuard, validationUtil *util.ValidationUtil, cacheService *util.CacheService, eventBus *util.EventBus) *UserService {
	service := &UserService{
		store:          store,
		guard:          guard,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}

	eventBus.Subscribe(util.EventUserRegistered, service.handleUserRegistered)

	return service
}

func (s *UserService) handleUserRegistered(ctx context.Context, event util.Event) error {
	user, ok := event.Payload.(model.User)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	logger.Info("User registered event received", zap.String("userID", user.ID.Hex()))
	return s.cacheService.SetUser(ctx, user)
}

// Register creates the caller's own user record.
func (s *UserService) Register(ctx context.Context, p *pdp_model.Principal, req RegisterRequest) (*model.User, error) {
	if err := requireExternal(p); err != nil {
		return nil, err
	}

	role := model.RoleUser
	if p.RoleHinted && p.Role != model.RoleAdmin {
		role = p.Role
	}
	user := model.User{
		FirebaseUID:   p.SubjectID,
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		Role:          role,
		RecipientType: req.RecipientType,
		SMSConsent:    req.SMSConsent,
	}
	if user.Name == "" {
		user.Name = p.Name
	}
	if user.PhoneNumber == "" {
		user.PhoneNumber = p.PhoneNumber
	}
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, err
	}

	created, err := s.store.CreateUser(ctx, &user)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, util.EventUserRegistered, *created)
	return created, nil
}

func (s *UserService) GetMe(ctx context.Context, p *pdp_model.Principal) (*model.User, error) {
	if err := requireExternal(p); err != nil {
		return nil, err
	}

	cached, err := s.cacheService.GetUser(ctx, p.SubjectID)
	if err != nil {
		logger.Warn("Failed to read user cache", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.store.FindUserByExternalID(ctx, p.SubjectID)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetUser(ctx, *user); err != nil {
		logger.Warn("Failed to cache user", zap.Error(err))
	}
	return user, nil
}

func (s *UserService) UpdateSMSConsent(ctx context.Context, p *pdp_model.Principal, consent bool) (*model.User, error) {
	me, err := s.GetMe(ctx, p)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.Require(ctx, p, pdp_model.User(me.ID.Hex()), pdp_model.OperationWrite); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateSMSConsent(ctx, me.ID, consent)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.FirebaseUID)
	return updated, nil
}

// GetRole reports the role requests from the caller are evaluated under.
func (s *UserService) GetRole(ctx context.Context, p *pdp_model.Principal) (*RoleResponse, error) {
	if p == nil {
		return nil, mobility_errors.ErrNoCredential
	}
	if p.IsAdmin() {
		return &RoleResponse{Role: model.RoleAdmin, Registered: true}, nil
	}

	user, err := s.store.FindUserByExternalID(ctx, p.SubjectID)
	if errors.Is(err, mobility_errors.ErrUserNotFound) {
		return &RoleResponse{Role: p.Role}, nil
	}
	if err != nil {
		return nil, err
	}

	role := p.Role
	if !p.RoleHinted && user.Role.Valid() && user.Role != model.RoleAdmin {
		role = user.Role
	}
	return &RoleResponse{Role: role, Registered: true}, nil
}

func (s *UserService) GetUser(ctx context.Context, p *pdp_model.Principal, userID string) (*model.User, error) {
	if _, err := s.guard.Require(ctx, p, pdp_model.User(userID), pdp_model.OperationRead); err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, mobility_errors.ErrUserNotFound
	}
	return s.store.FindUserByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, p *pdp_model.Principal, criteria model.UserSearchCriteria) ([]*model.User, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	return s.store.SearchUsers(ctx, criteria)
}

func (s *UserService) UpdateUserRole(ctx context.Context, p *pdp_model.Principal, userID string, role model.Role) (*model.User, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if !role.Valid() || role == model.RoleAdmin {
		return nil, fmt.Errorf("%w: role must be one of user, guardian, repairer", mobility_errors.ErrInvalidUserData)
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, mobility_errors.ErrUserNotFound
	}

	updated, err := s.store.UpdateUserRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.FirebaseUID)
	logger.Info("User role changed", zap.String("userID", userID), zap.String("role", string(role)))
	return updated, nil
}

// UpdateUserProfile edits the contact and consent fields of any user.
// Roles change through UpdateUserRole only.
func (s *UserService) UpdateUserProfile(ctx context.Context, p *pdp_model.Principal, userID string, update model.UserProfileUpdate) (*model.User, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateUserProfileUpdate(update); err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, mobility_errors.ErrUserNotFound
	}

	updated, err := s.store.UpdateUserProfile(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.FirebaseUID)
	logger.Info("User profile updated", zap.String("userID", userID))
	return updated, nil
}

// DeleteUser removes the user record, releases their vehicles and drops
// every guardian relationship pointing at them.
func (s *UserService) DeleteUser(ctx context.Context, p *pdp_model.Principal, userID string) error {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return mobility_errors.ErrUserNotFound
	}

	user, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	released, err := s.store.ReleaseVehicles(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteGuardianRelationships(ctx, id, user.FirebaseUID); err != nil {
		return err
	}
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, user.FirebaseUID)
	s.eventBus.Publish(ctx, util.EventUserDeleted, *user)
	logger.Info("User deleted",
		zap.String("userID", userID),
		zap.Int64("releasedVehicles", released))
	return nil
}

func (s *UserService) AssignGuardian(ctx context.Context, p *pdp_model.Principal, userID, guardianExternalID string) (*model.GuardianRelationship, error) {
	if _, err := s.guard.RequireAdmin(ctx, p); err != nil {
		return nil, err
	}
	if guardianExternalID == "" {
		return nil, fmt.Errorf("%w: guardian identity cannot be empty", mobility_errors.ErrInvalidUserData)
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, mobility_errors.ErrUserNotFound
	}
	if _, err := s.store.FindUserByID(ctx, id); err != nil {
		return nil, err
	}

	return s.store.CreateGuardianRelationship(ctx, model.GuardianRelationship{
		GuardianExternalID: guardianExternalID,
		UserID:             id,
	})
}

func (s *UserService) invalidate(ctx context.Context, firebaseUID string) {
	if err := s.cacheService.DeleteUser(ctx, firebaseUID); err != nil {
		logger.Warn("Failed to invalidate user cache", zap.Error(err))
	}
}

// requireExternal admits identity-provider principals only; admin accounts
// have no user record.
func requireExternal(p *pdp_model.Principal) error {
	switch {
	case p == nil:
		return mobility_errors.ErrNoCredential
	case !p.Valid():
		return mobility_errors.ErrInvalidCredential
	case p.Issuer != pdp_model.IssuerExternalIDP:
		return mobility_errors.ErrRoleForbidden
	}
	return nil
}
