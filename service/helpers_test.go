package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dev-mohitbeniwal/mobility/auth"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/secret"
	"github.com/dev-mohitbeniwal/mobility/service"
	"github.com/dev-mohitbeniwal/mobility/test/fake"
	mock_audit "github.com/dev-mohitbeniwal/mobility/test/mock"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type smsOutbox struct {
	mu       sync.Mutex
	to       []string
	messages []string
}

func (o *smsOutbox) Send(ctx context.Context, to, body string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.to = append(o.to, to)
	o.messages = append(o.messages, body)
	return nil
}

func (o *smsOutbox) sent() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.messages...)
}

type harness struct {
	store    *fake.Store
	services *service.Services
	bus      *util.EventBus
	outbox   *smsOutbox
	audit    *mock_audit.MockAuditService
	codec    *secret.Codec
	tokens   *auth.AdminTokens
	hasher   *secret.PasswordHasher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := fake.NewStore()
	gate, err := engine.NewRoleGate()
	require.NoError(t, err)

	auditService := &mock_audit.MockAuditService{}
	auditService.On("LogAccess", mock.Anything, mock.Anything).Return(nil)

	codec, err := secret.NewCodec("server-secret", "keySalt", "salt", "pepper")
	require.NoError(t, err)
	tokens, err := auth.NewAdminTokens("admin-secret", time.Hour)
	require.NoError(t, err)
	hasher := secret.NewPasswordHasher("pepper", 4)

	h := &harness{
		store:  store,
		bus:    util.NewEventBus(),
		outbox: &smsOutbox{},
		audit:  auditService,
		codec:  codec,
		tokens: tokens,
		hasher: hasher,
	}
	h.services = service.InitializeServices(service.Dependencies{
		Store:           store,
		Engine:          engine.NewEngine(store, gate, time.Second),
		AuditService:    auditService,
		Codec:           codec,
		AdminTokens:     tokens,
		PasswordHasher:  hasher,
		ValidationUtil:  util.NewValidationUtil(),
		CacheService:    util.NewCacheService(nil, time.Minute),
		NotificationSvc: util.NewNotificationService(h.outbox, "01099990000"),
		EventBus:        h.bus,
	})
	t.Cleanup(h.bus.Wait)
	return h
}

func (h *harness) user(t *testing.T, uid string, consent bool) *model.User {
	t.Helper()
	u, err := h.store.CreateUser(context.Background(), &model.User{FirebaseUID: uid, Name: uid, Role: model.RoleUser, SMSConsent: consent})
	require.NoError(t, err)
	return u
}

func (h *harness) vehicle(t *testing.T, vehicleID string, owner *primitive.ObjectID) *model.Vehicle {
	t.Helper()
	v, err := h.store.CreateVehicle(context.Background(), &model.Vehicle{VehicleID: vehicleID, OwnerUserID: owner})
	require.NoError(t, err)
	return v
}

func userPrincipal(uid string) *pdp_model.Principal {
	return &pdp_model.Principal{SubjectID: uid, Role: model.RoleUser, Issuer: pdp_model.IssuerExternalIDP}
}

func hinted(uid string, role model.Role) *pdp_model.Principal {
	return &pdp_model.Principal{SubjectID: uid, Role: role, RoleHinted: true, Issuer: pdp_model.IssuerExternalIDP}
}

func adminPrincipal() *pdp_model.Principal {
	return &pdp_model.Principal{
		SubjectID:    primitive.NewObjectID().Hex(),
		Role:         model.RoleAdmin,
		Issuer:       pdp_model.IssuerLocalAdmin,
		StationCode:  "HQ",
		StationLabel: "Head Office",
	}
}
