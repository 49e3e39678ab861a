package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dev-mohitbeniwal/mobility/audit"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
	"github.com/dev-mohitbeniwal/mobility/service"
	"github.com/dev-mohitbeniwal/mobility/test/fake"
	"github.com/dev-mohitbeniwal/mobility/util"
)

func TestClaimVehicle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.vehicle(t, "V0", nil)

	vehicle, err := h.services.Vehicle.ClaimVehicle(ctx, userPrincipal("newcomer"), "V0", model.ClaimRequest{Model: "M-200", Name: "Park"})
	require.NoError(t, err)
	require.True(t, vehicle.Owned())
	assert.Equal(t, "M-200", vehicle.Model)
	assert.NotNil(t, vehicle.RegisteredAt)

	owner, err := h.store.FindUserByExternalID(ctx, "newcomer")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, *vehicle.OwnerUserID)
	assert.Equal(t, "Park", owner.Name)

	_, err = h.services.Vehicle.ClaimVehicle(ctx, userPrincipal("someone-else"), "V0", model.ClaimRequest{})
	assert.ErrorIs(t, err, mobility_errors.ErrNotOwner)

	_, err = h.services.Vehicle.ClaimVehicle(ctx, userPrincipal("newcomer"), "missing", model.ClaimRequest{})
	assert.ErrorIs(t, err, mobility_errors.ErrResourceNotFound)

	_, err = h.services.Vehicle.ClaimVehicle(ctx, hinted("g", model.RoleGuardian), "V0", model.ClaimRequest{})
	assert.ErrorIs(t, err, mobility_errors.ErrRoleForbidden)
}

func TestClaimVehicle_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	h := newHarness(t)
	h.vehicle(t, "V0", nil)

	const claimants = 50
	var wg sync.WaitGroup
	errs := make([]error, claimants)
	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.services.Vehicle.ClaimVehicle(context.Background(), userPrincipal(fmt.Sprintf("claimant-%d", i)), "V0", model.ClaimRequest{})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		assert.True(t, errors.Is(err, mobility_errors.ErrClaimConflict) || errors.Is(err, mobility_errors.ErrNotOwner), err)
		assert.Equal(t, pdp_model.DenyNotOwner, pdp_model.ReasonFor(err))
	}
	assert.Equal(t, 1, winners)
}

// rivalStore lets another owner take the vehicle just before the caller's
// conditional update runs.
type rivalStore struct {
	*fake.Store
	rival primitive.ObjectID
}

func (s *rivalStore) ConditionallySetOwner(ctx context.Context, vehicleID string, owner primitive.ObjectID, claim model.VehicleClaim) (*model.Vehicle, error) {
	if _, err := s.Store.ConditionallySetOwner(ctx, vehicleID, s.rival, claim); err != nil {
		return nil, err
	}
	return s.Store.ConditionallySetOwner(ctx, vehicleID, owner, claim)
}

func TestClaimVehicle_LostRaceLeavesNoUserRecord(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	rival := h.user(t, "rival", false)
	h.vehicle(t, "V0", nil)

	gate, err := engine.NewRoleGate()
	require.NoError(t, err)
	store := &rivalStore{Store: h.store, rival: rival.ID}
	guard := service.NewAccessGuard(engine.NewEngine(h.store, gate, time.Second), h.audit)
	vehicles := service.NewVehicleService(store, guard, h.codec, util.NewValidationUtil(), util.NewCacheService(nil, time.Minute), h.bus)

	_, err = vehicles.ClaimVehicle(ctx, userPrincipal("latecomer"), "V0", model.ClaimRequest{Name: "Late"})
	require.ErrorIs(t, err, mobility_errors.ErrClaimConflict)

	_, err = h.store.FindUserByExternalID(ctx, "latecomer")
	assert.ErrorIs(t, err, mobility_errors.ErrUserNotFound)

	vehicle, err := h.store.FindVehicleByExternalID(ctx, "V0")
	require.NoError(t, err)
	require.NotNil(t, vehicle.OwnerUserID)
	assert.Equal(t, rival.ID, *vehicle.OwnerUserID)
}

func TestClaimVehicle_AdminCannotOwn(t *testing.T) {
	h := newHarness(t)
	h.vehicle(t, "V0", nil)

	_, err := h.services.Vehicle.ClaimVehicle(context.Background(), adminPrincipal(), "V0", model.ClaimRequest{})
	assert.ErrorIs(t, err, mobility_errors.ErrInvalidVehicleData)
}

func TestGenerateVehicleAndReadByQRToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.services.Vehicle.GenerateVehicle(ctx, userPrincipal("u1"), "M-100")
	assert.ErrorIs(t, err, mobility_errors.ErrRoleForbidden)

	generated, err := h.services.Vehicle.GenerateVehicle(ctx, adminPrincipal(), "M-100")
	require.NoError(t, err)
	assert.False(t, generated.Vehicle.Owned())
	assert.NotEmpty(t, generated.QRToken)

	decoded, err := h.codec.Decode(generated.QRToken)
	require.NoError(t, err)
	assert.Equal(t, generated.Vehicle.VehicleID, decoded)

	vehicle, err := h.services.Vehicle.GetVehicleByQRToken(ctx, userPrincipal("u1"), generated.QRToken)
	require.NoError(t, err)
	assert.Equal(t, generated.Vehicle.VehicleID, vehicle.VehicleID)

	_, err = h.services.Vehicle.GetVehicleByQRToken(ctx, userPrincipal("u1"), "not-a-token")
	assert.ErrorIs(t, err, mobility_errors.ErrInvalidVehicleData)
}

func TestListVehicles(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u1 := h.user(t, "u1", false)
	u2 := h.user(t, "u2", false)
	h.vehicle(t, "V1", &u1.ID)
	h.vehicle(t, "V2", &u2.ID)
	h.vehicle(t, "V0", nil)
	h.store.AddGuardianRelationship("g", u2.ID)

	mine, err := h.services.Vehicle.ListMyVehicles(ctx, userPrincipal("u1"), 10, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "V1", mine[0].VehicleID)

	guarded, err := h.services.Vehicle.ListMyVehicles(ctx, hinted("g", model.RoleGuardian), 10, 0)
	require.NoError(t, err)
	require.Len(t, guarded, 1)
	assert.Equal(t, "V2", guarded[0].VehicleID)

	none, err := h.services.Vehicle.ListMyVehicles(ctx, userPrincipal("stranger"), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := h.services.Vehicle.ListVehicles(ctx, adminPrincipal(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = h.services.Vehicle.ListVehicles(ctx, userPrincipal("u1"), 10, 0)
	assert.ErrorIs(t, err, mobility_errors.ErrRoleForbidden)
}

func TestGetVehicle_WritesAuditLog(t *testing.T) {
	h := newHarness(t)
	u1 := h.user(t, "u1", false)
	h.vehicle(t, "V1", &u1.ID)

	_, err := h.services.Vehicle.GetVehicle(context.Background(), userPrincipal("u2"), "V1")
	assert.ErrorIs(t, err, mobility_errors.ErrNotOwner)

	h.audit.AssertCalled(t, "LogAccess", mock.Anything, mock.MatchedBy(func(entry audit.AuditLog) bool {
		return entry.SubjectID == "u2" &&
			entry.ResourceID == "V1" &&
			!entry.AccessGranted &&
			entry.DenyReason == string(pdp_model.DenyNotOwner)
	}))
}

func TestListUserVehicles(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u1 := h.user(t, "u1", false)
	u2 := h.user(t, "u2", false)
	h.vehicle(t, "V1", &u1.ID)
	h.vehicle(t, "V2", &u2.ID)
	h.vehicle(t, "V3", &u1.ID)
	h.vehicle(t, "V0", nil)

	vehicles, err := h.services.Vehicle.ListUserVehicles(ctx, adminPrincipal(), u1.ID.Hex(), 20, 0)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "V1", vehicles[0].VehicleID)
	assert.Equal(t, "V3", vehicles[1].VehicleID)

	_, err = h.services.Vehicle.ListUserVehicles(ctx, adminPrincipal(), primitive.NewObjectID().Hex(), 20, 0)
	assert.ErrorIs(t, err, mobility_errors.ErrUserNotFound)

	_, err = h.services.Vehicle.ListUserVehicles(ctx, adminPrincipal(), "not-an-id", 20, 0)
	assert.ErrorIs(t, err, mobility_errors.ErrUserNotFound)

	_, err = h.services.Vehicle.ListUserVehicles(ctx, userPrincipal("u1"), u1.ID.Hex(), 20, 0)
	assert.ErrorIs(t, err, mobility_errors.ErrRoleForbidden)
}
