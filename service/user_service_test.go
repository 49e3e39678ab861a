package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/service"
)

func TestRegister(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	user, err := h.services.User.Register(ctx, userPrincipal("u1"), service.RegisterRequest{Name: "Park", SMSConsent: true})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.True(t, user.SMSConsent)

	_, err = h.services.User.Register(ctx, userPrincipal("u1"), service.RegisterRequest{Name: "Park"})
	assert.ErrorIs(t, err, mobility_errors.ErrUserConflict)

	_, err = h.services.User.Register(ctx, adminPrincipal(), service.RegisterRequest{Name: "Admin"})
	assert.ErrorIs(t, err, mobility_errors.ErrRoleForbidden)

	guardian, err := h.services.User.Register(ctx, hinted("g", model.RoleGuardian), service.RegisterRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.RoleGuardian, guardian.Role)
}

func TestGetRole(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.user(t, "u1", false)
	_, err := h.store.UpdateUserRole(ctx, u.ID, model.RoleGuardian)
	require.NoError(t, err)

	role, err := h.services.User.GetRole(ctx, userPrincipal("u1"))
	require.NoError(t, err)
	assert.Equal(t, &service.RoleResponse{Role: model.RoleGuardian, Registered: true}, role)

	role, err = h.services.User.GetRole(ctx, userPrincipal("nobody"))
	require.NoError(t, err)
	assert.Equal(t, &service.RoleResponse{Role: model.RoleUser}, role)

	role, err = h.services.User.GetRole(ctx, adminPrincipal())
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role.Role)
}

func TestUpdateSMSConsent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.user(t, "u1", false)

	updated, err := h.services.User.UpdateSMSConsent(ctx, userPrincipal("u1"), true)
	require.NoError(t, err)
	assert.True(t, updated.SMSConsent)

	_, err = h.services.User.UpdateSMSConsent(ctx, userPrincipal("nobody"), true)
	assert.ErrorIs(t, err, mobility_errors.ErrUserNotFound)
}

func TestDeleteUser_ReleasesVehicles(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u1 := h.user(t, "u1", false)
	h.vehicle(t, "V1", &u1.ID)
	h.store.AddGuardianRelationship("g", u1.ID)

	assert.ErrorIs(t, h.services.User.DeleteUser(ctx, userPrincipal("u1"), u1.ID.Hex()), mobility_errors.ErrRoleForbidden)

	require.NoError(t, h.services.User.DeleteUser(ctx, adminPrincipal(), u1.ID.Hex()))

	vehicle, err := h.store.FindVehicleByExternalID(ctx, "V1")
	require.NoError(t, err)
	assert.False(t, vehicle.Owned())

	relationships, err := h.store.FindGuardianRelationshipsByGuardianExternalID(ctx, "g")
	require.NoError(t, err)
	assert.Empty(t, relationships)

	_, err = h.store.FindUserByID(ctx, u1.ID)
	assert.ErrorIs(t, err, mobility_errors.ErrUserNotFound)

	// The released vehicle is claimable again.
	_, err = h.services.Vehicle.ClaimVehicle(ctx, userPrincipal("u2"), "V1", model.ClaimRequest{})
	assert.NoError(t, err)
}

func TestDeleteUser_RemovesGuardianEdges(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	dependent := h.user(t, "u1", false)
	guardian := h.user(t, "g1", false)
	h.store.AddGuardianRelationship("g1", dependent.ID)

	require.NoError(t, h.services.User.DeleteUser(ctx, adminPrincipal(), guardian.ID.Hex()))

	relationships, err := h.store.FindGuardianRelationshipsByGuardianExternalID(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, relationships)

	// The dependent survives, and a new guardian can be assigned.
	_, err = h.store.FindUserByID(ctx, dependent.ID)
	require.NoError(t, err)
	_, err = h.services.User.AssignGuardian(ctx, adminPrincipal(), dependent.ID.Hex(), "g2")
	assert.NoError(t, err)
}

func TestAssignGuardian(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u1 := h.user(t, "u1", false)
	u2 := h.user(t, "u2", false)

	rel, err := h.services.User.AssignGuardian(ctx, adminPrincipal(), u1.ID.Hex(), "g")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, rel.UserID)

	_, err = h.services.User.AssignGuardian(ctx, adminPrincipal(), u2.ID.Hex(), "g")
	assert.ErrorIs(t, err, mobility_errors.ErrGuardianConflict)

	_, err = h.services.User.AssignGuardian(ctx, adminPrincipal(), u2.ID.Hex(), "")
	assert.ErrorIs(t, err, mobility_errors.ErrInvalidUserData)
}

func TestUpdateUserRole_RejectsAdmin(t *testing.T) {
	h := newHarness(t)
	u1 := h.user(t, "u1", false)

	_, err := h.services.User.UpdateUserRole(context.Background(), adminPrincipal(), u1.ID.Hex(), model.RoleAdmin)
	assert.ErrorIs(t, err, mobility_errors.ErrInvalidUserData)

	updated, err := h.services.User.UpdateUserRole(context.Background(), adminPrincipal(), u1.ID.Hex(), model.RoleRepairer)
	require.NoError(t, err)
	assert.Equal(t, model.RoleRepairer, updated.Role)
}

func TestUpdateUserProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u1 := h.user(t, "u1", true)

	name, recipient, consent := "Choi", "lowIncome", false
	updated, err := h.services.User.UpdateUserProfile(ctx, adminPrincipal(), u1.ID.Hex(), model.UserProfileUpdate{
		Name:          &name,
		RecipientType: &recipient,
		SMSConsent:    &consent,
	})
	require.NoError(t, err)
	assert.Equal(t, "Choi", updated.Name)
	assert.Equal(t, "lowIncome", updated.RecipientType)
	assert.False(t, updated.SMSConsent)
	assert.Equal(t, model.RoleUser, updated.Role)

	stored, err := h.store.FindUserByID(ctx, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Choi", stored.Name)

	_, err = h.services.User.UpdateUserProfile(ctx, adminPrincipal(), u1.ID.Hex(), model.UserProfileUpdate{})
	assert.ErrorIs(t, err, mobility_errors.ErrInvalidUserData)

	unknown := "vip"
	_, err = h.services.User.UpdateUserProfile(ctx, adminPrincipal(), u1.ID.Hex(), model.UserProfileUpdate{RecipientType: &unknown})
	assert.ErrorIs(t, err, mobility_errors.ErrInvalidUserData)

	_, err = h.services.User.UpdateUserProfile(ctx, adminPrincipal(), "000000000000000000000000", model.UserProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, mobility_errors.ErrUserNotFound)

	_, err = h.services.User.UpdateUserProfile(ctx, userPrincipal("u1"), u1.ID.Hex(), model.UserProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, mobility_errors.ErrRoleForbidden)
}
