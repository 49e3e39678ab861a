package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/service"
)

func TestCreateSelfCheck_AlertsOnlyWithConsentAndSymptoms(t *testing.T) {
	tests := []struct {
		name      string
		consent   bool
		check     model.SelfCheck
		wantAlert bool
	}{
		{"SymptomsWithConsent", true, model.SelfCheck{MotorNoise: true, FrameCrack: true}, true},
		{"SymptomsWithoutConsent", false, model.SelfCheck{MotorNoise: true}, false},
		{"HealthyWithConsent", true, model.SelfCheck{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			owner := h.user(t, "u1", tt.consent)
			h.vehicle(t, "V1", &owner.ID)

			created, err := h.services.SelfCheck.CreateSelfCheck(context.Background(), userPrincipal("u1"), "V1", tt.check)
			require.NoError(t, err)
			assert.Equal(t, owner.ID, created.UserID)

			h.bus.Wait()
			sent := h.outbox.sent()
			if tt.wantAlert {
				require.Len(t, sent, 1)
				assert.Contains(t, sent[0], "V1")
				assert.Equal(t, []string{"+821099990000"}, h.outbox.to)
			} else {
				assert.Empty(t, sent)
			}
		})
	}
}

func TestCreateSelfCheck_Denied(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u1 := h.user(t, "u1", false)
	h.vehicle(t, "V1", &u1.ID)
	h.vehicle(t, "V0", nil)

	_, err := h.services.SelfCheck.CreateSelfCheck(ctx, userPrincipal("u2"), "V1", model.SelfCheck{})
	assert.ErrorIs(t, err, mobility_errors.ErrNotOwner)

	_, err = h.services.SelfCheck.CreateSelfCheck(ctx, userPrincipal("u1"), "V0", model.SelfCheck{})
	assert.ErrorIs(t, err, mobility_errors.ErrNotOwner)

	_, err = h.services.SelfCheck.CreateSelfCheck(ctx, adminPrincipal(), "V0", model.SelfCheck{})
	assert.ErrorIs(t, err, mobility_errors.ErrInvalidSelfCheckData)
}

func TestSelfChecks_GuardianReads(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u1 := h.user(t, "u1", false)
	h.vehicle(t, "V1", &u1.ID)
	h.store.AddGuardianRelationship("g", u1.ID)

	created, err := h.services.SelfCheck.CreateSelfCheck(ctx, userPrincipal("u1"), "V1", model.SelfCheck{})
	require.NoError(t, err)

	got, err := h.services.SelfCheck.GetSelfCheck(ctx, hinted("g", model.RoleGuardian), "V1", created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	checks, err := h.services.SelfCheck.ListSelfChecks(ctx, hinted("g", model.RoleGuardian), "V1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, checks, 1)

	_, err = h.services.SelfCheck.ListSelfChecks(ctx, hinted("other", model.RoleGuardian), "V1", 10, 0)
	assert.ErrorIs(t, err, mobility_errors.ErrNotOwner)
}

func TestSearchSelfChecks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.user(t, "u1", false)
	v1 := h.vehicle(t, "V1", &owner.ID)
	v2 := h.vehicle(t, "V2", &owner.ID)

	may := func(day, hour int) time.Time { return time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC) }
	early := h.store.AddSelfCheck(model.SelfCheck{VehicleID: v1.ID, UserID: owner.ID, MotorNoise: true, CreatedAt: may(1, 9)})
	healthy := h.store.AddSelfCheck(model.SelfCheck{VehicleID: v1.ID, UserID: owner.ID, CreatedAt: may(10, 9)})
	lastDay := h.store.AddSelfCheck(model.SelfCheck{VehicleID: v2.ID, UserID: owner.ID, FrameCrack: true, CreatedAt: may(20, 23)})
	h.store.AddSelfCheck(model.SelfCheck{VehicleID: v2.ID, UserID: owner.ID, SeatUnstable: true, CreatedAt: may(21, 1)})

	ids := func(checks []*model.SelfCheck) []string {
		out := make([]string, 0, len(checks))
		for _, c := range checks {
			out = append(out, c.ID.Hex())
		}
		return out
	}

	t.Run("InclusiveDayRange", func(t *testing.T) {
		checks, err := h.services.SelfCheck.SearchSelfChecks(ctx, adminPrincipal(), service.SelfCheckQuery{
			StartDate: may(10, 0),
			EndDate:   may(20, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{lastDay.ID.Hex(), healthy.ID.Hex()}, ids(checks))
	})

	t.Run("VehicleAndIssues", func(t *testing.T) {
		checks, err := h.services.SelfCheck.SearchSelfChecks(ctx, adminPrincipal(), service.SelfCheckQuery{
			VehicleID: "V1",
			HasIssues: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{early.ID.Hex()}, ids(checks))
	})

	t.Run("Paged", func(t *testing.T) {
		checks, err := h.services.SelfCheck.SearchSelfChecks(ctx, adminPrincipal(), service.SelfCheckQuery{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{lastDay.ID.Hex(), healthy.ID.Hex()}, ids(checks))
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		_, err := h.services.SelfCheck.SearchSelfChecks(ctx, adminPrincipal(), service.SelfCheckQuery{VehicleID: "missing"})
		assert.ErrorIs(t, err, mobility_errors.ErrVehicleNotFound)
	})

	t.Run("ReversedRange", func(t *testing.T) {
		_, err := h.services.SelfCheck.SearchSelfChecks(ctx, adminPrincipal(), service.SelfCheckQuery{
			StartDate: may(20, 0),
			EndDate:   may(10, 0),
		})
		assert.ErrorIs(t, err, mobility_errors.ErrInvalidSelfCheckData)
	})

	t.Run("AdminsOnly", func(t *testing.T) {
		_, err := h.services.SelfCheck.SearchSelfChecks(ctx, userPrincipal("u1"), service.SelfCheckQuery{})
		assert.ErrorIs(t, err, mobility_errors.ErrRoleForbidden)
	})
}
