package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/util"
)

func TestValidationUtil(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateUser(model.User{FirebaseUID: "uid", Name: "Lee", PhoneNumber: "010-1234-5678", Role: model.RoleUser}))
	assert.ErrorIs(t, v.ValidateUser(model.User{Name: "Lee"}), mobility_errors.ErrInvalidUserData)
	assert.ErrorIs(t, v.ValidateUser(model.User{FirebaseUID: "uid", Role: model.RoleAdmin}), mobility_errors.ErrInvalidUserData)
	assert.ErrorIs(t, v.ValidateUser(model.User{FirebaseUID: "uid", PhoneNumber: "call me"}), mobility_errors.ErrInvalidUserData)

	assert.NoError(t, v.ValidateClaim(model.ClaimRequest{Model: "M1", PhoneNumber: "01012345678"}))
	assert.ErrorIs(t, v.ValidateClaim(model.ClaimRequest{PhoneNumber: "12"}), mobility_errors.ErrInvalidVehicleData)

	repair := model.Repair{RepairedAt: time.Now(), RepairCategories: []string{"brake"}, BillingPrice: 1000}
	assert.NoError(t, v.ValidateRepair(repair))
	repair.RepairCategories = nil
	assert.ErrorIs(t, v.ValidateRepair(repair), mobility_errors.ErrInvalidRepairData)
	assert.ErrorIs(t, v.ValidateRepair(model.Repair{RepairCategories: []string{"brake"}}), mobility_errors.ErrInvalidRepairData)
	assert.ErrorIs(t, v.ValidateRepair(model.Repair{RepairedAt: time.Now(), RepairCategories: []string{"brake"}, BillingPrice: -1}), mobility_errors.ErrInvalidRepairData)

	assert.NoError(t, v.ValidateSelfCheck(model.SelfCheck{FrameNoise: true}))

	welfare, unknown, phone, badPhone := "welfare", "vip", "010-2222-3333", "call me"
	assert.NoError(t, v.ValidateUserProfileUpdate(model.UserProfileUpdate{RecipientType: &welfare, PhoneNumber: &phone}))
	assert.ErrorIs(t, v.ValidateUserProfileUpdate(model.UserProfileUpdate{}), mobility_errors.ErrInvalidUserData)
	assert.ErrorIs(t, v.ValidateUserProfileUpdate(model.UserProfileUpdate{RecipientType: &unknown}), mobility_errors.ErrInvalidUserData)
	assert.ErrorIs(t, v.ValidateUserProfileUpdate(model.UserProfileUpdate{PhoneNumber: &badPhone}), mobility_errors.ErrInvalidUserData)
}
