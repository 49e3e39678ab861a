package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/mobility/controller"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	mock_service "github.com/dev-mohitbeniwal/mobility/test/service_mock"
)

func TestRepairAndSelfCheckControllers(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepairService := mock_service.NewMockIRepairService(ctrl)
	mockSelfCheckService := mock_service.NewMockISelfCheckService(ctrl)
	router, api := setupRouter(testPrincipal)
	controller.NewRepairController(mockRepairService).RegisterRoutes(api)
	controller.NewSelfCheckController(mockSelfCheckService).RegisterRoutes(api)

	t.Run("CreateRepair_Success", func(t *testing.T) {
		mockRepairService.EXPECT().
			CreateRepair(gomock.Any(), testPrincipal, "V1", gomock.Any()).
			DoAndReturn(func(_ any, _ any, _ string, repair model.Repair) (*model.Repair, error) {
				assert.Equal(t, []string{"tire"}, repair.RepairCategories)
				return &repair, nil
			})

		w := perform(router, http.MethodPost, "/vehicles/V1/repairs", `{"repairedAt":"2024-05-01T10:00:00Z","repairCategories":["tire"]}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateRepair_Forbidden", func(t *testing.T) {
		mockRepairService.EXPECT().
			CreateRepair(gomock.Any(), gomock.Any(), "V1", gomock.Any()).
			Return(nil, mobility_errors.ErrRoleForbidden)

		w := perform(router, http.MethodPost, "/vehicles/V1/repairs", `{"repairCategories":["tire"]}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GetRepair_NotFound", func(t *testing.T) {
		mockRepairService.EXPECT().
			GetRepair(gomock.Any(), testPrincipal, "V1", "r1").
			Return(nil, mobility_errors.ErrRepairNotFound)

		w := perform(router, http.MethodGet, "/vehicles/V1/repairs/r1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListSelfChecks_Success", func(t *testing.T) {
		mockSelfCheckService.EXPECT().
			ListSelfChecks(gomock.Any(), testPrincipal, "V1", 20, 0).
			Return([]*model.SelfCheck{}, nil)

		w := perform(router, http.MethodGet, "/vehicles/V1/self-checks", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("CreateSelfCheck_InvalidData", func(t *testing.T) {
		mockSelfCheckService.EXPECT().
			CreateSelfCheck(gomock.Any(), testPrincipal, "V1", gomock.Any()).
			Return(nil, mobility_errors.ErrInvalidSelfCheckData)

		w := perform(router, http.MethodPost, "/vehicles/V1/self-checks", `{"motorNoise":true}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
