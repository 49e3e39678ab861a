package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// Order matters: a lookup timeout is reported together with
// ErrResourceNotFound, and a lost claim race is a 403 before any conflict.
var errorStatuses = []errorStatus{
	{mobility_errors.ErrKeySetUnavailable, http.StatusServiceUnavailable, "Identity provider unavailable"},
	{mobility_errors.ErrNoCredential, http.StatusUnauthorized, "Missing credential"},
	{mobility_errors.ErrInvalidCredential, http.StatusUnauthorized, "Invalid credential"},
	{mobility_errors.ErrInvalidLogin, http.StatusUnauthorized, "Invalid id or password"},
	{mobility_errors.ErrClaimConflict, http.StatusForbidden, "Vehicle already claimed"},
	{mobility_errors.ErrNotOwner, http.StatusForbidden, "Forbidden"},
	{mobility_errors.ErrRoleForbidden, http.StatusForbidden, "Forbidden"},
	{mobility_errors.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
	{mobility_errors.ErrVehicleNotFound, http.StatusNotFound, "Vehicle not found"},
	{mobility_errors.ErrRepairNotFound, http.StatusNotFound, "Repair not found"},
	{mobility_errors.ErrSelfCheckNotFound, http.StatusNotFound, "Self-check not found"},
	{mobility_errors.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{mobility_errors.ErrRepairStationNotFound, http.StatusNotFound, "Repair station not found"},
	{mobility_errors.ErrInvalidPagination, http.StatusBadRequest, "Invalid pagination parameters"},
	{mobility_errors.ErrInvalidUserData, http.StatusBadRequest, "Invalid user data"},
	{mobility_errors.ErrInvalidVehicleData, http.StatusBadRequest, "Invalid vehicle data"},
	{mobility_errors.ErrInvalidRepairData, http.StatusBadRequest, "Invalid repair data"},
	{mobility_errors.ErrInvalidSelfCheckData, http.StatusBadRequest, "Invalid self-check data"},
	{mobility_errors.ErrUserConflict, http.StatusConflict, "User already exists"},
	{mobility_errors.ErrVehicleConflict, http.StatusConflict, "Vehicle already exists"},
	{mobility_errors.ErrGuardianConflict, http.StatusConflict, "Guardian already assigned"},
	{mobility_errors.ErrDatabaseOperation, http.StatusInternalServerError, "Database operation failed"},
}

// respondWithServiceError maps a service error onto a status code. Errors
// with no mapping are reported as 500 with fallback as the message.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			util.RespondWithError(c, m.status, m.message, err)
			return
		}
	}
	util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
}

func badRequest(c *gin.Context, message string, err error) {
	util.RespondWithError(c, http.StatusBadRequest, message, err)
}
