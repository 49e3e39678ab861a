// controller/admin_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/mobility/audit"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/service"
	"github.com/dev-mohitbeniwal/mobility/util"
	helper_util "github.com/dev-mohitbeniwal/mobility/util/helper"
)

type AdminController struct {
	adminService     service.IAdminService
	userService      service.IUserService
	vehicleService   service.IVehicleService
	repairService    service.IRepairService
	selfCheckService service.ISelfCheckService
}

func NewAdminController(
	adminService service.IAdminService,
	userService service.IUserService,
	vehicleService service.IVehicleService,
	repairService service.IRepairService,
	selfCheckService service.ISelfCheckService,
) *AdminController {
	return &AdminController{
		adminService:     adminService,
		userService:      userService,
		vehicleService:   vehicleService,
		repairService:    repairService,
		selfCheckService: selfCheckService,
	}
}

type roleRequest struct {
	Role model.Role `json:"role" binding:"required"`
}

type guardianRequest struct {
	GuardianID string `json:"guardianId" binding:"required"`
}

type generateVehicleRequest struct {
	Model string `json:"model"`
}

type selfCheckQueryParams struct {
	StartDate time.Time `form:"startDate" time_format:"2006-01-02" time_utc:"1"`
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02" time_utc:"1"`
	VehicleID string    `form:"vehicleId"`
	HasIssues bool      `form:"hasIssues"`
}

type auditQueryParams struct {
	From       time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	SubjectID  string    `form:"subjectId"`
	ResourceID string    `form:"resourceId"`
	Limit      int       `form:"limit"`
}

// RegisterPublicRoutes registers the login endpoint, which needs no
// credential.
func (ac *AdminController) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/admin/login", ac.Login)
}

// RegisterRoutes registers the API routes
func (ac *AdminController) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/users", ac.ListUsers)
		admin.PATCH("/users/:id", ac.UpdateUserProfile)
		admin.PATCH("/users/:id/role", ac.UpdateUserRole)
		admin.GET("/users/:id/vehicles", ac.ListUserVehicles)
		admin.DELETE("/users/:id", ac.DeleteUser)
		admin.POST("/users/:id/guardians", ac.AssignGuardian)
		admin.POST("/vehicles", ac.GenerateVehicle)
		admin.GET("/vehicles", ac.ListVehicles)
		admin.GET("/repairs", ac.ListRepairs)
		admin.GET("/self-checks", ac.ListSelfChecks)
		admin.GET("/audit-logs", ac.QueryAuditLogs)
	}
}

func (ac *AdminController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid login request", err)
		return
	}

	resp, err := ac.adminService.Login(c, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}
	var criteria model.UserSearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		badRequest(c, "Invalid search parameters", mobility_errors.ErrInvalidUserData)
		return
	}
	criteria.Limit, criteria.Offset = limit, offset

	users, err := ac.userService.ListUsers(c, util.GetPrincipal(c), criteria)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "role is required", mobility_errors.ErrInvalidUserData)
		return
	}

	user, err := ac.userService.UpdateUserRole(c, util.GetPrincipal(c), c.Param("id"), req.Role)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ac *AdminController) UpdateUserProfile(c *gin.Context) {
	var update model.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "Invalid profile data", mobility_errors.ErrInvalidUserData)
		return
	}

	user, err := ac.userService.UpdateUserProfile(c, util.GetPrincipal(c), c.Param("id"), update)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ac *AdminController) ListUserVehicles(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}

	vehicles, err := ac.vehicleService.ListUserVehicles(c, util.GetPrincipal(c), c.Param("id"), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	if err := ac.userService.DeleteUser(c, util.GetPrincipal(c), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

func (ac *AdminController) AssignGuardian(c *gin.Context) {
	var req guardianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "guardianId is required", mobility_errors.ErrInvalidUserData)
		return
	}

	rel, err := ac.userService.AssignGuardian(c, util.GetPrincipal(c), c.Param("id"), req.GuardianID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to assign guardian")
		return
	}
	c.JSON(http.StatusCreated, rel)
}

// GenerateVehicle endpoint. The response carries the QR token to print.
func (ac *AdminController) GenerateVehicle(c *gin.Context) {
	var req generateVehicleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid vehicle data", mobility_errors.ErrInvalidVehicleData)
			return
		}
	}

	generated, err := ac.vehicleService.GenerateVehicle(c, util.GetPrincipal(c), req.Model)
	if err != nil {
		respondWithServiceError(c, err, "Failed to generate vehicle")
		return
	}
	c.JSON(http.StatusCreated, generated)
}

func (ac *AdminController) ListVehicles(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}

	vehicles, err := ac.vehicleService.ListVehicles(c, util.GetPrincipal(c), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (ac *AdminController) ListRepairs(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}

	repairs, err := ac.repairService.ListAllRepairs(c, util.GetPrincipal(c), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list repairs")
		return
	}
	c.JSON(http.StatusOK, repairs)
}

// ListSelfChecks endpoint. startDate and endDate are YYYY-MM-DD days.
func (ac *AdminController) ListSelfChecks(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}
	var params selfCheckQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid self-check query", mobility_errors.ErrInvalidSelfCheckData)
		return
	}

	checks, err := ac.selfCheckService.SearchSelfChecks(c, util.GetPrincipal(c), service.SelfCheckQuery{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		VehicleID: params.VehicleID,
		HasIssues: params.HasIssues,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to list self-checks")
		return
	}
	c.JSON(http.StatusOK, checks)
}

func (ac *AdminController) QueryAuditLogs(c *gin.Context) {
	var params auditQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid audit query", err)
		return
	}

	logs, err := ac.adminService.QueryAuditLogs(c, util.GetPrincipal(c), audit.Query{
		From:       params.From,
		To:         params.To,
		SubjectID:  params.SubjectID,
		ResourceID: params.ResourceID,
		Limit:      params.Limit,
	})
	if err != nil {
		respondWithServiceError(c, err, "Failed to query audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
