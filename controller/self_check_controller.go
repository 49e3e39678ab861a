// controller/self_check_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/service"
	"github.com/dev-mohitbeniwal/mobility/util"
	helper_util "github.com/dev-mohitbeniwal/mobility/util/helper"
)

type SelfCheckController struct {
	selfCheckService service.ISelfCheckService
}

func NewSelfCheckController(selfCheckService service.ISelfCheckService) *SelfCheckController {
	return &SelfCheckController{selfCheckService: selfCheckService}
}

// RegisterRoutes registers the API routes
func (sc *SelfCheckController) RegisterRoutes(r *gin.RouterGroup) {
	checks := r.Group("/vehicles/:vehicleId/self-checks")
	{
		checks.POST("", sc.CreateSelfCheck)
		checks.GET("", sc.ListSelfChecks)
		checks.GET("/:selfCheckId", sc.GetSelfCheck)
	}
}

func (sc *SelfCheckController) CreateSelfCheck(c *gin.Context) {
	var check model.SelfCheck
	if err := c.ShouldBindJSON(&check); err != nil {
		badRequest(c, "Invalid self-check data", mobility_errors.ErrInvalidSelfCheckData)
		return
	}

	created, err := sc.selfCheckService.CreateSelfCheck(c, util.GetPrincipal(c), c.Param("vehicleId"), check)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create self-check")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (sc *SelfCheckController) GetSelfCheck(c *gin.Context) {
	check, err := sc.selfCheckService.GetSelfCheck(c, util.GetPrincipal(c), c.Param("vehicleId"), c.Param("selfCheckId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve self-check")
		return
	}
	c.JSON(http.StatusOK, check)
}

func (sc *SelfCheckController) ListSelfChecks(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}

	checks, err := sc.selfCheckService.ListSelfChecks(c, util.GetPrincipal(c), c.Param("vehicleId"), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list self-checks")
		return
	}
	c.JSON(http.StatusOK, checks)
}
