// controller/repair_controller.go
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

type RepairController struct {
	repairService service.IRepairService
}

func NewRepairController(repairService service.IRepairService) *RepairController {
	return &RepairController{repairService: repairService}
}

// RegisterRoutes registers the API routes
func (rc *RepairController) RegisterRoutes(r *gin.RouterGroup) {
	repairs := r.Group("/vehicles/:vehicleId/repairs")
	{
		repairs.POST("", rc.CreateRepair)
		repairs.GET("", rc.ListRepairs)
		repairs.GET("/:repairId", rc.GetRepair)
	}
}

// CreateRepair endpoint. Station and repairer fields in the body are
// replaced with the caller's.
func (rc *RepairController) CreateRepair(c *gin.Context) {
	var repair model.Repair
	if err := c.ShouldBindJSON(&repair); err != nil {
		badRequest(c, "Invalid repair data", mobility_errors.ErrInvalidRepairData)
		return
	}

	created, err := rc.repairService.CreateRepair(c, util.GetPrincipal(c), c.Param("vehicleId"), repair)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create repair")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rc *RepairController) GetRepair(c *gin.Context) {
	repair, err := rc.repairService.GetRepair(c, util.GetPrincipal(c), c.Param("vehicleId"), c.Param("repairId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve repair")
		return
	}
	c.JSON(http.StatusOK, repair)
}

func (rc *RepairController) ListRepairs(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}

	repairs, err := rc.repairService.ListRepairs(c, util.GetPrincipal(c), c.Param("vehicleId"), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list repairs")
		return
	}
	c.JSON(http.StatusOK, repairs)
}
