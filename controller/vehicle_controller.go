// controller/vehicle_controller.go
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

type VehicleController struct {
	vehicleService service.IVehicleService
}

func NewVehicleController(vehicleService service.IVehicleService) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

// RegisterRoutes registers the API routes
func (vc *VehicleController) RegisterRoutes(r *gin.RouterGroup) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("/me", vc.ListMyVehicles)
		vehicles.GET("/:vehicleId", vc.GetVehicle)
		vehicles.POST("/:vehicleId/claim", vc.ClaimVehicle)
	}
	r.GET("/qr/:token", vc.GetVehicleByQRToken)
}

func (vc *VehicleController) GetVehicle(c *gin.Context) {
	vehicle, err := vc.vehicleService.GetVehicle(c, util.GetPrincipal(c), c.Param("vehicleId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) GetVehicleByQRToken(c *gin.Context) {
	vehicle, err := vc.vehicleService.GetVehicleByQRToken(c, util.GetPrincipal(c), c.Param("token"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to resolve QR token")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) ListMyVehicles(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		badRequest(c, "Invalid pagination parameters", mobility_errors.ErrInvalidPagination)
		return
	}

	vehicles, err := vc.vehicleService.ListMyVehicles(c, util.GetPrincipal(c), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// ClaimVehicle endpoint. The body is optional.
func (vc *VehicleController) ClaimVehicle(c *gin.Context) {
	var req model.ClaimRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid claim data", mobility_errors.ErrInvalidVehicleData)
			return
		}
	}

	vehicle, err := vc.vehicleService.ClaimVehicle(c, util.GetPrincipal(c), c.Param("vehicleId"), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to claim vehicle")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}
