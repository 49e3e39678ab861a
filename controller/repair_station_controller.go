// controller/repair_station_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/mobility/service"
)

type RepairStationController struct {
	repairStationService service.IRepairStationService
}

func NewRepairStationController(repairStationService service.IRepairStationService) *RepairStationController {
	return &RepairStationController{repairStationService: repairStationService}
}

// RegisterRoutes registers the public station directory.
func (rc *RepairStationController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/repair-stations", rc.ListRepairStations)
}

func (rc *RepairStationController) ListRepairStations(c *gin.Context) {
	stations, err := rc.repairStationService.ListRepairStations(c)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list repair stations")
		return
	}
	c.JSON(http.StatusOK, stations)
}
