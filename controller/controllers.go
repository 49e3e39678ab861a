// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/mobility/service"

type Controllers struct {
	Vehicle       *VehicleController
	Repair        *RepairController
	SelfCheck     *SelfCheckController
	User          *UserController
	Admin         *AdminController
	RepairStation *RepairStationController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Vehicle:       NewVehicleController(services.Vehicle),
		Repair:        NewRepairController(services.Repair),
		SelfCheck:     NewSelfCheckController(services.SelfCheck),
		User:          NewUserController(services.User),
		Admin:         NewAdminController(services.Admin, services.User, services.Vehicle, services.Repair, services.SelfCheck),
		RepairStation: NewRepairStationController(services.RepairStation),
	}
}
