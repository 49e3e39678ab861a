// service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/mobility/audit"
	"github.com/dev-mohitbeniwal/mobility/auth"
	"github.com/dev-mohitbeniwal/mobility/pdp/engine"
	"github.com/dev-mohitbeniwal/mobility/secret"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type Services struct {
	Vehicle       IVehicleService
	Repair        IRepairService
	SelfCheck     ISelfCheckService
	User          IUserService
	Admin         IAdminService
	RepairStation IRepairStationService
}

// Dependencies are the collaborators shared by every service.
type Dependencies struct {
	Store           Store
	Engine          *engine.Engine
	AuditService    audit.Service
	Codec           *secret.Codec
	AdminTokens     *auth.AdminTokens
	PasswordHasher  *secret.PasswordHasher
	ValidationUtil  *util.ValidationUtil
	CacheService    *util.CacheService
	NotificationSvc *util.NotificationService
	EventBus        *util.EventBus
}

func InitializeServices(deps Dependencies) *Services {
	guard := NewAccessGuard(deps.Engine, deps.AuditService)

	return &Services{
		Vehicle:       NewVehicleService(deps.Store, guard, deps.Codec, deps.ValidationUtil, deps.CacheService, deps.EventBus),
		Repair:        NewRepairService(deps.Store, guard, deps.ValidationUtil, deps.EventBus),
		SelfCheck:     NewSelfCheckService(deps.Store, guard, deps.ValidationUtil, deps.NotificationSvc, deps.EventBus),
		User:          NewUserService(deps.Store, guard, deps.ValidationUtil, deps.CacheService, deps.EventBus),
		Admin:         NewAdminService(deps.Store, guard, deps.AdminTokens, deps.PasswordHasher, deps.AuditService),
		RepairStation: NewRepairStationService(deps.Store),
	}
}
