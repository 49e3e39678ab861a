// service/stores.go
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/pdp/filter"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindUserByExternalID(ctx context.Context, externalID string) (*model.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	UpdateSMSConsent(ctx context.Context, id primitive.ObjectID, consent bool) (*model.User, error)
	UpdateUserRole(ctx context.Context, id primitive.ObjectID, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	UpdateUserProfile(ctx context.Context, id primitive.ObjectID, update model.UserProfileUpdate) (*model.User, error)
	SearchUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]*model.User, error)
}

type VehicleStore interface {
	CreateVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error)
	FindVehicleByExternalID(ctx context.Context, vehicleID string) (*model.Vehicle, error)
	ConditionallySetOwner(ctx context.Context, vehicleID string, owner primitive.ObjectID, claim model.VehicleClaim) (*model.Vehicle, error)
	ReleaseVehicles(ctx context.Context, owner primitive.ObjectID) (int64, error)
	ListVehicles(ctx context.Context, c filter.Constraint, limit, offset int) ([]*model.Vehicle, error)
}

type RepairStore interface {
	CreateRepair(ctx context.Context, repair *model.Repair) (*model.Repair, error)
	FindRepairByID(ctx context.Context, id primitive.ObjectID) (*model.Repair, error)
	ListRepairs(ctx context.Context, vehicleID *primitive.ObjectID, limit, offset int) ([]*model.Repair, error)
}

type SelfCheckStore interface {
	CreateSelfCheck(ctx context.Context, check *model.SelfCheck) (*model.SelfCheck, error)
	FindSelfCheckByID(ctx context.Context, id primitive.ObjectID) (*model.SelfCheck, error)
	ListSelfChecks(ctx context.Context, vehicleID primitive.ObjectID, limit, offset int) ([]*model.SelfCheck, error)
	SearchSelfChecks(ctx context.Context, criteria model.SelfCheckSearchCriteria) ([]*model.SelfCheck, error)
}

type RepairStationStore interface {
	FindRepairStationByID(ctx context.Context, id primitive.ObjectID) (*model.RepairStation, error)
	ListRepairStations(ctx context.Context) ([]*model.RepairStation, error)
}

type AdminStore interface {
	FindAdminByLoginID(ctx context.Context, loginID string) (*model.Admin, error)
}

type GuardianStore interface {
	CreateGuardianRelationship(ctx context.Context, rel model.GuardianRelationship) (*model.GuardianRelationship, error)
	DeleteGuardianRelationships(ctx context.Context, userID primitive.ObjectID, externalID string) error
}

// Store is everything the services persist through.
type Store interface {
	UserStore
	VehicleStore
	RepairStore
	SelfCheckStore
	RepairStationStore
	AdminStore
	GuardianStore
}
