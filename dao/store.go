// dao/store.go
package dao

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.mongodb.org/mongo-driver/mongo"

	pdp_dao "github.com/dev-mohitbeniwal/mobility/pdp/dao"
)

// Store groups the DAOs behind a single value. Its embedded finders make it
// the resource store the authorization engine reads from.
type Store struct {
	*UserDAO
	*VehicleDAO
	*RepairDAO
	*SelfCheckDAO
	*RepairStationDAO
	*AdminDAO
	*pdp_dao.GuardianDAO
}

func NewStore(database *mongo.Database, driver neo4j.DriverWithContext) *Store {
	return &Store{
		UserDAO:          NewUserDAO(database),
		VehicleDAO:       NewVehicleDAO(database),
		RepairDAO:        NewRepairDAO(database),
		SelfCheckDAO:     NewSelfCheckDAO(database),
		RepairStationDAO: NewRepairStationDAO(database),
		AdminDAO:         NewAdminDAO(database),
		GuardianDAO:      pdp_dao.NewGuardianDAO(driver),
	}
}
