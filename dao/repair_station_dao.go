// dao/repair_station_dao.go
package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/mobility/db"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
)

type RepairStationDAO struct {
	Collection *mongo.Collection
}

func NewRepairStationDAO(database *mongo.Database) *RepairStationDAO {
	return &RepairStationDAO{Collection: database.Collection(db.RepairStationsCollection)}
}

// FindRepairStationByExternalID finds the station a repairer account signs
// in as.
func (dao *RepairStationDAO) FindRepairStationByExternalID(ctx context.Context, externalID string) (*model.RepairStation, error) {
	return dao.findOne(ctx, bson.M{"firebaseUid": externalID})
}

func (dao *RepairStationDAO) FindRepairStationByID(ctx context.Context, id primitive.ObjectID) (*model.RepairStation, error) {
	return dao.findOne(ctx, bson.M{"_id": id})
}

func (dao *RepairStationDAO) findOne(ctx context.Context, f bson.M) (*model.RepairStation, error) {
	var station model.RepairStation
	if err := dao.Collection.FindOne(ctx, f).Decode(&station); err != nil {
		return nil, mapFindError(err, mobility_errors.ErrRepairStationNotFound)
	}
	return &station, nil
}

func (dao *RepairStationDAO) ListRepairStations(ctx context.Context) ([]*model.RepairStation, error) {
	stations := []*model.RepairStation{}
	if err := findAll(ctx, dao.Collection, bson.M{}, pageOptions(0, 0, bson.D{{Key: "code", Value: 1}}), &stations); err != nil {
		logger.Error("Failed to list repair stations", zap.Error(err))
		return nil, err
	}
	return stations, nil
}
