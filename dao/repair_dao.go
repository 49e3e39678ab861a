// dao/repair_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/mobility/db"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
)

type RepairDAO struct {
	Collection *mongo.Collection
}

func NewRepairDAO(database *mongo.Database) *RepairDAO {
	return &RepairDAO{Collection: database.Collection(db.RepairsCollection)}
}

func (dao *RepairDAO) CreateRepair(ctx context.Context, repair *model.Repair) (*model.Repair, error) {
	start := time.Now()
	created := *repair
	created.ID = primitive.NewObjectID()
	created.CreatedAt = time.Now().UTC()

	_, err := dao.Collection.InsertOne(ctx, created)
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create repair",
			zap.Error(err),
			zap.String("vehicleID", repair.VehicleID.Hex()),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Repair created successfully",
		zap.String("repairID", created.ID.Hex()),
		zap.String("stationCode", created.RepairStationCode),
		zap.Duration("duration", duration))
	return &created, nil
}

func (dao *RepairDAO) FindRepairByID(ctx context.Context, id primitive.ObjectID) (*model.Repair, error) {
	var repair model.Repair
	if err := dao.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&repair); err != nil {
		return nil, mapFindError(err, mobility_errors.ErrRepairNotFound)
	}
	return &repair, nil
}

// ListRepairs lists every repair when vehicleID is nil, newest first.
func (dao *RepairDAO) ListRepairs(ctx context.Context, vehicleID *primitive.ObjectID, limit, offset int) ([]*model.Repair, error) {
	f := bson.M{}
	if vehicleID != nil {
		f["vehicleId"] = *vehicleID
	}

	repairs := []*model.Repair{}
	if err := findAll(ctx, dao.Collection, f, pageOptions(limit, offset, bson.D{{Key: "repairedAt", Value: -1}}), &repairs); err != nil {
		logger.Error("Failed to list repairs", zap.Error(err))
		return nil, err
	}
	return repairs, nil
}
