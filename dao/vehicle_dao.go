// dao/vehicle_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/mobility/db"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/pdp/filter"
)

type VehicleDAO struct {
	Collection *mongo.Collection
}

func NewVehicleDAO(database *mongo.Database) *VehicleDAO {
	return &VehicleDAO{Collection: database.Collection(db.VehiclesCollection)}
}

func (dao *VehicleDAO) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	start := time.Now()
	created := *vehicle
	created.ID = primitive.NewObjectID()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	_, err := dao.Collection.InsertOne(ctx, created)
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("vehicleId", vehicle.VehicleID),
			zap.Duration("duration", duration))
		if mongo.IsDuplicateKeyError(err) {
			return nil, mobility_errors.ErrVehicleConflict
		}
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Vehicle created successfully",
		zap.String("vehicleId", created.VehicleID),
		zap.Duration("duration", duration))
	return &created, nil
}

func (dao *VehicleDAO) FindVehicleByExternalID(ctx context.Context, vehicleID string) (*model.Vehicle, error) {
	return dao.findOne(ctx, bson.M{"vehicleId": vehicleID})
}

func (dao *VehicleDAO) FindVehicleByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	return dao.findOne(ctx, bson.M{"_id": id})
}

func (dao *VehicleDAO) findOne(ctx context.Context, f bson.M) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := dao.Collection.FindOne(ctx, f).Decode(&vehicle); err != nil {
		return nil, mapFindError(err, mobility_errors.ErrVehicleNotFound)
	}
	return &vehicle, nil
}

// ConditionallySetOwner records the claim only while the vehicle is still
// unowned. Of two concurrent claims exactly one matches the filter; the
// other gets ErrClaimConflict.
func (dao *VehicleDAO) ConditionallySetOwner(ctx context.Context, vehicleID string, owner primitive.ObjectID, claim model.VehicleClaim) (*model.Vehicle, error) {
	start := time.Now()
	set := bson.M{
		"userId":       owner,
		"registeredAt": claim.RegisteredAt,
	}
	if claim.Model != "" {
		set["model"] = claim.Model
	}
	if claim.PurchasedAt != nil {
		set["purchasedAt"] = claim.PurchasedAt
	}

	var vehicle model.Vehicle
	err := dao.Collection.FindOneAndUpdate(ctx,
		bson.M{"vehicleId": vehicleID, "userId": nil},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&vehicle)
	duration := time.Since(start)

	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, findErr := dao.FindVehicleByExternalID(ctx, vehicleID); findErr != nil {
			return nil, findErr
		}
		logger.Warn("Vehicle already claimed",
			zap.String("vehicleId", vehicleID),
			zap.Duration("duration", duration))
		return nil, mobility_errors.ErrClaimConflict
	}
	if err != nil {
		logger.Error("Failed to claim vehicle",
			zap.Error(err),
			zap.String("vehicleId", vehicleID),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Vehicle claimed successfully",
		zap.String("vehicleId", vehicleID),
		zap.String("userID", owner.Hex()),
		zap.Duration("duration", duration))
	return &vehicle, nil
}

// ReleaseVehicles clears the owner of every vehicle owned by owner.
func (dao *VehicleDAO) ReleaseVehicles(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	result, err := dao.Collection.UpdateMany(ctx,
		bson.M{"userId": owner},
		bson.M{"$set": bson.M{"userId": nil}, "$unset": bson.M{"registeredAt": ""}},
	)
	if err != nil {
		logger.Error("Failed to release vehicles", zap.Error(err), zap.String("userID", owner.Hex()))
		return 0, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}
	return result.ModifiedCount, nil
}

// ListVehicles returns the vehicles matching the owner constraint.
func (dao *VehicleDAO) ListVehicles(ctx context.Context, c filter.Constraint, limit, offset int) ([]*model.Vehicle, error) {
	vehicles := []*model.Vehicle{}
	if err := findAll(ctx, dao.Collection, c.BSON(), pageOptions(limit, offset, bson.D{{Key: "vehicleId", Value: 1}}), &vehicles); err != nil {
		logger.Error("Failed to list vehicles", zap.Error(err))
		return nil, err
	}
	return vehicles, nil
}
