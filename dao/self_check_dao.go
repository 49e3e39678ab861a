// dao/self_check_dao.go
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

type SelfCheckDAO struct {
	Collection *mongo.Collection
}

func NewSelfCheckDAO(database *mongo.Database) *SelfCheckDAO {
	return &SelfCheckDAO{Collection: database.Collection(db.SelfChecksCollection)}
}

func (dao *SelfCheckDAO) CreateSelfCheck(ctx context.Context, check *model.SelfCheck) (*model.SelfCheck, error) {
	start := time.Now()
	created := *check
	created.ID = primitive.NewObjectID()
	created.CreatedAt = time.Now().UTC()

	_, err := dao.Collection.InsertOne(ctx, created)
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create self-check",
			zap.Error(err),
			zap.String("vehicleID", check.VehicleID.Hex()),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Self-check created successfully",
		zap.String("selfCheckID", created.ID.Hex()),
		zap.Duration("duration", duration))
	return &created, nil
}

func (dao *SelfCheckDAO) FindSelfCheckByID(ctx context.Context, id primitive.ObjectID) (*model.SelfCheck, error) {
	var check model.SelfCheck
	if err := dao.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&check); err != nil {
		return nil, mapFindError(err, mobility_errors.ErrSelfCheckNotFound)
	}
	return &check, nil
}

func (dao *SelfCheckDAO) ListSelfChecks(ctx context.Context, vehicleID primitive.ObjectID, limit, offset int) ([]*model.SelfCheck, error) {
	checks := []*model.SelfCheck{}
	err := findAll(ctx, dao.Collection, bson.M{"vehicleId": vehicleID},
		pageOptions(limit, offset, bson.D{{Key: "createdAt", Value: -1}}), &checks)
	if err != nil {
		logger.Error("Failed to list self-checks", zap.Error(err), zap.String("vehicleID", vehicleID.Hex()))
		return nil, err
	}
	return checks, nil
}

// SearchSelfChecks lists self-checks across vehicles, newest first.
func (dao *SelfCheckDAO) SearchSelfChecks(ctx context.Context, criteria model.SelfCheckSearchCriteria) ([]*model.SelfCheck, error) {
	start := time.Now()
	checks := []*model.SelfCheck{}
	err := findAll(ctx, dao.Collection, selfCheckFilter(criteria),
		pageOptions(criteria.Limit, criteria.Offset, bson.D{{Key: "createdAt", Value: -1}}), &checks)
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to search self-checks", zap.Error(err), zap.Duration("duration", duration))
		return nil, err
	}

	logger.Debug("Self-checks searched",
		zap.Int("count", len(checks)),
		zap.Bool("hasIssues", criteria.HasIssues),
		zap.Duration("duration", duration))
	return checks, nil
}

func selfCheckFilter(criteria model.SelfCheckSearchCriteria) bson.M {
	query := bson.M{}

	createdAt := bson.M{}
	if !criteria.From.IsZero() {
		createdAt["$gte"] = criteria.From
	}
	if !criteria.Before.IsZero() {
		createdAt["$lt"] = criteria.Before
	}
	if len(createdAt) > 0 {
		query["createdAt"] = createdAt
	}

	if criteria.VehicleID != nil {
		query["vehicleId"] = *criteria.VehicleID
	}

	if criteria.HasIssues {
		symptoms := make(bson.A, 0, len(model.SymptomFields))
		for _, field := range model.SymptomFields {
			symptoms = append(symptoms, bson.M{field: true})
		}
		query["$or"] = symptoms
	}
	return query
}
