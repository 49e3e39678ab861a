package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/mobility/db"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/model"
	mobility_neo4j "github.com/dev-mohitbeniwal/mobility/model/neo4j"
	helper_util "github.com/dev-mohitbeniwal/mobility/util/helper"
)

// GuardianDAO keeps guardian relationships as
// (:Guardian {externalId})-[:GUARDS {createdAt}]->(:User {id}).
type GuardianDAO struct {
	Driver neo4j.DriverWithContext
}

func NewGuardianDAO(driver neo4j.DriverWithContext) *GuardianDAO {
	return &GuardianDAO{Driver: driver}
}

func (dao *GuardianDAO) EnsureUniqueConstraints(ctx context.Context) error {
	logger.Info("Ensuring unique constraints on guardian graph")
	for _, query := range []string{
		`CREATE CONSTRAINT unique_guardian_external_id IF NOT EXISTS
         FOR (g:` + mobility_neo4j.LabelGuardian + `) REQUIRE g.externalId IS UNIQUE`,
		`CREATE CONSTRAINT unique_user_id IF NOT EXISTS
         FOR (u:` + mobility_neo4j.LabelUser + `) REQUIRE u.id IS UNIQUE`,
	} {
		_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
			_, err := tx.Run(ctx, query, nil)
			return nil, err
		})
		if err != nil {
			logger.Error("Failed to ensure guardian constraints", zap.Error(err))
			return err
		}
	}
	return nil
}

// CreateGuardianRelationship links a guardian to the user they protect. A
// guardian protects at most one user; linking a second one fails with
// ErrGuardianConflict.
func (dao *GuardianDAO) CreateGuardianRelationship(ctx context.Context, rel model.GuardianRelationship) (*model.GuardianRelationship, error) {
	start := time.Now()
	logger.Info("Creating guardian relationship",
		zap.String("guardianId", rel.GuardianExternalID),
		zap.String("userID", rel.UserID.Hex()))

	rel.CreatedAt = time.Now().UTC()
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		existing, err := tx.Run(ctx, `
        MATCH (:`+mobility_neo4j.LabelGuardian+` {externalId: $guardianId})-[:`+mobility_neo4j.RelGuards+`]->(u:`+mobility_neo4j.LabelUser+`)
        RETURN u.id AS userId
        `, map[string]any{"guardianId": rel.GuardianExternalID})
		if err != nil {
			return nil, err
		}
		if existing.Next(ctx) {
			return nil, mobility_errors.ErrGuardianConflict
		}

		_, err = tx.Run(ctx, `
        MERGE (g:`+mobility_neo4j.LabelGuardian+` {externalId: $guardianId})
        MERGE (u:`+mobility_neo4j.LabelUser+` {id: $userId})
        CREATE (g)-[:`+mobility_neo4j.RelGuards+` {createdAt: $createdAt}]->(u)
        `, map[string]any{
			"guardianId": rel.GuardianExternalID,
			"userId":     rel.UserID.Hex(),
			"createdAt":  rel.CreatedAt,
		})
		return nil, err
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create guardian relationship",
			zap.Error(err),
			zap.String("guardianId", rel.GuardianExternalID),
			zap.Duration("duration", duration))
		if errors.Is(err, mobility_errors.ErrGuardianConflict) {
			return nil, mobility_errors.ErrGuardianConflict
		}
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Guardian relationship created successfully", zap.Duration("duration", duration))
	return &rel, nil
}

func (dao *GuardianDAO) FindGuardianRelationshipsByGuardianExternalID(ctx context.Context, externalID string) ([]model.GuardianRelationship, error) {
	start := time.Now()
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, `
        MATCH (:`+mobility_neo4j.LabelGuardian+` {externalId: $guardianId})-[r:`+mobility_neo4j.RelGuards+`]->(u:`+mobility_neo4j.LabelUser+`)
        RETURN u.id AS userId, r.createdAt AS createdAt
        `, map[string]any{"guardianId": externalID})
		if err != nil {
			return nil, err
		}

		var relationships []model.GuardianRelationship
		for records.Next(ctx) {
			rel, err := mapRecordToRelationship(externalID, records.Record())
			if err != nil {
				return nil, err
			}
			relationships = append(relationships, rel)
		}
		return relationships, records.Err()
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to retrieve guardian relationships",
			zap.Error(err),
			zap.String("guardianId", externalID),
			zap.Duration("duration", duration))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}

	relationships, _ := result.([]model.GuardianRelationship)
	logger.Debug("Retrieved guardian relationships",
		zap.String("guardianId", externalID),
		zap.Int("count", len(relationships)),
		zap.Duration("duration", duration))
	return relationships, nil
}

// DeleteGuardianRelationships removes the user node and every edge to it,
// along with the guardian node the same person holds under externalID.
func (dao *GuardianDAO) DeleteGuardianRelationships(ctx context.Context, userID primitive.ObjectID, externalID string) error {
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
        MATCH (u:`+mobility_neo4j.LabelUser+` {id: $userId})
        DETACH DELETE u
        `, map[string]any{"userId": userID.Hex()})
		if err != nil || externalID == "" {
			return nil, err
		}
		_, err = tx.Run(ctx, `
        MATCH (g:`+mobility_neo4j.LabelGuardian+` {externalId: $guardianId})
        DETACH DELETE g
        `, map[string]any{"guardianId": externalID})
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to delete guardian relationships",
			zap.Error(err),
			zap.String("userID", userID.Hex()),
			zap.String("guardianId", externalID))
		return fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}
	return nil
}

func mapRecordToRelationship(guardianID string, record *neo4j.Record) (model.GuardianRelationship, error) {
	rawID, _ := record.Get("userId")
	hex, ok := rawID.(string)
	if !ok {
		return model.GuardianRelationship{}, fmt.Errorf("guardian edge without user id")
	}
	userID, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return model.GuardianRelationship{}, fmt.Errorf("invalid user id %q: %w", hex, err)
	}

	rel := model.GuardianRelationship{GuardianExternalID: guardianID, UserID: userID}
	rawCreated, _ := record.Get("createdAt")
	if createdAt, err := helper_util.ParseNullableTime(rawCreated); err == nil && createdAt != nil {
		rel.CreatedAt = *createdAt
	}
	return rel, nil
}
