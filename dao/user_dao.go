// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"regexp"
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
)

type UserDAO struct {
	Collection *mongo.Collection
}

func NewUserDAO(database *mongo.Database) *UserDAO {
	return &UserDAO{Collection: database.Collection(db.UsersCollection)}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("firebaseUid", user.FirebaseUID))

	created := *user
	created.ID = primitive.NewObjectID()
	if created.Role == "" {
		created.Role = model.RoleUser
	}
	now := time.Now().UTC()
	created.CreatedAt, created.UpdatedAt = now, now

	_, err := dao.Collection.InsertOne(ctx, created)
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("firebaseUid", user.FirebaseUID),
			zap.Duration("duration", duration))
		if mongo.IsDuplicateKeyError(err) {
			return nil, mobility_errors.ErrUserConflict
		}
		return nil, fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}

	logger.Info("User created successfully",
		zap.String("userID", created.ID.Hex()),
		zap.Duration("duration", duration))
	return &created, nil
}

func (dao *UserDAO) FindUserByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	return dao.findOne(ctx, bson.M{"firebaseUid": externalID})
}

func (dao *UserDAO) FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return dao.findOne(ctx, bson.M{"_id": id})
}

func (dao *UserDAO) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	if err := dao.Collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapFindError(err, mobility_errors.ErrUserNotFound)
	}
	return &user, nil
}

func (dao *UserDAO) UpdateSMSConsent(ctx context.Context, id primitive.ObjectID, consent bool) (*model.User, error) {
	return dao.update(ctx, id, bson.M{"smsConsent": consent})
}

func (dao *UserDAO) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role model.Role) (*model.User, error) {
	return dao.update(ctx, id, bson.M{"role": role})
}

func (dao *UserDAO) UpdateUserProfile(ctx context.Context, id primitive.ObjectID, update model.UserProfileUpdate) (*model.User, error) {
	return dao.update(ctx, id, userProfileSet(update))
}

func userProfileSet(update model.UserProfileUpdate) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.PhoneNumber != nil {
		set["phoneNumber"] = *update.PhoneNumber
	}
	if update.RecipientType != nil {
		set["recipientType"] = *update.RecipientType
	}
	if update.SMSConsent != nil {
		set["smsConsent"] = *update.SMSConsent
	}
	return set
}

func (dao *UserDAO) update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.User, error) {
	start := time.Now()
	set["updatedAt"] = time.Now().UTC()

	var user model.User
	err := dao.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update user",
			zap.Error(err),
			zap.String("userID", id.Hex()),
			zap.Duration("duration", duration))
		return nil, mapFindError(err, mobility_errors.ErrUserNotFound)
	}

	logger.Info("User updated successfully",
		zap.String("userID", id.Hex()),
		zap.Duration("duration", duration))
	return &user, nil
}

func (dao *UserDAO) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := dao.Collection.DeleteOne(ctx, bson.M{"_id": id})
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete user",
			zap.Error(err),
			zap.String("userID", id.Hex()),
			zap.Duration("duration", duration))
		return fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}
	if result.DeletedCount == 0 {
		return mobility_errors.ErrUserNotFound
	}

	logger.Info("User deleted successfully",
		zap.String("userID", id.Hex()),
		zap.Duration("duration", duration))
	return nil
}

func (dao *UserDAO) SearchUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]*model.User, error) {
	filter := bson.M{}
	if criteria.Role != "" {
		filter["role"] = criteria.Role
	}
	if criteria.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(criteria.Name), Options: "i"}
	}

	users := []*model.User{}
	if err := findAll(ctx, dao.Collection, filter, pageOptions(criteria.Limit, criteria.Offset, bson.D{{Key: "_id", Value: 1}}), &users); err != nil {
		logger.Error("Failed to search users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func mapFindError(err error, notFound error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}
	return fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
}

func pageOptions(limit, offset int, sort bson.D) *options.FindOptions {
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	return opts
}

func findAll(ctx context.Context, collection *mongo.Collection, filter any, opts *options.FindOptions, out any) error {
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", mobility_errors.ErrDatabaseOperation, err)
	}
	return nil
}
