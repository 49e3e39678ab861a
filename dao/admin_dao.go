// dao/admin_dao.go
package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dev-mohitbeniwal/mobility/db"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
)

type AdminDAO struct {
	Collection *mongo.Collection
}

func NewAdminDAO(database *mongo.Database) *AdminDAO {
	return &AdminDAO{Collection: database.Collection(db.AdminsCollection)}
}

func (dao *AdminDAO) FindAdminByLoginID(ctx context.Context, loginID string) (*model.Admin, error) {
	var admin model.Admin
	if err := dao.Collection.FindOne(ctx, bson.M{"id": loginID}).Decode(&admin); err != nil {
		return nil, mapFindError(err, mobility_errors.ErrAdminNotFound)
	}
	return &admin, nil
}
