package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a dashboard account bound to one repair station.
type Admin struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LoginID         string             `bson:"id" json:"loginId"`
	PasswordHash    string             `bson:"password" json:"-"`
	RepairStationID primitive.ObjectID `bson:"repairStation" json:"repairStation"`
}

type LoginRequest struct {
	LoginID  string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn"`
	ExpiresAt time.Time `json:"expiresAt"`
}
