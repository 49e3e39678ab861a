package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is a registered mobility aid. VehicleID is the external identifier
// printed on the QR code; OwnerUserID stays nil until the vehicle is claimed.
type Vehicle struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	VehicleID    string              `bson:"vehicleId" json:"vehicleId"`
	OwnerUserID  *primitive.ObjectID `bson:"userId" json:"userId"`
	Model        string              `bson:"model,omitempty" json:"model,omitempty"`
	PurchasedAt  *time.Time          `bson:"purchasedAt,omitempty" json:"purchasedAt,omitempty"`
	RegisteredAt *time.Time          `bson:"registeredAt,omitempty" json:"registeredAt,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}

func (v *Vehicle) Owned() bool {
	return v.OwnerUserID != nil && !v.OwnerUserID.IsZero()
}

// GeneratedVehicle is returned to admins when a new vehicle is issued.
type GeneratedVehicle struct {
	Vehicle *Vehicle `json:"vehicle"`
	QRToken string   `json:"qrToken"`
}

type ClaimRequest struct {
	Model       string     `json:"model" validate:"omitempty,max=64"`
	PurchasedAt *time.Time `json:"purchasedAt"`
	Name        string     `json:"name" validate:"omitempty,max=64"`
	PhoneNumber string     `json:"phoneNumber"`
}

// VehicleClaim is what a successful claim writes onto the vehicle.
type VehicleClaim struct {
	Model        string
	PurchasedAt  *time.Time
	RegisteredAt time.Time
}
