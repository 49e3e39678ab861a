package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repair struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID          primitive.ObjectID `bson:"vehicleId" json:"vehicleId"`
	RepairedAt         time.Time          `bson:"repairedAt" json:"repairedAt" validate:"required"`
	BillingPrice       int64              `bson:"billingPrice" json:"billingPrice" validate:"gte=0"`
	IsAccident         bool               `bson:"isAccident" json:"isAccident"`
	RepairStationCode  string             `bson:"repairStationCode" json:"repairStationCode"`
	RepairStationLabel string             `bson:"repairStationLabel" json:"repairStationLabel"`
	Repairer           string             `bson:"repairer" json:"repairer"`
	RepairCategories   []string           `bson:"repairCategories" json:"repairCategories" validate:"min=1,dive,required"`
	BatteryVoltage     float64            `bson:"batteryVoltage,omitempty" json:"batteryVoltage,omitempty" validate:"gte=0"`
	EtcRepairParts     string             `bson:"etcRepairParts,omitempty" json:"etcRepairParts,omitempty"`
	Memo               string             `bson:"memo,omitempty" json:"memo,omitempty" validate:"max=1000"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}

// RepairStation is a workshop that repairers operate under.
type RepairStation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code        string             `bson:"code" json:"code"`
	FirebaseUID string             `bson:"firebaseUid" json:"-"`
	Label       string             `bson:"label" json:"label"`
	State       string             `bson:"state,omitempty" json:"state,omitempty"`
	City        string             `bson:"city,omitempty" json:"city,omitempty"`
	Region      string             `bson:"region,omitempty" json:"region,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Telephone   string             `bson:"telephone,omitempty" json:"telephone,omitempty"`
	Aid         []string           `bson:"aid,omitempty" json:"aid,omitempty"`
	Coordinate  *GeoPoint          `bson:"coordinate,omitempty" json:"coordinate,omitempty"`
}

// GeoPoint is a GeoJSON point, longitude first.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}
