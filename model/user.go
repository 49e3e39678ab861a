// model/user.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of roles a principal can act under.
type Role string

const (
	RoleUser     Role = "user"
	RoleGuardian Role = "guardian"
	RoleRepairer Role = "repairer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleGuardian, RoleRepairer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirebaseUID   string             `bson:"firebaseUid" json:"firebaseUid"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=64"`
	PhoneNumber   string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Role          Role               `bson:"role" json:"role" validate:"omitempty,oneof=user guardian repairer"`
	RecipientType string             `bson:"recipientType,omitempty" json:"recipientType,omitempty"`
	SMSConsent    bool               `bson:"smsConsent" json:"smsConsent"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GuardianRelationship links a guardian's external identity to the user
// record they protect.
type GuardianRelationship struct {
	GuardianExternalID string             `json:"guardianExternalId" validate:"required"`
	UserID             primitive.ObjectID `json:"userId"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// UserProfileUpdate carries the profile fields an administrator may edit.
// Nil fields are left unchanged.
type UserProfileUpdate struct {
	Name          *string `json:"name" validate:"omitempty,max=64"`
	PhoneNumber   *string `json:"phoneNumber" validate:"omitempty,max=20"`
	RecipientType *string `json:"recipientType" validate:"omitempty,oneof=general lowIncome welfare unregistered"`
	SMSConsent    *bool   `json:"smsConsent"`
}

func (u UserProfileUpdate) Empty() bool {
	return u.Name == nil && u.PhoneNumber == nil && u.RecipientType == nil && u.SMSConsent == nil
}

// Apply copies the set fields onto user.
func (u UserProfileUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.PhoneNumber != nil {
		user.PhoneNumber = *u.PhoneNumber
	}
	if u.RecipientType != nil {
		user.RecipientType = *u.RecipientType
	}
	if u.SMSConsent != nil {
		user.SMSConsent = *u.SMSConsent
	}
}

// UserSearchCriteria narrows admin user listings.
type UserSearchCriteria struct {
	Role   Role   `form:"role"`
	Name   string `form:"name"`
	Limit  int    `form:"-"`
	Offset int    `form:"-"`
}
