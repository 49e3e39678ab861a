package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelfCheck is an owner-submitted diagnostic checklist. Every flag set to
// true is an observed symptom.
type SelfCheck struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID primitive.ObjectID `bson:"vehicleId" json:"vehicleId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`

	MotorNoise           bool `bson:"motorNoise" json:"motorNoise"`
	AbnormalSpeed        bool `bson:"abnormalSpeed" json:"abnormalSpeed"`
	BatteryBlinking      bool `bson:"batteryBlinking" json:"batteryBlinking"`
	ChargingNotStart     bool `bson:"chargingNotStart" json:"chargingNotStart"`
	BreakDelay           bool `bson:"breakDelay" json:"breakDelay"`
	BreakPadIssue        bool `bson:"breakPadIssue" json:"breakPadIssue"`
	TubePunctureFrequent bool `bson:"tubePunctureFrequent" json:"tubePunctureFrequent"`
	TireWearFrequent     bool `bson:"tireWearFrequent" json:"tireWearFrequent"`
	BatteryDischargeFast bool `bson:"batteryDischargeFast" json:"batteryDischargeFast"`
	IncompleteCharging   bool `bson:"incompleteCharging" json:"incompleteCharging"`
	SeatUnstable         bool `bson:"seatUnstable" json:"seatUnstable"`
	SeatCoverIssue       bool `bson:"seatCoverIssue" json:"seatCoverIssue"`
	FootRestLoose        bool `bson:"footRestLoose" json:"footRestLoose"`
	AntislipWorn         bool `bson:"antislipWorn" json:"antislipWorn"`
	FrameNoise           bool `bson:"frameNoise" json:"frameNoise"`
	FrameCrack           bool `bson:"frameCrack" json:"frameCrack"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SymptomFields holds the stored name of every symptom flag, in checklist
// order.
var SymptomFields = []string{
	"motorNoise", "abnormalSpeed", "batteryBlinking", "chargingNotStart",
	"breakDelay", "breakPadIssue", "tubePunctureFrequent", "tireWearFrequent",
	"batteryDischargeFast", "incompleteCharging", "seatUnstable", "seatCoverIssue",
	"footRestLoose", "antislipWorn", "frameNoise", "frameCrack",
}

// SelfCheckSearchCriteria narrows admin self-check listings. Zero values do
// not filter; Before is exclusive.
type SelfCheckSearchCriteria struct {
	From      time.Time
	Before    time.Time
	VehicleID *primitive.ObjectID
	HasIssues bool
	Limit     int
	Offset    int
}

// Matches applies the criteria to a stored self-check.
func (c SelfCheckSearchCriteria) Matches(check *SelfCheck) bool {
	switch {
	case !c.From.IsZero() && check.CreatedAt.Before(c.From):
		return false
	case !c.Before.IsZero() && !check.CreatedAt.Before(c.Before):
		return false
	case c.VehicleID != nil && check.VehicleID != *c.VehicleID:
		return false
	case c.HasIssues && len(check.Anomalies()) == 0:
		return false
	}
	return true
}

// Anomalies lists a human readable label for every reported symptom, in
// checklist order.
func (s *SelfCheck) Anomalies() []string {
	checks := []struct {
		set   bool
		label string
	}{
		{s.MotorNoise, "motor noise or vibration"},
		{s.AbnormalSpeed, "abnormal speed changes"},
		{s.BatteryBlinking, "battery warning light blinking"},
		{s.ChargingNotStart, "charging does not start"},
		{s.BreakDelay, "delayed braking"},
		{s.BreakPadIssue, "worn or damaged brake pads"},
		{s.TubePunctureFrequent, "frequent tyre punctures"},
		{s.TireWearFrequent, "heavy tyre wear"},
		{s.BatteryDischargeFast, "battery drains quickly"},
		{s.IncompleteCharging, "battery does not fully charge"},
		{s.SeatUnstable, "seat not firmly fixed"},
		{s.SeatCoverIssue, "damaged seat cover"},
		{s.FootRestLoose, "loose footrest"},
		{s.AntislipWorn, "worn anti-slip pad"},
		{s.FrameNoise, "noise from the frame"},
		{s.FrameCrack, "cracked or bent frame"},
	}

	var anomalies []string
	for _, c := range checks {
		if c.set {
			anomalies = append(anomalies, c.label)
		}
	}
	return anomalies
}
