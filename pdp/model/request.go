package model

import "time"

type Operation string

const (
	OperationRead   Operation = "read"
	OperationWrite  Operation = "write"
	OperationCreate Operation = "create"
	OperationClaim  Operation = "claim"
	OperationAdmin  Operation = "admin"
)

type ResourceKind string

const (
	ResourceVehicle   ResourceKind = "vehicle"
	ResourceRepair    ResourceKind = "repair"
	ResourceSelfCheck ResourceKind = "selfcheck"
	ResourceUser      ResourceKind = "user"
)

// ResourceRef identifies the target of an operation. For vehicles ID is the
// external vehicleId; for every other kind it is the record ObjectID hex.
type ResourceRef struct {
	Kind ResourceKind `json:"kind"`
	ID   string       `json:"id"`
}

type AccessRequest struct {
	Principal *Principal  `json:"principal"`
	Resource  ResourceRef `json:"resource"`
	Operation Operation   `json:"operation"`
	// Creates names the kind of record a create operation adds under
	// Resource. Defaults to Resource.Kind.
	Creates   ResourceKind `json:"creates,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// GateKind is the resource kind the role gate is consulted with.
func (r *AccessRequest) GateKind() ResourceKind {
	if r.Operation == OperationCreate && r.Creates != "" {
		return r.Creates
	}
	return r.Resource.Kind
}

func Vehicle(vehicleID string) ResourceRef {
	return ResourceRef{Kind: ResourceVehicle, ID: vehicleID}
}

func Repair(repairID string) ResourceRef {
	return ResourceRef{Kind: ResourceRepair, ID: repairID}
}

func SelfCheck(selfCheckID string) ResourceRef {
	return ResourceRef{Kind: ResourceSelfCheck, ID: selfCheckID}
}

func User(userID string) ResourceRef {
	return ResourceRef{Kind: ResourceUser, ID: userID}
}
