// Package filter turns an allowed access decision into the owner constraint
// a query must carry.
package filter

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

// OwnerField is the document field holding the owning user id.
const OwnerField = "userId"

// Constraint restricts a query to the records a decision covers.
type Constraint struct {
	kind   pdp_model.ScopeKind
	owners []primitive.ObjectID
}

// FromDecision fails for denied decisions so that a caller cannot query
// with an empty filter after a denial.
func FromDecision(d *pdp_model.AccessDecision) (Constraint, error) {
	if d == nil || !d.Allowed {
		return Constraint{}, fmt.Errorf("no query constraint for a denied decision")
	}
	if d.Scope == nil {
		return Constraint{}, fmt.Errorf("allowed decision without scope")
	}

	switch d.Scope.Kind {
	case pdp_model.ScopeUnrestricted, pdp_model.ScopeUnowned:
		return Constraint{kind: d.Scope.Kind}, nil
	case pdp_model.ScopeOwners:
		owners := append([]primitive.ObjectID(nil), d.Scope.Owners...)
		return Constraint{kind: pdp_model.ScopeOwners, owners: owners}, nil
	}
	return Constraint{}, fmt.Errorf("unknown scope kind %q", d.Scope.Kind)
}

// ForOwner restricts a query to a single owner's records.
func ForOwner(owner primitive.ObjectID) Constraint {
	return Constraint{kind: pdp_model.ScopeOwners, owners: []primitive.ObjectID{owner}}
}

func (c Constraint) Unrestricted() bool {
	return c.kind == pdp_model.ScopeUnrestricted
}

// BSON renders the constraint on OwnerField.
func (c Constraint) BSON() bson.M {
	return c.On(OwnerField)
}

// On renders the constraint against field. An owners scope with no owners
// matches nothing.
func (c Constraint) On(field string) bson.M {
	switch c.kind {
	case pdp_model.ScopeUnrestricted:
		return bson.M{}
	case pdp_model.ScopeUnowned:
		return bson.M{field: nil}
	}
	if len(c.owners) == 1 {
		return bson.M{field: c.owners[0]}
	}
	owners := c.owners
	if owners == nil {
		owners = []primitive.ObjectID{}
	}
	return bson.M{field: bson.M{"$in": owners}}
}

// Matches applies the same rule to an in-memory owner id.
func (c Constraint) Matches(owner *primitive.ObjectID) bool {
	switch c.kind {
	case pdp_model.ScopeUnrestricted:
		return true
	case pdp_model.ScopeUnowned:
		return owner == nil || owner.IsZero()
	}
	if owner == nil {
		return false
	}
	for _, o := range c.owners {
		if o == *owner {
			return true
		}
	}
	return false
}

// Owners returns the owner ids of an owners scope.
func (c Constraint) Owners() []primitive.ObjectID {
	return append([]primitive.ObjectID(nil), c.owners...)
}
