package engine

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	casbin_model "github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/dev-mohitbeniwal/mobility/model"
	pdp_model "github.com/dev-mohitbeniwal/mobility/pdp/model"
)

//go:embed role_model.conf
var roleModel string

//go:embed role_policy.csv
var rolePolicy string

// RoleGate answers whether a role may ever perform an operation on a
// resource kind, before ownership is considered.
type RoleGate struct {
	enforcer *casbin.SyncedEnforcer
}

func NewRoleGate() (*RoleGate, error) {
	return NewRoleGateWithPolicy(rolePolicy)
}

// NewRoleGateWithPolicy loads a CSV policy in place of the built-in one.
func NewRoleGateWithPolicy(policy string) (*RoleGate, error) {
	m, err := casbin_model.NewModelFromString(roleModel)
	if err != nil {
		return nil, fmt.Errorf("parse role model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(policy))
	if err != nil {
		return nil, fmt.Errorf("create role enforcer: %w", err)
	}
	return &RoleGate{enforcer: enforcer}, nil
}

func (g *RoleGate) Allowed(role model.Role, kind pdp_model.ResourceKind, op pdp_model.Operation) bool {
	ok, err := g.enforcer.Enforce(string(role), string(kind), string(op))
	return err == nil && ok
}
