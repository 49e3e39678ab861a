// Package fake holds an in-memory persistence layer with the same
// semantics as the Mongo and Neo4j DAOs.
package fake

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/pdp/filter"
)

// Store is safe for concurrent use. Every read honours LookupDelay and
// fails with LookupErr when set.
type Store struct {
	mu sync.RWMutex

	users      map[primitive.ObjectID]*model.User
	vehicles   map[primitive.ObjectID]*model.Vehicle
	repairs    map[primitive.ObjectID]*model.Repair
	selfChecks map[primitive.ObjectID]*model.SelfCheck
	stations   map[primitive.ObjectID]*model.RepairStation
	admins     map[string]*model.Admin
	guardians  []model.GuardianRelationship

	LookupDelay time.Duration
	LookupErr   error
}

func NewStore() *Store {
	return &Store{
		users:      map[primitive.ObjectID]*model.User{},
		vehicles:   map[primitive.ObjectID]*model.Vehicle{},
		repairs:    map[primitive.ObjectID]*model.Repair{},
		selfChecks: map[primitive.ObjectID]*model.SelfCheck{},
		stations:   map[primitive.ObjectID]*model.RepairStation{},
		admins:     map[string]*model.Admin{},
	}
}

func (s *Store) lookup(ctx context.Context) error {
	if s.LookupDelay > 0 {
		select {
		case <-time.After(s.LookupDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.LookupErr != nil {
		return s.LookupErr
	}
	return ctx.Err()
}

// Users

func (s *Store) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.FirebaseUID == user.FirebaseUID {
			return nil, mobility_errors.ErrUserConflict
		}
	}
	created := *user
	if created.ID.IsZero() {
		created.ID = primitive.NewObjectID()
	}
	if created.Role == "" {
		created.Role = model.RoleUser
	}
	now := time.Now().UTC()
	created.CreatedAt, created.UpdatedAt = now, now
	s.users[created.ID] = &created
	out := created
	return &out, nil
}

func (s *Store) FindUserByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.FirebaseUID == externalID {
			out := *u
			return &out, nil
		}
	}
	return nil, mobility_errors.ErrUserNotFound
}

func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, mobility_errors.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *Store) UpdateSMSConsent(ctx context.Context, id primitive.ObjectID, consent bool) (*model.User, error) {
	return s.updateUser(id, func(u *model.User) { u.SMSConsent = consent })
}

func (s *Store) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role model.Role) (*model.User, error) {
	return s.updateUser(id, func(u *model.User) { u.Role = role })
}

func (s *Store) UpdateUserProfile(ctx context.Context, id primitive.ObjectID, update model.UserProfileUpdate) (*model.User, error) {
	return s.updateUser(id, update.Apply)
}

func (s *Store) updateUser(id primitive.ObjectID, apply func(*model.User)) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, mobility_errors.ErrUserNotFound
	}
	apply(u)
	u.UpdatedAt = time.Now().UTC()
	out := *u
	return &out, nil
}

func (s *Store) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return mobility_errors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Store) SearchUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]*model.User, error) {
	s.mu.RLock()
	var out []*model.User
	for _, u := range s.users {
		if criteria.Role != "" && u.Role != criteria.Role {
			continue
		}
		if criteria.Name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(criteria.Name)) {
			continue
		}
		c := *u
		out = append(out, &c)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return page(out, criteria.Limit, criteria.Offset), nil
}

// Vehicles

func (s *Store) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.VehicleID == vehicle.VehicleID {
			return nil, mobility_errors.ErrVehicleConflict
		}
	}
	created := *vehicle
	if created.ID.IsZero() {
		created.ID = primitive.NewObjectID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	s.vehicles[created.ID] = &created
	out := created
	return &out, nil
}

func (s *Store) FindVehicleByExternalID(ctx context.Context, vehicleID string) (*model.Vehicle, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.VehicleID == vehicleID {
			out := *v
			return &out, nil
		}
	}
	return nil, mobility_errors.ErrVehicleNotFound
}

func (s *Store) FindVehicleByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles[id]
	if !ok {
		return nil, mobility_errors.ErrVehicleNotFound
	}
	out := *v
	return &out, nil
}

// ConditionallySetOwner sets the owner only while the vehicle has none.
func (s *Store) ConditionallySetOwner(ctx context.Context, vehicleID string, owner primitive.ObjectID, claim model.VehicleClaim) (*model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.VehicleID != vehicleID {
			continue
		}
		if v.Owned() {
			return nil, mobility_errors.ErrClaimConflict
		}
		o := owner
		v.OwnerUserID = &o
		if claim.Model != "" {
			v.Model = claim.Model
		}
		if claim.PurchasedAt != nil {
			v.PurchasedAt = claim.PurchasedAt
		}
		registered := claim.RegisteredAt
		v.RegisteredAt = &registered
		out := *v
		return &out, nil
	}
	return nil, mobility_errors.ErrVehicleNotFound
}

func (s *Store) ReleaseVehicles(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, v := range s.vehicles {
		if v.OwnerUserID != nil && *v.OwnerUserID == owner {
			v.OwnerUserID = nil
			v.RegisteredAt = nil
			n++
		}
	}
	return n, nil
}

func (s *Store) ListVehicles(ctx context.Context, c filter.Constraint, limit, offset int) ([]*model.Vehicle, error) {
	s.mu.RLock()
	var out []*model.Vehicle
	for _, v := range s.vehicles {
		if !c.Matches(v.OwnerUserID) {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].VehicleID < out[j].VehicleID })
	return page(out, limit, offset), nil
}

// Repairs

func (s *Store) CreateRepair(ctx context.Context, repair *model.Repair) (*model.Repair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *repair
	created.ID = primitive.NewObjectID()
	created.CreatedAt = time.Now().UTC()
	s.repairs[created.ID] = &created
	out := created
	return &out, nil
}

func (s *Store) FindRepairByID(ctx context.Context, id primitive.ObjectID) (*model.Repair, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.repairs[id]
	if !ok {
		return nil, mobility_errors.ErrRepairNotFound
	}
	out := *r
	return &out, nil
}

// ListRepairs lists every repair when vehicleID is nil.
func (s *Store) ListRepairs(ctx context.Context, vehicleID *primitive.ObjectID, limit, offset int) ([]*model.Repair, error) {
	s.mu.RLock()
	var out []*model.Repair
	for _, r := range s.repairs {
		if vehicleID != nil && r.VehicleID != *vehicleID {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].RepairedAt.After(out[j].RepairedAt) })
	return page(out, limit, offset), nil
}

// Self-checks

func (s *Store) CreateSelfCheck(ctx context.Context, check *model.SelfCheck) (*model.SelfCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *check
	created.ID = primitive.NewObjectID()
	created.CreatedAt = time.Now().UTC()
	s.selfChecks[created.ID] = &created
	out := created
	return &out, nil
}

// AddSelfCheck stores check as given, keeping its CreatedAt.
func (s *Store) AddSelfCheck(check model.SelfCheck) *model.SelfCheck {
	s.mu.Lock()
	defer s.mu.Unlock()
	if check.ID.IsZero() {
		check.ID = primitive.NewObjectID()
	}
	s.selfChecks[check.ID] = &check
	out := check
	return &out
}

func (s *Store) FindSelfCheckByID(ctx context.Context, id primitive.ObjectID) (*model.SelfCheck, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.selfChecks[id]
	if !ok {
		return nil, mobility_errors.ErrSelfCheckNotFound
	}
	out := *c
	return &out, nil
}

func (s *Store) ListSelfChecks(ctx context.Context, vehicleID primitive.ObjectID, limit, offset int) ([]*model.SelfCheck, error) {
	s.mu.RLock()
	var out []*model.SelfCheck
	for _, c := range s.selfChecks {
		if c.VehicleID != vehicleID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

func (s *Store) SearchSelfChecks(ctx context.Context, criteria model.SelfCheckSearchCriteria) ([]*model.SelfCheck, error) {
	s.mu.RLock()
	var out []*model.SelfCheck
	for _, c := range s.selfChecks {
		if !criteria.Matches(c) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, criteria.Limit, criteria.Offset), nil
}

// Repair stations and admins

func (s *Store) AddRepairStation(station model.RepairStation) *model.RepairStation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if station.ID.IsZero() {
		station.ID = primitive.NewObjectID()
	}
	s.stations[station.ID] = &station
	out := station
	return &out
}

func (s *Store) FindRepairStationByExternalID(ctx context.Context, externalID string) (*model.RepairStation, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.stations {
		if st.FirebaseUID == externalID {
			out := *st
			return &out, nil
		}
	}
	return nil, mobility_errors.ErrRepairStationNotFound
}

func (s *Store) FindRepairStationByID(ctx context.Context, id primitive.ObjectID) (*model.RepairStation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stations[id]
	if !ok {
		return nil, mobility_errors.ErrRepairStationNotFound
	}
	out := *st
	return &out, nil
}

func (s *Store) ListRepairStations(ctx context.Context) ([]*model.RepairStation, error) {
	s.mu.RLock()
	var out []*model.RepairStation
	for _, st := range s.stations {
		cp := *st
		out = append(out, &cp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) AddAdmin(admin model.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	s.admins[admin.LoginID] = &admin
}

func (s *Store) FindAdminByLoginID(ctx context.Context, loginID string) (*model.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[loginID]
	if !ok {
		return nil, mobility_errors.ErrAdminNotFound
	}
	out := *a
	return &out, nil
}

// Guardians

// CreateGuardianRelationship keeps one dependent per guardian, like the
// graph store does.
func (s *Store) CreateGuardianRelationship(ctx context.Context, rel model.GuardianRelationship) (*model.GuardianRelationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.guardians {
		if r.GuardianExternalID == rel.GuardianExternalID {
			return nil, mobility_errors.ErrGuardianConflict
		}
	}
	rel.CreatedAt = time.Now().UTC()
	s.guardians = append(s.guardians, rel)
	return &rel, nil
}

// AddGuardianRelationship bypasses the one-dependent rule.
func (s *Store) AddGuardianRelationship(guardianExternalID string, userID primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guardians = append(s.guardians, model.GuardianRelationship{
		GuardianExternalID: guardianExternalID,
		UserID:             userID,
		CreatedAt:          time.Now().UTC(),
	})
}

func (s *Store) FindGuardianRelationshipsByGuardianExternalID(ctx context.Context, externalID string) ([]model.GuardianRelationship, error) {
	if err := s.lookup(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.GuardianRelationship
	for _, r := range s.guardians {
		if r.GuardianExternalID == externalID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) DeleteGuardianRelationships(ctx context.Context, userID primitive.ObjectID, externalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.guardians[:0]
	for _, r := range s.guardians {
		if r.UserID != userID && (externalID == "" || r.GuardianExternalID != externalID) {
			kept = append(kept, r)
		}
	}
	s.guardians = kept
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
