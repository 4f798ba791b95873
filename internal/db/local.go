package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lodgeworks/property-portal/internal/models"
)

// LocalStore is the in-memory substitute backend. It holds the same logical
// collections as the remote store, seeds itself exactly once on first use,
// and never fails: operations succeed or report absence via ErrNotFound.
// All returned records are copies; callers cannot corrupt internal state by
// mutating results. State is process-local and resets on restart.
type LocalStore struct {
	mu       sync.RWMutex
	seedOnce sync.Once

	properties   map[string]models.Property
	units        map[string]models.Unit
	tenants      map[string]models.Tenant
	requests     map[string]models.MaintenanceRequest
	transactions map[string]models.Transaction
	users        map[string]models.User

	// Insertion order per collection, so listings are stable.
	propertyOrder    []string
	unitOrder        []string
	tenantOrder      []string
	requestOrder     []string
	transactionOrder []string
}

// NewLocalStore builds an empty local store. Seeding happens lazily on the
// first operation.
func NewLocalStore() *LocalStore {
	return &LocalStore{
		properties:   make(map[string]models.Property),
		units:        make(map[string]models.Unit),
		tenants:      make(map[string]models.Tenant),
		requests:     make(map[string]models.MaintenanceRequest),
		transactions: make(map[string]models.Transaction),
		users:        make(map[string]models.User),
	}
}

func (s *LocalStore) init() {
	s.seedOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.populate()
	})
}

func copyUnit(u models.Unit) models.Unit {
	if u.Amenities != nil {
		u.Amenities = append([]string(nil), u.Amenities...)
	}
	return u
}

func copyRequest(m models.MaintenanceRequest) models.MaintenanceRequest {
	if m.ScheduledDate != nil {
		d := *m.ScheduledDate
		m.ScheduledDate = &d
	}
	if m.CompletedDate != nil {
		d := *m.CompletedDate
		m.CompletedDate = &d
	}
	if m.EstimatedCost != nil {
		c := *m.EstimatedCost
		m.EstimatedCost = &c
	}
	if m.ActualCost != nil {
		c := *m.ActualCost
		m.ActualCost = &c
	}
	return m
}

// --- properties ---

func (s *LocalStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Property, 0, len(s.propertyOrder))
	for _, id := range s.propertyOrder {
		out = append(out, s.properties[id])
	}
	return out, nil
}

func (s *LocalStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *LocalStore) CreateProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.properties[p.ID] = p
	s.propertyOrder = append(s.propertyOrder, p.ID)
	return &p, nil
}

func (s *LocalStore) UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (*models.Property, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&p)
	p.UpdatedAt = time.Now()
	s.properties[id] = p
	return &p, nil
}

func (s *LocalStore) DeleteProperty(ctx context.Context, id string) (bool, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return false, nil
	}
	delete(s.properties, id)
	s.propertyOrder = removeID(s.propertyOrder, id)
	return true, nil
}

// --- units ---

func (s *LocalStore) ListUnits(ctx context.Context, propertyID string) ([]models.Unit, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Unit{}
	for _, id := range s.unitOrder {
		u := s.units[id]
		if propertyID == "" || u.PropertyID == propertyID {
			out = append(out, copyUnit(u))
		}
	}
	return out, nil
}

func (s *LocalStore) GetUnit(ctx context.Context, id string) (*models.Unit, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.units[id]
	if !ok {
		return nil, ErrNotFound
	}
	u = copyUnit(u)
	return &u, nil
}

func (s *LocalStore) CreateUnit(ctx context.Context, u models.Unit) (*models.Unit, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	if u.Status == "" {
		u.Status = models.UnitAvailable
	}
	s.units[u.ID] = copyUnit(u)
	s.unitOrder = append(s.unitOrder, u.ID)
	return &u, nil
}

func (s *LocalStore) UpdateUnit(ctx context.Context, id string, patch models.UnitPatch) (*models.Unit, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&u)
	u.UpdatedAt = time.Now()
	s.units[id] = u
	u = copyUnit(u)
	return &u, nil
}

func (s *LocalStore) DeleteUnit(ctx context.Context, id string) (bool, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.units[id]; !ok {
		return false, nil
	}
	delete(s.units, id)
	s.unitOrder = removeID(s.unitOrder, id)
	return true, nil
}

// --- tenants ---

func (s *LocalStore) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tenant, 0, len(s.tenantOrder))
	for _, id := range s.tenantOrder {
		out = append(out, s.tenants[id])
	}
	return out, nil
}

func (s *LocalStore) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *LocalStore) GetTenantByUnit(ctx context.Context, unitID string) (*models.Tenant, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.tenantOrder {
		t := s.tenants[id]
		if t.UnitID == unitID {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *LocalStore) CreateTenant(ctx context.Context, t models.Tenant) (*models.Tenant, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.tenants[t.ID] = t
	s.tenantOrder = append(s.tenantOrder, t.ID)
	return &t, nil
}

func (s *LocalStore) UpdateTenant(ctx context.Context, id string, patch models.TenantPatch) (*models.Tenant, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&t)
	t.UpdatedAt = time.Now()
	s.tenants[id] = t
	return &t, nil
}

func (s *LocalStore) DeleteTenant(ctx context.Context, id string) (bool, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[id]; !ok {
		return false, nil
	}
	delete(s.tenants, id)
	s.tenantOrder = removeID(s.tenantOrder, id)
	return true, nil
}

// --- maintenance requests ---

func (s *LocalStore) ListMaintenanceRequests(ctx context.Context, unitID string) ([]models.MaintenanceRequest, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.MaintenanceRequest{}
	for _, id := range s.requestOrder {
		m := s.requests[id]
		if unitID == "" || m.UnitID == unitID {
			out = append(out, copyRequest(m))
		}
	}
	return out, nil
}

func (s *LocalStore) GetMaintenanceRequest(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	m = copyRequest(m)
	return &m, nil
}

func (s *LocalStore) CreateMaintenanceRequest(ctx context.Context, m models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	if m.Status == "" {
		m.Status = models.MaintenancePending
	}
	if m.ReportedDate.IsZero() {
		m.ReportedDate = m.CreatedAt
	}
	s.requests[m.ID] = copyRequest(m)
	s.requestOrder = append(s.requestOrder, m.ID)
	return &m, nil
}

func (s *LocalStore) UpdateMaintenanceRequest(ctx context.Context, id string, patch models.MaintenanceRequestPatch) (*models.MaintenanceRequest, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&m)
	m.UpdatedAt = time.Now()
	s.requests[id] = copyRequest(m)
	m = copyRequest(m)
	return &m, nil
}

func (s *LocalStore) DeleteMaintenanceRequest(ctx context.Context, id string) (bool, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[id]; !ok {
		return false, nil
	}
	delete(s.requests, id)
	s.requestOrder = removeID(s.requestOrder, id)
	return true, nil
}

// --- transactions ---

func (s *LocalStore) ListTransactions(ctx context.Context, propertyID string) ([]models.Transaction, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Transaction{}
	for _, id := range s.transactionOrder {
		t := s.transactions[id]
		if propertyID == "" || t.PropertyID == propertyID {
			out = append(out, t)
		}
	}
	// Newest first, matching the remote listing.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *LocalStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *LocalStore) CreateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}
	s.transactions[t.ID] = t
	s.transactionOrder = append(s.transactionOrder, t.ID)
	return &t, nil
}

func (s *LocalStore) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&t)
	t.UpdatedAt = time.Now()
	s.transactions[id] = t
	return &t, nil
}

func (s *LocalStore) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return false, nil
	}
	delete(s.transactions, id)
	s.transactionOrder = removeID(s.transactionOrder, id)
	return true, nil
}

// --- users ---

func (s *LocalStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.init()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *LocalStore) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	u.IsActive = true
	s.users[u.ID] = u
	return &u, nil
}

func (s *LocalStore) UpdateUserLastLogin(ctx context.Context, id string) error {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	u.UpdatedAt = now
	s.users[id] = u
	return nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
