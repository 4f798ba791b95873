package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lodgeworks/property-portal/internal/models"
)

// Remote collection names.
const (
	colProperties   = "properties"
	colUnits        = "units"
	colTenants      = "tenants"
	colMaintenance  = "maintenance_requests"
	colTransactions = "transactions"
	colUsers        = "users"
)

// RemoteStore implements Store against the remote MongoDB database. Every
// operation either returns data or an error; ErrNotFound marks absent
// single-row lookups so callers can tell them apart from real failures.
type RemoteStore struct {
	db *mongo.Database
}

// NewRemoteStore wraps a connected client and database name.
func NewRemoteStore(client *mongo.Client, database string) *RemoteStore {
	if client == nil {
		return &RemoteStore{}
	}
	return &RemoteStore{db: client.Database(database)}
}

func (s *RemoteStore) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, errors.New("remote store is not connected")
	}
	return s.db.Collection(name), nil
}

func findAll[T any](ctx context.Context, c *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findByID[T any](ctx context.Context, c *mongo.Collection, id string) (*T, error) {
	var out T
	err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// updateByID applies merge semantics: only the given fields change, and the
// last-modified timestamp is refreshed. The updated document is re-read so
// callers get the full entity back.
func updateByID[T any](ctx context.Context, c *mongo.Collection, id string, fields bson.M) (*T, error) {
	fields["updated_at"] = time.Now()
	res, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return findByID[T](ctx, c, id)
}

func deleteByID(ctx context.Context, c *mongo.Collection, id string) (bool, error) {
	res, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// --- properties ---

func (s *RemoteStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	c, err := s.collection(colProperties)
	if err != nil {
		return nil, err
	}
	return findAll[models.Property](ctx, c, bson.M{})
}

func (s *RemoteStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	c, err := s.collection(colProperties)
	if err != nil {
		return nil, err
	}
	return findByID[models.Property](ctx, c, id)
}

func (s *RemoteStore) CreateProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	c, err := s.collection(colProperties)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	if _, err := c.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *RemoteStore) UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (*models.Property, error) {
	c, err := s.collection(colProperties)
	if err != nil {
		return nil, err
	}
	return updateByID[models.Property](ctx, c, id, patch.Fields())
}

func (s *RemoteStore) DeleteProperty(ctx context.Context, id string) (bool, error) {
	c, err := s.collection(colProperties)
	if err != nil {
		return false, err
	}
	return deleteByID(ctx, c, id)
}

// --- units ---

func (s *RemoteStore) ListUnits(ctx context.Context, propertyID string) ([]models.Unit, error) {
	c, err := s.collection(colUnits)
	if err != nil {
		return nil, err
	}
	filter := bson.M{}
	if propertyID != "" {
		filter["property_id"] = propertyID
	}
	return findAll[models.Unit](ctx, c, filter)
}

func (s *RemoteStore) GetUnit(ctx context.Context, id string) (*models.Unit, error) {
	c, err := s.collection(colUnits)
	if err != nil {
		return nil, err
	}
	return findByID[models.Unit](ctx, c, id)
}

func (s *RemoteStore) CreateUnit(ctx context.Context, u models.Unit) (*models.Unit, error) {
	c, err := s.collection(colUnits)
	if err != nil {
		return nil, err
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	if u.Status == "" {
		u.Status = models.UnitAvailable
	}
	if _, err := c.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *RemoteStore) UpdateUnit(ctx context.Context, id string, patch models.UnitPatch) (*models.Unit, error) {
	c, err := s.collection(colUnits)
	if err != nil {
		return nil, err
	}
	return updateByID[models.Unit](ctx, c, id, patch.Fields())
}

func (s *RemoteStore) DeleteUnit(ctx context.Context, id string) (bool, error) {
	c, err := s.collection(colUnits)
	if err != nil {
		return false, err
	}
	return deleteByID(ctx, c, id)
}

// --- tenants ---

func (s *RemoteStore) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	c, err := s.collection(colTenants)
	if err != nil {
		return nil, err
	}
	return findAll[models.Tenant](ctx, c, bson.M{})
}

func (s *RemoteStore) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	c, err := s.collection(colTenants)
	if err != nil {
		return nil, err
	}
	return findByID[models.Tenant](ctx, c, id)
}

func (s *RemoteStore) GetTenantByUnit(ctx context.Context, unitID string) (*models.Tenant, error) {
	c, err := s.collection(colTenants)
	if err != nil {
		return nil, err
	}
	var t models.Tenant
	err = c.FindOne(ctx, bson.M{"unit_id": unitID}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *RemoteStore) CreateTenant(ctx context.Context, t models.Tenant) (*models.Tenant, error) {
	c, err := s.collection(colTenants)
	if err != nil {
		return nil, err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	if _, err := c.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *RemoteStore) UpdateTenant(ctx context.Context, id string, patch models.TenantPatch) (*models.Tenant, error) {
	c, err := s.collection(colTenants)
	if err != nil {
		return nil, err
	}
	return updateByID[models.Tenant](ctx, c, id, patch.Fields())
}

func (s *RemoteStore) DeleteTenant(ctx context.Context, id string) (bool, error) {
	c, err := s.collection(colTenants)
	if err != nil {
		return false, err
	}
	return deleteByID(ctx, c, id)
}

// --- maintenance requests ---

func (s *RemoteStore) ListMaintenanceRequests(ctx context.Context, unitID string) ([]models.MaintenanceRequest, error) {
	c, err := s.collection(colMaintenance)
	if err != nil {
		return nil, err
	}
	filter := bson.M{}
	if unitID != "" {
		filter["unit_id"] = unitID
	}
	return findAll[models.MaintenanceRequest](ctx, c, filter)
}

func (s *RemoteStore) GetMaintenanceRequest(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	c, err := s.collection(colMaintenance)
	if err != nil {
		return nil, err
	}
	return findByID[models.MaintenanceRequest](ctx, c, id)
}

func (s *RemoteStore) CreateMaintenanceRequest(ctx context.Context, m models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	c, err := s.collection(colMaintenance)
	if err != nil {
		return nil, err
	}
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	if m.Status == "" {
		m.Status = models.MaintenancePending
	}
	if m.ReportedDate.IsZero() {
		m.ReportedDate = m.CreatedAt
	}
	if _, err := c.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *RemoteStore) UpdateMaintenanceRequest(ctx context.Context, id string, patch models.MaintenanceRequestPatch) (*models.MaintenanceRequest, error) {
	c, err := s.collection(colMaintenance)
	if err != nil {
		return nil, err
	}
	return updateByID[models.MaintenanceRequest](ctx, c, id, patch.Fields())
}

func (s *RemoteStore) DeleteMaintenanceRequest(ctx context.Context, id string) (bool, error) {
	c, err := s.collection(colMaintenance)
	if err != nil {
		return false, err
	}
	return deleteByID(ctx, c, id)
}

// --- transactions ---

func (s *RemoteStore) ListTransactions(ctx context.Context, propertyID string) ([]models.Transaction, error) {
	c, err := s.collection(colTransactions)
	if err != nil {
		return nil, err
	}
	filter := bson.M{}
	if propertyID != "" {
		filter["property_id"] = propertyID
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return findAll[models.Transaction](ctx, c, filter, opts)
}

func (s *RemoteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	c, err := s.collection(colTransactions)
	if err != nil {
		return nil, err
	}
	return findByID[models.Transaction](ctx, c, id)
}

func (s *RemoteStore) CreateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	c, err := s.collection(colTransactions)
	if err != nil {
		return nil, err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}
	if _, err := c.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *RemoteStore) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	c, err := s.collection(colTransactions)
	if err != nil {
		return nil, err
	}
	return updateByID[models.Transaction](ctx, c, id, patch.Fields())
}

func (s *RemoteStore) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	c, err := s.collection(colTransactions)
	if err != nil {
		return false, err
	}
	return deleteByID(ctx, c, id)
}

// --- users ---

func (s *RemoteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	c, err := s.collection(colUsers)
	if err != nil {
		return nil, err
	}
	var u models.User
	err = c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *RemoteStore) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	c, err := s.collection(colUsers)
	if err != nil {
		return nil, err
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	u.IsActive = true
	if _, err := c.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *RemoteStore) UpdateUserLastLogin(ctx context.Context, id string) error {
	c, err := s.collection(colUsers)
	if err != nil {
		return err
	}
	now := time.Now()
	_, err = c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_login": now, "updated_at": now}})
	return err
}
