package db

import (
	"context"
	"errors"

	"github.com/lodgeworks/property-portal/internal/models"
)

// ErrNotFound reports that a requested entity does not exist. Both backends
// return it for absent single-row lookups; it is never a fallback trigger.
var ErrNotFound = errors.New("not found")

// Store is the entity-shaped contract both backends implement. Create
// operations assign the id and both timestamps; update operations apply
// merge semantics and refresh the last-modified timestamp; delete operations
// return false (not an error) when the id does not exist.
type Store interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	CreateProperty(ctx context.Context, p models.Property) (*models.Property, error)
	UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (*models.Property, error)
	DeleteProperty(ctx context.Context, id string) (bool, error)

	// ListUnits returns units for a property, or all units when propertyID
	// is empty.
	ListUnits(ctx context.Context, propertyID string) ([]models.Unit, error)
	GetUnit(ctx context.Context, id string) (*models.Unit, error)
	CreateUnit(ctx context.Context, u models.Unit) (*models.Unit, error)
	UpdateUnit(ctx context.Context, id string, patch models.UnitPatch) (*models.Unit, error)
	DeleteUnit(ctx context.Context, id string) (bool, error)

	ListTenants(ctx context.Context) ([]models.Tenant, error)
	GetTenant(ctx context.Context, id string) (*models.Tenant, error)
	// GetTenantByUnit returns the tenant currently assigned to a unit.
	GetTenantByUnit(ctx context.Context, unitID string) (*models.Tenant, error)
	CreateTenant(ctx context.Context, t models.Tenant) (*models.Tenant, error)
	UpdateTenant(ctx context.Context, id string, patch models.TenantPatch) (*models.Tenant, error)
	DeleteTenant(ctx context.Context, id string) (bool, error)

	// ListMaintenanceRequests returns requests for a unit, or all requests
	// when unitID is empty.
	ListMaintenanceRequests(ctx context.Context, unitID string) ([]models.MaintenanceRequest, error)
	GetMaintenanceRequest(ctx context.Context, id string) (*models.MaintenanceRequest, error)
	CreateMaintenanceRequest(ctx context.Context, m models.MaintenanceRequest) (*models.MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, id string, patch models.MaintenanceRequestPatch) (*models.MaintenanceRequest, error)
	DeleteMaintenanceRequest(ctx context.Context, id string) (bool, error)

	// ListTransactions returns transactions for a property (all when
	// propertyID is empty), newest first.
	ListTransactions(ctx context.Context, propertyID string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) (bool, error)

	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) (*models.User, error)
	UpdateUserLastLogin(ctx context.Context, id string) error
}
