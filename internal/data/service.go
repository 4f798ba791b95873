// Package data provides the resilient data access layer: every logical
// operation is attempted against the remote store when it is available and
// transparently re-executed against the in-memory local store when the
// remote attempt fails or the remote store is unreachable. Callers cannot
// tell from the result which backend answered.
package data

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/lodgeworks/property-portal/internal/db"
	"github.com/lodgeworks/property-portal/internal/models"
)

// Availability is the up-front routing decision: attempt the remote store
// at all, or go straight to the local store.
type Availability interface {
	Available() bool
}

// Service is the single entry point consumers use for entity operations.
type Service struct {
	remote db.Store
	local  db.Store
	avail  Availability
	log    log.FieldLogger
}

// NewService wires the two backends behind the fallback policy.
func NewService(remote, local db.Store, avail Availability, logger log.FieldLogger) *Service {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Service{remote: remote, local: local, avail: avail, log: logger}
}

// resolve is the fallback policy, expressed exactly once. The operation
// closure runs against one backend per call: remote first when available,
// local otherwise. ErrNotFound is a result, not a failure; it never
// triggers fallback. Any other remote error does, and the fallback is
// logged so a persistently broken remote store is visible to operators.
func resolve[T any](ctx context.Context, s *Service, op string, fn func(context.Context, db.Store) (T, error)) (T, error) {
	if s.avail.Available() {
		v, err := fn(ctx, s.remote)
		if err == nil || errors.Is(err, db.ErrNotFound) {
			return v, err
		}
		s.log.WithFields(log.Fields{
			"operation": op,
			"backend":   "local",
		}).WithError(err).Warn("remote store operation failed, falling back to local store")
	}
	return fn(ctx, s.local)
}

// absent converts the store-level ErrNotFound into the uniform caller-facing
// absence value: nil result, no error.
func absent[T any](v *T, err error) (*T, error) {
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	return v, err
}

// --- properties ---

func (s *Service) GetProperties(ctx context.Context) ([]models.Property, error) {
	return resolve(ctx, s, "property.list", func(ctx context.Context, st db.Store) ([]models.Property, error) {
		return st.ListProperties(ctx)
	})
}

func (s *Service) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	return absent(resolve(ctx, s, "property.get", func(ctx context.Context, st db.Store) (*models.Property, error) {
		return st.GetProperty(ctx, id)
	}))
}

func (s *Service) CreateProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	return resolve(ctx, s, "property.create", func(ctx context.Context, st db.Store) (*models.Property, error) {
		return st.CreateProperty(ctx, p)
	})
}

func (s *Service) UpdateProperty(ctx context.Context, id string, patch models.PropertyPatch) (*models.Property, error) {
	return absent(resolve(ctx, s, "property.update", func(ctx context.Context, st db.Store) (*models.Property, error) {
		return st.UpdateProperty(ctx, id, patch)
	}))
}

func (s *Service) DeleteProperty(ctx context.Context, id string) (bool, error) {
	return resolve(ctx, s, "property.delete", func(ctx context.Context, st db.Store) (bool, error) {
		return st.DeleteProperty(ctx, id)
	})
}

// --- units ---

func (s *Service) GetUnits(ctx context.Context, propertyID string) ([]models.Unit, error) {
	return resolve(ctx, s, "unit.list", func(ctx context.Context, st db.Store) ([]models.Unit, error) {
		return st.ListUnits(ctx, propertyID)
	})
}

func (s *Service) GetUnit(ctx context.Context, id string) (*models.Unit, error) {
	return absent(resolve(ctx, s, "unit.get", func(ctx context.Context, st db.Store) (*models.Unit, error) {
		return st.GetUnit(ctx, id)
	}))
}

func (s *Service) CreateUnit(ctx context.Context, u models.Unit) (*models.Unit, error) {
	return resolve(ctx, s, "unit.create", func(ctx context.Context, st db.Store) (*models.Unit, error) {
		return st.CreateUnit(ctx, u)
	})
}

// UpdateUnit is the manual unit mutation path. This is the only way a unit
// enters or leaves maintenance status; tenant assignment never touches a
// unit under maintenance.
func (s *Service) UpdateUnit(ctx context.Context, id string, patch models.UnitPatch) (*models.Unit, error) {
	return absent(resolve(ctx, s, "unit.update", func(ctx context.Context, st db.Store) (*models.Unit, error) {
		return st.UpdateUnit(ctx, id, patch)
	}))
}

func (s *Service) DeleteUnit(ctx context.Context, id string) (bool, error) {
	return resolve(ctx, s, "unit.delete", func(ctx context.Context, st db.Store) (bool, error) {
		return st.DeleteUnit(ctx, id)
	})
}

// GetUnitWithDetails composes the unit, its current tenant and its
// maintenance history against a single resolved backend, so one logical
// call never mixes remote and local reads.
func (s *Service) GetUnitWithDetails(ctx context.Context, unitID string) (*models.UnitDetails, error) {
	return absent(resolve(ctx, s, "unit.details", func(ctx context.Context, st db.Store) (*models.UnitDetails, error) {
		u, err := st.GetUnit(ctx, unitID)
		if err != nil {
			return nil, err
		}
		details := &models.UnitDetails{Unit: *u}
		tenant, err := st.GetTenantByUnit(ctx, unitID)
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
		if err == nil {
			details.Tenant = tenant
		}
		requests, err := st.ListMaintenanceRequests(ctx, unitID)
		if err != nil {
			return nil, err
		}
		details.MaintenanceRequests = requests
		return details, nil
	}))
}

// --- tenants ---

func (s *Service) GetTenants(ctx context.Context) ([]models.Tenant, error) {
	return resolve(ctx, s, "tenant.list", func(ctx context.Context, st db.Store) ([]models.Tenant, error) {
		return st.ListTenants(ctx)
	})
}

func (s *Service) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	return absent(resolve(ctx, s, "tenant.get", func(ctx context.Context, st db.Store) (*models.Tenant, error) {
		return st.GetTenant(ctx, id)
	}))
}

// CreateTenant creates the tenant and, when a unit is assigned, marks that
// unit occupied on the same backend. A failed side effect fails the whole
// operation and triggers fallback like any other remote failure.
func (s *Service) CreateTenant(ctx context.Context, t models.Tenant) (*models.Tenant, error) {
	return resolve(ctx, s, "tenant.create", func(ctx context.Context, st db.Store) (*models.Tenant, error) {
		created, err := st.CreateTenant(ctx, t)
		if err != nil {
			return nil, err
		}
		if created.UnitID != "" {
			if err := occupyUnit(ctx, st, created.UnitID); err != nil {
				return nil, err
			}
		}
		return created, nil
	})
}

// UpdateTenant applies the patch and keeps unit occupancy consistent: when
// the unit reference changes, the previous unit is released and the new one
// occupied, in that order, on the backend that served the update.
func (s *Service) UpdateTenant(ctx context.Context, id string, patch models.TenantPatch) (*models.Tenant, error) {
	return absent(resolve(ctx, s, "tenant.update", func(ctx context.Context, st db.Store) (*models.Tenant, error) {
		var prevUnit string
		if patch.UnitID != nil {
			existing, err := st.GetTenant(ctx, id)
			if err != nil {
				return nil, err
			}
			prevUnit = existing.UnitID
		}
		updated, err := st.UpdateTenant(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		if patch.UnitID != nil && prevUnit != *patch.UnitID {
			if prevUnit != "" {
				if err := releaseUnit(ctx, st, prevUnit); err != nil {
					return nil, err
				}
			}
			if *patch.UnitID != "" {
				if err := occupyUnit(ctx, st, *patch.UnitID); err != nil {
					return nil, err
				}
			}
		}
		return updated, nil
	}))
}

// DeleteTenant removes the tenant and releases their unit back to
// available. Deleting an unknown id returns false without touching any
// unit.
func (s *Service) DeleteTenant(ctx context.Context, id string) (bool, error) {
	return resolve(ctx, s, "tenant.delete", func(ctx context.Context, st db.Store) (bool, error) {
		existing, err := st.GetTenant(ctx, id)
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		deleted, err := st.DeleteTenant(ctx, id)
		if err != nil {
			return false, err
		}
		if deleted && existing.UnitID != "" {
			if err := releaseUnit(ctx, st, existing.UnitID); err != nil {
				return false, err
			}
		}
		return deleted, nil
	})
}

// --- maintenance requests ---

func (s *Service) GetMaintenanceRequests(ctx context.Context, unitID string) ([]models.MaintenanceRequest, error) {
	return resolve(ctx, s, "maintenance.list", func(ctx context.Context, st db.Store) ([]models.MaintenanceRequest, error) {
		return st.ListMaintenanceRequests(ctx, unitID)
	})
}

func (s *Service) GetMaintenanceRequest(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	return absent(resolve(ctx, s, "maintenance.get", func(ctx context.Context, st db.Store) (*models.MaintenanceRequest, error) {
		return st.GetMaintenanceRequest(ctx, id)
	}))
}

func (s *Service) CreateMaintenanceRequest(ctx context.Context, m models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	return resolve(ctx, s, "maintenance.create", func(ctx context.Context, st db.Store) (*models.MaintenanceRequest, error) {
		return st.CreateMaintenanceRequest(ctx, m)
	})
}

func (s *Service) UpdateMaintenanceRequest(ctx context.Context, id string, patch models.MaintenanceRequestPatch) (*models.MaintenanceRequest, error) {
	return absent(resolve(ctx, s, "maintenance.update", func(ctx context.Context, st db.Store) (*models.MaintenanceRequest, error) {
		return st.UpdateMaintenanceRequest(ctx, id, patch)
	}))
}

func (s *Service) DeleteMaintenanceRequest(ctx context.Context, id string) (bool, error) {
	return resolve(ctx, s, "maintenance.delete", func(ctx context.Context, st db.Store) (bool, error) {
		return st.DeleteMaintenanceRequest(ctx, id)
	})
}

// --- transactions ---

func (s *Service) GetTransactions(ctx context.Context, propertyID string) ([]models.Transaction, error) {
	return resolve(ctx, s, "transaction.list", func(ctx context.Context, st db.Store) ([]models.Transaction, error) {
		return st.ListTransactions(ctx, propertyID)
	})
}

func (s *Service) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return absent(resolve(ctx, s, "transaction.get", func(ctx context.Context, st db.Store) (*models.Transaction, error) {
		return st.GetTransaction(ctx, id)
	}))
}

func (s *Service) CreateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	return resolve(ctx, s, "transaction.create", func(ctx context.Context, st db.Store) (*models.Transaction, error) {
		return st.CreateTransaction(ctx, t)
	})
}

func (s *Service) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	return absent(resolve(ctx, s, "transaction.update", func(ctx context.Context, st db.Store) (*models.Transaction, error) {
		return st.UpdateTransaction(ctx, id, patch)
	}))
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	return resolve(ctx, s, "transaction.delete", func(ctx context.Context, st db.Store) (bool, error) {
		return st.DeleteTransaction(ctx, id)
	})
}

// --- stats ---

// GetPropertyStats aggregates units, tenants and maintenance requests for a
// property, all against the same resolved backend.
func (s *Service) GetPropertyStats(ctx context.Context, propertyID string) (*models.PropertyStats, error) {
	return absent(resolve(ctx, s, "property.stats", func(ctx context.Context, st db.Store) (*models.PropertyStats, error) {
		if _, err := st.GetProperty(ctx, propertyID); err != nil {
			return nil, err
		}
		return db.ComputePropertyStats(ctx, st, propertyID)
	}))
}

// --- users ---

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return absent(resolve(ctx, s, "user.get_by_email", func(ctx context.Context, st db.Store) (*models.User, error) {
		return st.GetUserByEmail(ctx, email)
	}))
}

func (s *Service) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	return resolve(ctx, s, "user.create", func(ctx context.Context, st db.Store) (*models.User, error) {
		return st.CreateUser(ctx, u)
	})
}

func (s *Service) UpdateUserLastLogin(ctx context.Context, id string) error {
	_, err := resolve(ctx, s, "user.update_last_login", func(ctx context.Context, st db.Store) (struct{}, error) {
		return struct{}{}, st.UpdateUserLastLogin(ctx, id)
	})
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	return err
}
