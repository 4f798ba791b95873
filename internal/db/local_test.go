package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/property-portal/internal/models"
)

func TestLocalStore_SeedsOnce(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	first, err := store.ListProperties(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Repeated reads before any write must be identical: the seed runs
	// exactly once.
	second, err := store.ListProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	units, err := store.ListUnits(ctx, "")
	require.NoError(t, err)
	again, err := store.ListUnits(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, units, again)
}

func TestLocalStore_SeedSatisfiesOccupancyInvariant(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	units, err := store.ListUnits(ctx, "")
	require.NoError(t, err)
	tenants, err := store.ListTenants(ctx)
	require.NoError(t, err)

	occupants := map[string]int{}
	for _, tn := range tenants {
		if tn.UnitID != "" {
			occupants[tn.UnitID]++
		}
	}
	for _, u := range units {
		switch u.Status {
		case models.UnitOccupied:
			assert.Equal(t, 1, occupants[u.ID], "occupied unit %s must have exactly one tenant", u.UnitNumber)
		default:
			assert.Zero(t, occupants[u.ID], "unit %s is %s but has a tenant", u.UnitNumber, u.Status)
		}
	}
}

func TestLocalStore_ResultsAreCopies(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	u, err := store.GetUnit(ctx, "unit-1a")
	require.NoError(t, err)
	require.NotEmpty(t, u.Amenities)

	u.Status = models.UnitOccupied
	u.Amenities[0] = "corrupted"

	fresh, err := store.GetUnit(ctx, "unit-1a")
	require.NoError(t, err)
	assert.Equal(t, models.UnitAvailable, fresh.Status)
	assert.NotEqual(t, "corrupted", fresh.Amenities[0])
}

func TestLocalStore_CreateAssignsIDAndTimestamps(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	created, err := store.CreateProperty(ctx, models.Property{
		ID:   "client-supplied-id-must-be-ignored",
		Name: "New Build",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "client-supplied-id-must-be-ignored", created.ID)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := store.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Build", found.Name)
}

func TestLocalStore_UpdateMergesAndRefreshesTimestamp(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	before, err := store.GetProperty(ctx, "prop-001")
	require.NoError(t, err)

	name := "Marina Heights II"
	updated, err := store.UpdateProperty(ctx, "prop-001", models.PropertyPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Marina Heights II", updated.Name)
	assert.Equal(t, before.Address, updated.Address, "unset patch fields must be untouched")
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestLocalStore_GetAndUpdateMissing(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	_, err := store.GetProperty(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	name := "x"
	_, err = store.UpdateProperty(ctx, "no-such-id", models.PropertyPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_DeleteMissingReturnsFalse(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	deleted, err := store.DeleteTenant(ctx, "no-such-tenant")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = store.DeleteUnit(ctx, "no-such-unit")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestLocalStore_ListUnitsFiltersByProperty(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	units, err := store.ListUnits(ctx, "prop-001")
	require.NoError(t, err)
	require.NotEmpty(t, units)
	for _, u := range units {
		assert.Equal(t, "prop-001", u.PropertyID)
	}

	all, err := store.ListUnits(ctx, "")
	require.NoError(t, err)
	assert.Greater(t, len(all), len(units))
}

func TestLocalStore_GetTenantByUnit(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	tenant, err := store.GetTenantByUnit(ctx, "unit-1b")
	require.NoError(t, err)
	assert.Equal(t, "Dana Whitfield", tenant.Name)

	_, err = store.GetTenantByUnit(ctx, "unit-1a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_TransactionsNewestFirst(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	_, err := store.CreateTransaction(ctx, models.Transaction{
		PropertyID: "prop-001",
		Type:       models.TransactionIncome,
		Amount:     500,
		Category:   "rent",
		Date:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	transactions, err := store.ListTransactions(ctx, "prop-001")
	require.NoError(t, err)
	require.Greater(t, len(transactions), 1)
	for i := 1; i < len(transactions); i++ {
		assert.False(t, transactions[i].Date.After(transactions[i-1].Date),
			"transactions must be sorted newest first")
	}
}

func TestLocalStore_MaintenanceDefaults(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	created, err := store.CreateMaintenanceRequest(ctx, models.MaintenanceRequest{
		UnitID: "unit-1a",
		Title:  "Squeaky door",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaintenancePending, created.Status)
	assert.False(t, created.ReportedDate.IsZero())
}

func TestLocalStore_Users(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	admin, err := store.GetUserByEmail(ctx, "admin@lodgeworks.dev")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.Nil(t, admin.LastLogin)

	require.NoError(t, store.UpdateUserLastLogin(ctx, admin.ID))
	again, err := store.GetUserByEmail(ctx, "admin@lodgeworks.dev")
	require.NoError(t, err)
	assert.NotNil(t, again.LastLogin)

	_, err = store.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
