package db

import (
	"context"

	"github.com/lodgeworks/property-portal/internal/models"
)

// ComputePropertyStats aggregates a property's units, tenants and
// maintenance requests by scanning the given backend. One code path serves
// both backends so the numbers cannot drift between them. Always reflects
// the latest mutations; nothing is cached.
func ComputePropertyStats(ctx context.Context, store Store, propertyID string) (*models.PropertyStats, error) {
	units, err := store.ListUnits(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	tenants, err := store.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.PropertyStats{TotalUnits: len(units)}
	unitIDs := make(map[string]models.UnitStatus, len(units))
	for _, u := range units {
		unitIDs[u.ID] = u.Status
		switch u.Status {
		case models.UnitOccupied:
			stats.OccupiedUnits++
		case models.UnitAvailable:
			stats.AvailableUnits++
		case models.UnitMaintenance:
			stats.MaintenanceUnits++
		}
	}

	// Monthly revenue is the rent of tenants currently holding an occupied
	// unit of this property.
	for _, t := range tenants {
		status, ok := unitIDs[t.UnitID]
		if !ok {
			continue
		}
		stats.TotalTenants++
		if status == models.UnitOccupied {
			stats.MonthlyRevenue += t.RentAmount
		}
	}

	requests, err := store.ListMaintenanceRequests(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, m := range requests {
		if _, ok := unitIDs[m.UnitID]; !ok {
			continue
		}
		switch m.Status {
		case models.MaintenancePending:
			stats.PendingMaintenance++
		case models.MaintenanceInProgress:
			stats.InProgressMaintenance++
		case models.MaintenanceScheduled:
			stats.ScheduledMaintenance++
		case models.MaintenanceCompleted:
			stats.CompletedMaintenance++
		}
	}

	return stats, nil
}
