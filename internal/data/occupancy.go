package data

import (
	"context"

	"github.com/lodgeworks/property-portal/internal/db"
	"github.com/lodgeworks/property-portal/internal/models"
)

// Unit occupancy transitions exist in exactly one place so both backends
// enforce the same invariant: a unit is occupied iff a tenant references
// it. A manual maintenance override is never cleared by tenant assignment;
// only a direct unit update moves a unit out of maintenance.

// occupyUnit marks a unit occupied after a tenant assignment.
func occupyUnit(ctx context.Context, st db.Store, unitID string) error {
	return setOccupancy(ctx, st, unitID, models.UnitOccupied)
}

// releaseUnit marks a unit available after its tenant leaves.
func releaseUnit(ctx context.Context, st db.Store, unitID string) error {
	return setOccupancy(ctx, st, unitID, models.UnitAvailable)
}

func setOccupancy(ctx context.Context, st db.Store, unitID string, status models.UnitStatus) error {
	u, err := st.GetUnit(ctx, unitID)
	if err != nil {
		return err
	}
	if u.Status == models.UnitMaintenance || u.Status == status {
		return nil
	}
	_, err = st.UpdateUnit(ctx, unitID, models.UnitPatch{Status: &status})
	return err
}
