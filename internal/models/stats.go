package models

// PropertyStats aggregates the current state of one property's units,
// tenants and maintenance requests. Computed by scanning live collections;
// never cached.
type PropertyStats struct {
	TotalUnits            int     `json:"total_units"`
	OccupiedUnits         int     `json:"occupied_units"`
	AvailableUnits        int     `json:"available_units"`
	MaintenanceUnits      int     `json:"maintenance_units"`
	TotalTenants          int     `json:"total_tenants"`
	PendingMaintenance    int     `json:"pending_maintenance"`
	InProgressMaintenance int     `json:"in_progress_maintenance"`
	ScheduledMaintenance  int     `json:"scheduled_maintenance"`
	CompletedMaintenance  int     `json:"completed_maintenance"`
	MonthlyRevenue        float64 `json:"monthly_revenue"`
}
