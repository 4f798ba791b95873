package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// MaintenanceCategory classifies a maintenance request.
type MaintenanceCategory string

const (
	CategoryPlumbing   MaintenanceCategory = "plumbing"
	CategoryElectrical MaintenanceCategory = "electrical"
	CategoryHVAC       MaintenanceCategory = "hvac"
	CategoryAppliance  MaintenanceCategory = "appliance"
	CategoryGeneral    MaintenanceCategory = "general"
)

// MaintenancePriority ranks how urgently a request needs attention.
type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

// MaintenanceStatus tracks a request through its lifecycle.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

// MaintenanceRequest represents a repair or service request for a unit.
type MaintenanceRequest struct {
	ID            string              `bson:"_id,omitempty" json:"id"`
	UnitID        string              `bson:"unit_id" json:"unit_id"`
	Title         string              `bson:"title" json:"title"`
	Description   string              `bson:"description" json:"description"`
	Category      MaintenanceCategory `bson:"category" json:"category"`
	Priority      MaintenancePriority `bson:"priority" json:"priority"`
	Status        MaintenanceStatus   `bson:"status" json:"status"`
	ReportedDate  time.Time           `bson:"reported_date" json:"reported_date"`
	ScheduledDate *time.Time          `bson:"scheduled_date,omitempty" json:"scheduled_date,omitempty"`
	CompletedDate *time.Time          `bson:"completed_date,omitempty" json:"completed_date,omitempty"`
	ReportedBy    string              `bson:"reported_by" json:"reported_by"`
	AssignedTo    string              `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	EstimatedCost *float64            `bson:"estimated_cost,omitempty" json:"estimated_cost,omitempty"`
	ActualCost    *float64            `bson:"actual_cost,omitempty" json:"actual_cost,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}

// MaintenanceRequestPatch carries a partial maintenance request update.
type MaintenanceRequestPatch struct {
	Title         *string              `json:"title,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Category      *MaintenanceCategory `json:"category,omitempty"`
	Priority      *MaintenancePriority `json:"priority,omitempty"`
	Status        *MaintenanceStatus   `json:"status,omitempty"`
	ScheduledDate *time.Time           `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time           `json:"completed_date,omitempty"`
	AssignedTo    *string              `json:"assigned_to,omitempty"`
	EstimatedCost *float64             `json:"estimated_cost,omitempty"`
	ActualCost    *float64             `json:"actual_cost,omitempty"`
}

// Apply merges the patch into m.
func (patch MaintenanceRequestPatch) Apply(m *MaintenanceRequest) {
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.Priority != nil {
		m.Priority = *patch.Priority
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.ScheduledDate != nil {
		d := *patch.ScheduledDate
		m.ScheduledDate = &d
	}
	if patch.CompletedDate != nil {
		d := *patch.CompletedDate
		m.CompletedDate = &d
	}
	if patch.AssignedTo != nil {
		m.AssignedTo = *patch.AssignedTo
	}
	if patch.EstimatedCost != nil {
		c := *patch.EstimatedCost
		m.EstimatedCost = &c
	}
	if patch.ActualCost != nil {
		c := *patch.ActualCost
		m.ActualCost = &c
	}
}

// Fields returns the set fields as a bson document for $set updates.
func (patch MaintenanceRequestPatch) Fields() bson.M {
	fields := bson.M{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Priority != nil {
		fields["priority"] = *patch.Priority
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.ScheduledDate != nil {
		fields["scheduled_date"] = *patch.ScheduledDate
	}
	if patch.CompletedDate != nil {
		fields["completed_date"] = *patch.CompletedDate
	}
	if patch.AssignedTo != nil {
		fields["assigned_to"] = *patch.AssignedTo
	}
	if patch.EstimatedCost != nil {
		fields["estimated_cost"] = *patch.EstimatedCost
	}
	if patch.ActualCost != nil {
		fields["actual_cost"] = *patch.ActualCost
	}
	return fields
}
