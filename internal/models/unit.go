package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// UnitStatus is the occupancy state of a unit.
type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
)

// IsValidUnitStatus checks if a unit status is one of the known states.
func IsValidUnitStatus(status UnitStatus) bool {
	switch status {
	case UnitAvailable, UnitOccupied, UnitMaintenance:
		return true
	default:
		return false
	}
}

// Unit represents a rentable space inside a property. A unit is referenced
// by at most one active tenant; its status must agree with that assignment.
type Unit struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	PropertyID    string     `bson:"property_id" json:"property_id"`
	UnitNumber    string     `bson:"unit_number" json:"unit_number"`
	Floor         int        `bson:"floor" json:"floor"`
	UnitType      string     `bson:"unit_type" json:"unit_type"` // "studio", "1br", "2br", ...
	SquareFeet    float64    `bson:"square_feet" json:"square_feet"`
	Bedrooms      int        `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int        `bson:"bathrooms" json:"bathrooms"`
	RentAmount    float64    `bson:"rent_amount" json:"rent_amount"`
	DepositAmount float64    `bson:"deposit_amount" json:"deposit_amount"`
	Description   string     `bson:"description" json:"description"`
	Amenities     []string   `bson:"amenities" json:"amenities"`
	Furnished     bool       `bson:"furnished" json:"furnished"`
	Status        UnitStatus `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

// UnitDetails bundles a unit with its current tenant and maintenance
// history, resolved against a single backend per call.
type UnitDetails struct {
	Unit                Unit                 `json:"unit"`
	Tenant              *Tenant              `json:"tenant,omitempty"`
	MaintenanceRequests []MaintenanceRequest `json:"maintenance_requests"`
}

// UnitPatch carries a partial unit update. Nil fields are left untouched.
type UnitPatch struct {
	UnitNumber    *string     `json:"unit_number,omitempty"`
	Floor         *int        `json:"floor,omitempty"`
	UnitType      *string     `json:"unit_type,omitempty"`
	SquareFeet    *float64    `json:"square_feet,omitempty"`
	Bedrooms      *int        `json:"bedrooms,omitempty"`
	Bathrooms     *int        `json:"bathrooms,omitempty"`
	RentAmount    *float64    `json:"rent_amount,omitempty"`
	DepositAmount *float64    `json:"deposit_amount,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Amenities     []string    `json:"amenities,omitempty"`
	Furnished     *bool       `json:"furnished,omitempty"`
	Status        *UnitStatus `json:"status,omitempty"`
}

// Apply merges the patch into u.
func (patch UnitPatch) Apply(u *Unit) {
	if patch.UnitNumber != nil {
		u.UnitNumber = *patch.UnitNumber
	}
	if patch.Floor != nil {
		u.Floor = *patch.Floor
	}
	if patch.UnitType != nil {
		u.UnitType = *patch.UnitType
	}
	if patch.SquareFeet != nil {
		u.SquareFeet = *patch.SquareFeet
	}
	if patch.Bedrooms != nil {
		u.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		u.Bathrooms = *patch.Bathrooms
	}
	if patch.RentAmount != nil {
		u.RentAmount = *patch.RentAmount
	}
	if patch.DepositAmount != nil {
		u.DepositAmount = *patch.DepositAmount
	}
	if patch.Description != nil {
		u.Description = *patch.Description
	}
	if patch.Amenities != nil {
		u.Amenities = append([]string(nil), patch.Amenities...)
	}
	if patch.Furnished != nil {
		u.Furnished = *patch.Furnished
	}
	if patch.Status != nil {
		u.Status = *patch.Status
	}
}

// Fields returns the set fields as a bson document for $set updates.
func (patch UnitPatch) Fields() bson.M {
	fields := bson.M{}
	if patch.UnitNumber != nil {
		fields["unit_number"] = *patch.UnitNumber
	}
	if patch.Floor != nil {
		fields["floor"] = *patch.Floor
	}
	if patch.UnitType != nil {
		fields["unit_type"] = *patch.UnitType
	}
	if patch.SquareFeet != nil {
		fields["square_feet"] = *patch.SquareFeet
	}
	if patch.Bedrooms != nil {
		fields["bedrooms"] = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		fields["bathrooms"] = *patch.Bathrooms
	}
	if patch.RentAmount != nil {
		fields["rent_amount"] = *patch.RentAmount
	}
	if patch.DepositAmount != nil {
		fields["deposit_amount"] = *patch.DepositAmount
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Amenities != nil {
		fields["amenities"] = patch.Amenities
	}
	if patch.Furnished != nil {
		fields["furnished"] = *patch.Furnished
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	return fields
}
