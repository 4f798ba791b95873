package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Tenant represents a renter. UnitID is empty while the tenant is
// unassigned; assigning a unit drives that unit's occupancy status.
type Tenant struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UnitID           string    `bson:"unit_id,omitempty" json:"unit_id,omitempty"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"` // unique, used for portal login
	Phone            string    `bson:"phone" json:"phone"`
	LeaseStart       time.Time `bson:"lease_start" json:"lease_start"`
	LeaseEnd         time.Time `bson:"lease_end" json:"lease_end"`
	RentAmount       float64   `bson:"rent_amount" json:"rent_amount"`
	DepositAmount    float64   `bson:"deposit_amount" json:"deposit_amount"`
	EmergencyContact string    `bson:"emergency_contact" json:"emergency_contact"`
	Occupation       string    `bson:"occupation" json:"occupation"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// TenantPatch carries a partial tenant update. Nil fields are left
// untouched; a pointer to the empty string for UnitID unassigns the tenant.
type TenantPatch struct {
	UnitID           *string    `json:"unit_id,omitempty"`
	Name             *string    `json:"name,omitempty"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	LeaseStart       *time.Time `json:"lease_start,omitempty"`
	LeaseEnd         *time.Time `json:"lease_end,omitempty"`
	RentAmount       *float64   `json:"rent_amount,omitempty"`
	DepositAmount    *float64   `json:"deposit_amount,omitempty"`
	EmergencyContact *string    `json:"emergency_contact,omitempty"`
	Occupation       *string    `json:"occupation,omitempty"`
}

// Apply merges the patch into t.
func (patch TenantPatch) Apply(t *Tenant) {
	if patch.UnitID != nil {
		t.UnitID = *patch.UnitID
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Email != nil {
		t.Email = *patch.Email
	}
	if patch.Phone != nil {
		t.Phone = *patch.Phone
	}
	if patch.LeaseStart != nil {
		t.LeaseStart = *patch.LeaseStart
	}
	if patch.LeaseEnd != nil {
		t.LeaseEnd = *patch.LeaseEnd
	}
	if patch.RentAmount != nil {
		t.RentAmount = *patch.RentAmount
	}
	if patch.DepositAmount != nil {
		t.DepositAmount = *patch.DepositAmount
	}
	if patch.EmergencyContact != nil {
		t.EmergencyContact = *patch.EmergencyContact
	}
	if patch.Occupation != nil {
		t.Occupation = *patch.Occupation
	}
}

// Fields returns the set fields as a bson document for $set updates.
func (patch TenantPatch) Fields() bson.M {
	fields := bson.M{}
	if patch.UnitID != nil {
		fields["unit_id"] = *patch.UnitID
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.LeaseStart != nil {
		fields["lease_start"] = *patch.LeaseStart
	}
	if patch.LeaseEnd != nil {
		fields["lease_end"] = *patch.LeaseEnd
	}
	if patch.RentAmount != nil {
		fields["rent_amount"] = *patch.RentAmount
	}
	if patch.DepositAmount != nil {
		fields["deposit_amount"] = *patch.DepositAmount
	}
	if patch.EmergencyContact != nil {
		fields["emergency_contact"] = *patch.EmergencyContact
	}
	if patch.Occupation != nil {
		fields["occupation"] = *patch.Occupation
	}
	return fields
}
