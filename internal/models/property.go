package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Property represents a managed building or estate that owns units and
// transactions.
type Property struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Address     string    `bson:"address" json:"address"`
	Description string    `bson:"description" json:"description"`
	TotalUnits  int       `bson:"total_units" json:"total_units"`
	YearBuilt   int       `bson:"year_built" json:"year_built"`
	SquareFeet  float64   `bson:"square_feet" json:"square_feet"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// PropertyPatch carries a partial property update. Nil fields are left
// untouched.
type PropertyPatch struct {
	Name        *string  `json:"name,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Description *string  `json:"description,omitempty"`
	TotalUnits  *int     `json:"total_units,omitempty"`
	YearBuilt   *int     `json:"year_built,omitempty"`
	SquareFeet  *float64 `json:"square_feet,omitempty"`
}

// Apply merges the patch into p.
func (patch PropertyPatch) Apply(p *Property) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.TotalUnits != nil {
		p.TotalUnits = *patch.TotalUnits
	}
	if patch.YearBuilt != nil {
		p.YearBuilt = *patch.YearBuilt
	}
	if patch.SquareFeet != nil {
		p.SquareFeet = *patch.SquareFeet
	}
}

// Fields returns the set fields as a bson document for $set updates.
func (patch PropertyPatch) Fields() bson.M {
	fields := bson.M{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.TotalUnits != nil {
		fields["total_units"] = *patch.TotalUnits
	}
	if patch.YearBuilt != nil {
		fields["year_built"] = *patch.YearBuilt
	}
	if patch.SquareFeet != nil {
		fields["square_feet"] = *patch.SquareFeet
	}
	return fields
}
