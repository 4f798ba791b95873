package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// TransactionType is the direction of a financial transaction. The amount
// is always a positive magnitude; the type implies the sign.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction represents a financial event attached to a property,
// optionally linked to a tenant (e.g. a rent payment).
type Transaction struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	PropertyID  string          `bson:"property_id" json:"property_id"`
	TenantID    string          `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	Type        TransactionType `bson:"type" json:"type"`
	Description string          `bson:"description" json:"description"`
	Amount      float64         `bson:"amount" json:"amount"`
	Category    string          `bson:"category" json:"category"` // "rent", "repairs", "insurance", ...
	Date        time.Time       `bson:"date" json:"date"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// TransactionPatch carries a partial transaction update.
type TransactionPatch struct {
	Type        *TransactionType `json:"type,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *float64         `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	TenantID    *string          `json:"tenant_id,omitempty"`
}

// Apply merges the patch into t.
func (patch TransactionPatch) Apply(t *Transaction) {
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.TenantID != nil {
		t.TenantID = *patch.TenantID
	}
}

// Fields returns the set fields as a bson document for $set updates.
func (patch TransactionPatch) Fields() bson.M {
	fields := bson.M{}
	if patch.Type != nil {
		fields["type"] = *patch.Type
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Amount != nil {
		fields["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.TenantID != nil {
		fields["tenant_id"] = *patch.TenantID
	}
	return fields
}
