package models

import "testing"

func TestIsValidUnitStatus(t *testing.T) {
	for _, status := range []UnitStatus{UnitAvailable, UnitOccupied, UnitMaintenance} {
		if !IsValidUnitStatus(status) {
			t.Errorf("expected %s to be valid", status)
		}
	}
	if IsValidUnitStatus("condemned") {
		t.Error("expected unknown status to be invalid")
	}
	if IsValidUnitStatus("") {
		t.Error("expected empty status to be invalid")
	}
}

func TestUnitPatchApply(t *testing.T) {
	u := Unit{
		UnitNumber: "1A",
		Floor:      1,
		RentAmount: 1250,
		Amenities:  []string{"balcony"},
		Status:     UnitAvailable,
	}

	rent := 1300.0
	status := UnitOccupied
	patch := UnitPatch{
		RentAmount: &rent,
		Status:     &status,
		Amenities:  []string{"balcony", "dishwasher"},
	}
	patch.Apply(&u)

	if u.RentAmount != 1300 {
		t.Errorf("expected rent 1300, got %v", u.RentAmount)
	}
	if u.Status != UnitOccupied {
		t.Errorf("expected status occupied, got %s", u.Status)
	}
	if len(u.Amenities) != 2 {
		t.Errorf("expected replaced amenities, got %v", u.Amenities)
	}
	if u.UnitNumber != "1A" || u.Floor != 1 {
		t.Error("fields outside the patch must not change")
	}
}

func TestUnitPatchApplyCopiesAmenities(t *testing.T) {
	u := Unit{}
	amenities := []string{"balcony"}
	UnitPatch{Amenities: amenities}.Apply(&u)

	amenities[0] = "mutated"
	if u.Amenities[0] == "mutated" {
		t.Error("applied amenities must not alias the patch slice")
	}
}

func TestUnitPatchFields(t *testing.T) {
	rent := 1300.0
	status := UnitMaintenance
	fields := UnitPatch{RentAmount: &rent, Status: &status}.Fields()

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(fields), fields)
	}
	if fields["rent_amount"] != 1300.0 {
		t.Errorf("unexpected rent_amount: %v", fields["rent_amount"])
	}
	if fields["status"] != UnitMaintenance {
		t.Errorf("unexpected status: %v", fields["status"])
	}

	if empty := (UnitPatch{}).Fields(); len(empty) != 0 {
		t.Errorf("empty patch must produce no fields, got %v", empty)
	}
}

func TestTenantPatchUnassign(t *testing.T) {
	tenant := Tenant{UnitID: "unit-1b", Name: "Dana"}

	none := ""
	TenantPatch{UnitID: &none}.Apply(&tenant)

	if tenant.UnitID != "" {
		t.Errorf("expected unassigned tenant, got unit %q", tenant.UnitID)
	}
	if tenant.Name != "Dana" {
		t.Error("name must be untouched")
	}

	fields := TenantPatch{UnitID: &none}.Fields()
	if v, ok := fields["unit_id"]; !ok || v != "" {
		t.Errorf("unassignment must write an empty unit_id, got %v", fields)
	}
}

func TestTenantPatchNilUnitIDLeavesAssignment(t *testing.T) {
	tenant := Tenant{UnitID: "unit-1b"}

	name := "Dana W."
	TenantPatch{Name: &name}.Apply(&tenant)

	if tenant.UnitID != "unit-1b" {
		t.Error("a patch without unit_id must not move the tenant")
	}
}
