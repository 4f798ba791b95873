package models

import "testing"

func TestIsValidRole(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleManager, RoleTenant, RoleViewer} {
		if !IsValidRole(role) {
			t.Errorf("expected %s to be valid", role)
		}
	}
	if IsValidRole("overlord") {
		t.Error("expected unknown role to be invalid")
	}
	if IsValidRole("") {
		t.Error("expected empty role to be invalid")
	}
}

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role   Role
		action string
		want   bool
	}{
		{RoleAdmin, "manage_users", true},
		{RoleAdmin, "anything_at_all", true},
		{RoleManager, "create_maintenance", true},
		{RoleManager, "manage_users", false},
		{RoleManager, "delete_user", false},
		{RoleTenant, "create_maintenance", true},
		{RoleTenant, "view_units", true},
		{RoleTenant, "view_tenants", false},
		{RoleViewer, "view_properties", true},
		{RoleViewer, "create_maintenance", false},
		{Role("unknown"), "view_properties", false},
	}

	for _, tc := range cases {
		u := &User{Role: tc.role}
		if got := u.HasPermission(tc.action); got != tc.want {
			t.Errorf("%s / %s: expected %v, got %v", tc.role, tc.action, tc.want, got)
		}
	}
}
