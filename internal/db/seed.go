package db

import (
	"time"

	"github.com/lodgeworks/property-portal/internal/models"
)

// Demo login: admin@lodgeworks.dev / "password".
const seedAdminHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// populate loads the fixed demonstration dataset. Called exactly once, under
// the store lock, on first access. The dataset satisfies the occupancy
// invariant: every occupied unit has exactly one tenant and vice versa.
func (s *LocalStore) populate() {
	seededAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	addProperty := func(p models.Property) {
		p.CreatedAt = seededAt
		p.UpdatedAt = seededAt
		s.properties[p.ID] = p
		s.propertyOrder = append(s.propertyOrder, p.ID)
	}
	addUnit := func(u models.Unit) {
		u.CreatedAt = seededAt
		u.UpdatedAt = seededAt
		s.units[u.ID] = u
		s.unitOrder = append(s.unitOrder, u.ID)
	}
	addTenant := func(t models.Tenant) {
		t.CreatedAt = seededAt
		t.UpdatedAt = seededAt
		s.tenants[t.ID] = t
		s.tenantOrder = append(s.tenantOrder, t.ID)
	}
	addRequest := func(m models.MaintenanceRequest) {
		m.CreatedAt = seededAt
		m.UpdatedAt = seededAt
		s.requests[m.ID] = m
		s.requestOrder = append(s.requestOrder, m.ID)
	}
	addTransaction := func(t models.Transaction) {
		t.CreatedAt = seededAt
		t.UpdatedAt = seededAt
		s.transactions[t.ID] = t
		s.transactionOrder = append(s.transactionOrder, t.ID)
	}

	addProperty(models.Property{
		ID:          "prop-001",
		Name:        "Marina Heights",
		Address:     "210 Harbor Way",
		Description: "Six-unit walk-up two blocks from the waterfront.",
		TotalUnits:  6,
		YearBuilt:   1998,
		SquareFeet:  7200,
	})
	addProperty(models.Property{
		ID:          "prop-002",
		Name:        "Oakwood Court",
		Address:     "48 Ridgeline Drive",
		Description: "Garden-style fourplex with shared courtyard.",
		TotalUnits:  4,
		YearBuilt:   2011,
		SquareFeet:  4400,
	})

	addUnit(models.Unit{
		ID: "unit-1a", PropertyID: "prop-001", UnitNumber: "1A", Floor: 1,
		UnitType: "1br", SquareFeet: 640, Bedrooms: 1, Bathrooms: 1,
		RentAmount: 1250, DepositAmount: 1250,
		Amenities: []string{"dishwasher", "balcony"},
		Status:    models.UnitAvailable,
	})
	addUnit(models.Unit{
		ID: "unit-1b", PropertyID: "prop-001", UnitNumber: "1B", Floor: 1,
		UnitType: "2br", SquareFeet: 880, Bedrooms: 2, Bathrooms: 1,
		RentAmount: 1450, DepositAmount: 1450,
		Amenities: []string{"dishwasher"}, Furnished: true,
		Status: models.UnitOccupied,
	})
	addUnit(models.Unit{
		ID: "unit-2a", PropertyID: "prop-001", UnitNumber: "2A", Floor: 2,
		UnitType: "2br", SquareFeet: 900, Bedrooms: 2, Bathrooms: 2,
		RentAmount: 1600, DepositAmount: 1600,
		Amenities: []string{"dishwasher", "in-unit laundry"},
		Status:    models.UnitOccupied,
	})
	addUnit(models.Unit{
		ID: "unit-2b", PropertyID: "prop-001", UnitNumber: "2B", Floor: 2,
		UnitType: "studio", SquareFeet: 480, Bedrooms: 0, Bathrooms: 1,
		RentAmount: 1050, DepositAmount: 1050,
		Status: models.UnitAvailable,
	})
	addUnit(models.Unit{
		ID: "unit-3a", PropertyID: "prop-001", UnitNumber: "3A", Floor: 3,
		UnitType: "1br", SquareFeet: 660, Bedrooms: 1, Bathrooms: 1,
		RentAmount: 1300, DepositAmount: 1300,
		Description: "Water damage repair in progress.",
		Status:      models.UnitMaintenance,
	})
	addUnit(models.Unit{
		ID: "unit-3b", PropertyID: "prop-001", UnitNumber: "3B", Floor: 3,
		UnitType: "1br", SquareFeet: 650, Bedrooms: 1, Bathrooms: 1,
		RentAmount: 1375, DepositAmount: 1375,
		Amenities: []string{"balcony"},
		Status:    models.UnitOccupied,
	})
	addUnit(models.Unit{
		ID: "unit-g1", PropertyID: "prop-002", UnitNumber: "G1", Floor: 1,
		UnitType: "2br", SquareFeet: 1050, Bedrooms: 2, Bathrooms: 2,
		RentAmount: 1200, DepositAmount: 1800,
		Status: models.UnitOccupied,
	})
	addUnit(models.Unit{
		ID: "unit-g2", PropertyID: "prop-002", UnitNumber: "G2", Floor: 1,
		UnitType: "2br", SquareFeet: 1050, Bedrooms: 2, Bathrooms: 2,
		RentAmount: 1200, DepositAmount: 1800,
		Status: models.UnitAvailable,
	})
	addUnit(models.Unit{
		ID: "unit-g3", PropertyID: "prop-002", UnitNumber: "G3", Floor: 2,
		UnitType: "3br", SquareFeet: 1280, Bedrooms: 3, Bathrooms: 2,
		RentAmount: 1550, DepositAmount: 2300,
		Status: models.UnitAvailable,
	})
	addUnit(models.Unit{
		ID: "unit-g4", PropertyID: "prop-002", UnitNumber: "G4", Floor: 2,
		UnitType: "3br", SquareFeet: 1280, Bedrooms: 3, Bathrooms: 2,
		RentAmount: 1550, DepositAmount: 2300,
		Status: models.UnitAvailable,
	})

	addTenant(models.Tenant{
		ID: "tenant-001", UnitID: "unit-1b",
		Name: "Dana Whitfield", Email: "dana.whitfield@example.com", Phone: "555-0141",
		LeaseStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		RentAmount: 1450, DepositAmount: 1450,
		EmergencyContact: "Ray Whitfield 555-0142", Occupation: "nurse",
	})
	addTenant(models.Tenant{
		ID: "tenant-002", UnitID: "unit-2a",
		Name: "Marcus Oyelaran", Email: "m.oyelaran@example.com", Phone: "555-0177",
		LeaseStart: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		RentAmount: 1600, DepositAmount: 1600,
		EmergencyContact: "Bisi Oyelaran 555-0178", Occupation: "teacher",
	})
	addTenant(models.Tenant{
		ID: "tenant-003", UnitID: "unit-3b",
		Name: "Priya Raman", Email: "priya.raman@example.com", Phone: "555-0164",
		LeaseStart: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		RentAmount: 1375, DepositAmount: 1375,
		EmergencyContact: "Anil Raman 555-0165", Occupation: "software engineer",
	})
	addTenant(models.Tenant{
		ID: "tenant-004", UnitID: "unit-g1",
		Name: "Tom Becker", Email: "tom.becker@example.com", Phone: "555-0190",
		LeaseStart: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
		RentAmount: 1200, DepositAmount: 1800,
		EmergencyContact: "Lena Becker 555-0191", Occupation: "chef",
	})

	estimate := 2400.0
	actual := 180.0
	scheduled := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
	completed := time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC)
	addRequest(models.MaintenanceRequest{
		ID: "req-001", UnitID: "unit-3a",
		Title:       "Ceiling water damage",
		Description: "Leak from roof membrane, drywall replacement needed.",
		Category:    models.CategoryGeneral, Priority: models.PriorityHigh,
		Status:       models.MaintenanceInProgress,
		ReportedDate: time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
		ReportedBy:   "building manager", AssignedTo: "Hartline Restoration",
		EstimatedCost: &estimate,
	})
	addRequest(models.MaintenanceRequest{
		ID: "req-002", UnitID: "unit-1b",
		Title:       "Kitchen faucet drip",
		Description: "Constant drip from the cold handle.",
		Category:    models.CategoryPlumbing, Priority: models.PriorityMedium,
		Status:        models.MaintenanceScheduled,
		ReportedDate:  time.Date(2025, 1, 10, 18, 45, 0, 0, time.UTC),
		ScheduledDate: &scheduled,
		ReportedBy:    "Dana Whitfield",
	})
	addRequest(models.MaintenanceRequest{
		ID: "req-003", UnitID: "unit-g1",
		Title:       "Dishwasher not draining",
		Description: "Standing water after every cycle.",
		Category:    models.CategoryAppliance, Priority: models.PriorityLow,
		Status:        models.MaintenanceCompleted,
		ReportedDate:  time.Date(2024, 12, 28, 9, 0, 0, 0, time.UTC),
		CompletedDate: &completed,
		ReportedBy:    "Tom Becker", AssignedTo: "Apex Appliance",
		ActualCost: &actual,
	})

	addTransaction(models.Transaction{
		ID: "txn-001", PropertyID: "prop-001", TenantID: "tenant-001",
		Type: models.TransactionIncome, Description: "January rent, unit 1B",
		Amount: 1450, Category: "rent",
		Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	addTransaction(models.Transaction{
		ID: "txn-002", PropertyID: "prop-001", TenantID: "tenant-002",
		Type: models.TransactionIncome, Description: "January rent, unit 2A",
		Amount: 1600, Category: "rent",
		Date: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	})
	addTransaction(models.Transaction{
		ID: "txn-003", PropertyID: "prop-001",
		Type: models.TransactionExpense, Description: "Roof leak emergency patch",
		Amount: 850, Category: "repairs",
		Date: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
	})
	addTransaction(models.Transaction{
		ID: "txn-004", PropertyID: "prop-002", TenantID: "tenant-004",
		Type: models.TransactionIncome, Description: "January rent, unit G1",
		Amount: 1200, Category: "rent",
		Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	addTransaction(models.Transaction{
		ID: "txn-005", PropertyID: "prop-002",
		Type: models.TransactionExpense, Description: "Annual liability insurance",
		Amount: 2100, Category: "insurance",
		Date: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	})

	s.users["user-001"] = models.User{
		ID:           "user-001",
		Email:        "admin@lodgeworks.dev",
		PasswordHash: seedAdminHash,
		Role:         models.RoleAdmin,
		FirstName:    "Portal",
		LastName:     "Admin",
		IsActive:     true,
		CreatedAt:    seededAt,
		UpdatedAt:    seededAt,
	}
}
