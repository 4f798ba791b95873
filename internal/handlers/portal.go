package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/lodgeworks/property-portal/internal/data"
	"github.com/lodgeworks/property-portal/internal/db"
	"github.com/lodgeworks/property-portal/internal/models"
)

// AvailabilityReporter exposes the remote store probe to the health and
// refresh endpoints.
type AvailabilityReporter interface {
	Available() bool
	Refresh(ctx context.Context) bool
}

// PortalHandler serves the entity endpoints. It talks only to the data
// service; which backend answers is invisible here.
type PortalHandler struct {
	dataService *data.Service
	probe       AvailabilityReporter
}

// NewPortalHandler creates the entity endpoint handler.
func NewPortalHandler(dataService *data.Service, probe AvailabilityReporter) *PortalHandler {
	return &PortalHandler{dataService: dataService, probe: probe}
}

// RegisterRoutes attaches all entity endpoints to the mux.
func (h *PortalHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /api/system/refresh", h.RefreshAvailability)

	mux.HandleFunc("GET /api/properties", h.ListProperties)
	mux.HandleFunc("POST /api/properties", h.CreateProperty)
	mux.HandleFunc("GET /api/properties/{id}", h.GetProperty)
	mux.HandleFunc("PUT /api/properties/{id}", h.UpdateProperty)
	mux.HandleFunc("DELETE /api/properties/{id}", h.DeleteProperty)
	mux.HandleFunc("GET /api/properties/{id}/stats", h.GetPropertyStats)
	mux.HandleFunc("GET /api/properties/{id}/units", h.ListPropertyUnits)
	mux.HandleFunc("GET /api/properties/{id}/transactions", h.ListPropertyTransactions)

	mux.HandleFunc("GET /api/units", h.ListUnits)
	mux.HandleFunc("POST /api/units", h.CreateUnit)
	mux.HandleFunc("GET /api/units/{id}", h.GetUnit)
	mux.HandleFunc("PUT /api/units/{id}", h.UpdateUnit)
	mux.HandleFunc("DELETE /api/units/{id}", h.DeleteUnit)
	mux.HandleFunc("GET /api/units/{id}/details", h.GetUnitDetails)

	mux.HandleFunc("GET /api/tenants", h.ListTenants)
	mux.HandleFunc("POST /api/tenants", h.CreateTenant)
	mux.HandleFunc("GET /api/tenants/{id}", h.GetTenant)
	mux.HandleFunc("PUT /api/tenants/{id}", h.UpdateTenant)
	mux.HandleFunc("DELETE /api/tenants/{id}", h.DeleteTenant)

	mux.HandleFunc("GET /api/maintenance", h.ListMaintenanceRequests)
	mux.HandleFunc("POST /api/maintenance", h.CreateMaintenanceRequest)
	mux.HandleFunc("GET /api/maintenance/{id}", h.GetMaintenanceRequest)
	mux.HandleFunc("PUT /api/maintenance/{id}", h.UpdateMaintenanceRequest)
	mux.HandleFunc("DELETE /api/maintenance/{id}", h.DeleteMaintenanceRequest)

	mux.HandleFunc("GET /api/transactions", h.ListTransactions)
	mux.HandleFunc("POST /api/transactions", h.CreateTransaction)
	mux.HandleFunc("GET /api/transactions/{id}", h.GetTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", h.UpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", h.DeleteTransaction)
}

func decodeJSON(r *http.Request, out interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeResult maps the data service's uniform absence vocabulary onto HTTP:
// nil result is 404, everything else is 200.
func writeResult[T any](w http.ResponseWriter, v *T, err error) {
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	if v == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func writeDeleteResult(w http.ResponseWriter, deleted bool, err error) {
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func writeCreateResult[T any](w http.ResponseWriter, v *T, err error) {
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "Referenced entity not found", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// Health reports liveness and the current remote store availability.
func (h *PortalHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"remote_store": h.probe.Available(),
	})
}

// RefreshAvailability re-runs the remote store probe on demand.
func (h *PortalHandler) RefreshAvailability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"remote_store": h.probe.Refresh(r.Context()),
	})
}

// --- properties ---

func (h *PortalHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.dataService.GetProperties(r.Context())
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PortalHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.dataService.GetProperty(r.Context(), r.PathValue("id"))
	writeResult(w, p, err)
}

func (h *PortalHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var p models.Property
	if err := decodeJSON(r, &p); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.dataService.CreateProperty(r.Context(), p)
	writeCreateResult(w, created, err)
}

func (h *PortalHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var patch models.PropertyPatch
	if err := decodeJSON(r, &patch); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	p, err := h.dataService.UpdateProperty(r.Context(), r.PathValue("id"), patch)
	writeResult(w, p, err)
}

func (h *PortalHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.dataService.DeleteProperty(r.Context(), r.PathValue("id"))
	writeDeleteResult(w, deleted, err)
}

func (h *PortalHandler) GetPropertyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dataService.GetPropertyStats(r.Context(), r.PathValue("id"))
	writeResult(w, stats, err)
}

func (h *PortalHandler) ListPropertyUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.dataService.GetUnits(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *PortalHandler) ListPropertyTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.dataService.GetTransactions(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

// --- units ---

func (h *PortalHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.dataService.GetUnits(r.Context(), r.URL.Query().Get("property_id"))
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *PortalHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	u, err := h.dataService.GetUnit(r.Context(), r.PathValue("id"))
	writeResult(w, u, err)
}

func (h *PortalHandler) GetUnitDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.dataService.GetUnitWithDetails(r.Context(), r.PathValue("id"))
	writeResult(w, details, err)
}

func (h *PortalHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var u models.Unit
	if err := decodeJSON(r, &u); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if u.PropertyID == "" {
		http.Error(w, "property_id is required", http.StatusBadRequest)
		return
	}
	if u.Status != "" && !models.IsValidUnitStatus(u.Status) {
		http.Error(w, "Invalid unit status", http.StatusBadRequest)
		return
	}
	created, err := h.dataService.CreateUnit(r.Context(), u)
	writeCreateResult(w, created, err)
}

func (h *PortalHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	var patch models.UnitPatch
	if err := decodeJSON(r, &patch); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if patch.Status != nil && !models.IsValidUnitStatus(*patch.Status) {
		http.Error(w, "Invalid unit status", http.StatusBadRequest)
		return
	}
	u, err := h.dataService.UpdateUnit(r.Context(), r.PathValue("id"), patch)
	writeResult(w, u, err)
}

func (h *PortalHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.dataService.DeleteUnit(r.Context(), r.PathValue("id"))
	writeDeleteResult(w, deleted, err)
}

// --- tenants ---

func (h *PortalHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.dataService.GetTenants(r.Context())
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

func (h *PortalHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	t, err := h.dataService.GetTenant(r.Context(), r.PathValue("id"))
	writeResult(w, t, err)
}

func (h *PortalHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var t models.Tenant
	if err := decodeJSON(r, &t); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if t.Name == "" || t.Email == "" {
		http.Error(w, "Name and email are required", http.StatusBadRequest)
		return
	}
	created, err := h.dataService.CreateTenant(r.Context(), t)
	writeCreateResult(w, created, err)
}

func (h *PortalHandler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	var patch models.TenantPatch
	if err := decodeJSON(r, &patch); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	t, err := h.dataService.UpdateTenant(r.Context(), r.PathValue("id"), patch)
	writeResult(w, t, err)
}

func (h *PortalHandler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.dataService.DeleteTenant(r.Context(), r.PathValue("id"))
	writeDeleteResult(w, deleted, err)
}

// --- maintenance requests ---

func (h *PortalHandler) ListMaintenanceRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.dataService.GetMaintenanceRequests(r.Context(), r.URL.Query().Get("unit_id"))
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *PortalHandler) GetMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	m, err := h.dataService.GetMaintenanceRequest(r.Context(), r.PathValue("id"))
	writeResult(w, m, err)
}

func (h *PortalHandler) CreateMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	var m models.MaintenanceRequest
	if err := decodeJSON(r, &m); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if m.UnitID == "" || m.Title == "" {
		http.Error(w, "unit_id and title are required", http.StatusBadRequest)
		return
	}
	created, err := h.dataService.CreateMaintenanceRequest(r.Context(), m)
	writeCreateResult(w, created, err)
}

func (h *PortalHandler) UpdateMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	var patch models.MaintenanceRequestPatch
	if err := decodeJSON(r, &patch); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	m, err := h.dataService.UpdateMaintenanceRequest(r.Context(), r.PathValue("id"), patch)
	writeResult(w, m, err)
}

func (h *PortalHandler) DeleteMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.dataService.DeleteMaintenanceRequest(r.Context(), r.PathValue("id"))
	writeDeleteResult(w, deleted, err)
}

// --- transactions ---

func (h *PortalHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.dataService.GetTransactions(r.Context(), r.URL.Query().Get("property_id"))
	if err != nil {
		http.Error(w, "Operation failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (h *PortalHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.dataService.GetTransaction(r.Context(), r.PathValue("id"))
	writeResult(w, t, err)
}

func (h *PortalHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t models.Transaction
	if err := decodeJSON(r, &t); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if t.PropertyID == "" {
		http.Error(w, "property_id is required", http.StatusBadRequest)
		return
	}
	if t.Type != models.TransactionIncome && t.Type != models.TransactionExpense {
		http.Error(w, "Invalid transaction type", http.StatusBadRequest)
		return
	}
	if t.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}
	created, err := h.dataService.CreateTransaction(r.Context(), t)
	writeCreateResult(w, created, err)
}

func (h *PortalHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var patch models.TransactionPatch
	if err := decodeJSON(r, &patch); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}
	t, err := h.dataService.UpdateTransaction(r.Context(), r.PathValue("id"), patch)
	writeResult(w, t, err)
}

func (h *PortalHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.dataService.DeleteTransaction(r.Context(), r.PathValue("id"))
	writeDeleteResult(w, deleted, err)
}
