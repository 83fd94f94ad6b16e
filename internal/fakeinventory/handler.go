// Package fakeinventory serves the inventory REST contract from memory for tests and local development.
package fakeinventory

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"vehicle-manager/internal/inventory"

	"github.com/gorilla/mux"
)

// Handler handles HTTP requests for the fake inventory
type Handler struct {
	store *Store
}

// NewHandler creates a new HTTP handler backed by store
func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
	}
}

// RegisterRoutes sets up HTTP routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/vehicles", h.ListVehicles).Methods("GET")
	router.HandleFunc("/vehicles", h.CreateVehicle).Methods("POST")
	router.HandleFunc("/vehicles/{id:[0-9]+}", h.GetVehicle).Methods("GET")
	router.HandleFunc("/vehicles/{id:[0-9]+}", h.UpdateVehicle).Methods("PUT")
	router.HandleFunc("/vehicles/{id:[0-9]+}", h.DeleteVehicle).Methods("DELETE")
}

// NewRouter returns a router with all routes registered
func (h *Handler) NewRouter() *mux.Router {
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

// Health returns service health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle inventory.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		slog.Error("Failed to decode vehicle create request", "error", err)
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.store.Create(r.Context(), vehicle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("Vehicle created", "vehicle_id", *created.ID, "vehicle", created.String())
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	vehicle, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	var vehicle inventory.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.store.Update(r.Context(), id, vehicle)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("Vehicle updated", "vehicle_id", id, "vehicle", updated.String())
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("Vehicle deleted", "vehicle_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func vehicleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid vehicle id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "status", status, "error", err)
	}
}
