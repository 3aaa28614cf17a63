package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateWorker registers a new worker and returns the generated ID.
// POST /form/worker
func (h *Handler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, "invalid JSON body", "INVALID_BODY", nil)
		return
	}
	mobile, _ := body["mobile_number"].(string)
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		respond(w, http.StatusBadRequest, "mobile_number is required", "MISSING_MOBILE_NUMBER", nil)
		return
	}

	workerID := uuid.NewString()
	if err := h.Store.CreateWorker(workerID, mobile); err != nil {
		respond(w, http.StatusInternalServerError, "failed to create worker", "DATABASE_SAVE_FAILED", nil)
		return
	}

	respond(w, http.StatusCreated, "Worker created", "", map[string]any{
		"worker_id":     workerID,
		"mobile_number": mobile,
	})
}

// GetWorker returns the worker's current record.
// GET /form/worker/{workerID}
func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	worker, err := h.Store.GetWorker(workerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, "database error", "DATABASE_ERROR", nil)
		return
	}
	if worker == nil {
		respond(w, http.StatusNotFound, "Worker not found", "WORKER_NOT_FOUND", nil)
		return
	}
	respond(w, http.StatusOK, "OK", "", map[string]any{"worker": worker})
}
